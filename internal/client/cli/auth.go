package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// commands returns the verbs available to the current user.
func (a *App) commands() []command {
	if !a.isLoggedIn() {
		return a.guestCommands()
	}

	cmds := a.sessionCommands()
	switch a.role() {
	case models.RoleProvider:
		cmds = append(cmds, a.providerCommands()...)
	case models.RoleCustomer:
		cmds = append(cmds, a.customerCommands()...)
	case models.RoleAdmin:
		cmds = append(cmds, a.adminCommands()...)
	}
	return cmds
}

func (a *App) guestCommands() []command {
	return []command{
		{name: "login", help: "sign in", run: a.Login},
		{name: "signup", help: "register as a service provider", run: a.Signup},
		{name: "signup-customer", help: "register as a customer", run: a.SignupCustomer},
		{name: "categories", help: "list service categories", run: a.Categories},
		{name: "search", args: "[category=.. city=.. search=.. minPrice=.. maxPrice=.. minRating=.. sortBy=.. page=.. size=..]", help: "search providers", run: a.SearchProviders},
	}
}

func (a *App) sessionCommands() []command {
	return []command{
		{name: "whoami", help: "ask the server who you are", run: a.WhoAmI},
		{name: "session", help: "show the local session and token expiry", run: a.Session},
		{name: "refresh", help: "exchange the refresh token now", run: a.Refresh},
		{name: "logout", help: "sign out", run: a.Logout},
	}
}

// readCredentials prompts for an email and a password. The caller wipes
// the password.
func (a *App) readCredentials() (string, []byte, error) {
	email, err := a.prompt("Enter email")
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

func (a *App) Login(ctx context.Context, _ []string) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.status())
	return nil
}

// Signup registers a service provider account and signs in.
func (a *App) Signup(ctx context.Context, _ []string) error {
	var req models.SignupRequest
	if err := a.promptAll(
		field{"Full name", &req.FullName},
		field{"Email", &req.Email},
		field{"Phone", &req.Phone},
		field{"Primary service (e.g. PLUMBING)", &req.PrimaryService},
		field{"City", &req.City},
	); err != nil {
		return err
	}

	rate, err := a.prompt("Hourly rate (optional)")
	if err != nil {
		return err
	}
	if rate != "" {
		if req.HourlyRate, err = strconv.ParseFloat(rate, 64); err != nil {
			return fmt.Errorf("%w: hourly rate must be a number", errUsage)
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if err := a.auth.Signup(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s\n", req.FullName)
	return nil
}

func (a *App) SignupCustomer(ctx context.Context, _ []string) error {
	var req models.CustomerSignupRequest
	if err := a.promptAll(
		field{"Full name", &req.FullName},
		field{"Email", &req.Email},
		field{"Phone", &req.Phone},
		field{"City", &req.City},
	); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if err := a.auth.SignupCustomer(ctx, req); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s\n", req.FullName)
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	if err := a.auth.VerifyToken(ctx); err != nil {
		return err
	}
	printUser(a.out, a.auth.State().User)
	return nil
}

// Session shows what is stored locally without contacting the server.
func (a *App) Session(_ context.Context, _ []string) error {
	st := a.auth.State()
	printUser(a.out, st.User)

	c, err := session.ParseClaims(st.AccessToken)
	if err != nil {
		fmt.Fprintln(a.out, "Access token: unreadable")
		return nil
	}
	switch {
	case c.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Access token: no expiry")
	case c.Expired(a.now()):
		fmt.Fprintf(a.out, "Access token: expired at %s\n", c.ExpiresAt.Format("2006-01-02 15:04:05"))
	default:
		fmt.Fprintf(a.out, "Access token: valid until %s\n", c.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (a *App) Refresh(ctx context.Context, _ []string) error {
	if !a.auth.RefreshAccessToken(ctx) {
		fmt.Fprintln(a.out, "Session could not be refreshed, please log in again")
		return nil
	}
	fmt.Fprintln(a.out, "Session refreshed")
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

type field struct {
	prompt string
	dst    *string
}

func (a *App) promptAll(fields ...field) error {
	for _, f := range fields {
		v, err := a.prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
