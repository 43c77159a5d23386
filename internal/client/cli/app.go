package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/client/store"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

// Stores groups the state stores the App drives.
type Stores struct {
	Auth      *store.AuthStore
	Dashboard *store.DashboardStore
	Customer  *store.CustomerStore
	Admin     *store.AdminStore
}

type App struct {
	auth      *store.AuthStore
	dashboard *store.DashboardStore
	customer  *store.CustomerStore
	admin     *store.AdminStore

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
	now    func() time.Time
}

// NewApp wires the stores to in and out. Role data is dropped whenever the
// session ends, including when the server expires it.
func NewApp(s Stores, in io.Reader, out io.Writer, log logging.Logger) *App {
	a := &App{
		auth:      s.Auth,
		dashboard: s.Dashboard,
		customer:  s.Customer,
		admin:     s.Admin,
		reader:    bufio.NewReader(in),
		out:       out,
		log:       log,
		now:       time.Now,
	}

	a.auth.Subscribe(func(st store.AuthState) {
		if !st.IsAuthenticated && !st.IsLoading {
			a.clearRoleData()
		}
	})
	return a
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to QuickServe CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.auth.State().IsAuthenticated
}

func (a *App) role() models.Role {
	if u := a.auth.State().User; u != nil {
		return u.Role
	}
	return ""
}

// status renders the prompt decoration: "(email ROLE)", plus a marker
// when the access token has expired locally.
func (a *App) status() string {
	st := a.auth.State()
	if !st.IsAuthenticated {
		return ""
	}

	var parts []string
	if st.User != nil {
		if st.User.Email != "" {
			parts = append(parts, st.User.Email)
		}
		if st.User.Role != "" {
			parts = append(parts, string(st.User.Role))
		}
	}
	if c, err := session.ParseClaims(st.AccessToken); err == nil && c.Expired(a.now()) {
		parts = append(parts, "token expired")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func (a *App) clearRoleData() {
	a.dashboard.ClearData()
	a.customer.ClearData()
	a.admin.ClearData()
}

// prompt is the getSimpleText seam bound to the App's reader and writer.
func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) promptMultiline(text string) (string, error) {
	return getMultiline(a.reader, text, a.out)
}
