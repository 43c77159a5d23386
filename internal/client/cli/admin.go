package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

func (a *App) adminCommands() []command {
	return []command{
		{name: "stats", help: "platform overview", run: a.AdminStats},
		{name: "users", args: "[search=.. role=.. status=.. size=..]", help: "list users, first page", run: a.Users},
		{name: "users-page", args: "<n>", help: "go to a page of the user list (1-based)", run: a.UsersPage},
		{name: "user", args: "<id>", help: "show a user", run: a.User},
		{name: "user-status", args: "<id> <ACTIVE|INACTIVE|SUSPENDED> [reason]", help: "change a user's status", run: a.UserStatus},
		{name: "user-delete", args: "<id>", help: "delete a user", run: a.DeleteUser},
		{name: "providers", args: "[search=.. status=.. verified=yes|no size=..]", help: "list providers, first page", run: a.Providers},
		{name: "providers-page", args: "<n>", help: "go to a page of the provider list (1-based)", run: a.ProvidersPage},
		{name: "provider", args: "<id>", help: "show a provider", run: a.Provider},
		{name: "verify", args: "<id> yes|no [notes]", help: "verify or unverify a provider", run: a.Verify},
		{name: "provider-status", args: "<id> <ACTIVE|INACTIVE|SUSPENDED> [reason]", help: "change a provider's status", run: a.ProviderStatus},
		{name: "bookings", args: "[search=.. status=.. size=..]", help: "list bookings, first page", run: a.AdminBookings},
		{name: "bookings-page", args: "<n>", help: "go to a page of the booking list (1-based)", run: a.AdminBookingsPage},
		{name: "booking", args: "<id>", help: "show a booking", run: a.AdminBooking},
		{name: "booking-status", args: "<id> <STATUS> [notes]", help: "override a booking's status", run: a.AdminBookingStatus},
	}
}

func (a *App) AdminStats(ctx context.Context, _ []string) error {
	if err := a.admin.FetchDashboardStats(ctx); err != nil {
		return err
	}
	s := a.admin.State().DashboardStats
	fmt.Fprintf(a.out, "Users %d (%d customers, %d providers)  bookings %d  revenue %s\n",
		s.TotalUsers, s.TotalCustomers, s.TotalProviders, s.TotalBookings, money(s.TotalRevenue))
	return nil
}

// pageArg converts the 1-based page the user types to the wire's 0-based one.
func pageArg(args []string) (int, error) {
	n, err := argInt(args, 0, 1)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: pages start at 1", errUsage)
	}
	return n - 1, nil
}

func accountStatus(args []string, i int) (models.AccountStatus, error) {
	if len(args) <= i {
		return "", fmt.Errorf("%w: missing status", errUsage)
	}
	return models.AccountStatus(strings.ToUpper(args[i])), nil
}

func (a *App) Users(ctx context.Context, args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	q := models.UserQuery{
		Search: opts["search"],
		Role:   models.Role(strings.ToUpper(opts["role"])),
		Status: models.AccountStatus(strings.ToUpper(opts["status"])),
	}
	if q.Size, err = optInt(opts, "size"); err != nil {
		return err
	}
	if err := a.admin.FilterUsers(ctx, q); err != nil {
		return err
	}
	a.showUsers()
	return nil
}

func (a *App) UsersPage(ctx context.Context, args []string) error {
	page, err := pageArg(args)
	if err != nil {
		return err
	}
	if err := a.admin.GoToUsersPage(ctx, page); err != nil {
		return err
	}
	a.showUsers()
	return nil
}

func (a *App) showUsers() {
	st := a.admin.State()
	printAdminUsers(a.out, st.Users)
	pageLine(a.out, st.UsersPagination)
}

func (a *App) User(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.admin.FetchUserByID(ctx, id); err != nil {
		return err
	}
	u := a.admin.State().SelectedUser
	printAdminUsers(a.out, []models.AdminUser{*u})
	fmt.Fprintf(a.out, "Joined %s  bookings %d  phone %s\n", u.CreatedAt, u.TotalBookings, u.Phone)
	return nil
}

func (a *App) UserStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	status, err := accountStatus(args, 1)
	if err != nil {
		return err
	}
	u, err := a.admin.UpdateUserStatus(ctx, id, status, rest(args, 2))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User #%d is now %s\n", u.ID, u.Status)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.admin.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted user #%d\n", id)
	return nil
}

func (a *App) Providers(ctx context.Context, args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	q := models.ProviderQuery{
		Search: opts["search"],
		Status: models.AccountStatus(strings.ToUpper(opts["status"])),
	}
	if q.Verified, err = optBool(opts, "verified"); err != nil {
		return err
	}
	if q.Size, err = optInt(opts, "size"); err != nil {
		return err
	}
	if err := a.admin.FilterProviders(ctx, q); err != nil {
		return err
	}
	a.showProviders()
	return nil
}

func (a *App) ProvidersPage(ctx context.Context, args []string) error {
	page, err := pageArg(args)
	if err != nil {
		return err
	}
	if err := a.admin.GoToProvidersPage(ctx, page); err != nil {
		return err
	}
	a.showProviders()
	return nil
}

func (a *App) showProviders() {
	st := a.admin.State()
	printAdminProviders(a.out, st.Providers)
	pageLine(a.out, st.ProvidersPagination)
}

func (a *App) Provider(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.admin.FetchProviderByID(ctx, id); err != nil {
		return err
	}
	p := a.admin.State().SelectedProvider
	printAdminProviders(a.out, []models.AdminProvider{*p})
	fmt.Fprintf(a.out, "Bookings %d (%d completed)  earnings %s  rating %.1f from %d reviews\n",
		p.TotalBookings, p.CompletedBookings, money(p.TotalEarnings), p.AvgRating, p.TotalReviews)
	return nil
}

func (a *App) Verify(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: expected yes or no", errUsage)
	}
	verified, err := parseYesNo(args[1])
	if err != nil {
		return fmt.Errorf("%w: expected yes or no", errUsage)
	}
	p, err := a.admin.VerifyProvider(ctx, id, verified, rest(args, 2))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Provider #%d verified: %s\n", p.ID, yesNo(p.IsVerified))
	return nil
}

func (a *App) ProviderStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	status, err := accountStatus(args, 1)
	if err != nil {
		return err
	}
	p, err := a.admin.UpdateProviderStatus(ctx, id, status, rest(args, 2))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Provider #%d is now %s\n", p.ID, p.Status)
	return nil
}

func (a *App) AdminBookings(ctx context.Context, args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	q := models.BookingQuery{
		Search: opts["search"],
		Status: models.BookingStatus(opts["status"]),
	}
	if q.Size, err = optInt(opts, "size"); err != nil {
		return err
	}
	if err := a.admin.FilterBookings(ctx, q); err != nil {
		return err
	}
	a.showBookings()
	return nil
}

func (a *App) AdminBookingsPage(ctx context.Context, args []string) error {
	page, err := pageArg(args)
	if err != nil {
		return err
	}
	if err := a.admin.GoToBookingsPage(ctx, page); err != nil {
		return err
	}
	a.showBookings()
	return nil
}

func (a *App) showBookings() {
	st := a.admin.State()
	printAdminBookings(a.out, st.Bookings)
	pageLine(a.out, st.BookingsPagination)
}

func (a *App) AdminBooking(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.admin.FetchBookingByID(ctx, id); err != nil {
		return err
	}
	b := a.admin.State().SelectedBooking
	printAdminBookings(a.out, []models.AdminBooking{*b})
	fmt.Fprintf(a.out, "At %s %s, %s  payment %s\n", b.ScheduledDate, b.ScheduledTime, b.ServiceAddress, b.PaymentStatus)
	return nil
}

func (a *App) AdminBookingStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: missing status", errUsage)
	}
	b, err := a.admin.UpdateBookingStatus(ctx, id, models.BookingStatus(args[1]), rest(args, 2))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d is now %s\n", b.ID, b.Status)
	return nil
}
