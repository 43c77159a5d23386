package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

func (a *App) providerCommands() []command {
	return []command{
		{name: "dashboard", help: "load stats, profile, services and bookings", run: a.Dashboard},
		{name: "stats", help: "show business stats", run: a.ProviderStats},
		{name: "profile", help: "show your profile", run: a.ProviderProfile},
		{name: "profile-edit", help: "update your profile", run: a.EditProviderProfile},
		{name: "availability", args: "on|off", help: "accept or pause new bookings", run: a.Availability},
		{name: "services", help: "list your services", run: a.Services},
		{name: "service-add", help: "create a service", run: a.AddService},
		{name: "service-edit", args: "<id>", help: "update a service", run: a.EditService},
		{name: "service-toggle", args: "<id>", help: "activate or deactivate a service", run: a.ToggleService},
		{name: "service-delete", args: "<id>", help: "delete a service", run: a.DeleteService},
		{name: "bookings", help: "list all bookings", run: a.ProviderBookings},
		{name: "upcoming", help: "list upcoming bookings", run: a.ProviderUpcoming},
		{name: "booking-status", args: "<id> <confirmed|in_progress|completed|cancelled> [reason]", help: "move a booking along", run: a.ProviderBookingStatus},
	}
}

func (a *App) Dashboard(ctx context.Context, _ []string) error {
	if err := a.dashboard.FetchDashboardData(ctx); err != nil {
		return err
	}
	st := a.dashboard.State()
	printStats(a.out, st.Stats)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Upcoming:")
	printProviderBookings(a.out, st.UpcomingBookings)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Services:")
	printServices(a.out, st.Services)
	return nil
}

func (a *App) ProviderStats(ctx context.Context, _ []string) error {
	if err := a.dashboard.FetchStats(ctx); err != nil {
		return err
	}
	printStats(a.out, a.dashboard.State().Stats)
	return nil
}

func (a *App) ProviderProfile(ctx context.Context, _ []string) error {
	if err := a.dashboard.FetchProfile(ctx); err != nil {
		return err
	}
	p := a.dashboard.State().Profile
	fmt.Fprintf(a.out, "%s (#%d)  %s  %s\n", p.Name, p.ID, p.PrimaryService, p.Email)
	fmt.Fprintf(a.out, "%s, %s %s  radius %d km  rate %s/h\n", p.City, p.State, p.Pincode, p.ServiceRadiusKm, money(p.HourlyRate))
	fmt.Fprintf(a.out, "Verified: %s  available: %s  rating %.1f\n", yesNo(p.Verified), yesNo(p.IsAvailable), p.Rating)
	return nil
}

// EditProviderProfile prompts for each field; blank answers leave the
// field unchanged.
func (a *App) EditProviderProfile(ctx context.Context, _ []string) error {
	var in models.ProviderProfileUpdate
	if err := a.promptAll(
		field{"Full name (blank keeps)", &in.FullName},
		field{"Phone (blank keeps)", &in.Phone},
		field{"City (blank keeps)", &in.City},
	); err != nil {
		return err
	}

	bio, err := a.promptMultiline("Bio (blank keeps)")
	if err != nil {
		return err
	}
	in.Bio = bio

	rate, err := a.prompt("Hourly rate (blank keeps)")
	if err != nil {
		return err
	}
	if rate != "" {
		v, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return fmt.Errorf("%w: hourly rate must be a number", errUsage)
		}
		in.HourlyRate = &v
	}

	if err := a.dashboard.UpdateProfile(ctx, in); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

func (a *App) Availability(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected on or off", errUsage)
	}
	on, err := parseYesNo(args[0])
	if err != nil {
		return fmt.Errorf("%w: expected on or off", errUsage)
	}
	if err := a.dashboard.UpdateAvailability(ctx, on); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Available: %s\n", yesNo(on))
	return nil
}

func (a *App) Services(ctx context.Context, _ []string) error {
	if err := a.dashboard.FetchServices(ctx); err != nil {
		return err
	}
	printServices(a.out, a.dashboard.State().Services)
	return nil
}

// readServiceInput prompts for a service. With partial set, blank answers
// are left out of the request.
func (a *App) readServiceInput(partial bool) (models.ServiceInput, error) {
	var in models.ServiceInput
	suffix := ""
	if partial {
		suffix = " (blank keeps)"
	}

	if err := a.promptAll(
		field{"Name" + suffix, &in.Name},
		field{"Duration, e.g. 2 hours" + suffix, &in.Duration},
	); err != nil {
		return in, err
	}

	desc, err := a.promptMultiline("Description" + suffix)
	if err != nil {
		return in, err
	}
	in.Description = desc

	price, err := a.prompt("Price" + suffix)
	if err != nil {
		return in, err
	}
	if price != "" || !partial {
		v, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return in, fmt.Errorf("%w: price must be a number", errUsage)
		}
		in.Price = &v
	}
	if !partial && in.Name == "" {
		return in, fmt.Errorf("%w: name is required", errUsage)
	}
	return in, nil
}

func (a *App) AddService(ctx context.Context, _ []string) error {
	in, err := a.readServiceInput(false)
	if err != nil {
		return err
	}
	created, err := a.dashboard.CreateService(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created service #%d\n", created.ID)
	return nil
}

func (a *App) EditService(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	in, err := a.readServiceInput(true)
	if err != nil {
		return err
	}
	if _, err := a.dashboard.UpdateService(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated service #%d\n", id)
	return nil
}

func (a *App) ToggleService(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.dashboard.ToggleServiceStatus(ctx, id); err != nil {
		return err
	}
	for _, s := range a.dashboard.State().Services {
		if s.ID == id {
			fmt.Fprintf(a.out, "Service #%d active: %s\n", id, yesNo(s.Active))
			return nil
		}
	}
	fmt.Fprintf(a.out, "Service #%d toggled\n", id)
	return nil
}

func (a *App) DeleteService(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.dashboard.DeleteService(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted service #%d\n", id)
	return nil
}

func (a *App) ProviderBookings(ctx context.Context, _ []string) error {
	if err := a.dashboard.FetchBookings(ctx); err != nil {
		return err
	}
	printProviderBookings(a.out, a.dashboard.State().Bookings)
	return nil
}

func (a *App) ProviderUpcoming(ctx context.Context, _ []string) error {
	if err := a.dashboard.FetchUpcomingBookings(ctx); err != nil {
		return err
	}
	printProviderBookings(a.out, a.dashboard.State().UpcomingBookings)
	return nil
}

func (a *App) ProviderBookingStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: missing status", errUsage)
	}
	// provider endpoints speak lower case
	status := models.BookingStatus(strings.ToLower(args[1]))

	b, err := a.dashboard.UpdateBookingStatus(ctx, id, status, rest(args, 2))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d is now %s\n", b.ID, b.Status)
	return nil
}
