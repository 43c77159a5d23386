package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

func (a *App) customerCommands() []command {
	return []command{
		{name: "categories", help: "list service categories", run: a.Categories},
		{name: "search", args: "[category=.. city=.. search=.. minPrice=.. maxPrice=.. minRating=.. sortBy=.. page=.. size=..]", help: "search providers", run: a.SearchProviders},
		{name: "provider", args: "<id>", help: "show a provider and their services", run: a.ProviderDetails},
		{name: "reviews", args: "<providerId> [page]", help: "show a provider's reviews", run: a.ProviderReviews},
		{name: "book", args: "<providerId> <serviceId>", help: "book a service", run: a.Book},
		{name: "bookings", help: "list all your bookings", run: a.CustomerBookings},
		{name: "upcoming", help: "list upcoming bookings", run: a.CustomerUpcoming},
		{name: "past", help: "list past bookings", run: a.CustomerPast},
		{name: "booking", args: "<id>", help: "show one booking", run: a.CustomerBooking},
		{name: "cancel", args: "<id> [reason]", help: "cancel a booking", run: a.CancelBooking},
		{name: "review", args: "<bookingId> <rating 1-5> [comment]", help: "review a completed booking", run: a.Review},
		{name: "my-reviews", help: "list reviews you wrote", run: a.MyReviews},
		{name: "addresses", help: "list saved addresses", run: a.Addresses},
		{name: "address-add", help: "save an address", run: a.AddAddress},
		{name: "address-edit", args: "<id>", help: "change a saved address", run: a.EditAddress},
		{name: "address-delete", args: "<id>", help: "remove a saved address", run: a.DeleteAddress},
		{name: "address-default", args: "<id>", help: "make an address the default", run: a.DefaultAddress},
		{name: "profile", help: "show your profile", run: a.CustomerProfile},
		{name: "profile-edit", help: "update your profile", run: a.EditCustomerProfile},
	}
}

func (a *App) Categories(ctx context.Context, _ []string) error {
	if err := a.customer.FetchCategories(ctx); err != nil {
		return err
	}
	list := a.customer.State().Categories
	if len(list) == 0 {
		empty(a.out, "categories")
		return nil
	}
	rows := make([][]any, 0, len(list))
	for _, c := range list {
		rows = append(rows, []any{c.Value, c.DisplayName, c.ProviderCount})
	}
	table(a.out, "CATEGORY\tNAME\tPROVIDERS", rows)
	return nil
}

func (a *App) SearchProviders(ctx context.Context, args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	q := models.ProviderSearch{
		Category: opts["category"],
		City:     opts["city"],
		Search:   opts["search"],
		SortBy:   opts["sortby"],
	}
	if q.MinPrice, err = optFloat(opts, "minprice"); err != nil {
		return err
	}
	if q.MaxPrice, err = optFloat(opts, "maxprice"); err != nil {
		return err
	}
	if q.MinRating, err = optFloat(opts, "minrating"); err != nil {
		return err
	}
	if q.Page, err = optInt(opts, "page"); err != nil {
		return err
	}
	if q.Size, err = optInt(opts, "size"); err != nil {
		return err
	}

	if err := a.customer.SearchProviders(ctx, q); err != nil {
		return err
	}
	printListings(a.out, a.customer.State().Providers)
	return nil
}

func (a *App) ProviderDetails(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.customer.FetchProviderDetails(ctx, id); err != nil {
		return err
	}
	printProviderDetail(a.out, a.customer.State().SelectedProvider)
	return nil
}

func (a *App) ProviderReviews(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	page, err := argInt(args, 1, 0)
	if err != nil {
		return err
	}
	if err := a.customer.FetchProviderReviews(ctx, id, page, 0); err != nil {
		return err
	}
	printReviews(a.out, a.customer.State().ProviderReviews)
	return nil
}

// Book prompts for the date, time and address of a new booking. Leaving
// the address blank uses the default saved address when there is one.
func (a *App) Book(ctx context.Context, args []string) error {
	providerID, err := argID(args, 0)
	if err != nil {
		return err
	}
	serviceID, err := argID(args, 1)
	if err != nil {
		return err
	}

	req := models.CreateBookingRequest{ProviderID: providerID, ServiceID: serviceID}
	if err := a.promptAll(
		field{"Date (YYYY-MM-DD)", &req.BookingDate},
		field{"Time (HH:MM)", &req.BookingTime},
		field{"Address (blank for your default address)", &req.Address},
	); err != nil {
		return err
	}
	if req.Address == "" {
		for _, addr := range a.customer.State().SavedAddresses {
			if addr.IsDefault {
				id := addr.ID
				req.SavedAddressID = &id
				req.Address = addr.Address
				break
			}
		}
	}
	notes, err := a.promptMultiline("Notes for the provider")
	if err != nil {
		return err
	}
	req.Notes = notes

	b, err := a.customer.CreateBooking(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d created, status %s\n", b.ID, b.Status)
	return nil
}

func (a *App) CustomerBookings(ctx context.Context, _ []string) error {
	if err := a.customer.FetchBookings(ctx); err != nil {
		return err
	}
	printCustomerBookings(a.out, a.customer.State().Bookings)
	return nil
}

func (a *App) CustomerUpcoming(ctx context.Context, _ []string) error {
	if err := a.customer.FetchUpcomingBookings(ctx); err != nil {
		return err
	}
	printCustomerBookings(a.out, a.customer.State().UpcomingBookings)
	return nil
}

func (a *App) CustomerPast(ctx context.Context, _ []string) error {
	if err := a.customer.FetchPastBookings(ctx); err != nil {
		return err
	}
	printCustomerBookings(a.out, a.customer.State().PastBookings)
	return nil
}

func (a *App) CustomerBooking(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.customer.FetchBooking(ctx, id); err != nil {
		return err
	}
	b := a.customer.State().SelectedBooking
	printCustomerBookings(a.out, []models.CustomerBooking{*b})
	if b.Notes != "" {
		fmt.Fprintln(a.out, "Notes:", b.Notes)
	}
	if b.CancellationReason != "" {
		fmt.Fprintln(a.out, "Cancelled:", b.CancellationReason)
	}
	return nil
}

func (a *App) CancelBooking(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	b, err := a.customer.CancelBooking(ctx, id, rest(args, 1))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d is now %s\n", b.ID, b.Status)
	return nil
}

func (a *App) Review(ctx context.Context, args []string) error {
	bookingID, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: missing rating", errUsage)
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be 1 to 5", errUsage)
	}

	in := models.ReviewInput{BookingID: bookingID, Rating: rating, Comment: rest(args, 2)}
	if _, err := a.customer.CreateReview(ctx, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Thanks! Booking #%d rated %d/5\n", bookingID, rating)
	return nil
}

func (a *App) MyReviews(ctx context.Context, _ []string) error {
	if err := a.customer.FetchMyReviews(ctx); err != nil {
		return err
	}
	printReviews(a.out, a.customer.State().MyReviews)
	return nil
}

func (a *App) Addresses(ctx context.Context, _ []string) error {
	if err := a.customer.FetchSavedAddresses(ctx); err != nil {
		return err
	}
	printAddresses(a.out, a.customer.State().SavedAddresses)
	return nil
}

func (a *App) readAddress() (models.AddressInput, error) {
	var in models.AddressInput
	err := a.promptAll(
		field{"Label (Home, Work, ...)", &in.Label},
		field{"Address", &in.Address},
		field{"City", &in.City},
		field{"State", &in.State},
		field{"Pincode", &in.Pincode},
	)
	if err == nil && in.Address == "" {
		err = fmt.Errorf("%w: address is required", errUsage)
	}
	return in, err
}

func (a *App) AddAddress(ctx context.Context, _ []string) error {
	in, err := a.readAddress()
	if err != nil {
		return err
	}
	created, err := a.customer.AddSavedAddress(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved address #%d\n", created.ID)
	return nil
}

func (a *App) EditAddress(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	in, err := a.readAddress()
	if err != nil {
		return err
	}
	if _, err := a.customer.UpdateSavedAddress(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated address #%d\n", id)
	return nil
}

func (a *App) DeleteAddress(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.customer.DeleteSavedAddress(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed address #%d\n", id)
	return nil
}

func (a *App) DefaultAddress(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.customer.SetDefaultAddress(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Address #%d is now the default\n", id)
	return nil
}

func (a *App) CustomerProfile(ctx context.Context, _ []string) error {
	if err := a.customer.FetchProfile(ctx); err != nil {
		return err
	}
	p := a.customer.State().Profile
	fmt.Fprintf(a.out, "%s <%s> %s\n", p.FullName, p.Email, p.Phone)
	fmt.Fprintf(a.out, "%s, %s %s\n", p.City, p.State, p.Pincode)
	fmt.Fprintf(a.out, "Bookings: %d total, %d completed, %d cancelled\n", p.TotalBookings, p.CompletedBookings, p.CancelledBookings)
	return nil
}

// EditCustomerProfile updates the profile and mirrors the new name and
// phone into the signed-in user.
func (a *App) EditCustomerProfile(ctx context.Context, _ []string) error {
	var in models.CustomerProfileUpdate
	if err := a.promptAll(
		field{"Full name (blank keeps)", &in.FullName},
		field{"Phone (blank keeps)", &in.Phone},
		field{"Address (blank keeps)", &in.Address},
		field{"City (blank keeps)", &in.City},
	); err != nil {
		return err
	}

	if err := a.customer.UpdateProfile(ctx, in); err != nil {
		return err
	}
	if err := a.auth.UpdateUser(ctx, models.User{FullName: in.FullName, Phone: in.Phone}); err != nil {
		a.log.Warn(ctx, "cannot persist updated user", "error", err)
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
