package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

// table writes tab-separated rows with aligned columns.
func table(w io.Writer, header string, rows [][]any) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = fmt.Sprint(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

func empty(w io.Writer, what string) {
	fmt.Fprintf(w, "No %s.\n", what)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pageLine(w io.Writer, p models.Pagination) {
	// pages are zero-based on the wire
	fmt.Fprintf(w, "Page %d of %d (%d total)\n", p.Page+1, max(p.TotalPages, 1), p.TotalElements)
}

func printStats(w io.Writer, s *models.DashboardStats) {
	if s == nil {
		return
	}
	fmt.Fprintf(w, "Earnings %s (this week %s)  bookings %d (%d pending, %d today)  rating %.1f from %d reviews\n",
		money(s.TotalEarnings), money(s.WeeklyEarnings), s.TotalBookings, s.PendingBookings, s.TodayBookings, s.AverageRating, s.TotalReviews)
}

func printUser(w io.Writer, u *models.User) {
	if u == nil {
		fmt.Fprintln(w, "Not signed in")
		return
	}
	fmt.Fprintf(w, "User #%d %s <%s> %s\n", u.ID, u.FullName, u.Email, u.Role)
}

func printServices(w io.Writer, list []models.Service) {
	if len(list) == 0 {
		empty(w, "services")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, s := range list {
		rows = append(rows, []any{s.ID, s.Name, money(s.Price), s.Duration, yesNo(s.Active)})
	}
	table(w, "ID\tNAME\tPRICE\tDURATION\tACTIVE", rows)
}

func printProviderBookings(w io.Writer, list []models.Booking) {
	if len(list) == 0 {
		empty(w, "bookings")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, b := range list {
		rows = append(rows, []any{b.ID, b.Date, b.Time, b.Customer, b.Service, b.Status, money(b.Price)})
	}
	table(w, "ID\tDATE\tTIME\tCUSTOMER\tSERVICE\tSTATUS\tPRICE", rows)
}

func printCustomerBookings(w io.Writer, list []models.CustomerBooking) {
	if len(list) == 0 {
		empty(w, "bookings")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, b := range list {
		reviewed := "-"
		if b.ReviewRating != nil {
			reviewed = fmt.Sprintf("%d/5", *b.ReviewRating)
		} else if b.HasReview {
			reviewed = "yes"
		}
		rows = append(rows, []any{b.ID, b.BookingDate, b.BookingTime, b.ProviderName, b.ServiceName, b.Status, money(b.Price), reviewed})
	}
	table(w, "ID\tDATE\tTIME\tPROVIDER\tSERVICE\tSTATUS\tPRICE\tREVIEW", rows)
}

func printListings(w io.Writer, list []models.ProviderListing) {
	if len(list) == 0 {
		empty(w, "providers")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, p := range list {
		rows = append(rows, []any{p.ID, p.Name, p.PrimaryService, p.Location, fmt.Sprintf("%.1f (%d)", p.AverageRating, p.TotalReviews), money(p.HourlyRate), yesNo(p.IsAvailable)})
	}
	table(w, "ID\tNAME\tSERVICE\tLOCATION\tRATING\tRATE\tAVAILABLE", rows)
}

func printProviderDetail(w io.Writer, p *models.ProviderDetail) {
	fmt.Fprintf(w, "%s (#%d)  %s  rating %.1f from %d reviews\n", p.Name, p.ID, p.PrimaryService, p.AverageRating, p.TotalReviews)
	if p.Bio != "" {
		fmt.Fprintln(w, p.Bio)
	}
	fmt.Fprintf(w, "%s, %s  verified: %s  available: %s\n", p.City, p.State, yesNo(p.Verified), yesNo(p.IsAvailable))
	if len(p.Services) == 0 {
		return
	}
	rows := make([][]any, 0, len(p.Services))
	for _, s := range p.Services {
		rows = append(rows, []any{s.ID, s.Name, money(s.Price), s.Duration})
	}
	table(w, "ID\tSERVICE\tPRICE\tDURATION", rows)
}

func printReviews(w io.Writer, list []models.Review) {
	if len(list) == 0 {
		empty(w, "reviews")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, r := range list {
		who := r.CustomerName
		if who == "" {
			who = r.ProviderName
		}
		rows = append(rows, []any{r.ID, who, r.ServiceName, fmt.Sprintf("%d/5", r.Rating), r.Comment})
	}
	table(w, "ID\tWHO\tSERVICE\tRATING\tCOMMENT", rows)
}

func printAddresses(w io.Writer, list []models.SavedAddress) {
	if len(list) == 0 {
		empty(w, "saved addresses")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, a := range list {
		def := ""
		if a.IsDefault {
			def = "*"
		}
		rows = append(rows, []any{a.ID, def, a.Label, a.Address, a.City})
	}
	table(w, "ID\tDEFAULT\tLABEL\tADDRESS\tCITY", rows)
}

func printAdminUsers(w io.Writer, list []models.AdminUser) {
	if len(list) == 0 {
		empty(w, "users")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, u := range list {
		rows = append(rows, []any{u.ID, u.FullName, u.Email, u.Role, u.Status})
	}
	table(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS", rows)
}

func printAdminProviders(w io.Writer, list []models.AdminProvider) {
	if len(list) == 0 {
		empty(w, "providers")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, p := range list {
		rows = append(rows, []any{p.ID, p.FullName, p.PrimaryService, p.City, p.Status, yesNo(p.IsVerified)})
	}
	table(w, "ID\tNAME\tSERVICE\tCITY\tSTATUS\tVERIFIED", rows)
}

func printAdminBookings(w io.Writer, list []models.AdminBooking) {
	if len(list) == 0 {
		empty(w, "bookings")
		return
	}
	rows := make([][]any, 0, len(list))
	for _, b := range list {
		rows = append(rows, []any{b.ID, b.ScheduledDate, b.CustomerName, b.ProviderName, b.ServiceName, b.Status, money(b.Amount)})
	}
	table(w, "ID\tDATE\tCUSTOMER\tPROVIDER\tSERVICE\tSTATUS\tAMOUNT", rows)
}
