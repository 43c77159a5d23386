package store

import (
	"context"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

type AdminState struct {
	DashboardStats *models.AdminDashboardStats

	Users            []models.AdminUser
	Providers        []models.AdminProvider
	Bookings         []models.AdminBooking
	SelectedUser     *models.AdminUser
	SelectedProvider *models.AdminProvider
	SelectedBooking  *models.AdminBooking

	UsersPagination     models.Pagination
	ProvidersPagination models.Pagination
	BookingsPagination  models.Pagination

	// Last query issued per list; page changes reuse its filters.
	UsersQuery     models.UserQuery
	ProvidersQuery models.ProviderQuery
	BookingsQuery  models.BookingQuery

	IsLoading          bool
	IsLoadingUsers     bool
	IsLoadingProviders bool
	IsLoadingBookings  bool
	Error              string
}

func initialAdmin() AdminState {
	return AdminState{
		Users:     []models.AdminUser{},
		Providers: []models.AdminProvider{},
		Bookings:  []models.AdminBooking{},
	}
}

// AdminStore backs the admin console: dashboard stats and paginated user,
// provider and booking management.
type AdminStore struct {
	base[AdminState]
	api *api.AdminAPI
}

func NewAdminStore(a *api.AdminAPI, log logging.Logger) *AdminStore {
	s := &AdminStore{api: a}
	s.name = "admin"
	s.log = log
	s.errOf = func(st *AdminState) *string { return &st.Error }
	s.state = initialAdmin()
	return s
}

func (s *AdminStore) State() AdminState {
	return s.snapshot()
}

func adminLoading(st *AdminState) *bool     { return &st.IsLoading }
func usersLoading(st *AdminState) *bool     { return &st.IsLoadingUsers }
func providerLoading(st *AdminState) *bool  { return &st.IsLoadingProviders }
func adminBookLoading(st *AdminState) *bool { return &st.IsLoadingBookings }

func adminUserID(v models.AdminUser) int64         { return v.ID }
func adminProviderID(v models.AdminProvider) int64 { return v.ID }
func adminBookingID(v models.AdminBooking) int64   { return v.ID }

func (s *AdminStore) FetchDashboardStats(ctx context.Context) error {
	return s.act(ctx, "fetch_dashboard", "Failed to fetch dashboard stats", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		stats, err := decode[models.AdminDashboardStats](s.api.GetDashboardStats(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) { st.DashboardStats = &stats }, nil
	})
}

// Users

func (s *AdminStore) FetchUsers(ctx context.Context, q models.UserQuery) error {
	s.update(func(st *AdminState) { st.UsersQuery = q })
	return s.act(ctx, "fetch_users", "Failed to fetch users", usersLoading, func(ctx context.Context) (func(*AdminState), error) {
		page, err := decode[models.Page[models.AdminUser]](s.api.GetUsers(ctx, q))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) {
			st.Users = page.Items()
			st.UsersPagination = page.Pagination()
		}, nil
	})
}

// FilterUsers fetches page 0 with new filters. A zero size keeps the last one.
func (s *AdminStore) FilterUsers(ctx context.Context, q models.UserQuery) error {
	q.Page = 0
	if q.Size == 0 {
		q.Size = s.State().UsersQuery.Size
	}
	return s.FetchUsers(ctx, q)
}

// GoToUsersPage refetches with the last filters at another page.
func (s *AdminStore) GoToUsersPage(ctx context.Context, page int) error {
	q := s.State().UsersQuery
	q.Page = page
	return s.FetchUsers(ctx, q)
}

func (s *AdminStore) FetchUserByID(ctx context.Context, id int64) error {
	return s.act(ctx, "fetch_user", "Failed to fetch user", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		u, err := decode[models.AdminUser](s.api.GetUserByID(ctx, id))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) { st.SelectedUser = &u }, nil
	})
}

func (s *AdminStore) UpdateUserStatus(ctx context.Context, id int64, status models.AccountStatus, reason string) (models.AdminUser, error) {
	var updated models.AdminUser
	err := s.act(ctx, "update_user_status", "Failed to update user status", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		var err error
		updated, err = decode[models.AdminUser](s.api.UpdateUserStatus(ctx, id, models.UserStatusUpdate{Status: status, Reason: reason}))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) {
			st.Users = replaceByID(st.Users, id, adminUserID, updated)
			st.SelectedUser = &updated
		}, nil
	})
	return updated, err
}

func (s *AdminStore) DeleteUser(ctx context.Context, id int64) error {
	return s.act(ctx, "delete_user", "Failed to delete user", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		if _, err := s.api.DeleteUser(ctx, id); err != nil {
			return nil, err
		}
		return func(st *AdminState) { st.Users = removeByID(st.Users, id, adminUserID) }, nil
	})
}

// Providers

func (s *AdminStore) FetchProviders(ctx context.Context, q models.ProviderQuery) error {
	s.update(func(st *AdminState) { st.ProvidersQuery = q })
	return s.act(ctx, "fetch_providers", "Failed to fetch providers", providerLoading, func(ctx context.Context) (func(*AdminState), error) {
		page, err := decode[models.Page[models.AdminProvider]](s.api.GetProviders(ctx, q))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) {
			st.Providers = page.Items()
			st.ProvidersPagination = page.Pagination()
		}, nil
	})
}

func (s *AdminStore) FilterProviders(ctx context.Context, q models.ProviderQuery) error {
	q.Page = 0
	if q.Size == 0 {
		q.Size = s.State().ProvidersQuery.Size
	}
	return s.FetchProviders(ctx, q)
}

func (s *AdminStore) GoToProvidersPage(ctx context.Context, page int) error {
	q := s.State().ProvidersQuery
	q.Page = page
	return s.FetchProviders(ctx, q)
}

func (s *AdminStore) FetchProviderByID(ctx context.Context, id int64) error {
	return s.act(ctx, "fetch_provider", "Failed to fetch provider", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		p, err := decode[models.AdminProvider](s.api.GetProviderByID(ctx, id))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) { st.SelectedProvider = &p }, nil
	})
}

func (s *AdminStore) VerifyProvider(ctx context.Context, id int64, verified bool, notes string) (models.AdminProvider, error) {
	return s.replaceProvider(ctx, "verify_provider", "Failed to verify provider", id, func(ctx context.Context) (models.AdminProvider, error) {
		return decode[models.AdminProvider](s.api.VerifyProvider(ctx, id, models.ProviderVerification{Verified: verified, Notes: notes}))
	})
}

func (s *AdminStore) UpdateProviderStatus(ctx context.Context, id int64, status models.AccountStatus, reason string) (models.AdminProvider, error) {
	return s.replaceProvider(ctx, "update_provider_status", "Failed to update provider status", id, func(ctx context.Context) (models.AdminProvider, error) {
		return decode[models.AdminProvider](s.api.UpdateProviderStatus(ctx, id, models.UserStatusUpdate{Status: status, Reason: reason}))
	})
}

func (s *AdminStore) replaceProvider(ctx context.Context, action, fallback string, id int64, call func(context.Context) (models.AdminProvider, error)) (models.AdminProvider, error) {
	var updated models.AdminProvider
	err := s.act(ctx, action, fallback, adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		var err error
		if updated, err = call(ctx); err != nil {
			return nil, err
		}
		return func(st *AdminState) {
			st.Providers = replaceByID(st.Providers, id, adminProviderID, updated)
			st.SelectedProvider = &updated
		}, nil
	})
	return updated, err
}

// Bookings

func (s *AdminStore) FetchBookings(ctx context.Context, q models.BookingQuery) error {
	s.update(func(st *AdminState) { st.BookingsQuery = q })
	return s.act(ctx, "fetch_bookings", "Failed to fetch bookings", adminBookLoading, func(ctx context.Context) (func(*AdminState), error) {
		page, err := decode[models.Page[models.AdminBooking]](s.api.GetBookings(ctx, q))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) {
			st.Bookings = page.Items()
			st.BookingsPagination = page.Pagination()
		}, nil
	})
}

func (s *AdminStore) FilterBookings(ctx context.Context, q models.BookingQuery) error {
	q.Page = 0
	if q.Size == 0 {
		q.Size = s.State().BookingsQuery.Size
	}
	return s.FetchBookings(ctx, q)
}

func (s *AdminStore) GoToBookingsPage(ctx context.Context, page int) error {
	q := s.State().BookingsQuery
	q.Page = page
	return s.FetchBookings(ctx, q)
}

func (s *AdminStore) FetchBookingByID(ctx context.Context, id int64) error {
	return s.act(ctx, "fetch_booking", "Failed to fetch booking", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		b, err := decode[models.AdminBooking](s.api.GetBookingByID(ctx, id))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) { st.SelectedBooking = &b }, nil
	})
}

func (s *AdminStore) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus, notes string) (models.AdminBooking, error) {
	var updated models.AdminBooking
	err := s.act(ctx, "update_booking_status", "Failed to update booking status", adminLoading, func(ctx context.Context) (func(*AdminState), error) {
		var err error
		updated, err = decode[models.AdminBooking](s.api.UpdateBookingStatus(ctx, id, models.AdminBookingStatusUpdate{Status: status, Notes: notes}))
		if err != nil {
			return nil, err
		}
		return func(st *AdminState) {
			st.Bookings = replaceByID(st.Bookings, id, adminBookingID, updated)
			st.SelectedBooking = &updated
		}, nil
	})
	return updated, err
}

func (s *AdminStore) ClearSelectedUser() {
	s.update(func(st *AdminState) { st.SelectedUser = nil })
}

func (s *AdminStore) ClearSelectedProvider() {
	s.update(func(st *AdminState) { st.SelectedProvider = nil })
}

func (s *AdminStore) ClearSelectedBooking() {
	s.update(func(st *AdminState) { st.SelectedBooking = nil })
}

func (s *AdminStore) ClearData() {
	s.update(func(st *AdminState) { *st = initialAdmin() })
}
