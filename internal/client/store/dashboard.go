package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

type DashboardState struct {
	Stats            *models.DashboardStats
	Profile          *models.ProviderProfile
	Services         []models.Service
	Bookings         []models.Booking
	UpcomingBookings []models.Booking
	IsLoading        bool
	Error            string
}

func initialDashboard() DashboardState {
	return DashboardState{
		Services:         []models.Service{},
		Bookings:         []models.Booking{},
		UpcomingBookings: []models.Booking{},
	}
}

// DashboardStore is the service provider's view of their own business.
type DashboardStore struct {
	base[DashboardState]
	api *api.ProviderAPI
}

func NewDashboardStore(a *api.ProviderAPI, log logging.Logger) *DashboardStore {
	s := &DashboardStore{api: a}
	s.name = "dashboard"
	s.log = log
	s.errOf = func(st *DashboardState) *string { return &st.Error }
	s.state = initialDashboard()
	return s
}

func (s *DashboardStore) State() DashboardState {
	return s.snapshot()
}

func dashLoading(st *DashboardState) *bool { return &st.IsLoading }

func serviceID(v models.Service) int64 { return v.ID }
func bookingID(v models.Booking) int64 { return v.ID }

func (s *DashboardStore) FetchStats(ctx context.Context) error {
	return s.act(ctx, "fetch_stats", "Failed to fetch stats", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		stats, err := decode[models.DashboardStats](s.api.GetStats(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Stats = &stats }, nil
	})
}

func (s *DashboardStore) FetchProfile(ctx context.Context) error {
	return s.act(ctx, "fetch_profile", "Failed to fetch profile", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		p, err := decode[models.ProviderProfile](s.api.GetProfile(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Profile = &p }, nil
	})
}

func (s *DashboardStore) UpdateProfile(ctx context.Context, in models.ProviderProfileUpdate) error {
	return s.act(ctx, "update_profile", "Failed to update profile", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		p, err := decode[models.ProviderProfile](s.api.UpdateProfile(ctx, in))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Profile = &p }, nil
	})
}

// UpdateAvailability does not raise the loading flag. The profile, if
// loaded, is patched once the server confirms.
func (s *DashboardStore) UpdateAvailability(ctx context.Context, available bool) error {
	return s.act(ctx, "update_availability", "Failed to update availability", nil, func(ctx context.Context) (func(*DashboardState), error) {
		if _, err := s.api.UpdateAvailability(ctx, available); err != nil {
			return nil, err
		}
		return func(st *DashboardState) {
			if st.Profile == nil {
				return
			}
			p := *st.Profile
			p.IsAvailable = available
			st.Profile = &p
		}, nil
	})
}

func (s *DashboardStore) FetchServices(ctx context.Context) error {
	return s.act(ctx, "fetch_services", "Failed to fetch services", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		list, err := decodeList[models.Service](s.api.GetServices(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Services = list }, nil
	})
}

// CreateService prepends the created service.
func (s *DashboardStore) CreateService(ctx context.Context, in models.ServiceInput) (models.Service, error) {
	var created models.Service
	err := s.act(ctx, "create_service", "Failed to create service", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		var err error
		created, err = decode[models.Service](s.api.CreateService(ctx, in))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Services = prepend(created, st.Services) }, nil
	})
	return created, err
}

func (s *DashboardStore) UpdateService(ctx context.Context, id int64, in models.ServiceInput) (models.Service, error) {
	var updated models.Service
	err := s.act(ctx, "update_service", "Failed to update service", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		var err error
		updated, err = decode[models.Service](s.api.UpdateService(ctx, id, in))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Services = replaceByID(st.Services, id, serviceID, updated) }, nil
	})
	return updated, err
}

func (s *DashboardStore) DeleteService(ctx context.Context, id int64) error {
	return s.act(ctx, "delete_service", "Failed to delete service", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		if _, err := s.api.DeleteService(ctx, id); err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Services = removeByID(st.Services, id, serviceID) }, nil
	})
}

// ToggleServiceStatus flips Active of the matching service after the server
// confirms. It does not raise the loading flag.
func (s *DashboardStore) ToggleServiceStatus(ctx context.Context, id int64) error {
	return s.act(ctx, "toggle_service", "Failed to toggle service status", nil, func(ctx context.Context) (func(*DashboardState), error) {
		if _, err := s.api.ToggleServiceStatus(ctx, id); err != nil {
			return nil, err
		}
		return func(st *DashboardState) {
			st.Services = mapItems(st.Services, func(v models.Service) models.Service {
				if v.ID == id {
					v.Active = !v.Active
				}
				return v
			})
		}, nil
	})
}

func (s *DashboardStore) FetchBookings(ctx context.Context) error {
	return s.act(ctx, "fetch_bookings", "Failed to fetch bookings", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		list, err := decodeList[models.Booking](s.api.GetBookings(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.Bookings = list }, nil
	})
}

func (s *DashboardStore) FetchUpcomingBookings(ctx context.Context) error {
	return s.act(ctx, "fetch_upcoming_bookings", "Failed to fetch upcoming bookings", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		list, err := decodeList[models.Booking](s.api.GetUpcomingBookings(ctx))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) { st.UpcomingBookings = list }, nil
	})
}

// UpdateBookingStatus replaces the booking in both lists; completed and
// cancelled bookings drop out of the upcoming list.
func (s *DashboardStore) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus, reason string) (models.Booking, error) {
	var updated models.Booking
	err := s.act(ctx, "update_booking_status", "Failed to update booking status", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		var err error
		updated, err = decode[models.Booking](s.api.UpdateBookingStatus(ctx, id, models.BookingStatusUpdate{
			Status:             status,
			CancellationReason: reason,
		}))
		if err != nil {
			return nil, err
		}
		return func(st *DashboardState) {
			st.Bookings = replaceByID(st.Bookings, id, bookingID, updated)
			st.UpcomingBookings = filterItems(
				replaceByID(st.UpcomingBookings, id, bookingID, updated),
				func(b models.Booking) bool { return !b.Status.Terminal() },
			)
		}, nil
	})
	return updated, err
}

// FetchDashboardData loads stats, profile, services and both booking lists
// concurrently. Any failure fails the whole action and keeps prior data.
func (s *DashboardStore) FetchDashboardData(ctx context.Context) error {
	return s.act(ctx, "fetch_dashboard", "Failed to fetch dashboard data", dashLoading, func(ctx context.Context) (func(*DashboardState), error) {
		var (
			stats    models.DashboardStats
			profile  models.ProviderProfile
			services []models.Service
			bookings []models.Booking
			upcoming []models.Booking
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			stats, err = decode[models.DashboardStats](s.api.GetStats(gctx))
			return err
		})
		g.Go(func() (err error) {
			profile, err = decode[models.ProviderProfile](s.api.GetProfile(gctx))
			return err
		})
		g.Go(func() (err error) {
			services, err = decodeList[models.Service](s.api.GetServices(gctx))
			return err
		})
		g.Go(func() (err error) {
			bookings, err = decodeList[models.Booking](s.api.GetBookings(gctx))
			return err
		})
		g.Go(func() (err error) {
			upcoming, err = decodeList[models.Booking](s.api.GetUpcomingBookings(gctx))
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return func(st *DashboardState) {
			st.Stats = &stats
			st.Profile = &profile
			st.Services = services
			st.Bookings = bookings
			st.UpcomingBookings = upcoming
		}, nil
	})
}

// ClearData restores the initial state.
func (s *DashboardStore) ClearData() {
	s.update(func(st *DashboardState) { *st = initialDashboard() })
}
