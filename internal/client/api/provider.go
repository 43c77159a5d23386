package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

// ProviderAPI covers the provider dashboard endpoints.
type ProviderAPI struct {
	c client.Doer
}

func NewProviderAPI(c client.Doer) *ProviderAPI {
	return &ProviderAPI{c: c}
}

func (a *ProviderAPI) GetProfile(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/provider/profile"})
}

func (a *ProviderAPI) UpdateProfile(ctx context.Context, p models.ProviderProfileUpdate) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPut, Path: "/provider/profile", Body: p})
}

func (a *ProviderAPI) UpdateAvailability(ctx context.Context, available bool) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{
		Method: http.MethodPatch,
		Path:   "/provider/availability",
		Body:   map[string]bool{"available": available},
	})
}

func (a *ProviderAPI) GetServices(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/provider/services"})
}

func (a *ProviderAPI) CreateService(ctx context.Context, s models.ServiceInput) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/provider/services", Body: s})
}

func (a *ProviderAPI) UpdateService(ctx context.Context, id int64, s models.ServiceInput) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPut, Path: idPath("/provider/services/%d", id), Body: s})
}

func (a *ProviderAPI) DeleteService(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodDelete, Path: idPath("/provider/services/%d", id)})
}

func (a *ProviderAPI) ToggleServiceStatus(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPatch, Path: idPath("/provider/services/%d/toggle", id)})
}

func (a *ProviderAPI) GetBookings(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/provider/bookings"})
}

func (a *ProviderAPI) GetUpcomingBookings(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/provider/bookings/upcoming"})
}

func (a *ProviderAPI) UpdateBookingStatus(ctx context.Context, id int64, u models.BookingStatusUpdate) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{
		Method: http.MethodPatch,
		Path:   idPath("/provider/bookings/%d/status", id),
		Body:   u,
	})
}

func (a *ProviderAPI) GetStats(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/provider/stats"})
}
