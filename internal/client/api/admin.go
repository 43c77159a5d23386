package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

const defaultAdminPageSize = 20

type AdminAPI struct {
	c client.Doer
}

func NewAdminAPI(c client.Doer) *AdminAPI {
	return &AdminAPI{c: c}
}

func (a *AdminAPI) GetDashboardStats(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/admin/dashboard"})
}

func (a *AdminAPI) GetUsers(ctx context.Context, uq models.UserQuery) (*client.Response, error) {
	q := query{}.
		str("search", uq.Search).
		str("role", string(uq.Role)).
		str("status", string(uq.Status)).
		page(uq.Page, uq.Size, defaultAdminPageSize)
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/admin/users", Query: q.values()})
}

func (a *AdminAPI) GetUserByID(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: idPath("/admin/users/%d", id)})
}

func (a *AdminAPI) UpdateUserStatus(ctx context.Context, id int64, u models.UserStatusUpdate) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPatch, Path: idPath("/admin/users/%d/status", id), Body: u})
}

func (a *AdminAPI) DeleteUser(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodDelete, Path: idPath("/admin/users/%d", id)})
}

func (a *AdminAPI) GetProviders(ctx context.Context, pq models.ProviderQuery) (*client.Response, error) {
	q := query{}.
		str("search", pq.Search).
		str("status", string(pq.Status)).
		boolean("verified", pq.Verified).
		page(pq.Page, pq.Size, defaultAdminPageSize)
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/admin/providers", Query: q.values()})
}

func (a *AdminAPI) GetProviderByID(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: idPath("/admin/providers/%d", id)})
}

func (a *AdminAPI) VerifyProvider(ctx context.Context, id int64, v models.ProviderVerification) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPatch, Path: idPath("/admin/providers/%d/verify", id), Body: v})
}

func (a *AdminAPI) UpdateProviderStatus(ctx context.Context, id int64, u models.UserStatusUpdate) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPatch, Path: idPath("/admin/providers/%d/status", id), Body: u})
}

func (a *AdminAPI) GetBookings(ctx context.Context, bq models.BookingQuery) (*client.Response, error) {
	q := query{}.
		str("search", bq.Search).
		str("status", string(bq.Status.Upper())).
		page(bq.Page, bq.Size, defaultAdminPageSize)
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/admin/bookings", Query: q.values()})
}

func (a *AdminAPI) GetBookingByID(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: idPath("/admin/bookings/%d", id)})
}

func (a *AdminAPI) UpdateBookingStatus(ctx context.Context, id int64, u models.AdminBookingStatusUpdate) (*client.Response, error) {
	u.Status = u.Status.Upper()
	return a.c.Do(ctx, &client.Request{Method: http.MethodPatch, Path: idPath("/admin/bookings/%d/status", id), Body: u})
}
