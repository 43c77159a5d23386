package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

type CustomerAPI struct {
	c client.Doer
}

func NewCustomerAPI(c client.Doer) *CustomerAPI {
	return &CustomerAPI{c: c}
}

func (a *CustomerAPI) GetProfile(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/customer/profile"})
}

func (a *CustomerAPI) UpdateProfile(ctx context.Context, p models.CustomerProfileUpdate) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPut, Path: "/customer/profile", Body: p})
}

func (a *CustomerAPI) CreateBooking(ctx context.Context, b models.CreateBookingRequest) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/customer/bookings", Body: b})
}

func (a *CustomerAPI) GetBookings(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/customer/bookings"})
}

func (a *CustomerAPI) GetUpcomingBookings(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/customer/bookings/upcoming"})
}

func (a *CustomerAPI) GetPastBookings(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/customer/bookings/past"})
}

func (a *CustomerAPI) GetBooking(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: idPath("/customer/bookings/%d", id)})
}

// CancelBooking leaves the reason out when empty so the server applies its
// default.
func (a *CustomerAPI) CancelBooking(ctx context.Context, id int64, reason string) (*client.Response, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}
	return a.c.Do(ctx, &client.Request{
		Method: http.MethodPost,
		Path:   idPath("/customer/bookings/%d/cancel", id),
		Body:   body,
	})
}

func (a *CustomerAPI) CreateReview(ctx context.Context, r models.ReviewInput) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/customer/reviews", Body: r})
}

func (a *CustomerAPI) GetMyReviews(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/customer/reviews"})
}

func (a *CustomerAPI) GetSavedAddresses(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/customer/addresses"})
}

func (a *CustomerAPI) AddSavedAddress(ctx context.Context, in models.AddressInput) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/customer/addresses", Body: in})
}

func (a *CustomerAPI) UpdateSavedAddress(ctx context.Context, id int64, in models.AddressInput) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPut, Path: idPath("/customer/addresses/%d", id), Body: in})
}

func (a *CustomerAPI) DeleteSavedAddress(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodDelete, Path: idPath("/customer/addresses/%d", id)})
}

func (a *CustomerAPI) SetDefaultAddress(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPatch, Path: idPath("/customer/addresses/%d/default", id)})
}
