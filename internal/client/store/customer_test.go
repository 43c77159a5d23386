package store

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

func newCustomer(routes map[string]route) (*CustomerStore, *fakeDoer) {
	f := newFake(routes)
	return NewCustomerStore(api.NewCustomerAPI(f), api.NewPublicAPI(f), logging.Nop()), f
}

func bookingIDs(list []models.CustomerBooking) []int64 {
	ids := []int64{}
	for _, b := range list {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestCustomerStore_LoadingFlags(t *testing.T) {
	tests := []struct {
		name  string
		route string
		run   func(*CustomerStore) error
		flag  func(CustomerState) bool
	}{
		{
			name:  "profile",
			route: "GET /customer/profile",
			run:   func(s *CustomerStore) error { return s.FetchProfile(context.Background()) },
			flag:  func(st CustomerState) bool { return st.IsLoadingProfile },
		},
		{
			name:  "bookings",
			route: "GET /customer/bookings",
			run:   func(s *CustomerStore) error { return s.FetchBookings(context.Background()) },
			flag:  func(st CustomerState) bool { return st.IsLoadingBookings },
		},
		{
			name:  "providers",
			route: "GET /public/providers",
			run:   func(s *CustomerStore) error { return s.SearchProviders(context.Background(), models.ProviderSearch{}) },
			flag:  func(st CustomerState) bool { return st.IsLoadingProviders },
		},
		{
			name:  "addresses",
			route: "GET /customer/addresses",
			run:   func(s *CustomerStore) error { return s.FetchSavedAddresses(context.Background()) },
			flag:  func(st CustomerState) bool { return st.IsLoading },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newCustomer(map[string]route{tt.route: fail(http.StatusInternalServerError, "")})

			var raised bool
			f.during = func() { raised = tt.flag(s.State()) }

			require.Error(t, tt.run(s))
			assert.True(t, raised)

			st := s.State()
			assert.False(t, tt.flag(st))
			assert.NotEmpty(t, st.Error)
		})
	}
}

func TestCustomerStore_CreateBooking(t *testing.T) {
	s, f := newCustomer(map[string]route{
		"GET /customer/bookings":          ok(`[{"id":1,"status":"COMPLETED"}]`),
		"GET /customer/bookings/upcoming": ok(`[]`),
		"POST /customer/bookings":         ok(`{"id":7,"status":"PENDING","serviceName":"Deep clean"}`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchBookings(ctx))
	require.NoError(t, s.FetchUpcomingBookings(ctx))

	req := models.CreateBookingRequest{ProviderID: 3, ServiceID: 4, BookingDate: "2026-11-02", BookingTime: "10:00"}
	created, err := s.CreateBooking(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, req, f.last().Body)
	assert.True(t, created.Status.Is(models.StatusPending))

	st := s.State()
	assert.Equal(t, []int64{7, 1}, bookingIDs(st.Bookings))
	assert.Equal(t, []int64{7}, bookingIDs(st.UpcomingBookings))
	assert.False(t, st.IsLoading)
}

func TestCustomerStore_CancelBooking(t *testing.T) {
	s, f := newCustomer(map[string]route{
		"GET /customer/bookings":           ok(`[{"id":1,"status":"CONFIRMED"},{"id":2,"status":"PENDING"}]`),
		"GET /customer/bookings/upcoming":  ok(`[{"id":1,"status":"CONFIRMED"},{"id":2,"status":"PENDING"}]`),
		"GET /customer/bookings/past":      ok(`[{"id":0,"status":"COMPLETED"}]`),
		"POST /customer/bookings/2/cancel": ok(`{"id":2,"status":"CANCELLED","cancellationReason":"Plans changed"}`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchBookings(ctx))
	require.NoError(t, s.FetchUpcomingBookings(ctx))
	require.NoError(t, s.FetchPastBookings(ctx))

	_, err := s.CancelBooking(ctx, 2, "Plans changed")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"reason": "Plans changed"}, f.last().Body)

	st := s.State()
	assert.Equal(t, []int64{1, 2}, bookingIDs(st.Bookings))
	assert.True(t, st.Bookings[1].Status.Is(models.StatusCancelled))
	assert.Equal(t, []int64{1}, bookingIDs(st.UpcomingBookings))
	assert.Equal(t, []int64{2, 0}, bookingIDs(st.PastBookings))
}

func TestCustomerStore_CancelBookingWithoutReason(t *testing.T) {
	s, f := newCustomer(map[string]route{
		"POST /customer/bookings/5/cancel": ok(`{"id":5,"status":"CANCELLED"}`),
	})

	_, err := s.CancelBooking(context.Background(), 5, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, f.last().Body)
}

func TestCustomerStore_CreateReviewMarksBooking(t *testing.T) {
	s, _ := newCustomer(map[string]route{
		"GET /customer/bookings":      ok(`[{"id":1,"status":"COMPLETED"},{"id":2,"status":"COMPLETED"}]`),
		"GET /customer/bookings/past": ok(`[{"id":1,"status":"COMPLETED"},{"id":2,"status":"COMPLETED"}]`),
		"GET /customer/reviews":       ok(`[{"id":10,"bookingId":2,"rating":3}]`),
		"POST /customer/reviews":      ok(`{"id":11,"bookingId":1,"rating":5,"comment":"Great"}`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchBookings(ctx))
	require.NoError(t, s.FetchPastBookings(ctx))
	require.NoError(t, s.FetchMyReviews(ctx))

	review, err := s.CreateReview(ctx, models.ReviewInput{BookingID: 1, Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), review.ID)

	st := s.State()
	require.Len(t, st.MyReviews, 2)
	assert.Equal(t, int64(11), st.MyReviews[0].ID)

	for _, list := range [][]models.CustomerBooking{st.Bookings, st.PastBookings} {
		assert.True(t, list[0].HasReview)
		require.NotNil(t, list[0].ReviewRating)
		assert.Equal(t, 5, *list[0].ReviewRating)
		assert.False(t, list[1].HasReview)
		assert.Nil(t, list[1].ReviewRating)
	}
}

func TestCustomerStore_SavedAddresses(t *testing.T) {
	s, _ := newCustomer(map[string]route{
		"GET /customer/addresses":             ok(`[{"id":1,"address":"1 Main St","isDefault":true},{"id":2,"address":"2 Side Rd"}]`),
		"POST /customer/addresses":            ok(`{"id":3,"address":"3 Hill Ln"}`),
		"PUT /customer/addresses/2":           ok(`{"id":2,"address":"2 Side Road","label":"Work"}`),
		"PATCH /customer/addresses/3/default": ok(`null`),
		"DELETE /customer/addresses/1":        ok(`null`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchSavedAddresses(ctx))

	_, err := s.AddSavedAddress(ctx, models.AddressInput{Address: "3 Hill Ln"})
	require.NoError(t, err)
	_, err = s.UpdateSavedAddress(ctx, 2, models.AddressInput{Address: "2 Side Road", Label: "Work"})
	require.NoError(t, err)
	require.NoError(t, s.SetDefaultAddress(ctx, 3))

	st := s.State()
	require.Len(t, st.SavedAddresses, 3)
	assert.Equal(t, "Work", st.SavedAddresses[1].Label)
	var defaults []int64
	for _, a := range st.SavedAddresses {
		if a.IsDefault {
			defaults = append(defaults, a.ID)
		}
	}
	assert.Equal(t, []int64{3}, defaults)

	require.NoError(t, s.DeleteSavedAddress(ctx, 1))
	st = s.State()
	require.Len(t, st.SavedAddresses, 2)
	assert.Equal(t, int64(2), st.SavedAddresses[0].ID)
}

func TestCustomerStore_ProviderBrowsing(t *testing.T) {
	s, f := newCustomer(map[string]route{
		"GET /public/categories":          ok(`[{"value":"PLUMBING","displayName":"Plumbing","providerCount":4}]`),
		"GET /public/providers":           ok(`[{"id":3,"name":"Ravi","averageRating":4.5}]`),
		"GET /public/providers/3":         ok(`{"id":3,"name":"Ravi"}`),
		"GET /public/providers/3/reviews": ok(`[{"id":1,"rating":5}]`),
	})
	ctx := context.Background()

	require.NoError(t, s.FetchCategories(ctx))
	require.NoError(t, s.SearchProviders(ctx, models.ProviderSearch{Category: "PLUMBING", City: "Pune"}))
	assert.Equal(t, url.Values{
		"category": {"PLUMBING"},
		"city":     {"Pune"},
		"sortBy":   {"rating"},
		"page":     {"0"},
		"size":     {"10"},
	}, f.last().Query)

	require.NoError(t, s.FetchProviderDetails(ctx, 3))
	require.NoError(t, s.FetchProviderReviews(ctx, 3, 0, 0))

	st := s.State()
	require.Len(t, st.Categories, 1)
	require.Len(t, st.Providers, 1)
	require.NotNil(t, st.SelectedProvider)
	assert.Equal(t, "Ravi", st.SelectedProvider.Name)
	assert.Len(t, st.ProviderReviews, 1)

	s.ClearSelectedProvider()
	st = s.State()
	assert.Nil(t, st.SelectedProvider)
	assert.Empty(t, st.ProviderReviews)
	assert.Len(t, st.Providers, 1)
}

func TestCustomerStore_FetchBooking(t *testing.T) {
	s, _ := newCustomer(map[string]route{
		"GET /customer/bookings/4": ok(`{"id":4,"status":"CONFIRMED","providerName":"Ravi"}`),
	})

	require.NoError(t, s.FetchBooking(context.Background(), 4))
	st := s.State()
	require.NotNil(t, st.SelectedBooking)
	assert.Equal(t, "Ravi", st.SelectedBooking.ProviderName)
	assert.False(t, st.IsLoadingBookings)
}

func TestCustomerStore_ClearData(t *testing.T) {
	s, _ := newCustomer(map[string]route{
		"GET /customer/profile":  ok(`{"id":1,"fullName":"Asha"}`),
		"GET /customer/bookings": ok(`[{"id":1}]`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchProfile(ctx))
	require.NoError(t, s.FetchBookings(ctx))

	s.ClearData()
	first := s.State()
	s.ClearData()

	assert.Equal(t, initialCustomer(), first)
	assert.Equal(t, first, s.State())
}
