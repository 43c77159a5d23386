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

func newAdmin(routes map[string]route) (*AdminStore, *fakeDoer) {
	f := newFake(routes)
	return NewAdminStore(api.NewAdminAPI(f), logging.Nop()), f
}

func TestAdminStore_FetchUsersPagination(t *testing.T) {
	s, f := newAdmin(map[string]route{
		"GET /admin/users": ok(`{"content":[{"id":1,"role":"CUSTOMER"},{"id":2,"role":"CUSTOMER"}],"number":1,"totalPages":5,"totalElements":42}`),
	})

	require.NoError(t, s.FetchUsers(context.Background(), models.UserQuery{Page: 1, Size: 10, Role: models.RoleCustomer}))

	st := s.State()
	assert.Equal(t, models.Pagination{Page: 1, TotalPages: 5, TotalElements: 42}, st.UsersPagination)
	assert.Len(t, st.Users, 2)
	assert.False(t, st.IsLoadingUsers)
	assert.Equal(t, url.Values{"role": {"CUSTOMER"}, "page": {"1"}, "size": {"10"}}, f.last().Query)
}

func TestAdminStore_FilterResetsPage(t *testing.T) {
	s, f := newAdmin(map[string]route{
		"GET /admin/users": ok(`{"content":[],"number":0,"totalPages":0,"totalElements":0}`),
	})
	ctx := context.Background()

	require.NoError(t, s.FetchUsers(ctx, models.UserQuery{Page: 3, Size: 5}))
	require.NoError(t, s.FilterUsers(ctx, models.UserQuery{Page: 3, Status: models.AccountSuspended}))

	assert.Equal(t, url.Values{"status": {"SUSPENDED"}, "page": {"0"}, "size": {"5"}}, f.last().Query)
	assert.Equal(t, models.UserQuery{Size: 5, Status: models.AccountSuspended}, s.State().UsersQuery)
	assert.NotNil(t, s.State().Users)
}

func TestAdminStore_GoToPageKeepsFilters(t *testing.T) {
	verified := true
	s, f := newAdmin(map[string]route{
		"GET /admin/providers": ok(`{"content":[{"id":4}],"number":2,"totalPages":3,"totalElements":21}`),
	})
	ctx := context.Background()

	require.NoError(t, s.FilterProviders(ctx, models.ProviderQuery{Search: "ravi", Verified: &verified}))
	require.NoError(t, s.GoToProvidersPage(ctx, 2))

	assert.Equal(t, url.Values{
		"search":   {"ravi"},
		"verified": {"true"},
		"page":     {"2"},
		"size":     {"20"},
	}, f.last().Query)
	assert.Equal(t, models.Pagination{Page: 2, TotalPages: 3, TotalElements: 21}, s.State().ProvidersPagination)
}

func TestAdminStore_FetchFailureKeepsPage(t *testing.T) {
	s, f := newAdmin(map[string]route{
		"GET /admin/bookings": ok(`{"content":[{"id":1,"status":"PENDING"}],"number":0,"totalPages":1,"totalElements":1}`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchBookings(ctx, models.BookingQuery{}))

	f.set("GET /admin/bookings", fail(http.StatusForbidden, "Access denied"))
	require.Error(t, s.GoToBookingsPage(ctx, 1))

	st := s.State()
	assert.Len(t, st.Bookings, 1)
	assert.Equal(t, models.Pagination{TotalPages: 1, TotalElements: 1}, st.BookingsPagination)
	assert.Equal(t, 1, st.BookingsQuery.Page)
	assert.Equal(t, "Access denied", st.Error)
	assert.False(t, st.IsLoadingBookings)
}

func TestAdminStore_BookingStatusIsUpperCased(t *testing.T) {
	s, f := newAdmin(map[string]route{
		"GET /admin/bookings":            ok(`{"content":[{"id":8,"status":"PENDING"}],"number":0,"totalPages":1,"totalElements":1}`),
		"PATCH /admin/bookings/8/status": ok(`{"id":8,"status":"CONFIRMED"}`),
	})
	ctx := context.Background()

	require.NoError(t, s.FetchBookings(ctx, models.BookingQuery{Status: models.StatusPending}))
	assert.Equal(t, "PENDING", f.last().Query.Get("status"))

	updated, err := s.UpdateBookingStatus(ctx, 8, models.StatusConfirmed, "called ahead")
	require.NoError(t, err)
	assert.Equal(t, models.AdminBookingStatusUpdate{Status: "CONFIRMED", Notes: "called ahead"}, f.last().Body)
	assert.True(t, updated.Status.Is(models.StatusConfirmed))

	st := s.State()
	assert.Equal(t, models.BookingStatus("CONFIRMED"), st.Bookings[0].Status)
	require.NotNil(t, st.SelectedBooking)
	assert.Equal(t, int64(8), st.SelectedBooking.ID)
}

func TestAdminStore_UserManagement(t *testing.T) {
	s, f := newAdmin(map[string]route{
		"GET /admin/users":            ok(`{"content":[{"id":1,"status":"ACTIVE"},{"id":2,"status":"ACTIVE"}],"number":0,"totalPages":1,"totalElements":2}`),
		"GET /admin/users/2":          ok(`{"id":2,"status":"ACTIVE","email":"b@c.com"}`),
		"PATCH /admin/users/2/status": ok(`{"id":2,"status":"SUSPENDED"}`),
		"DELETE /admin/users/1":       ok(`null`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchUsers(ctx, models.UserQuery{}))

	require.NoError(t, s.FetchUserByID(ctx, 2))
	assert.Equal(t, "b@c.com", s.State().SelectedUser.Email)

	_, err := s.UpdateUserStatus(ctx, 2, models.AccountSuspended, "spam")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusUpdate{Status: models.AccountSuspended, Reason: "spam"}, f.last().Body)

	st := s.State()
	assert.Equal(t, models.AccountSuspended, st.Users[1].Status)
	assert.Equal(t, models.AccountSuspended, st.SelectedUser.Status)

	require.NoError(t, s.DeleteUser(ctx, 1))
	st = s.State()
	require.Len(t, st.Users, 1)
	assert.Equal(t, int64(2), st.Users[0].ID)

	s.ClearSelectedUser()
	assert.Nil(t, s.State().SelectedUser)
}

func TestAdminStore_ProviderManagement(t *testing.T) {
	s, f := newAdmin(map[string]route{
		"GET /admin/providers":            ok(`{"content":[{"id":5,"isVerified":false,"status":"PENDING_VERIFICATION"}],"number":0,"totalPages":1,"totalElements":1}`),
		"PATCH /admin/providers/5/verify": ok(`{"id":5,"isVerified":true,"status":"ACTIVE"}`),
		"PATCH /admin/providers/5/status": ok(`{"id":5,"isVerified":true,"status":"INACTIVE"}`),
	})
	ctx := context.Background()
	require.NoError(t, s.FetchProviders(ctx, models.ProviderQuery{}))

	_, err := s.VerifyProvider(ctx, 5, true, "documents ok")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderVerification{Verified: true, Notes: "documents ok"}, f.last().Body)
	assert.True(t, s.State().Providers[0].IsVerified)

	_, err = s.UpdateProviderStatus(ctx, 5, models.AccountInactive, "")
	require.NoError(t, err)

	st := s.State()
	assert.Equal(t, models.AccountInactive, st.Providers[0].Status)
	require.NotNil(t, st.SelectedProvider)
	assert.Equal(t, models.AccountInactive, st.SelectedProvider.Status)

	s.ClearSelectedProvider()
	assert.Nil(t, s.State().SelectedProvider)
}

func TestAdminStore_DashboardStats(t *testing.T) {
	s, _ := newAdmin(map[string]route{
		"GET /admin/dashboard": ok(`{"totalUsers":10,"totalProviders":3}`),
	})

	require.NoError(t, s.FetchDashboardStats(context.Background()))
	require.NotNil(t, s.State().DashboardStats)
	assert.False(t, s.State().IsLoading)
}

func TestAdminStore_ClearData(t *testing.T) {
	s, _ := newAdmin(map[string]route{
		"GET /admin/users": ok(`{"content":[{"id":1}],"number":0,"totalPages":1,"totalElements":1}`),
	})
	require.NoError(t, s.FetchUsers(context.Background(), models.UserQuery{Size: 10}))

	s.ClearData()
	first := s.State()
	s.ClearData()

	assert.Equal(t, initialAdmin(), first)
	assert.Equal(t, first, s.State())
}
