package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

const loginPayload = `{"accessToken":"t1","refreshToken":"r1","tokenType":"Bearer","user":{"id":1,"email":"a@b.com","role":"CUSTOMER"}}`

func newAuth(t *testing.T, routes map[string]route) (*AuthStore, *fakeDoer, *session.MemoryStore) {
	t.Helper()
	f := newFake(routes)
	sessions := session.NewMemoryStore()
	return NewAuthStore(context.Background(), api.NewAuthAPI(f), sessions, logging.Nop()), f, sessions
}

func TestAuthStore_Login(t *testing.T) {
	s, f, sessions := newAuth(t, map[string]route{"POST /auth/login": ok(loginPayload)})

	var loadingSeen bool
	f.during = func() { loadingSeen = s.State().IsLoading }

	require.NoError(t, s.Login(context.Background(), "a@b.com", "x"))

	assert.True(t, loadingSeen)
	assert.Equal(t, models.Credentials{Email: "a@b.com", Password: "x"}, f.last().Body)

	st := s.State()
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.User)
	assert.Equal(t, models.RoleCustomer, st.User.Role)
	assert.Equal(t, "t1", st.AccessToken)

	persisted, err := sessions.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t1", persisted.AccessToken)
	assert.Equal(t, "r1", persisted.RefreshToken)
	assert.True(t, persisted.IsAuthenticated)
}

func TestAuthStore_LoginFailure(t *testing.T) {
	tests := []struct {
		name    string
		route   route
		wantMsg string
	}{
		{name: "server message", route: fail(http.StatusUnauthorized, "Invalid email or password"), wantMsg: "Invalid email or password"},
		{name: "fallback", route: route{status: http.StatusInternalServerError, body: `{}`}, wantMsg: "Login failed. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, sessions := newAuth(t, map[string]route{"POST /auth/login": tt.route})

			err := s.Login(context.Background(), "a@b.com", "bad")
			require.Error(t, err)

			st := s.State()
			assert.Equal(t, tt.wantMsg, st.Error)
			assert.False(t, st.IsLoading)
			assert.False(t, st.IsAuthenticated)
			assert.Nil(t, sessions.Raw())
		})
	}
}

func TestAuthStore_HydratesOnConstruction(t *testing.T) {
	f := newFake(map[string]route{})
	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Save(context.Background(), session.Session{
		AccessToken: "t9", RefreshToken: "r9", IsAuthenticated: true,
		User: &models.User{ID: 4, Role: models.RoleAdmin},
	}))

	s := NewAuthStore(context.Background(), api.NewAuthAPI(f), sessions, logging.Nop())

	st := s.State()
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "t9", st.AccessToken)
	assert.Equal(t, models.RoleAdmin, st.User.Role)
}

func TestAuthStore_LogoutIgnoresServerFailure(t *testing.T) {
	s, f, sessions := newAuth(t, map[string]route{
		"POST /auth/login":  ok(loginPayload),
		"POST /auth/logout": fail(http.StatusInternalServerError, "boom"),
	})
	require.NoError(t, s.Login(context.Background(), "a@b.com", "x"))

	s.Logout(context.Background())

	assert.Equal(t, 1, f.called("POST /auth/logout"))
	assert.Equal(t, map[string]string{"email": "a@b.com"}, f.last().Body)
	assert.Equal(t, AuthState{}, s.State())
	assert.Nil(t, sessions.Raw())
}

func TestAuthStore_RefreshAccessToken(t *testing.T) {
	t.Run("no refresh token logs out", func(t *testing.T) {
		s, f, _ := newAuth(t, map[string]route{})

		assert.False(t, s.RefreshAccessToken(context.Background()))
		assert.Equal(t, 0, f.called("POST /auth/refresh"))
		assert.False(t, s.State().IsAuthenticated)
	})

	t.Run("success rotates tokens", func(t *testing.T) {
		s, f, sessions := newAuth(t, map[string]route{"POST /auth/login": ok(loginPayload)})
		require.NoError(t, s.Login(context.Background(), "a@b.com", "x"))
		f.set("POST /auth/refresh", ok(`{"accessToken":"t2","refreshToken":"r2"}`))

		require.True(t, s.RefreshAccessToken(context.Background()))

		st := s.State()
		assert.Equal(t, "t2", st.AccessToken)
		assert.Equal(t, "r2", st.RefreshToken)
		require.NotNil(t, st.User)
		assert.Equal(t, int64(1), st.User.ID)

		persisted, err := sessions.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "t2", persisted.AccessToken)
	})

	t.Run("failure logs out", func(t *testing.T) {
		s, f, sessions := newAuth(t, map[string]route{"POST /auth/login": ok(loginPayload)})
		require.NoError(t, s.Login(context.Background(), "a@b.com", "x"))
		f.set("POST /auth/refresh", fail(http.StatusUnauthorized, "expired"))

		assert.False(t, s.RefreshAccessToken(context.Background()))
		assert.False(t, s.State().IsAuthenticated)
		assert.Nil(t, sessions.Raw())
	})
}

func TestAuthStore_VerifyTokenAndUpdateUser(t *testing.T) {
	s, _, sessions := newAuth(t, map[string]route{
		"POST /auth/login": ok(loginPayload),
		"GET /auth/me":     ok(`{"id":1,"email":"a@b.com","fullName":"Asha","role":"CUSTOMER"}`),
	})
	ctx := context.Background()
	require.NoError(t, s.Login(ctx, "a@b.com", "x"))

	require.NoError(t, s.VerifyToken(ctx))
	assert.Equal(t, "Asha", s.State().User.FullName)

	require.NoError(t, s.UpdateUser(ctx, models.User{Phone: "555"}))
	u := s.State().User
	assert.Equal(t, "Asha", u.FullName)
	assert.Equal(t, "555", u.Phone)

	persisted, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "555", persisted.User.Phone)
	assert.Equal(t, "t1", persisted.AccessToken)
}

func TestAuthStore_SessionExpiredAndClearData(t *testing.T) {
	s, _, _ := newAuth(t, map[string]route{"POST /auth/login": ok(loginPayload)})
	require.NoError(t, s.Login(context.Background(), "a@b.com", "x"))

	s.SessionExpired(context.Background())
	assert.False(t, s.State().IsAuthenticated)
	assert.Nil(t, s.State().User)

	s.ClearData()
	first := s.State()
	s.ClearData()
	assert.Equal(t, first, s.State())
	assert.Equal(t, AuthState{}, first)
}
