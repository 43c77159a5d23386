package store

import (
	"context"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

type AuthState struct {
	User            *models.User
	AccessToken     string
	RefreshToken    string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// AuthStore holds the signed-in user and mirrors the persisted session.
type AuthStore struct {
	base[AuthState]
	api      *api.AuthAPI
	sessions session.Store
}

func NewAuthStore(ctx context.Context, a *api.AuthAPI, sessions session.Store, log logging.Logger) *AuthStore {
	s := &AuthStore{api: a, sessions: sessions}
	s.name = "auth"
	s.log = log
	s.errOf = func(st *AuthState) *string { return &st.Error }

	if err := s.Hydrate(ctx); err != nil {
		log.Warn(ctx, "cannot restore session", "error", err)
	}
	return s
}

func (s *AuthStore) State() AuthState {
	return s.snapshot()
}

// Hydrate replaces the in-memory session with the persisted one. The HTTP
// adapter calls it after a silent refresh.
func (s *AuthStore) Hydrate(ctx context.Context) error {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return err
	}
	s.update(func(st *AuthState) {
		st.User = sess.User
		st.AccessToken = sess.AccessToken
		st.RefreshToken = sess.RefreshToken
		st.IsAuthenticated = sess.IsAuthenticated
	})
	return nil
}

func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	return s.authenticate(ctx, "login", "Login failed. Please try again.", func(ctx context.Context) (models.AuthPayload, error) {
		return decode[models.AuthPayload](s.api.Login(ctx, models.Credentials{Email: email, Password: password}))
	})
}

// Signup registers a service provider and signs them in.
func (s *AuthStore) Signup(ctx context.Context, req models.SignupRequest) error {
	return s.authenticate(ctx, "signup", "Signup failed. Please try again.", func(ctx context.Context) (models.AuthPayload, error) {
		return decode[models.AuthPayload](s.api.Signup(ctx, req))
	})
}

func (s *AuthStore) SignupCustomer(ctx context.Context, req models.CustomerSignupRequest) error {
	return s.authenticate(ctx, "signup_customer", "Signup failed. Please try again.", func(ctx context.Context) (models.AuthPayload, error) {
		return decode[models.AuthPayload](s.api.SignupCustomer(ctx, req))
	})
}

func (s *AuthStore) authenticate(ctx context.Context, action, fallback string, call func(context.Context) (models.AuthPayload, error)) error {
	return s.act(ctx, action, fallback, authLoading, func(ctx context.Context) (func(*AuthState), error) {
		p, err := call(ctx)
		if err != nil {
			return nil, err
		}

		sess := session.Session{
			AccessToken:     p.AccessToken,
			RefreshToken:    p.RefreshToken,
			User:            p.User,
			IsAuthenticated: true,
		}
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, err
		}

		return func(st *AuthState) {
			st.User = p.User
			st.AccessToken = p.AccessToken
			st.RefreshToken = p.RefreshToken
			st.IsAuthenticated = true
		}, nil
	})
}

// Logout tells the server (best effort) and forgets the session locally.
func (s *AuthStore) Logout(ctx context.Context) {
	if u := s.State().User; u != nil && u.Email != "" {
		if _, err := s.api.Logout(ctx, u.Email); err != nil {
			s.log.Debug(ctx, "logout request failed", "error", err)
		}
	}
	s.forget(ctx)
}

// SessionExpired drops the in-memory session after the adapter has already
// cleared the persisted one.
func (s *AuthStore) SessionExpired(ctx context.Context) {
	s.log.Info(ctx, "session expired")
	s.update(resetSession)
}

func (s *AuthStore) forget(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		s.log.Warn(ctx, "cannot clear persisted session", "error", err)
	}
	s.update(resetSession)
}

func resetSession(st *AuthState) {
	st.User = nil
	st.AccessToken = ""
	st.RefreshToken = ""
	st.IsAuthenticated = false
	st.Error = ""
}

// RefreshAccessToken exchanges the refresh token explicitly. Any failure,
// including a missing refresh token, logs the user out.
func (s *AuthStore) RefreshAccessToken(ctx context.Context) bool {
	st := s.State()
	if st.RefreshToken == "" {
		s.Logout(ctx)
		return false
	}

	p, err := decode[models.AuthPayload](s.api.RefreshToken(ctx, st.RefreshToken))
	if err == nil {
		user := p.User
		if user == nil {
			user = st.User
		}
		err = s.sessions.Save(ctx, session.Session{
			AccessToken:     p.AccessToken,
			RefreshToken:    p.RefreshToken,
			User:            user,
			IsAuthenticated: true,
		})
		if err == nil {
			s.update(func(st *AuthState) {
				st.AccessToken = p.AccessToken
				st.RefreshToken = p.RefreshToken
				st.User = user
			})
			return true
		}
	}

	s.log.Debug(ctx, "refresh failed", "error", err)
	s.Logout(ctx)
	return false
}

// VerifyToken asks the server who the current token belongs to and stores
// the answer.
func (s *AuthStore) VerifyToken(ctx context.Context) error {
	return s.act(ctx, "verify_token", "Session verification failed", authLoading, func(ctx context.Context) (func(*AuthState), error) {
		u, err := decode[models.User](s.api.VerifyToken(ctx))
		if err != nil {
			return nil, err
		}
		if err := s.persistUser(ctx, &u); err != nil {
			return nil, err
		}
		return func(st *AuthState) { st.User = &u }, nil
	})
}

// UpdateUser merges the non-zero fields of patch into the current user
// without contacting the server.
func (s *AuthStore) UpdateUser(ctx context.Context, patch models.User) error {
	var merged models.User
	s.update(func(st *AuthState) {
		if st.User != nil {
			merged = *st.User
		}
		mergeUser(&merged, patch)
		st.User = &merged
	})
	return s.persistUser(ctx, &merged)
}

func (s *AuthStore) persistUser(ctx context.Context, u *models.User) error {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return err
	}
	if sess.Empty() {
		return nil
	}
	sess.User = u
	return s.sessions.Save(ctx, sess)
}

func mergeUser(dst *models.User, patch models.User) {
	if patch.ID != 0 {
		dst.ID = patch.ID
	}
	if patch.FullName != "" {
		dst.FullName = patch.FullName
	}
	if patch.Email != "" {
		dst.Email = patch.Email
	}
	if patch.Phone != "" {
		dst.Phone = patch.Phone
	}
	if patch.Role != "" {
		dst.Role = patch.Role
	}
	if patch.ProfilePhotoURL != "" {
		dst.ProfilePhotoURL = patch.ProfilePhotoURL
	}
	if patch.ProviderID != nil {
		dst.ProviderID = patch.ProviderID
	}
}

// ClearData resets memory to the signed-out state. The persisted session
// is left alone; Logout clears both.
func (s *AuthStore) ClearData() {
	s.update(func(st *AuthState) { *st = AuthState{} })
}

func authLoading(st *AuthState) *bool { return &st.IsLoading }
