package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

type AuthAPI struct {
	c client.Doer
}

func NewAuthAPI(c client.Doer) *AuthAPI {
	return &AuthAPI{c: c}
}

func (a *AuthAPI) Login(ctx context.Context, creds models.Credentials) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/auth/login", Body: creds})
}

// Signup registers a service provider.
func (a *AuthAPI) Signup(ctx context.Context, req models.SignupRequest) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/auth/signup", Body: req})
}

func (a *AuthAPI) SignupCustomer(ctx context.Context, req models.CustomerSignupRequest) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodPost, Path: "/auth/signup/customer", Body: req})
}

func (a *AuthAPI) Logout(ctx context.Context, email string) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Body:   map[string]string{"email": email},
	})
}

func (a *AuthAPI) RefreshToken(ctx context.Context, refreshToken string) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Body:   map[string]string{"refreshToken": refreshToken},
	})
}

// VerifyToken returns the user the current access token belongs to.
func (a *AuthAPI) VerifyToken(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/auth/me"})
}
