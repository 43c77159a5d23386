// Package session persists the authenticated session between runs. Both the
// HTTP adapter and the auth store read and write it; the last writer wins.
package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

// Session is the persisted auth blob.
type Session struct {
	AccessToken     string       `json:"accessToken,omitempty"`
	RefreshToken    string       `json:"refreshToken,omitempty"`
	User            *models.User `json:"user,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Empty reports whether s carries no credentials.
func (s Session) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}

// Store loads, saves and clears the session. Load on an empty store returns
// a zero Session and no error.
type Store interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

var ErrCorrupt = errors.New("stored session is corrupt")

// envelope is the on-disk layout: the session sits under "state".
type envelope struct {
	State Session `json:"state"`
}

func encode(s Session) ([]byte, error) {
	return json.Marshal(envelope{State: s})
}

func decode(b []byte) (Session, error) {
	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Session{}, errors.Join(ErrCorrupt, err)
	}
	return e.State, nil
}
