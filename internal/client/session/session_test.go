package session

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/quickserve/internal/client/localdb"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/quickserve/internal/common"
)

func sample() Session {
	return Session{
		AccessToken:     "t1",
		RefreshToken:    "r1",
		User:            &models.User{ID: 1, Email: "a@b.com", Role: models.RoleCustomer},
		IsAuthenticated: true,
	}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := localdb.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMemoryStore_RoundTripAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	s, err := m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, s.Empty())

	require.NoError(t, m.Save(ctx, sample()))
	assert.JSONEq(t,
		`{"state":{"accessToken":"t1","refreshToken":"r1","isAuthenticated":true,"user":{"id":1,"email":"a@b.com","role":"CUSTOMER"}}}`,
		string(m.Raw()))

	got, err := m.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	require.NoError(t, m.Clear(ctx))
	assert.Nil(t, m.Raw())
}

func TestSQLiteStore_Plain(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	st := NewSQLiteStore(db)

	require.NoError(t, st.Save(ctx, sample()))

	raw, err := metadata.NewSQLiteRepository(db).Get(ctx, common.SessionStorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"accessToken":"t1"`)

	got, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	require.NoError(t, st.Clear(ctx))
	got, err = st.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestSQLiteStore_Sealed(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	st := NewSQLiteStore(db, WithPassphrase("hunter2"))
	require.True(t, st.Sealed())

	require.NoError(t, st.Save(ctx, sample()))

	repo := metadata.NewSQLiteRepository(db)
	raw, err := repo.Get(ctx, common.SessionStorageKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "t1")

	salt, err := repo.Get(ctx, common.SessionStorageKey+saltSuffix)
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	// a second store with the same passphrase reads it back
	got, err := NewSQLiteStore(db, WithPassphrase("hunter2")).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)

	_, err = NewSQLiteStore(db, WithPassphrase("wrong")).Load(ctx)
	require.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, st.Clear(ctx))
	salt, err = repo.Get(ctx, common.SessionStorageKey+saltSuffix)
	require.NoError(t, err)
	assert.Nil(t, salt)
}

func TestSQLiteStore_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, metadata.NewSQLiteRepository(db).Put(ctx, common.SessionStorageKey, []byte("{not json")))

	_, err := NewSQLiteStore(db).Load(ctx)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "a@b.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	c, err := ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", c.Subject)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(exp.Add(time.Second)))

	_, err = ParseClaims("not-a-jwt")
	require.Error(t, err)
}
