package session

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/quickserve/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/quickserve/internal/common"
	"github.com/dmitrijs2005/quickserve/internal/cryptox"
	"github.com/dmitrijs2005/quickserve/internal/dbx"
)

const saltSuffix = ".salt"

// SQLiteStore keeps the session in the local database's metadata table. With
// a passphrase the blob is sealed with AES-GCM under an argon2id-derived key
// and the salt is stored next to it.
type SQLiteStore struct {
	db         *sql.DB
	repo       metadata.Repository
	key        string
	passphrase []byte

	mu      sync.Mutex
	salt    []byte
	derived []byte
}

var _ Store = (*SQLiteStore)(nil)

type Option func(*SQLiteStore)

// WithPassphrase enables sealing of the stored blob.
func WithPassphrase(p string) Option {
	return func(s *SQLiteStore) {
		if p != "" {
			s.passphrase = []byte(p)
		}
	}
}

// WithKey overrides the metadata key the session is stored under.
func WithKey(key string) Option {
	return func(s *SQLiteStore) { s.key = key }
}

func NewSQLiteStore(db *sql.DB, opts ...Option) *SQLiteStore {
	s := &SQLiteStore{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		key:  common.SessionStorageKey,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Sealed reports whether the store encrypts the blob at rest.
func (s *SQLiteStore) Sealed() bool {
	return len(s.passphrase) > 0
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	blob, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return Session{}, err
	}
	if blob == nil {
		return Session{}, nil
	}

	if !s.Sealed() {
		return decode(blob)
	}

	salt, err := s.repo.Get(ctx, s.key+saltSuffix)
	if err != nil {
		return Session{}, err
	}
	if salt == nil {
		return Session{}, fmt.Errorf("%w: missing salt", ErrCorrupt)
	}

	var e envelope
	if err := cryptox.Open(blob, s.keyFor(salt), &e); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return e.State, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	if !s.Sealed() {
		blob, err := encode(sess)
		if err != nil {
			return err
		}
		return s.repo.Put(ctx, s.key, blob)
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		salt, err := repo.Get(ctx, s.key+saltSuffix)
		if err != nil {
			return err
		}
		if salt == nil {
			salt = cryptox.NewSalt()
			if err := repo.Put(ctx, s.key+saltSuffix, salt); err != nil {
				return err
			}
		}

		sealed, err := cryptox.Seal(envelope{State: sess}, s.keyFor(salt))
		if err != nil {
			return err
		}
		return repo.Put(ctx, s.key, sealed)
	})
}

// Clear drops the blob and its salt together.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, s.key, s.key+saltSuffix)
	})
}

// keyFor derives the sealing key for salt, reusing the last derivation.
func (s *SQLiteStore) keyFor(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.derived == nil || !bytes.Equal(s.salt, salt) {
		s.salt = append([]byte(nil), salt...)
		s.derived = cryptox.DeriveKey(s.passphrase, salt)
	}
	return s.derived
}
