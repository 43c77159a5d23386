package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the encoded session in memory.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.blob == nil {
		return Session{}, nil
	}
	return decode(m.blob)
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	b, err := encode(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.blob = b
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.blob = nil
	m.mu.Unlock()
	return nil
}

// Raw returns the encoded blob, or nil when nothing is stored.
func (m *MemoryStore) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.blob...)
}
