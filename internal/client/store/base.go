package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/metrics"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

// Listener receives the new state after every change.
type Listener[S any] func(S)

type container[S any] struct {
	mu    sync.RWMutex
	state S

	subMu  sync.Mutex
	subs   map[int]Listener[S]
	nextID int
}

func (c *container[S]) snapshot() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// update applies fn under the lock and notifies listeners with the result.
func (c *container[S]) update(fn func(s *S)) {
	c.mu.Lock()
	fn(&c.state)
	s := c.state
	c.mu.Unlock()

	c.subMu.Lock()
	subs := make([]Listener[S], 0, len(c.subs))
	for _, l := range c.subs {
		subs = append(subs, l)
	}
	c.subMu.Unlock()

	for _, l := range subs {
		l(s)
	}
}

// Subscribe registers l and returns a func that removes it.
func (c *container[S]) Subscribe(l Listener[S]) (unsubscribe func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	if c.subs == nil {
		c.subs = make(map[int]Listener[S])
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = l

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// base runs the shared action protocol: raise the flag and clear the
// error, call, then either merge and lower the flag or record the message
// and lower the flag.
type base[S any] struct {
	container[S]
	name  string
	log   logging.Logger
	errOf func(*S) *string
}

func (b *base[S]) act(ctx context.Context, action, fallback string, flag func(*S) *bool, call func(ctx context.Context) (func(*S), error)) error {
	b.update(func(s *S) {
		if flag != nil {
			*flag(s) = true
		}
		*b.errOf(s) = ""
	})

	apply, err := call(ctx)
	metrics.StoreAction(b.name, action, err)

	if err != nil {
		msg := client.MessageOf(err, fallback)
		b.log.Debug(ctx, "store action failed", "store", b.name, "action", action, "error", err)
		b.update(func(s *S) {
			if flag != nil {
				*flag(s) = false
			}
			*b.errOf(s) = msg
		})
		return err
	}

	b.update(func(s *S) {
		if apply != nil {
			apply(s)
		}
		if flag != nil {
			*flag(s) = false
		}
	})
	return nil
}

// ClearError resets the error message.
func (b *base[S]) ClearError() {
	b.update(func(s *S) { *b.errOf(s) = "" })
}

// decode unwraps the response envelope into a T.
func decode[T any](resp *client.Response, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if err := resp.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

// decodeList is decode for lists; a null payload becomes an empty slice.
func decodeList[T any](resp *client.Response, err error) ([]T, error) {
	v, err := decode[[]T](resp, err)
	if err != nil {
		return nil, err
	}
	return orEmpty(v), nil
}
