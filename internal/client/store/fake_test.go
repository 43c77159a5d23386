package store

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
)

type route struct {
	status int
	body   string
}

func ok(data string) route {
	return route{status: http.StatusOK, body: `{"success":true,"data":` + data + `}`}
}

func fail(status int, msg string) route {
	b, _ := json.Marshal(map[string]any{"success": false, "message": msg})
	return route{status: status, body: string(b)}
}

// fakeDoer answers by "METHOD /path" and records every request.
type fakeDoer struct {
	mu     sync.Mutex
	routes map[string]route
	calls  []client.Request
	// during runs inside Do, before the response is returned
	during func()
}

func newFake(routes map[string]route) *fakeDoer {
	return &fakeDoer{routes: routes}
}

func (f *fakeDoer) set(key string, r route) {
	f.mu.Lock()
	f.routes[key] = r
	f.mu.Unlock()
}

func (f *fakeDoer) Do(_ context.Context, req *client.Request) (*client.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, *req)
	r, found := f.routes[req.Method+" "+req.Path]
	during := f.during
	f.mu.Unlock()

	if during != nil {
		during()
	}

	if !found {
		return nil, &client.APIError{StatusCode: http.StatusNotFound}
	}
	if r.status >= 400 {
		var env struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal([]byte(r.body), &env)
		return nil, &client.APIError{StatusCode: r.status, Message: env.Message}
	}
	return &client.Response{StatusCode: r.status, Body: []byte(r.body)}, nil
}

func (f *fakeDoer) called(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method+" "+c.Path == key {
			n++
		}
	}
	return n
}

func (f *fakeDoer) last() client.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}
