package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/quickserve/internal/client/api"
	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/client/store"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

type reply struct {
	status int
	body   string
}

func okJSON(data string) reply {
	return reply{status: http.StatusOK, body: `{"success":true,"data":` + data + `}`}
}

func failJSON(status int, msg string) reply {
	return reply{status: status, body: `{"success":false,"message":"` + msg + `"}`}
}

type seen struct {
	method string
	path   string
	query  url.Values
	body   string
}

// backend answers "METHOD /path" routes under /api and records requests.
type backend struct {
	mu     sync.Mutex
	routes map[string]reply
	reqs   []seen
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	b.mu.Lock()
	b.reqs = append(b.reqs, seen{method: r.Method, path: path, query: r.URL.Query(), body: string(body)})
	rep, ok := b.routes[r.Method+" "+path]
	b.mu.Unlock()

	if !ok {
		rep = failJSON(http.StatusNotFound, "Not found")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (b *backend) set(key string, r reply) {
	b.mu.Lock()
	b.routes[key] = r
	b.mu.Unlock()
}

func (b *backend) last() seen {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reqs[len(b.reqs)-1]
}

func newTestApp(t *testing.T, routes map[string]reply) (*App, *bytes.Buffer, *backend) {
	t.Helper()
	if routes == nil {
		routes = map[string]reply{}
	}
	be := &backend{routes: routes}
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	ctx := context.Background()
	sessions := session.NewMemoryStore()
	hc := client.New(srv.URL+"/api", sessions)

	auth := store.NewAuthStore(ctx, api.NewAuthAPI(hc), sessions, logging.Nop())
	hc.OnTokenRefreshed(func(ctx context.Context, _ session.Session) { _ = auth.Hydrate(ctx) })
	hc.OnSessionExpired(auth.SessionExpired)

	out := &bytes.Buffer{}
	app := NewApp(Stores{
		Auth:      auth,
		Dashboard: store.NewDashboardStore(api.NewProviderAPI(hc), logging.Nop()),
		Customer:  store.NewCustomerStore(api.NewCustomerAPI(hc), api.NewPublicAPI(hc), logging.Nop()),
		Admin:     store.NewAdminStore(api.NewAdminAPI(hc), logging.Nop()),
	}, strings.NewReader(""), out, logging.Nop())

	return app, out, be
}

// stubPrompts answers text prompts from answers in order (then with ""),
// passwords with "secret" and multi-line prompts with "".
func stubPrompts(t *testing.T, answers ...string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", nil
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte("secret"), nil }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "", nil }
}

// capturePrintln collects REPL output lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strings.TrimSpace(strings.TrimSuffix(toString(v), "\n"))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func loginAs(t *testing.T, a *App, be *backend, role, email string) {
	t.Helper()
	be.set("POST /auth/login", okJSON(`{"accessToken":"t1","refreshToken":"r1","user":{"id":1,"email":"`+email+`","role":"`+role+`"}}`))
	stubPrompts(t, email)
	require.NoError(t, a.Login(context.Background(), nil))
}

func commandNames(a *App) []string {
	var names []string
	for _, c := range a.commands() {
		names = append(names, c.name)
	}
	return names
}
