package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrijs2005/quickserve/internal/client/metrics"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
	"github.com/dmitrijs2005/quickserve/internal/client/session"
	"github.com/dmitrijs2005/quickserve/internal/common"
	"github.com/dmitrijs2005/quickserve/internal/logging"
)

const refreshPath = "/auth/refresh"

// Doer is what the API modules need from the adapter.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

type HTTPClient struct {
	baseURL  string
	hc       *http.Client
	sessions session.Store
	log      logging.Logger
	timeout  time.Duration

	onTokenRefreshed func(context.Context, session.Session)
	onSessionExpired func(context.Context)
}

var _ Doer = (*HTTPClient)(nil)

type Option func(*HTTPClient)

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithHTTPClient sets the underlying client. Its transport is wrapped with
// metrics and tracing.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

// WithTimeout bounds every request. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithTokenRefreshedHandler(fn func(context.Context, session.Session)) Option {
	return func(c *HTTPClient) { c.onTokenRefreshed = fn }
}

func WithSessionExpiredHandler(fn func(context.Context)) Option {
	return func(c *HTTPClient) { c.onSessionExpired = fn }
}

func New(baseURL string, sessions session.Store, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		sessions: sessions,
		log:      logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}

	var base http.RoundTripper
	if c.hc == nil {
		c.hc = &http.Client{}
	} else {
		cp := *c.hc
		c.hc = &cp
	}
	base = c.hc.Transport
	c.hc.Transport = otelhttp.NewTransport(metrics.Transport(base))

	return c
}

// OnTokenRefreshed replaces the hook called after a silent refresh. Hooks
// must be set before the client is shared.
func (c *HTTPClient) OnTokenRefreshed(fn func(context.Context, session.Session)) {
	c.onTokenRefreshed = fn
}

// OnSessionExpired replaces the hook called after a failed refresh.
func (c *HTTPClient) OnSessionExpired(fn func(context.Context)) {
	c.onSessionExpired = fn
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Do sends req with the persisted bearer token. On a 401 it refreshes the
// session once and replays req once; a 401 on the replay is returned as is.
func (c *HTTPClient) Do(ctx context.Context, req *Request) (*Response, error) {
	return c.do(ctx, *req)
}

func (c *HTTPClient) do(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.send(ctx, &req, true)
	if err == nil {
		return resp, nil
	}

	if req.retried || StatusOf(err) != http.StatusUnauthorized {
		return nil, err
	}

	sess, lerr := c.sessions.Load(ctx)
	if lerr != nil || sess.RefreshToken == "" {
		return nil, err
	}

	if rerr := c.refresh(ctx, sess); rerr != nil {
		return nil, rerr
	}

	req.retried = true
	return c.do(ctx, req)
}

// refresh exchanges the refresh token for a new pair and persists it. On
// failure the persisted session is cleared.
func (c *HTTPClient) refresh(ctx context.Context, sess session.Session) error {
	resp, err := c.send(ctx, &Request{
		Method: http.MethodPost,
		Path:   refreshPath,
		Body:   map[string]string{"refreshToken": sess.RefreshToken},
	}, false)

	var tokens models.AuthPayload
	if err == nil {
		err = resp.Decode(&tokens)
	}
	if err == nil && tokens.AccessToken == "" {
		err = errors.New("refresh response without access token")
	}

	if err != nil {
		metrics.RefreshFailed()
		c.log.Warn(ctx, "token refresh failed, clearing session", "error", err)

		if cerr := c.sessions.Clear(ctx); cerr != nil {
			c.log.Error(ctx, "failed to clear session", "error", cerr)
		}
		if c.onSessionExpired != nil {
			c.onSessionExpired(ctx)
		}
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	sess.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		sess.RefreshToken = tokens.RefreshToken
	}
	if err := c.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("persist refreshed session: %w", err)
	}

	metrics.RefreshSucceeded()
	c.log.Info(ctx, "access token refreshed")

	if c.onTokenRefreshed != nil {
		c.onTokenRefreshed(ctx, sess)
	}
	return nil
}

func (c *HTTPClient) send(ctx context.Context, req *Request, withAuth bool) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	hreq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	hreq.Header.Set(common.RequestIDHeader, requestID)
	hreq.Header.Set("Accept", "application/json")
	if body != nil {
		hreq.Header.Set("Content-Type", "application/json")
	}

	if withAuth {
		sess, err := c.sessions.Load(ctx)
		if err != nil {
			c.log.Warn(ctx, "cannot read session, sending anonymously", "error", err)
		} else if sess.AccessToken != "" {
			hreq.Header.Set(common.AuthorizationHeader, common.BearerPrefix+sess.AccessToken)
		}
	}

	start := time.Now()
	hresp, err := c.hc.Do(hreq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnavailable, req.Method, req.Path, err)
	}
	defer hresp.Body.Close()

	data, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api request",
		"method", req.Method,
		"path", req.Path,
		"status", hresp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
		"retried", req.retried,
	)

	if hresp.StatusCode < 200 || hresp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: hresp.StatusCode,
			Message:    messageOf(data),
			RequestID:  requestID,
		}
	}

	return &Response{StatusCode: hresp.StatusCode, Header: hresp.Header, Body: data}, nil
}
