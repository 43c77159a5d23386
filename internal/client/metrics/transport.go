package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
)

// idPattern matches numeric path segments for normalization
var idPattern = regexp.MustCompile(`/\d+(/|$)`)

// normalizePath replaces numeric ids with {id} to reduce metric cardinality
func normalizePath(path string) string {
	// applied twice so adjacent id segments are both replaced
	path = idPattern.ReplaceAllString(path, "/{id}$1")
	return idPattern.ReplaceAllString(path, "/{id}$1")
}

type roundTripper struct {
	next http.RoundTripper
}

// Transport records request metrics for every round trip through next.
func Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &roundTripper{next: next}
}

func (rt *roundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	RequestsInFlight.Inc()
	defer RequestsInFlight.Dec()

	start := time.Now()
	resp, err := rt.next.RoundTrip(r)

	path := normalizePath(r.URL.Path)
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())

	return resp, err
}
