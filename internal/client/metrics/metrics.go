// Package metrics exposes prometheus instruments for the API client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quickserve_client"

// API request metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests sent",
		},
		[]string{"method", "path", "status_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	RequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_requests_in_flight",
			Help:      "Current number of API requests awaiting a response",
		},
	)
)

// Session metrics
var (
	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refresh_total",
			Help:      "Token refresh attempts triggered by 401 responses",
		},
		[]string{"outcome"}, // "success" or "failure"
	)

	StoreActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_actions_total",
			Help:      "Store actions by outcome",
		},
		[]string{"store", "action", "outcome"},
	)
)

func RefreshSucceeded() {
	TokenRefreshTotal.WithLabelValues("success").Inc()
}

func RefreshFailed() {
	TokenRefreshTotal.WithLabelValues("failure").Inc()
}

// StoreAction records the outcome of a store action.
func StoreAction(store, action string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	StoreActionsTotal.WithLabelValues(store, action, outcome).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
