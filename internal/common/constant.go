// Package common contains shared constants and small helpers used across
// QuickServe client components.
package common

const (
	// AuthorizationHeader carries the bearer access token on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the access token in AuthorizationHeader.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	// SessionStorageKey is the fixed namespace the persisted auth blob lives under.
	SessionStorageKey = "quickserve-auth"

	// DefaultAPIBaseURL is used when no base URL is configured.
	DefaultAPIBaseURL = "http://localhost:8080/api"
)
