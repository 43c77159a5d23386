// Package client is the HTTP adapter in front of the QuickServe REST API.
//
// Every request carries the persisted access token as a bearer credential.
// A 401 triggers at most one silent refresh per request, after which the
// original request is replayed once. A failed refresh clears the persisted
// session and notifies the session-expired hook.
package client
