// Package store holds the client-side state containers: one per role. Each
// store mirrors server data plus coarse loading flags and a single error
// message, and exposes actions that call the API and merge the confirmed
// response. Lists are copied on every mutation, so a snapshot returned by
// State never changes afterwards.
package store
