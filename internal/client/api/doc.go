// Package api maps each QuickServe REST endpoint to one method. Methods
// return the raw response; callers decode the envelope themselves.
package api
