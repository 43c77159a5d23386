// Package models defines the QuickServe payloads the client sends and the
// server-owned entities it caches. Field names follow the REST API's JSON.
package models
