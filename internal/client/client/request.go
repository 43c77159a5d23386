package client

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Request describes one API call. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// retried is set on the replay that follows a token refresh.
	retried bool
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// envelope is the API's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode unmarshals the envelope's data field into v. A missing or null
// data field leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, v)
}

// Message returns the envelope's message field.
func (r *Response) Message() string {
	return messageOf(r.Body)
}

func messageOf(body []byte) string {
	var env envelope
	if json.Unmarshal(body, &env) != nil {
		return ""
	}
	return env.Message
}
