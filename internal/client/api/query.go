package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// query builds a url.Values skipping zero values.
type query url.Values

func (q query) str(key, v string) query {
	if v != "" {
		url.Values(q).Set(key, v)
	}
	return q
}

func (q query) float(key string, v *float64) query {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
	return q
}

func (q query) boolean(key string, v *bool) query {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatBool(*v))
	}
	return q
}

// page always sets page; size only when positive, else def when positive.
func (q query) page(page, size, def int) query {
	url.Values(q).Set("page", strconv.Itoa(page))
	if size <= 0 {
		size = def
	}
	if size > 0 {
		url.Values(q).Set("size", strconv.Itoa(size))
	}
	return q
}

func (q query) values() url.Values {
	return url.Values(q)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
