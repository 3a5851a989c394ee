package http

import (
	"net/url"
	"sort"
	"time"
)

// Request is a fully built HTTP request description. It is only produced by
// Builder.Build and has no mutators, so it is safe to share once built.
type Request struct {
	method      string
	url         string
	headers     map[string]string
	queryParams map[string]string
	body        string
	timeout     int // seconds
}

func (r *Request) URL() string {
	return r.url
}

func (r *Request) Method() string {
	return r.method
}

// Headers returns a copy of the request headers.
func (r *Request) Headers() map[string]string {
	return copyMap(r.headers)
}

func (r *Request) Header(key string) (string, bool) {
	v, ok := r.headers[key]
	return v, ok
}

// HeaderKeys returns header names in sorted order.
func (r *Request) HeaderKeys() []string {
	return sortedKeys(r.headers)
}

// QueryParams returns a copy of the query parameters.
func (r *Request) QueryParams() map[string]string {
	return copyMap(r.queryParams)
}

func (r *Request) QueryParam(key string) (string, bool) {
	v, ok := r.queryParams[key]
	return v, ok
}

// QueryKeys returns query parameter names in sorted order.
func (r *Request) QueryKeys() []string {
	return sortedKeys(r.queryParams)
}

func (r *Request) Body() string {
	return r.body
}

// Timeout returns the timeout in seconds. Zero means unset.
func (r *Request) Timeout() int {
	return r.timeout
}

func (r *Request) TimeoutDuration() time.Duration {
	return time.Duration(r.timeout) * time.Second
}

// FullURL returns the URL with the query parameters encoded into its query
// string. If the URL cannot be parsed it is returned unchanged.
func (r *Request) FullURL() string {
	if len(r.queryParams) == 0 {
		return r.url
	}

	u, err := url.Parse(r.url)
	if err != nil {
		return r.url
	}

	q := u.Query()
	for k, v := range r.queryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
