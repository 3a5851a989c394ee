package http

import (
	"errors"
	"fmt"
)

// ErrEmptyURL is matched by the ValidationError returned when a request is
// built without a URL.
var ErrEmptyURL = errors.New("url cannot be empty")

// ValidationError is returned by Build when the accumulated state cannot
// form a Request.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Builder accumulates request fields through chained With* calls.
//
// A Builder is not safe for concurrent use. It may be reused after Build;
// every Build reflects the builder state at the time of the call.
type Builder struct {
	method      string
	url         string
	headers     map[string]string
	queryParams map[string]string
	body        string
	timeout     int
}

func NewBuilder() *Builder {
	return &Builder{
		headers:     make(map[string]string),
		queryParams: make(map[string]string),
	}
}

func (b *Builder) WithURL(u string) *Builder {
	b.url = u
	return b
}

func (b *Builder) WithMethod(method string) *Builder {
	b.method = method
	return b
}

func (b *Builder) WithHeader(key, value string) *Builder {
	b.headers[key] = value
	return b
}

// WithHeaders merges headers into the builder, overwriting existing keys.
func (b *Builder) WithHeaders(headers map[string]string) *Builder {
	for k, v := range headers {
		b.headers[k] = v
	}
	return b
}

func (b *Builder) WithQueryParam(key, value string) *Builder {
	b.queryParams[key] = value
	return b
}

// WithQueryParams merges query parameters into the builder, overwriting
// existing keys.
func (b *Builder) WithQueryParams(params map[string]string) *Builder {
	for k, v := range params {
		b.queryParams[k] = v
	}
	return b
}

func (b *Builder) WithBody(body string) *Builder {
	b.body = body
	return b
}

// WithTimeout sets the timeout in seconds. The value is not checked.
func (b *Builder) WithTimeout(seconds int) *Builder {
	b.timeout = seconds
	return b
}

// Build returns the finished Request. The only check is that a URL was set.
// Header and query maps are copied, so later builder calls do not leak into
// requests that were already built.
func (b *Builder) Build() (*Request, error) {
	if b.url == "" {
		return nil, &ValidationError{Field: "url", Err: ErrEmptyURL}
	}

	return &Request{
		method:      b.method,
		url:         b.url,
		headers:     copyMap(b.headers),
		queryParams: copyMap(b.queryParams),
		body:        b.body,
		timeout:     b.timeout,
	}, nil
}
