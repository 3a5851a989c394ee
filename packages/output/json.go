package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/abdul-hamid-achik/reqforge/packages/http"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	Requests []JSONRequest `json:"requests"`
	Errors   []string      `json:"errors,omitempty"`
}

// JSONRequest represents a single built request
type JSONRequest struct {
	Name           string            `json:"name,omitempty"`
	Method         string            `json:"method"`
	URL            string            `json:"url"`
	FullURL        string            `json:"fullUrl"`
	Headers        map[string]string `json:"headers"`
	QueryParams    map[string]string `json:"queryParams,omitempty"`
	Body           string            `json:"body,omitempty"`
	TimeoutSeconds int               `json:"timeoutSeconds"`
}

// JSONFormatter collects requests and writes them as one JSON document on Flush.
type JSONFormatter struct {
	writer   io.Writer
	requests []JSONRequest
	errors   []string
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer:   os.Stdout,
		requests: make([]JSONRequest, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatRequest(name string, req *http.Request) {
	f.requests = append(f.requests, ToJSONRequest(name, req))
}

func (f *JSONFormatter) FormatDivider() {
	// Requests are already separated as array elements
}

func (f *JSONFormatter) FormatError(err error) {
	f.errors = append(f.errors, err.Error())
}

// Flush writes the accumulated JSON output and resets the formatter.
func (f *JSONFormatter) Flush() error {
	out := JSONOutput{
		Requests: f.requests,
		Errors:   f.errors,
	}
	f.requests = make([]JSONRequest, 0)
	f.errors = nil

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func ToJSONRequest(name string, req *http.Request) JSONRequest {
	return JSONRequest{
		Name:           name,
		Method:         req.Method(),
		URL:            req.URL(),
		FullURL:        req.FullURL(),
		Headers:        req.Headers(),
		QueryParams:    req.QueryParams(),
		Body:           req.Body(),
		TimeoutSeconds: req.Timeout(),
	}
}
