package recipe

import (
	"errors"
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/reqforge/packages/core/env"
	"github.com/abdul-hamid-achik/reqforge/packages/http"
	"gopkg.in/yaml.v3"
)

// ErrSyntax is wrapped by errors for documents that are not valid YAML/JSON.
var ErrSyntax = errors.New("parsing recipe")

// File is a decoded recipe document.
type File struct {
	Path      string            `yaml:"-"`
	Variables map[string]string `yaml:"variables"`
	Defaults  Defaults          `yaml:"defaults"`
	Requests  []Spec            `yaml:"requests"`
}

// Defaults apply to every request in the file. Per-request values win.
type Defaults struct {
	Headers map[string]string `yaml:"headers"`
	Query   map[string]string `yaml:"query"`
	Timeout *int              `yaml:"timeout"`
}

// Spec describes one request. Preset selects a director recipe; Method
// overrides whatever the preset set.
type Spec struct {
	Name    string            `yaml:"name"`
	Preset  string            `yaml:"preset"`
	URL     string            `yaml:"url"`
	Method  string            `yaml:"method"`
	Headers map[string]string `yaml:"headers"`
	Query   map[string]string `yaml:"query"`
	Body    string            `yaml:"body"`
	Timeout *int              `yaml:"timeout"`
}

// Entry is a built request together with its recipe name.
type Entry struct {
	Name    string
	Request *http.Request
}

// EntryError wraps the failure to build a single recipe entry.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("request %q: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Load reads and parses a recipe file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe file: %w", err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes a YAML or JSON recipe document and validates it against the
// recipe schema.
func Parse(data []byte) (*File, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	for i := range f.Requests {
		if f.Requests[i].Name == "" {
			f.Requests[i].Name = fmt.Sprintf("request-%d", i+1)
		}
	}

	return &f, nil
}

// ApplyDefaults fills in default headers and timeout from outside the file,
// typically the config file. Values already in the file win.
func (f *File) ApplyDefaults(headers map[string]string, timeout int) {
	if len(headers) > 0 {
		f.Defaults.Headers = env.MergeVariables(headers, f.Defaults.Headers)
	}
	if f.Defaults.Timeout == nil && timeout != 0 {
		t := timeout
		f.Defaults.Timeout = &t
	}
}

// Build resolves placeholders and builds every request in the file.
//
// File variables are added to a copy of resolver without overriding variables
// it already has, so values set on the command line take precedence. Entries
// that fail to build are skipped and reported through the joined error;
// the remaining entries are still returned.
func (f *File) Build(resolver *env.Resolver) ([]Entry, error) {
	if resolver == nil {
		resolver = env.NewResolver()
	}
	r := resolver.Clone()
	for k, v := range f.Variables {
		if _, ok := r.GetVariable(k); !ok {
			r.SetVariable(k, v)
		}
	}

	entries := make([]Entry, 0, len(f.Requests))
	var errs []error
	for i, spec := range f.Requests {
		req, err := f.buildOne(spec, r)
		if err != nil {
			errs = append(errs, &EntryError{Index: i, Name: spec.Name, Err: err})
			continue
		}
		entries = append(entries, Entry{Name: spec.Name, Request: req})
	}

	return entries, errors.Join(errs...)
}

func (f *File) buildOne(spec Spec, r *env.Resolver) (*http.Request, error) {
	b := http.NewBuilder().
		WithURL(r.Resolve(spec.URL)).
		WithMethod(http.MethodGet).
		WithHeaders(r.ResolveAll(f.Defaults.Headers)).
		WithQueryParams(r.ResolveAll(f.Defaults.Query))

	if spec.Preset != "" {
		preset, err := http.LookupPreset(spec.Preset)
		if err != nil {
			return nil, err
		}
		b = preset(b)
	}

	if spec.Method != "" {
		b.WithMethod(r.Resolve(spec.Method))
	}

	b.WithHeaders(r.ResolveAll(spec.Headers)).
		WithQueryParams(r.ResolveAll(spec.Query)).
		WithBody(r.Resolve(spec.Body))

	switch {
	case spec.Timeout != nil:
		b.WithTimeout(*spec.Timeout)
	case f.Defaults.Timeout != nil:
		b.WithTimeout(*f.Defaults.Timeout)
	}

	return b.Build()
}
