package http

import (
	"fmt"
	"sort"
)

const (
	MethodGet  = "GET"
	MethodPost = "POST"

	ContentTypeJSON = "application/json"
)

// CreateGetRequest builds a plain GET request.
func CreateGetRequest(url string) (*Request, error) {
	return NewBuilder().
		WithURL(url).
		WithMethod(MethodGet).
		Build()
}

// CreateJSONPostRequest builds a POST request carrying a JSON body, with
// Content-Type and Accept set to application/json.
func CreateJSONPostRequest(url, jsonBody string) (*Request, error) {
	return NewBuilder().
		WithURL(url).
		WithMethod(MethodPost).
		WithHeader("Content-Type", ContentTypeJSON).
		WithHeader("Accept", ContentTypeJSON).
		WithBody(jsonBody).
		Build()
}

// Preset applies a named recipe to a builder. Presets only set fields, they
// never build.
type Preset func(b *Builder) *Builder

var presets = map[string]Preset{
	"get": func(b *Builder) *Builder {
		return b.WithMethod(MethodGet)
	},
	"json-post": func(b *Builder) *Builder {
		return b.WithMethod(MethodPost).
			WithHeader("Content-Type", ContentTypeJSON).
			WithHeader("Accept", ContentTypeJSON)
	},
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return p, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
