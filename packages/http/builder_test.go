package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_AllFields(t *testing.T) {
	req, err := NewBuilder().
		WithURL("https://api.example.com").
		WithMethod("POST").
		WithHeader("Content-Type", "application/json").
		WithHeader("Accept", "application/json").
		WithQueryParam("key", "12345").
		WithBody(`{"name": "Aditya"}`).
		WithTimeout(60).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", req.URL())
	assert.Equal(t, "POST", req.Method())
	assert.Equal(t, map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}, req.Headers())
	assert.Equal(t, map[string]string{"key": "12345"}, req.QueryParams())
	assert.Equal(t, `{"name": "Aditya"}`, req.Body())
	assert.Equal(t, 60, req.Timeout())
}

func TestBuilder_Defaults(t *testing.T) {
	req, err := NewBuilder().WithURL("https://x").Build()

	require.NoError(t, err)
	assert.Empty(t, req.Method())
	assert.Empty(t, req.Headers())
	assert.Empty(t, req.QueryParams())
	assert.Empty(t, req.Body())
	assert.Equal(t, 0, req.Timeout())
}

func TestBuilder_LastWriteWins(t *testing.T) {
	req, err := NewBuilder().
		WithURL("https://first").
		WithURL("https://second").
		WithMethod("GET").
		WithMethod("DELETE").
		WithHeader("X-Token", "a").
		WithHeader("X-Token", "b").
		WithQueryParam("page", "1").
		WithQueryParam("page", "2").
		WithBody("one").
		WithBody("two").
		WithTimeout(5).
		WithTimeout(10).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "https://second", req.URL())
	assert.Equal(t, "DELETE", req.Method())
	assert.Equal(t, map[string]string{"X-Token": "b"}, req.Headers())
	assert.Equal(t, map[string]string{"page": "2"}, req.QueryParams())
	assert.Equal(t, "two", req.Body())
	assert.Equal(t, 10, req.Timeout())
}

func TestBuilder_MergeMaps(t *testing.T) {
	req, err := NewBuilder().
		WithURL("https://x").
		WithHeader("A", "1").
		WithHeaders(map[string]string{"A": "2", "B": "3"}).
		WithQueryParams(map[string]string{"q": "go"}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "2", "B": "3"}, req.Headers())
	assert.Equal(t, map[string]string{"q": "go"}, req.QueryParams())
}

func TestBuilder_PermissiveFields(t *testing.T) {
	req, err := NewBuilder().
		WithURL("https://x").
		WithMethod("").
		WithTimeout(-3).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "", req.Method())
	assert.Equal(t, -3, req.Timeout())
}

func TestBuilder_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{
			name:    "url never set",
			builder: NewBuilder().WithMethod("GET"),
		},
		{
			name:    "url cleared",
			builder: NewBuilder().WithURL("https://x").WithURL(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.builder.Build()

			assert.Nil(t, req)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "url", verr.Field)
			assert.ErrorIs(t, err, ErrEmptyURL)
			assert.Equal(t, "validation failed: url cannot be empty", err.Error())
		})
	}
}

func TestBuilder_ReuseDoesNotAlias(t *testing.T) {
	b := NewBuilder().
		WithURL("https://x").
		WithHeader("A", "1").
		WithQueryParam("q", "1")

	first, err := b.Build()
	require.NoError(t, err)

	b.WithHeader("A", "2").WithHeader("B", "3").WithQueryParam("q", "2").WithBody("later")

	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"A": "1"}, first.Headers())
	assert.Equal(t, map[string]string{"q": "1"}, first.QueryParams())
	assert.Empty(t, first.Body())

	assert.Equal(t, map[string]string{"A": "2", "B": "3"}, second.Headers())
	assert.Equal(t, map[string]string{"q": "2"}, second.QueryParams())
	assert.Equal(t, "later", second.Body())
}
