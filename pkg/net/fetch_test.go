package net

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, clientUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "thing", "count": 3}`))
	}))
	defer srv.Close()

	var target struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, GetJSON(context.Background(), srv.Client(), srv.URL, &target))
	assert.Equal(t, "thing", target.Name)
	assert.Equal(t, 3, target.Count)
}

func TestGetJSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	var target map[string]any
	err := GetJSON(context.Background(), srv.Client(), srv.URL, &target)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrURLNotFound))
}

func TestGetJSON_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var target map[string]any
	err := GetJSON(context.Background(), srv.Client(), srv.URL, &target)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrURLNotFound))
}

func TestGetText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# readme"))
	}))
	defer srv.Close()

	text, err := GetText(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "# readme", text)
}

func TestGetText_NilClientUsesDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	text, err := GetText(context.Background(), nil, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestGetOAuthClient(t *testing.T) {
	ctx := context.Background()

	plain := GetOAuthClient(ctx, "")
	require.NotNil(t, plain)

	authed := GetOAuthClient(ctx, "token-123")
	require.NotNil(t, authed)
	assert.NotSame(t, plain, authed)
}
