package apiv3

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveclient/go-cloudreve/apierror"
)

func TestCreateShare(t *testing.T) {
	t.Run("key in envelope data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v3/share", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"code": 0,
				"data": map[string]any{"key": "abc123"},
			})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		share, err := client.CreateShare(context.Background(), &ShareRequest{ID: "f1"})
		require.NoError(t, err)
		assert.Equal(t, "abc123", share.Key)
	})

	t.Run("share URL string in data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"code": 0,
				"data": "https://drive.example.com/s/xyz789",
			})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		share, err := client.CreateShare(context.Background(), &ShareRequest{ID: "f1"})
		require.NoError(t, err)
		assert.Equal(t, "xyz789", share.Key)
	})

	t.Run("empty envelope becomes DecodeError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"code": 0})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.CreateShare(context.Background(), &ShareRequest{ID: "f1"})
		require.Error(t, err)
		assert.True(t, apierror.IsDecode(err))
	})

	t.Run("envelope error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"code": 40002, "msg": "sharing disabled"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.CreateShare(context.Background(), &ShareRequest{ID: "f1"})
		require.Error(t, err)

		apiErr, ok := apierror.AsAPI(err)
		require.True(t, ok)
		assert.Equal(t, 40002, apiErr.Code)
	})
}

func TestKeyFromShareURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://drive.example.com/s/abc123", "abc123"},
		{"https://drive.example.com/s/abc123/", "abc123"},
		{"abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyFromShareURL(tt.url))
		})
	}
}
