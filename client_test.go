package cloudreve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveclient/go-cloudreve/apierror"
	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// envelope writes a v3/v4 style {code, msg, data} response.
func envelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": data})
}

// v4Server fakes a server that only answers on the v4 surface.
func v4Server(t *testing.T, extra http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v4/site/ping":
			envelope(w, "4.0.0")
		case extra != nil:
			extra(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
}

// v3Server fakes a server that only answers on the v3 surface.
func v3Server(t *testing.T, version string, extra http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v3/site/ping":
			envelope(w, version)
		case extra != nil:
			extra(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestVersionDetection(t *testing.T) {
	t.Run("v4-shaped server", func(t *testing.T) {
		server := v4Server(t, nil)
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, VersionV4, client.Version())
		assert.True(t, client.IsV4())
		assert.NotNil(t, client.V4())
		assert.Nil(t, client.V3())
	})

	t.Run("v3-shaped server", func(t *testing.T) {
		server := v3Server(t, "3.8.3", nil)
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, VersionV3, client.Version())
		assert.NotNil(t, client.V3())
		assert.Nil(t, client.V4())
	})

	t.Run("v3 path reporting a 4.x server", func(t *testing.T) {
		server := v3Server(t, "4.1.0", nil)
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, VersionV4, client.Version())
	})

	t.Run("neither generation answers", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		_, err := New(context.Background(), server.URL)
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrUnsupportedVersion)
	})

	t.Run("explicit version skips the probe", func(t *testing.T) {
		// No server at all: pinning the version must not touch the network.
		client, err := New(context.Background(), "http://127.0.0.1:1", WithVersion(VersionV3))
		require.NoError(t, err)
		assert.Equal(t, VersionV3, client.Version())
	})

	t.Run("custom probe", func(t *testing.T) {
		client, err := New(context.Background(), "http://127.0.0.1:1", WithProbe(
			func(ctx context.Context, _ *apiv3.Client, _ *apiv4.Client) (Version, error) {
				return VersionV4, nil
			},
		))
		require.NoError(t, err)
		assert.Equal(t, VersionV4, client.Version())
	})
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected Version
		wantErr  bool
	}{
		{"v3", VersionV3, false},
		{"3", VersionV3, false},
		{"V4", VersionV4, false},
		{"4", VersionV4, false},
		{"v5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestVersionGatedOperations(t *testing.T) {
	client, err := New(context.Background(), "http://127.0.0.1:1", WithVersion(VersionV3))
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.ListShares(ctx)
	assert.ErrorIs(t, err, apierror.ErrUnsupportedVersion)

	err = client.DeleteShare(ctx, "s1")
	assert.ErrorIs(t, err, apierror.ErrUnsupportedVersion)

	_, err = client.RefreshToken(ctx, "r1")
	assert.ErrorIs(t, err, apierror.ErrUnsupportedVersion)

	_, err = client.CreateDAVAccount(ctx, "dav", "/")
	assert.ErrorIs(t, err, apierror.ErrUnsupportedVersion)
}

func TestSetTokenRoutesToActiveBinding(t *testing.T) {
	t.Run("v4 bearer token", func(t *testing.T) {
		var gotAuth string
		server := v4Server(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v4/user/capacity" {
				gotAuth = r.Header.Get("Authorization")
				envelope(w, map[string]any{"used": 5, "total": 10})
				return
			}
			http.NotFound(w, r)
		})
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)

		client.SetToken("tok-1")
		assert.Equal(t, "tok-1", client.Token())

		quota, err := client.StorageQuota(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-1", gotAuth)
		assert.Equal(t, int64(5), quota.Used)
	})

	t.Run("v3 session cookie", func(t *testing.T) {
		var gotCookie string
		server := v3Server(t, "3.8.3", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v3/user/storage" {
				if c, err := r.Cookie("cloudreve-session"); err == nil {
					gotCookie = c.Value
				}
				envelope(w, map[string]any{"used": 7, "total": 20})
				return
			}
			http.NotFound(w, r)
		})
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)

		client.SetToken("cookie-1")
		_, err = client.StorageQuota(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "cookie-1", gotCookie)
	})
}

func TestFileInfoOnV3UsesParentListing(t *testing.T) {
	server := v3Server(t, "3.8.3", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v3/directory/docs" {
			envelope(w, map[string]any{
				"objects": []map[string]any{
					{"id": "o1", "name": "note.txt", "type": "file", "size": 42, "path": "/docs"},
					{"id": "o2", "name": "photos", "type": "dir", "path": "/docs"},
				},
				"policy": map[string]any{"id": "p1"},
			})
			return
		}
		http.NotFound(w, r)
	})
	defer server.Close()

	client, err := New(context.Background(), server.URL)
	require.NoError(t, err)

	item, err := client.FileInfo(context.Background(), "/docs/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "o1", item.ID)
	assert.Equal(t, int64(42), item.Size)
	assert.False(t, item.IsDir)

	_, err = client.FileInfo(context.Background(), "/docs/missing.txt")
	require.Error(t, err)
	apiErr, ok := apierror.AsAPI(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
}

func TestListFilesUnifiesBothGenerations(t *testing.T) {
	t.Run("v4", func(t *testing.T) {
		server := v4Server(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v4/file" {
				envelope(w, map[string]any{
					"files": []map[string]any{
						{"type": 1, "id": "d1", "name": "photos", "path": "/photos"},
					},
					"parent":     map[string]any{"type": 1, "id": "root", "name": "", "path": "/"},
					"pagination": map[string]any{"page": 0, "next_page_token": "tok-next"},
					"props":      map[string]any{},
					"storage_policy": map[string]any{
						"id": "policy-1", "name": "default", "type": "local", "max_size": 0,
					},
				})
				return
			}
			http.NotFound(w, r)
		})
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)

		list, err := client.ListFiles(context.Background(), "/", nil)
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.True(t, list.Items[0].IsDir)
		assert.Equal(t, "tok-next", list.NextPageToken)
		assert.Equal(t, "policy-1", list.PolicyID)
	})

	t.Run("v3", func(t *testing.T) {
		server := v3Server(t, "3.8.3", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v3/directory/" {
				envelope(w, map[string]any{
					"objects": []map[string]any{
						{"id": "o1", "name": "note.txt", "type": "file", "size": 7},
					},
					"policy": map[string]any{"id": "policy-3"},
				})
				return
			}
			http.NotFound(w, r)
		})
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)

		list, err := client.ListFiles(context.Background(), "/", nil)
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "note.txt", list.Items[0].Name)
		assert.Empty(t, list.NextPageToken)
		assert.Equal(t, "policy-3", list.PolicyID)
	})
}

func TestLoginRoutesToActiveGeneration(t *testing.T) {
	t.Run("v4 returns token pair", func(t *testing.T) {
		server := v4Server(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v4/session/token" {
				envelope(w, map[string]any{
					"user": map[string]any{"id": "u1", "email": "a@b.c", "nickname": "A"},
					"token": map[string]any{
						"access_token":  "acc",
						"refresh_token": "ref",
					},
				})
				return
			}
			http.NotFound(w, r)
		})
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)

		session, err := client.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err)
		assert.Equal(t, "acc", session.Token)
		assert.Equal(t, "ref", session.RefreshToken)
		assert.Equal(t, "acc", client.Token())
	})

	t.Run("v3 stores cookie and leaves Token empty in session", func(t *testing.T) {
		server := v3Server(t, "3.8.3", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v3/user/session" {
				http.SetCookie(w, &http.Cookie{Name: "cloudreve-session", Value: "sess-1"})
				envelope(w, map[string]any{"id": "u1", "user_name": "a@b.c", "nickname": "A"})
				return
			}
			http.NotFound(w, r)
		})
		defer server.Close()

		client, err := New(context.Background(), server.URL)
		require.NoError(t, err)

		session, err := client.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err)
		assert.Empty(t, session.Token)
		assert.Equal(t, "sess-1", client.Token())
	})
}

func TestDownloadURL(t *testing.T) {
	server := v4Server(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v4/file/url" {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			uris, _ := body["uris"].([]any)
			require.Len(t, uris, 1)
			assert.Equal(t, "cloudreve://my/docs/note.txt", uris[0])

			envelope(w, map[string]any{
				"urls":    []map[string]any{{"url": "https://dl.example.com/x"}},
				"expires": "2026-01-01T00:00:00Z",
			})
			return
		}
		http.NotFound(w, r)
	})
	defer server.Close()

	client, err := New(context.Background(), server.URL)
	require.NoError(t, err)

	url, err := client.DownloadURL(context.Background(), "/docs/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "https://dl.example.com/x", url)
}
