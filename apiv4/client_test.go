package apiv4

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveclient/go-cloudreve/apierror"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "URL is required")
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost:5212", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/user/capacity", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{"used": 10, "total": 100},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	client.SetToken("my-token")

	quota, err := client.Capacity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
	assert.Equal(t, int64(10), quota.Used)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": "4.0.0"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Ping(context.Background())
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestTokenReplacedNotStacked(t *testing.T) {
	client, err := NewClient("http://localhost:5212", zerolog.Nop())
	require.NoError(t, err)

	client.SetToken("first")
	client.SetToken("second")
	assert.Equal(t, "second", client.Token())

	client.ClearToken()
	assert.Empty(t, client.Token())
}

func TestListFilesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/file", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "cloudreve://my/docs", q.Get("uri"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("page_size"))
		assert.Equal(t, "name", q.Get("order_by"))

		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{
				"files": []map[string]any{
					{"type": 1, "id": "d1", "name": "photos", "path": "/docs/photos"},
					{"type": 0, "id": "f1", "name": "note.txt", "size": 42, "path": "/docs/note.txt"},
				},
				"parent":     map[string]any{"type": 1, "id": "p1", "name": "docs", "path": "/docs"},
				"pagination": map[string]any{"page": 2, "page_size": 50},
				"props":      map[string]any{"max_page_size": 2000},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	list, err := client.ListFiles(context.Background(), "/docs", &ListOptions{
		Page:     2,
		PageSize: 50,
		OrderBy:  "name",
	})
	require.NoError(t, err)
	require.Len(t, list.Files, 2)
	assert.True(t, list.Files[0].IsDir())
	assert.False(t, list.Files[1].IsDir())
	assert.Equal(t, int64(42), list.Files[1].Size)
	assert.Equal(t, "docs", list.Parent.Name)
}

func TestErrorMapping(t *testing.T) {
	t.Run("403 becomes AuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{"code": 403, "msg": "token expired"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Capacity(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, apierror.ErrUnauthorized)
	})

	t.Run("2xx envelope error passes through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"code": 40004, "msg": "object not exist"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.FileInfo(context.Background(), "/missing")
		require.Error(t, err)

		apiErr, ok := apierror.AsAPI(err)
		require.True(t, ok)
		assert.Equal(t, 40004, apiErr.Code)
		assert.Equal(t, "object not exist", apiErr.Message)
	})

	t.Run("non-2xx without envelope keeps the status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Capacity(context.Background())
		require.Error(t, err)

		apiErr, ok := apierror.AsAPI(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, apiErr.Code)
	})

	t.Run("malformed JSON becomes DecodeError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		_, err = client.Capacity(context.Background())
		require.Error(t, err)
		assert.True(t, apierror.IsDecode(err))
	})
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v4/session/token", r.URL.Path)

		var body LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{
				"user": map[string]any{"id": "u1", "email": "user@example.com"},
				"token": map[string]any{
					"access_token":  "access-1",
					"refresh_token": "refresh-1",
				},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)

	data, err := client.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "access-1", data.Token.AccessToken)
	assert.Equal(t, "access-1", client.Token())
}

func TestRefreshTokenReplacesStored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v4/session/token/refresh", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{"access_token": "access-2", "refresh_token": "refresh-2"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	client.SetToken("access-1")

	token, err := client.RefreshToken(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, "access-2", token.AccessToken)
	assert.Equal(t, "access-2", client.Token())
}

func TestFileContentEndpoints(t *testing.T) {
	t.Run("fetch content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/file/content", r.URL.Path)
			assert.Equal(t, "cloudreve://my/notes/todo.md", r.URL.Query().Get("uri"))
			json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": "# TODO"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		content, err := client.Content(context.Background(), "/notes/todo.md")
		require.NoError(t, err)
		assert.Equal(t, "# TODO", content)
	})

	t.Run("update content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v4/file/content", r.URL.Path)

			var body UpdateContentRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "cloudreve://my/notes/todo.md", body.URI)
			assert.Equal(t, "# Done", body.Content)

			json.NewEncoder(w).Encode(map[string]any{"code": 0})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		err = client.UpdateContent(context.Background(), "/notes/todo.md", "# Done")
		require.NoError(t, err)
	})

	t.Run("thumbnail URL with dimensions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v4/file/thumb", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "cloudreve://my/photo.jpg", q.Get("uri"))
			assert.Equal(t, "200", q.Get("width"))
			assert.Equal(t, "150", q.Get("height"))
			json.NewEncoder(w).Encode(map[string]any{"code": 0, "data": "https://cdn.example.com/thumb/photo.jpg"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, zerolog.Nop())
		require.NoError(t, err)

		u, err := client.ThumbnailURL(context.Background(), "/photo.jpg", 200, 150)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/thumb/photo.jpg", u)
	})
}

func TestFileTypeDecoding(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		var f File
		require.NoError(t, json.Unmarshal([]byte(`{"type":1,"name":"docs"}`), &f))
		assert.Equal(t, FileTypeFolder, f.Type)
		assert.True(t, f.IsDir())
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		var f File
		err := json.Unmarshal([]byte(`{"type":7,"name":"weird"}`), &f)
		require.Error(t, err)
	})
}

func TestUploadSessionTotalChunks(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int64
		fileSize  int64
		expected  int
	}{
		{"exact multiple", 100, 300, 3},
		{"remainder adds a chunk", 100, 301, 4},
		{"small file", 100, 10, 1},
		{"empty file", 100, 0, 1},
		{"no chunking", 0, 500, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &UploadSession{ChunkSize: tt.chunkSize}
			assert.Equal(t, tt.expected, s.TotalChunks(tt.fileSize))
		})
	}
}
