package apiv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathToURI(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"absolute path", "/path/to/file.txt", "cloudreve://my/path/to/file.txt"},
		{"relative path", "path/to/file.txt", "cloudreve://my/path/to/file.txt"},
		{"already a URI", "cloudreve://my/path/to/file.txt", "cloudreve://my/path/to/file.txt"},
		{"root", "/", "cloudreve://my/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PathToURI(tt.path))
		})
	}
}

func TestIsValidURI(t *testing.T) {
	assert.True(t, IsValidURI("cloudreve://my/path/to/file.txt"))
	assert.True(t, IsValidURI("cloudreve://my/"))
	assert.False(t, IsValidURI("/path/to/file.txt"))
	assert.False(t, IsValidURI("path/to/file.txt"))
	assert.False(t, IsValidURI("cloudreve://"))
}

func TestURIToPath(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p, err := URIToPath("cloudreve://my/path/to/file.txt")
		require.NoError(t, err)
		assert.Equal(t, "/path/to/file.txt", p)

		p, err = URIToPath("cloudreve://my/")
		require.NoError(t, err)
		assert.Equal(t, "/", p)
	})

	t.Run("invalid URIs", func(t *testing.T) {
		_, err := URIToPath("/path/to/file.txt")
		require.Error(t, err)

		_, err = URIToPath("cloudreve://")
		require.Error(t, err)
	})
}

func TestPathsToURIs(t *testing.T) {
	uris := PathsToURIs([]string{"/file1.txt", "file2.txt", "cloudreve://my/file3.txt"})
	assert.Equal(t, []string{
		"cloudreve://my/file1.txt",
		"cloudreve://my/file2.txt",
		"cloudreve://my/file3.txt",
	}, uris)
}
