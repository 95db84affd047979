package apiv3

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/driveclient/go-cloudreve/apierror"
)

// normalizePath strips a trailing slash except for the root directory.
func normalizePath(path string) string {
	if path != "/" && strings.HasSuffix(path, "/") {
		return strings.TrimRight(path, "/")
	}
	return path
}

// ListDirectory lists the contents of a directory by path.
func (c *Client) ListDirectory(ctx context.Context, path string) (*DirectoryList, error) {
	escaped := url.PathEscape(normalizePath(path))
	list, err := request[*DirectoryList](ctx, c, http.MethodGet, "/directory"+escaped, nil)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("directory listing")}
	}
	return list, nil
}

// CreateDirectory creates a folder at the given path.
func (c *Client) CreateDirectory(ctx context.Context, req *CreateDirectoryRequest) error {
	return requestNone(ctx, c, http.MethodPut, "/directory", req)
}
