package apiv4

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListFiles lists one page of a directory. The path is converted to URI
// form; paging and ordering come from opts when non-nil.
func (c *Client) ListFiles(ctx context.Context, path string, opts *ListOptions) (*ListResponse, error) {
	q := url.Values{}
	q.Set("uri", PathToURI(path))
	if opts != nil {
		if opts.Page > 0 {
			q.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			q.Set("page_size", strconv.Itoa(opts.PageSize))
		}
		if opts.OrderBy != "" {
			q.Set("order_by", opts.OrderBy)
		}
		if opts.OrderDirection != "" {
			q.Set("order_direction", opts.OrderDirection)
		}
		if opts.NextPageToken != "" {
			q.Set("next_page_token", opts.NextPageToken)
		}
	}

	return requestData[ListResponse](ctx, c, http.MethodGet, "/file?"+q.Encode(), nil, "file list")
}

// FileInfo fetches metadata for a single file or folder.
func (c *Client) FileInfo(ctx context.Context, path string) (*File, error) {
	q := url.Values{"uri": {PathToURI(path)}}
	return requestData[File](ctx, c, http.MethodGet, "/file/info?"+q.Encode(), nil, "file info")
}

// CreateFile creates an empty file or folder described by req.
func (c *Client) CreateFile(ctx context.Context, req *CreateFileRequest) (*File, error) {
	return requestData[File](ctx, c, http.MethodPost, "/file/create", req, "file create")
}

// CreateDirectory creates a folder at the given path.
func (c *Client) CreateDirectory(ctx context.Context, path string) (*File, error) {
	return c.CreateFile(ctx, &CreateFileRequest{
		URI:  PathToURI(path),
		Type: "folder",
	})
}

// Rename gives the file at path a new name, leaving it in place.
func (c *Client) Rename(ctx context.Context, path, newName string) error {
	body := RenameRequest{URI: PathToURI(path), NewName: newName}
	return requestNone(ctx, c, http.MethodPost, "/file/rename", body)
}

// Move moves files into the destination folder.
func (c *Client) Move(ctx context.Context, paths []string, dst string) error {
	body := MoveCopyRequest{URIs: PathsToURIs(paths), Dst: PathToURI(dst)}
	return requestNone(ctx, c, http.MethodPost, "/file/move", body)
}

// Copy copies files into the destination folder.
func (c *Client) Copy(ctx context.Context, paths []string, dst string) error {
	body := MoveCopyRequest{URIs: PathsToURIs(paths), Dst: PathToURI(dst), Copy: true}
	return requestNone(ctx, c, http.MethodPost, "/file/move", body)
}

// Delete removes files. With req.SkipSoftDelete the trash bin is
// bypassed.
func (c *Client) Delete(ctx context.Context, req *DeleteRequest) error {
	return requestNone(ctx, c, http.MethodDelete, "/file", req)
}

// Restore brings soft-deleted files back from the trash bin.
func (c *Client) Restore(ctx context.Context, paths []string) error {
	body := struct {
		URIs []string `json:"uris"`
	}{URIs: PathsToURIs(paths)}
	return requestNone(ctx, c, http.MethodPost, "/file/restore", body)
}

// DownloadURLs resolves temporary download links for the requested
// files.
func (c *Client) DownloadURLs(ctx context.Context, req *DownloadURLRequest) (*DownloadURLs, error) {
	return requestData[DownloadURLs](ctx, c, http.MethodPost, "/file/url", req, "download url")
}

// UpdateMetadata patches custom metadata entries on the file at path.
func (c *Client) UpdateMetadata(ctx context.Context, path string, req *UpdateMetadataRequest) error {
	q := url.Values{"uri": {PathToURI(path)}}
	return requestNone(ctx, c, http.MethodPatch, "/file/metadata?"+q.Encode(), req)
}

// ThumbnailURL resolves a temporary thumbnail link for the file at
// path. Width and height are hints; zero leaves them to the server.
func (c *Client) ThumbnailURL(ctx context.Context, path string, width, height int) (string, error) {
	q := url.Values{"uri": {PathToURI(path)}}
	if width > 0 {
		q.Set("width", strconv.Itoa(width))
	}
	if height > 0 {
		q.Set("height", strconv.Itoa(height))
	}
	u, err := requestData[string](ctx, c, http.MethodGet, "/file/thumb?"+q.Encode(), nil, "thumbnail url")
	if err != nil {
		return "", err
	}
	return *u, nil
}

// Content fetches the content of a text file.
func (c *Client) Content(ctx context.Context, path string) (string, error) {
	q := url.Values{"uri": {PathToURI(path)}}
	content, err := requestData[string](ctx, c, http.MethodGet, "/file/content?"+q.Encode(), nil, "file content")
	if err != nil {
		return "", err
	}
	return *content, nil
}

// UpdateContent replaces the content of a text file.
func (c *Client) UpdateContent(ctx context.Context, path, content string) error {
	body := UpdateContentRequest{URI: PathToURI(path), Content: content}
	return requestNone(ctx, c, http.MethodPut, "/file/content", body)
}
