package apiv3

import (
	"context"
	"net/http"
)

// CreateRemoteDownload submits URLs for offline (aria2) download into the
// destination directory.
func (c *Client) CreateRemoteDownload(ctx context.Context, req *RemoteDownloadRequest) error {
	return requestNone(ctx, c, http.MethodPost, "/aria2/url", req)
}

// ListDownloading lists offline download tasks still in flight.
func (c *Client) ListDownloading(ctx context.Context) ([]RemoteTask, error) {
	return request[[]RemoteTask](ctx, c, http.MethodGet, "/aria2/downloading", nil)
}

// ListFinished lists completed offline download tasks.
func (c *Client) ListFinished(ctx context.Context) ([]RemoteTask, error) {
	return request[[]RemoteTask](ctx, c, http.MethodGet, "/aria2/finished", nil)
}

// CancelRemoteDownload cancels an offline download task by GID.
func (c *Client) CancelRemoteDownload(ctx context.Context, gid string) error {
	return requestNone(ctx, c, http.MethodDelete, "/aria2/task/"+gid, nil)
}
