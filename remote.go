package cloudreve

import (
	"context"

	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// CreateRemoteDownload submits a URL for server-side download into the
// destination folder and returns the created tasks, when the server
// reports them.
func (c *Client) CreateRemoteDownload(ctx context.Context, url, dst string) ([]RemoteTask, error) {
	if c.IsV4() {
		tasks, err := c.v4.CreateRemoteDownload(ctx, &apiv4.CreateRemoteDownloadRequest{
			URL: url,
			Dst: apiv4.PathToURI(dst),
		})
		if err != nil {
			return nil, err
		}
		out := make([]RemoteTask, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, RemoteTask{ID: t.ID, Status: t.Status, CreatedAt: t.CreatedAt})
		}
		return out, nil
	}

	// The v3 endpoint acknowledges without task details.
	err := c.v3.CreateRemoteDownload(ctx, &apiv3.RemoteDownloadRequest{
		Dst: dst,
		URL: []string{url},
	})
	return nil, err
}

// ListRemoteDownloads lists server-side download tasks still in flight.
func (c *Client) ListRemoteDownloads(ctx context.Context) ([]RemoteTask, error) {
	if c.IsV4() {
		list, err := c.v4.ListTasks(ctx, "downloading", 0)
		if err != nil {
			return nil, err
		}
		out := make([]RemoteTask, 0, len(list.Tasks))
		for _, t := range list.Tasks {
			out = append(out, RemoteTask{ID: t.ID, Status: t.Status, CreatedAt: t.CreatedAt})
		}
		return out, nil
	}

	tasks, err := c.v3.ListDownloading(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RemoteTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, RemoteTask{ID: t.ID, Status: t.Status, CreatedAt: t.CreatedAt})
	}
	return out, nil
}

// CancelRemoteDownload cancels a server-side download task.
func (c *Client) CancelRemoteDownload(ctx context.Context, id string) error {
	if c.IsV4() {
		return c.v4.CancelRemoteDownload(ctx, id)
	}
	return c.v3.CancelRemoteDownload(ctx, id)
}
