package apiv4

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateRemoteDownload submits a URL for server-side download and
// returns the created tasks.
func (c *Client) CreateRemoteDownload(ctx context.Context, req *CreateRemoteDownloadRequest) ([]Task, error) {
	return request[[]Task](ctx, c, http.MethodPost, "/workflow/download", req)
}

// SelectDownloadFiles narrows a torrent download task to the selected
// files.
func (c *Client) SelectDownloadFiles(ctx context.Context, taskID string, files []string) error {
	body := struct {
		Files []string `json:"files"`
	}{Files: files}
	return requestNone(ctx, c, http.MethodPatch, "/workflow/download/"+taskID, body)
}

// CancelRemoteDownload cancels a download task.
func (c *Client) CancelRemoteDownload(ctx context.Context, taskID string) error {
	return requestNone(ctx, c, http.MethodDelete, "/workflow/download/"+taskID, nil)
}

// ListTasks lists one page of workflow tasks in the given category
// ("general" or "downloading" style buckets as defined by the server).
func (c *Client) ListTasks(ctx context.Context, category string, pageSize int) (*TaskList, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	path := "/workflow"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	return requestData[TaskList](ctx, c, http.MethodGet, path, nil, "task list")
}

// TaskProgress reports progress counters for one task.
func (c *Client) TaskProgress(ctx context.Context, taskID string) (*TaskProgress, error) {
	return requestData[TaskProgress](ctx, c, http.MethodGet, "/workflow/progress/"+taskID, nil, "task progress")
}
