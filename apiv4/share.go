package apiv4

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateShare publishes a share link and returns its URL.
func (c *Client) CreateShare(ctx context.Context, req *CreateShareRequest) (string, error) {
	shareURL, err := request[string](ctx, c, http.MethodPut, "/share", req)
	if err != nil {
		return "", err
	}
	return shareURL, nil
}

// ListShares lists one page of the caller's share links.
func (c *Client) ListShares(ctx context.Context, pageSize int) ([]ShareLink, error) {
	q := url.Values{}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	path := "/share"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	list, err := requestData[shareList](ctx, c, http.MethodGet, path, nil, "share list")
	if err != nil {
		return nil, err
	}
	return list.Shares, nil
}

// EditShare updates an existing share link.
func (c *Client) EditShare(ctx context.Context, shareID string, req *EditShareRequest) (string, error) {
	return request[string](ctx, c, http.MethodPost, "/share/"+shareID, req)
}

// DeleteShare removes a share link.
func (c *Client) DeleteShare(ctx context.Context, shareID string) error {
	return requestNone(ctx, c, http.MethodDelete, "/share/"+shareID, nil)
}

// ShareInfo looks up a share link, unlocking it with opts.Password when
// the share is private.
func (c *Client) ShareInfo(ctx context.Context, shareID string, opts *ShareInfoOptions) (*ShareLink, error) {
	q := url.Values{}
	if opts != nil {
		if opts.Password != "" {
			q.Set("password", opts.Password)
		}
		if opts.CountViews {
			q.Set("count_views", "true")
		}
		if opts.OwnerExtended {
			q.Set("owner_extended", "true")
		}
	}
	path := "/share/info/" + shareID
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	return requestData[ShareLink](ctx, c, http.MethodGet, path, nil, "share info")
}

// ReportAbuse files an abuse report against a share link.
func (c *Client) ReportAbuse(ctx context.Context, shareID, reason string) error {
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return requestNone(ctx, c, http.MethodPost, "/share/"+shareID+"/report", body)
}
