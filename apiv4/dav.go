package apiv4

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListDAVAccounts lists one page of the account's WebDAV credentials.
func (c *Client) ListDAVAccounts(ctx context.Context, pageSize int) (*DAVAccountList, error) {
	q := url.Values{}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	path := "/devices/dav"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	return requestData[DAVAccountList](ctx, c, http.MethodGet, path, nil, "dav accounts")
}

// CreateDAVAccount creates a WebDAV credential rooted at req.URI.
func (c *Client) CreateDAVAccount(ctx context.Context, req *CreateDAVAccountRequest) (*DAVAccount, error) {
	return requestData[DAVAccount](ctx, c, http.MethodPut, "/devices/dav", req, "dav account")
}

// UpdateDAVAccount replaces the mutable fields of a WebDAV credential.
func (c *Client) UpdateDAVAccount(ctx context.Context, id string, req *UpdateDAVAccountRequest) (*DAVAccount, error) {
	return requestData[DAVAccount](ctx, c, http.MethodPatch, "/devices/dav/"+id, req, "dav account")
}

// DeleteDAVAccount removes a WebDAV credential.
func (c *Client) DeleteDAVAccount(ctx context.Context, id string) error {
	return requestNone(ctx, c, http.MethodDelete, "/devices/dav/"+id, nil)
}
