package apiv3

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/driveclient/go-cloudreve/apierror"
)

// Property fetches extended metadata for an object by ID.
func (c *Client) Property(ctx context.Context, id string, isFolder, traceRoot bool) (*Property, error) {
	params := url.Values{}
	params.Set("is_folder", strconv.FormatBool(isFolder))
	params.Set("trace_root", strconv.FormatBool(traceRoot))

	prop, err := request[*Property](ctx, c, http.MethodGet, "/object/property/"+id+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("object property")}
	}
	return prop, nil
}

// Rename renames a single object.
func (c *Client) Rename(ctx context.Context, req *RenameRequest) error {
	return requestNone(ctx, c, http.MethodPost, "/object/rename", req)
}

// Move moves objects into a destination directory.
func (c *Client) Move(ctx context.Context, req *MoveRequest) error {
	return requestNone(ctx, c, http.MethodPatch, "/object", req)
}

// Copy copies objects into a destination directory.
func (c *Client) Copy(ctx context.Context, req *CopyRequest) error {
	return requestNone(ctx, c, http.MethodPost, "/object/copy", req)
}

// Delete deletes a batch of objects. The v3 API takes the request body on
// DELETE.
func (c *Client) Delete(ctx context.Context, req *DeleteRequest) error {
	return requestNone(ctx, c, http.MethodDelete, "/object", req)
}
