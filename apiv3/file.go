package apiv3

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/driveclient/go-cloudreve/apierror"
)

// CreateUploadSession asks the server to open a chunked upload session.
func (c *Client) CreateUploadSession(ctx context.Context, req *UploadRequest) (*UploadSession, error) {
	session, err := request[*UploadSession](ctx, c, http.MethodPut, "/file/upload", req)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("upload session")}
	}
	return session, nil
}

// UploadChunk sends one raw chunk for an open upload session. The caller
// drives the chunk loop; each call is a single HTTP exchange.
func (c *Client) UploadChunk(ctx context.Context, sessionID string, index int, data []byte) error {
	path := fmt.Sprintf("/file/upload/%s/%d", sessionID, index)
	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/octet-stream")
	if err != nil {
		return err
	}
	raw, err := readBody("POST "+path, resp)
	if err != nil {
		return err
	}

	// Chunk uploads answer with an empty or minimal body; only the status
	// and an embedded error code matter.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &apierror.AuthError{StatusCode: resp.StatusCode, Message: envelopeMessage(raw)}
	}
	if env, ok := decodeEnvelope(raw); ok && env.Code != 0 {
		return &apierror.APIError{Code: env.Code, Message: env.Msg}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apierror.APIError{Code: resp.StatusCode, Message: envelopeMessage(raw)}
	}
	return nil
}

// DownloadURL requests a temporary download link for a file by object ID.
func (c *Client) DownloadURL(ctx context.Context, id string) (*DownloadURL, error) {
	dl, err := request[*DownloadURL](ctx, c, http.MethodPut, "/file/download/"+id, struct{}{})
	if err != nil {
		return nil, err
	}
	if dl == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("download URL")}
	}
	return dl, nil
}

// Sources resolves direct-source links for a batch of file IDs.
func (c *Client) Sources(ctx context.Context, req *SourceRequest) ([]FileSource, error) {
	return request[[]FileSource](ctx, c, http.MethodPost, "/file/source", req)
}

// CreateFile creates an empty file at the given path.
func (c *Client) CreateFile(ctx context.Context, req *CreateFileRequest) error {
	return requestNone(ctx, c, http.MethodPost, "/file/create", req)
}
