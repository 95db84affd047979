package apiv4

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/driveclient/go-cloudreve/apierror"
)

// CreateUploadSession asks the server to open a chunked upload session
// towards req.URI.
func (c *Client) CreateUploadSession(ctx context.Context, req *CreateUploadSessionRequest) (*UploadSession, error) {
	return requestData[UploadSession](ctx, c, http.MethodPut, "/file/upload", req, "upload session")
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

// DeleteUploadSession abandons an open upload session so the server can
// reclaim its placeholder.
func (c *Client) DeleteUploadSession(ctx context.Context, sessionID, path string) error {
	body := struct {
		ID  string `json:"id"`
		URI string `json:"uri"`
	}{ID: sessionID, URI: PathToURI(path)}
	return requestNone(ctx, c, http.MethodDelete, "/file/upload", body)
}
