package apiv3

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/driveclient/go-cloudreve/apierror"
)

// CreateShare creates a share link for a single object. Depending on
// server build the endpoint answers with either the standard envelope or
// a bare share URL, so both shapes are accepted.
func (c *Client) CreateShare(ctx context.Context, req *ShareRequest) (*Share, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/share", req)
	if err != nil {
		return nil, err
	}
	raw, err := readBody("POST /share", resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &apierror.AuthError{StatusCode: resp.StatusCode, Message: envelopeMessage(raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if env, ok := decodeEnvelope(raw); ok && env.Code != 0 {
			return nil, &apierror.APIError{Code: env.Code, Message: env.Msg}
		}
		return nil, &apierror.APIError{Code: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	if env, ok := decodeEnvelope(raw); ok {
		if env.Code != 0 {
			return nil, &apierror.APIError{Code: env.Code, Message: env.Msg}
		}
		if len(env.Data) > 0 {
			var share Share
			if err := json.Unmarshal(env.Data, &share); err == nil && share.Key != "" {
				return &share, nil
			}
			// Some builds put the share URL into data as a plain string.
			var shareURL string
			if err := json.Unmarshal(env.Data, &shareURL); err == nil && shareURL != "" {
				return &Share{Key: keyFromShareURL(shareURL)}, nil
			}
		}
		return nil, &apierror.DecodeError{Err: errMissingData("share")}
	}

	// Fall back to treating the body as a bare URL.
	if u := strings.TrimSpace(strings.Trim(string(raw), `"`)); u != "" {
		return &Share{Key: keyFromShareURL(u)}, nil
	}
	return nil, &apierror.DecodeError{Err: errMissingData("share")}
}

// keyFromShareURL extracts the share key from a URL like
// https://example.com/s/abc123.
func keyFromShareURL(u string) string {
	u = strings.TrimRight(u, "/")
	if idx := strings.LastIndex(u, "/"); idx >= 0 {
		return u[idx+1:]
	}
	return u
}
