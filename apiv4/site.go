package apiv4

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/driveclient/go-cloudreve/apierror"
)

// Ping checks that the server answers on the v4 surface and returns its
// reported version string. A server that only speaks v3 answers with a
// 404 here, which surfaces as an APIError.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/site/ping", nil)
	if err != nil {
		return "", err
	}
	raw, err := readBody("GET /site/ping", resp)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", &apierror.AuthError{StatusCode: resp.StatusCode, Message: envelopeMessage(raw)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &apierror.APIError{Code: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	env, ok := decodeEnvelope(raw)
	if !ok {
		return "", &apierror.DecodeError{Err: fmt.Errorf("ping response is not a v4 envelope")}
	}
	if env.Code != 0 {
		return "", &apierror.APIError{Code: env.Code, Message: env.Msg}
	}

	var version string
	if len(env.Data) > 0 {
		_ = json.Unmarshal(env.Data, &version)
	}
	if version == "" {
		version = env.Msg
	}
	return version, nil
}

// SiteConfig fetches the public site configuration.
func (c *Client) SiteConfig(ctx context.Context) (*SiteConfig, error) {
	return requestData[SiteConfig](ctx, c, http.MethodGet, "/site/config/basic", nil, "site config")
}
