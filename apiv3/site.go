package apiv3

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/driveclient/go-cloudreve/apierror"
)

// errMissingData flags a successful envelope that lacked its payload.
func errMissingData(op string) error {
	return fmt.Errorf("missing data in %s response", op)
}

// Ping checks the server and returns its reported version string.
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
		return "", &apierror.DecodeError{Err: fmt.Errorf("ping response is not a v3 envelope")}
	}
	if env.Code != 0 {
		return "", &apierror.APIError{Code: env.Code, Message: env.Msg}
	}

	// Depending on server build the version lives in data or msg.
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
	cfg, err := request[*SiteConfig](ctx, c, http.MethodGet, "/site/config", nil)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("site config")}
	}
	return cfg, nil
}
