package apiv3

import (
	"context"
	"net/http"

	"github.com/driveclient/go-cloudreve/apierror"
)

// Login authenticates with email and password. On success the session
// cookie from the Set-Cookie header replaces any stored credential.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/user/session", req)
	if err != nil {
		return nil, err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			c.SetSession(cookie.Value)
			c.logger.Debug().Msg("captured v3 session cookie")
		}
	}

	raw, err := readBody("POST /user/session", resp)
	if err != nil {
		return nil, err
	}

	user, err := decodeBody[*User](resp.StatusCode, raw)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("login")}
	}
	return user, nil
}

// LoginOTP finishes a two-factor login started by Login. The session
// cookie is refreshed from the response when present.
func (c *Client) LoginOTP(ctx context.Context, req *OTPLoginRequest) (*User, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/user/2fa", req)
	if err != nil {
		return nil, err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookieName && cookie.Value != "" {
			c.SetSession(cookie.Value)
		}
	}

	raw, err := readBody("POST /user/2fa", resp)
	if err != nil {
		return nil, err
	}

	user, err := decodeBody[*User](resp.StatusCode, raw)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("2fa login")}
	}
	return user, nil
}

// Logout terminates the server-side session. The local cookie is cleared
// regardless of outcome.
func (c *Client) Logout(ctx context.Context) error {
	err := requestNone(ctx, c, http.MethodDelete, "/user/session", nil)
	c.ClearSession()
	return err
}
