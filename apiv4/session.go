package apiv4

import (
	"context"
	"net/http"
	"net/url"
)

// PrepareLogin asks the server which sign-in methods are available for
// the email address. No authentication is required.
func (c *Client) PrepareLogin(ctx context.Context, email string) (*LoginPreparation, error) {
	path := "/session/prepare?" + url.Values{"email": {email}}.Encode()
	return requestData[LoginPreparation](ctx, c, http.MethodGet, path, nil, "login preparation")
}

// Login signs in with email and password and stores the returned access
// token for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginData, error) {
	body := LoginRequest{Email: email, Password: password}
	data, err := requestData[LoginData](ctx, c, http.MethodPost, "/session/token", body, "login")
	if err != nil {
		return nil, err
	}

	c.SetToken(data.Token.AccessToken)
	c.logger.Debug().Str("user", data.User.Email).Msg("logged in to cloudreve v4")
	return data, nil
}

// Login2FA finishes a sign-in that the server answered with a two-factor
// challenge. The returned access token is stored for subsequent calls.
func (c *Client) Login2FA(ctx context.Context, req *TwoFactorLoginRequest) (*Token, error) {
	token, err := requestData[Token](ctx, c, http.MethodPost, "/session/token/2fa", req, "2fa login")
	if err != nil {
		return nil, err
	}

	c.SetToken(token.AccessToken)
	return token, nil
}

// RefreshToken exchanges the refresh token for a fresh pair and stores
// the new access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Token, error) {
	body := RefreshTokenRequest{RefreshToken: refreshToken}
	token, err := requestData[Token](ctx, c, http.MethodPost, "/session/token/refresh", body, "token refresh")
	if err != nil {
		return nil, err
	}

	c.SetToken(token.AccessToken)
	return token, nil
}

// Logout revokes the server-side session. The stored token is discarded
// even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := requestNone(ctx, c, http.MethodDelete, "/session/token", nil)
	c.ClearToken()
	return err
}
