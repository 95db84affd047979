package cloudreve

import (
	"context"

	"github.com/driveclient/go-cloudreve/apiv3"
)

// Login authenticates with email and password and stores the resulting
// credential in the active binding: the session cookie on v3, the
// bearer access token on v4. Any previously stored credential is
// replaced.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if c.IsV4() {
		data, err := c.v4.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}
		return &Session{
			UserID:        data.User.ID,
			Email:         data.User.Email,
			Nickname:      data.User.Nickname,
			Token:         data.Token.AccessToken,
			RefreshToken:  data.Token.RefreshToken,
			AccessExpires: data.Token.AccessExpires,
		}, nil
	}

	user, err := c.v3.Login(ctx, &apiv3.LoginRequest{UserName: email, Password: password})
	if err != nil {
		return nil, err
	}
	return &Session{
		UserID:   user.ID,
		Email:    user.UserName,
		Nickname: user.Nickname,
	}, nil
}

// SetToken stores a credential obtained out of band: a bearer access
// token on v4, a session cookie value on v3. At most one credential is
// held; the previous one is discarded.
func (c *Client) SetToken(token string) {
	if c.IsV4() {
		c.v4.SetToken(token)
		return
	}
	c.v3.SetSession(token)
}

// Token returns the stored credential, if any.
func (c *Client) Token() string {
	if c.IsV4() {
		return c.v4.Token()
	}
	return c.v3.Session()
}

// RefreshToken exchanges a v4 refresh token for a fresh pair and stores
// the new access token. On v3 sessions are cookie-based and cannot be
// refreshed.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Session, error) {
	if !c.IsV4() {
		return nil, c.versionErr("refresh token")
	}

	token, err := c.v4.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:         token.AccessToken,
		RefreshToken:  token.RefreshToken,
		AccessExpires: token.AccessExpires,
	}, nil
}

// Logout revokes the server-side session and discards the stored
// credential, even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.IsV4() {
		return c.v4.Logout(ctx)
	}
	return c.v3.Logout(ctx)
}
