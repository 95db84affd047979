package apiv4

import (
	"context"
	"net/http"
	"net/url"
)

// Capacity reports the account's storage quota.
func (c *Client) Capacity(ctx context.Context) (*Quota, error) {
	return requestData[Quota](ctx, c, http.MethodGet, "/user/capacity", nil, "capacity")
}

// Me fetches the signed-in user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return requestData[User](ctx, c, http.MethodGet, "/user/me", nil, "profile")
}

// UpdateSetting patches account preference fields.
func (c *Client) UpdateSetting(ctx context.Context, settings *UserSettings) error {
	return requestNone(ctx, c, http.MethodPatch, "/user/setting", settings)
}

// Setting fetches account preference fields.
func (c *Client) Setting(ctx context.Context) (*UserSettings, error) {
	return requestData[UserSettings](ctx, c, http.MethodGet, "/user/setting", nil, "settings")
}

// UserInfo fetches the public profile of another user.
func (c *Client) UserInfo(ctx context.Context, userID string) (*User, error) {
	return requestData[User](ctx, c, http.MethodGet, "/user/info/"+url.PathEscape(userID), nil, "user info")
}

// UpdateProfile changes the signed-in user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*User, error) {
	return requestData[User](ctx, c, http.MethodPut, "/user/profile", req, "profile update")
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	return requestNone(ctx, c, http.MethodPost, "/user/password", body)
}

// StoragePolicies lists the storage policies available to the account.
func (c *Client) StoragePolicies(ctx context.Context) ([]StoragePolicy, error) {
	policies, err := request[[]StoragePolicy](ctx, c, http.MethodGet, "/user/setting/policies", nil)
	if err != nil {
		return nil, err
	}
	return policies, nil
}
