package apiv3

import (
	"context"
	"net/http"

	"github.com/driveclient/go-cloudreve/apierror"
)

// webdavAccountList wraps the accounts array inside the data payload.
type webdavAccountList struct {
	Accounts []WebDAVAccount `json:"accounts"`
}

// Storage reports the account's storage quota.
func (c *Client) Storage(ctx context.Context) (*StorageInfo, error) {
	info, err := request[*StorageInfo](ctx, c, http.MethodGet, "/user/storage", nil)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, &apierror.DecodeError{Err: errMissingData("storage")}
	}
	return info, nil
}

// WebDAVAccounts lists the account's WebDAV credentials.
func (c *Client) WebDAVAccounts(ctx context.Context) ([]WebDAVAccount, error) {
	wrapper, err := request[webdavAccountList](ctx, c, http.MethodGet, "/webdav/accounts", nil)
	if err != nil {
		return nil, err
	}
	return wrapper.Accounts, nil
}
