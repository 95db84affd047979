package cloudreve

import (
	"context"
	"strconv"

	"github.com/driveclient/go-cloudreve/apiv4"
)

// ListDAVAccounts lists the account's WebDAV credentials.
func (c *Client) ListDAVAccounts(ctx context.Context) ([]DAVAccount, error) {
	if c.IsV4() {
		list, err := c.v4.ListDAVAccounts(ctx, 0)
		if err != nil {
			return nil, err
		}
		accounts := make([]DAVAccount, 0, len(list.Accounts))
		for _, a := range list.Accounts {
			root := a.URI
			if p, err := apiv4.URIToPath(a.URI); err == nil {
				root = p
			}
			accounts = append(accounts, DAVAccount{
				ID:        a.ID,
				Name:      a.Name,
				Root:      root,
				Password:  a.Password,
				CreatedAt: a.CreatedAt,
			})
		}
		return accounts, nil
	}

	v3Accounts, err := c.v3.WebDAVAccounts(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]DAVAccount, 0, len(v3Accounts))
	for _, a := range v3Accounts {
		accounts = append(accounts, DAVAccount{
			ID:        strconv.Itoa(a.ID),
			Name:      a.Name,
			Root:      a.Root,
			Password:  a.Password,
			CreatedAt: a.CreatedAt,
		})
	}
	return accounts, nil
}

// CreateDAVAccount creates a WebDAV credential rooted at path (v4
// only).
func (c *Client) CreateDAVAccount(ctx context.Context, name, path string) (*DAVAccount, error) {
	if !c.IsV4() {
		return nil, c.versionErr("create dav account")
	}

	a, err := c.v4.CreateDAVAccount(ctx, &apiv4.CreateDAVAccountRequest{
		URI:  apiv4.PathToURI(path),
		Name: name,
	})
	if err != nil {
		return nil, err
	}
	return &DAVAccount{
		ID:        a.ID,
		Name:      a.Name,
		Root:      path,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
	}, nil
}

// UpdateDAVAccount replaces the name and root of a WebDAV credential
// (v4 only).
func (c *Client) UpdateDAVAccount(ctx context.Context, id, name, path string) (*DAVAccount, error) {
	if !c.IsV4() {
		return nil, c.versionErr("update dav account")
	}

	a, err := c.v4.UpdateDAVAccount(ctx, id, &apiv4.UpdateDAVAccountRequest{
		URI:  apiv4.PathToURI(path),
		Name: name,
	})
	if err != nil {
		return nil, err
	}
	return &DAVAccount{
		ID:        a.ID,
		Name:      a.Name,
		Root:      path,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
	}, nil
}

// DeleteDAVAccount removes a WebDAV credential (v4 only).
func (c *Client) DeleteDAVAccount(ctx context.Context, id string) error {
	if !c.IsV4() {
		return c.versionErr("delete dav account")
	}
	return c.v4.DeleteDAVAccount(ctx, id)
}
