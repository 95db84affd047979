package cloudreve

import (
	"context"

	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// ShareOptions tunes a new share link. A non-empty Password makes the
// share private.
type ShareOptions struct {
	Password string
	// Expire is the lifetime in seconds; zero means no expiry.
	Expire int
	// Downloads limits how often the share can be downloaded (v3 only).
	Downloads int
	// Preview allows previewing shared files in the browser (v3 only).
	Preview bool
}

// CreateShare publishes a share link for the file or folder at path.
func (c *Client) CreateShare(ctx context.Context, path string, opts *ShareOptions) (*ShareItem, error) {
	var o ShareOptions
	if opts != nil {
		o = *opts
	}

	if c.IsV4() {
		shareURL, err := c.v4.CreateShare(ctx, &apiv4.CreateShareRequest{
			URI:       apiv4.PathToURI(path),
			IsPrivate: o.Password != "",
			Password:  o.Password,
			Expire:    o.Expire,
		})
		if err != nil {
			return nil, err
		}
		_, name := splitPath(path)
		return &ShareItem{
			Name:      name,
			URL:       shareURL,
			IsPrivate: o.Password != "",
		}, nil
	}

	obj, err := c.findV3Object(ctx, path)
	if err != nil {
		return nil, err
	}
	share, err := c.v3.CreateShare(ctx, &apiv3.ShareRequest{
		ID:        obj.ID,
		IsDir:     obj.IsDir(),
		Password:  o.Password,
		Downloads: o.Downloads,
		Expire:    o.Expire,
		Preview:   o.Preview,
	})
	if err != nil {
		return nil, err
	}
	return &ShareItem{
		ID:        share.Key,
		Name:      obj.Name,
		URL:       c.baseURL + "/s/" + share.Key,
		IsPrivate: o.Password != "",
	}, nil
}

// ListShares lists the caller's share links. The v3 API has no
// comparable listing, so the call reports a VersionError there.
func (c *Client) ListShares(ctx context.Context) ([]ShareItem, error) {
	if !c.IsV4() {
		return nil, c.versionErr("list shares")
	}

	shares, err := c.v4.ListShares(ctx, 0)
	if err != nil {
		return nil, err
	}
	items := make([]ShareItem, 0, len(shares))
	for _, s := range shares {
		items = append(items, shareItemFromV4(s))
	}
	return items, nil
}

// UpdateShare updates an existing share link (v4 only).
func (c *Client) UpdateShare(ctx context.Context, shareID string, req *apiv4.EditShareRequest) (string, error) {
	if !c.IsV4() {
		return "", c.versionErr("update share")
	}
	return c.v4.EditShare(ctx, shareID, req)
}

// DeleteShare removes a share link (v4 only).
func (c *Client) DeleteShare(ctx context.Context, shareID string) error {
	if !c.IsV4() {
		return c.versionErr("delete share")
	}
	return c.v4.DeleteShare(ctx, shareID)
}
