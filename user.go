package cloudreve

import "context"

// StorageQuota reports the account's storage quota.
func (c *Client) StorageQuota(ctx context.Context) (*Quota, error) {
	if c.IsV4() {
		q, err := c.v4.Capacity(ctx)
		if err != nil {
			return nil, err
		}
		return &Quota{Used: q.Used, Total: q.Total}, nil
	}

	info, err := c.v3.Storage(ctx)
	if err != nil {
		return nil, err
	}
	return &Quota{Used: info.Used, Total: info.Total}, nil
}
