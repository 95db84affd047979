package cloudreve

import (
	"context"
	"fmt"
	"strings"

	"github.com/blang/semver"
	"golang.org/x/sync/errgroup"

	"github.com/driveclient/go-cloudreve/apierror"
	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// Version identifies a Cloudreve API generation.
type Version int

// Supported API generations. The zero value means "not yet detected".
const (
	VersionV3 Version = 3
	VersionV4 Version = 4
)

// String implements fmt.Stringer.
func (v Version) String() string {
	switch v {
	case VersionV3:
		return "v3"
	case VersionV4:
		return "v4"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ParseVersion parses a version selector such as "v3", "3" or "V4".
func ParseVersion(s string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v3", "3":
		return VersionV3, nil
	case "v4", "4":
		return VersionV4, nil
	default:
		return 0, fmt.Errorf("unknown API version %q", s)
	}
}

// Probe decides which API generation a server speaks. Custom probes can
// short-circuit detection for deployments where the default rule is
// wrong, for example servers that block the ping endpoints.
type Probe func(ctx context.Context, v3 *apiv3.Client, v4 *apiv4.Client) (Version, error)

// defaultProbe pings both generations concurrently and prefers v4. A
// server that only answers the v3-shaped ping but reports a 4.x version
// string is still treated as v4; that happens behind proxies that keep
// the old path alive.
func defaultProbe(ctx context.Context, v3c *apiv3.Client, v4c *apiv4.Client) (Version, error) {
	var (
		v3Version string
		v3Err     error
		v4Err     error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, v4Err = v4c.Ping(gctx)
		return nil
	})
	g.Go(func() error {
		v3Version, v3Err = v3c.Ping(gctx)
		return nil
	})
	_ = g.Wait()

	if v4Err == nil {
		return VersionV4, nil
	}
	if v3Err == nil {
		if sv, err := semver.ParseTolerant(v3Version); err == nil && sv.Major >= 4 {
			return VersionV4, nil
		}
		return VersionV3, nil
	}

	return 0, &apierror.VersionError{
		Op:     "detect",
		Detail: fmt.Sprintf("neither API generation answered (v4: %v; v3: %v)", v4Err, v3Err),
	}
}
