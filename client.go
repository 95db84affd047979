package cloudreve

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/driveclient/go-cloudreve/apierror"
	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// Client is the version-agnostic Cloudreve client. Exactly one of the
// generation bindings is active; every unified operation routes to it.
type Client struct {
	baseURL string
	version Version
	logger  zerolog.Logger

	v3 *apiv3.Client
	v4 *apiv4.Client
}

type settings struct {
	version    Version
	logger     zerolog.Logger
	httpClient *http.Client
	timeout    time.Duration
	probe      Probe
}

// Option configures a Client.
type Option func(*settings)

// WithVersion pins the API generation instead of auto-detecting it.
func WithVersion(v Version) Option {
	return func(s *settings) {
		s.version = v
	}
}

// WithLogger attaches a logger; without it the client is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		s.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithProbe replaces the version-detection rule used when no explicit
// version is given.
func WithProbe(p Probe) Option {
	return func(s *settings) {
		if p != nil {
			s.probe = p
		}
	}
}

// New builds a client for the server at baseURL. Unless WithVersion is
// given, the API generation is detected by probing the server; the
// probe is the only network activity construction performs.
func New(ctx context.Context, baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("cloudreve URL is required")
	}

	s := settings{
		logger: zerolog.Nop(),
		probe:  defaultProbe,
	}
	for _, opt := range opts {
		opt(&s)
	}

	var v3Opts []apiv3.Option
	var v4Opts []apiv4.Option
	if s.httpClient != nil {
		v3Opts = append(v3Opts, apiv3.WithHTTPClient(s.httpClient))
		v4Opts = append(v4Opts, apiv4.WithHTTPClient(s.httpClient))
	}
	if s.timeout > 0 {
		v3Opts = append(v3Opts, apiv3.WithTimeout(s.timeout))
		v4Opts = append(v4Opts, apiv4.WithTimeout(s.timeout))
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  s.logger,
	}

	switch s.version {
	case VersionV3:
		v3c, err := apiv3.NewClient(c.baseURL, s.logger, v3Opts...)
		if err != nil {
			return nil, err
		}
		c.version, c.v3 = VersionV3, v3c

	case VersionV4:
		v4c, err := apiv4.NewClient(c.baseURL, s.logger, v4Opts...)
		if err != nil {
			return nil, err
		}
		c.version, c.v4 = VersionV4, v4c

	case 0:
		v3c, err := apiv3.NewClient(c.baseURL, s.logger, v3Opts...)
		if err != nil {
			return nil, err
		}
		v4c, err := apiv4.NewClient(c.baseURL, s.logger, v4Opts...)
		if err != nil {
			return nil, err
		}

		detected, err := s.probe(ctx, v3c, v4c)
		if err != nil {
			return nil, err
		}
		switch detected {
		case VersionV3:
			c.version, c.v3 = VersionV3, v3c
		case VersionV4:
			c.version, c.v4 = VersionV4, v4c
		default:
			return nil, &apierror.VersionError{Op: "detect", Detail: fmt.Sprintf("probe returned %s", detected)}
		}
		s.logger.Debug().Stringer("version", c.version).Str("url", c.baseURL).Msg("detected cloudreve API version")

	default:
		return nil, fmt.Errorf("unsupported API version %s", s.version)
	}

	return c, nil
}

// BaseURL returns the configured server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version returns the active API generation.
func (c *Client) Version() Version {
	return c.version
}

// IsV3 reports whether the client speaks the v3 surface.
func (c *Client) IsV3() bool {
	return c.version == VersionV3
}

// IsV4 reports whether the client speaks the v4 surface.
func (c *Client) IsV4() bool {
	return c.version == VersionV4
}

// V3 exposes the generation-specific v3 binding, or nil when the client
// speaks v4. It is the escape hatch for endpoints the facade does not
// unify.
func (c *Client) V3() *apiv3.Client {
	return c.v3
}

// V4 exposes the generation-specific v4 binding, or nil when the client
// speaks v3.
func (c *Client) V4() *apiv4.Client {
	return c.v4
}

// versionErr flags an operation the active generation cannot serve.
func (c *Client) versionErr(op string) error {
	return &apierror.VersionError{
		Op:     op,
		Detail: fmt.Sprintf("not available on API %s", c.version),
	}
}

// ServerVersion pings the server and returns its reported version
// string.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	if c.IsV4() {
		return c.v4.Ping(ctx)
	}
	return c.v3.Ping(ctx)
}
