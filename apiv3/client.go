package apiv3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/driveclient/go-cloudreve/apierror"
)

// SessionCookieName is the cookie carrying the v3 session credential.
const SessionCookieName = "cloudreve-session"

// Client talks to the Cloudreve v3 API. Authentication uses the
// cloudreve-session cookie obtained from Login; ordinary calls only read
// the stored value.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	mu      sync.RWMutex
	session string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new v3 API client.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("cloudreve URL is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetSession stores the session cookie value, replacing any previous one.
func (c *Client) SetSession(session string) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

// Session returns the stored session cookie value, if any.
func (c *Client) Session() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// ClearSession discards the stored session cookie.
func (c *Client) ClearSession() {
	c.SetSession("")
}

// endpoint builds the full URL for an API path under /api/v3.
func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/api/v3/%s", c.baseURL, strings.TrimPrefix(path, "/"))
}

// do performs one HTTP exchange against the v3 API, attaching the session
// cookie when present. The caller owns the response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s := c.Session(); s != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: s})
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Msg("cloudreve v3 request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apierror.TransportError{Op: method + " " + path, Err: err}
	}

	return resp, nil
}

// doJSON marshals body (when non-nil) and performs the exchange.
func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType)
}

// readBody drains and closes the response body.
func readBody(op string, resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierror.TransportError{Op: op, Err: err}
	}
	return raw, nil
}

// decodeBody maps one response to a typed result following the shared
// error policy: 401/403 become AuthError, other non-2xx become APIError
// (with the embedded envelope code when the body carries one), a 2xx
// envelope with code != 0 becomes APIError, and a 2xx body that does not
// parse becomes DecodeError.
func decodeBody[T any](status int, raw []byte) (T, error) {
	var zero T

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return zero, &apierror.AuthError{StatusCode: status, Message: envelopeMessage(raw)}
	}
	if status < 200 || status > 299 {
		if env, ok := decodeEnvelope(raw); ok && env.Code != 0 {
			return zero, &apierror.APIError{Code: env.Code, Message: env.Msg}
		}
		return zero, &apierror.APIError{Code: status, Message: strings.TrimSpace(string(raw))}
	}

	var env Response[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, &apierror.DecodeError{Err: err}
	}
	if env.Code != 0 {
		return zero, &apierror.APIError{Code: env.Code, Message: env.Msg}
	}
	return env.Data, nil
}

// request performs one JSON exchange and decodes the envelope payload.
func request[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T
	resp, err := c.doJSON(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	raw, err := readBody(method+" "+path, resp)
	if err != nil {
		return zero, err
	}
	return decodeBody[T](resp.StatusCode, raw)
}

// requestNone is request for endpoints whose data payload is irrelevant.
func requestNone(ctx context.Context, c *Client, method, path string, body any) error {
	_, err := request[json.RawMessage](ctx, c, method, path, body)
	return err
}

// rawEnvelope is the envelope with an opaque payload, used for error
// sniffing and endpoints with non-standard bodies.
type rawEnvelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(raw []byte) (rawEnvelope, bool) {
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return rawEnvelope{}, false
	}
	return env, true
}

// envelopeMessage extracts the server message from an error body, falling
// back to the trimmed body itself.
func envelopeMessage(raw []byte) string {
	if env, ok := decodeEnvelope(raw); ok && env.Msg != "" {
		return env.Msg
	}
	return strings.TrimSpace(string(raw))
}
