package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &APIError{Code: 40001, Message: "path not found"}
		assert.Equal(t, "cloudreve API error 40001: path not found", err.Error())
	})

	t.Run("IsNotFound", func(t *testing.T) {
		assert.True(t, (&APIError{Code: 404}).IsNotFound())
		assert.False(t, (&APIError{Code: 40001}).IsNotFound())
	})

	t.Run("classification", func(t *testing.T) {
		err := fmt.Errorf("listing: %w", &APIError{Code: 40001, Message: "nope"})
		assert.True(t, IsAPI(err))

		apiErr, ok := AsAPI(err)
		assert.True(t, ok)
		assert.Equal(t, 40001, apiErr.Code)
	})
}

func TestAuthError(t *testing.T) {
	t.Run("matches ErrUnauthorized", func(t *testing.T) {
		err := fmt.Errorf("call: %w", &AuthError{StatusCode: 401, Message: "expired"})
		assert.True(t, errors.Is(err, ErrUnauthorized))
		assert.True(t, IsAuth(err))
	})

	t.Run("not an API error", func(t *testing.T) {
		assert.False(t, IsAPI(&AuthError{StatusCode: 403}))
	})

	t.Run("message without status", func(t *testing.T) {
		err := &AuthError{Message: "no credential"}
		assert.Equal(t, "cloudreve auth error: no credential", err.Error())
	})
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "GET /site/ping", Err: cause}

	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET /site/ping")
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: cause}

	assert.True(t, IsDecode(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsTransport(err))
}

func TestVersionError(t *testing.T) {
	err := fmt.Errorf("connect: %w", &VersionError{Op: "detect", Detail: "nothing answered"})

	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
	assert.True(t, IsUnsupportedVersion(err))
	assert.False(t, IsAuth(err))
}
