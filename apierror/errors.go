// Package apierror defines the closed set of error kinds surfaced by the
// Cloudreve client. Every failure is one of: transport failure, response
// decode failure, server-reported application error, authentication
// failure, or an unsupported API generation. All of them are recoverable
// by the caller.
package apierror

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrUnauthorized indicates a missing, invalid or expired credential.
	ErrUnauthorized = errors.New("cloudreve: unauthorized")
	// ErrUnsupportedVersion indicates version detection failed or an
	// operation was invoked against a generation that does not support it.
	ErrUnsupportedVersion = errors.New("cloudreve: unsupported API version")
)

// APIError carries a structured error reported by the server, either
// inside the standard {code, msg} envelope or attached to a non-2xx
// response. Code and Message are passed through verbatim.
type APIError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("cloudreve API error %d: %s", e.Code, e.Message)
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.Code == 404
}

// AuthError indicates the server rejected the credential (401/403-class
// response) or that no credential was available for an authenticated call.
type AuthError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("cloudreve auth error: %s", e.Message)
	}
	return fmt.Sprintf("cloudreve auth error: status %d: %s", e.StatusCode, e.Message)
}

// Is reports a match against ErrUnauthorized so callers can classify with
// errors.Is without knowing the concrete type.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// TransportError wraps a network-level failure: connection refused, DNS,
// timeout, or a body read that broke mid-flight.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("cloudreve transport error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a response body that did not match the expected
// schema on an otherwise successful exchange.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cloudreve decode error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// VersionError indicates version detection failed, or that an operation
// is not available on the selected API generation.
type VersionError struct {
	Op     string
	Detail string
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("cloudreve version error: %s", e.Detail)
	}
	return fmt.Sprintf("cloudreve version error: %s: %s", e.Op, e.Detail)
}

// Is reports a match against ErrUnsupportedVersion.
func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// IsAPI checks whether err is a server-reported application error.
func IsAPI(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// AsAPI returns the APIError inside err, if any.
func AsAPI(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsAuth checks whether err is an authentication failure.
func IsAuth(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsTransport checks whether err is a network-level failure.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// IsDecode checks whether err is a response decode failure.
func IsDecode(err error) bool {
	var dErr *DecodeError
	return errors.As(err, &dErr)
}

// IsUnsupportedVersion checks whether err relates to API generation
// detection or support.
func IsUnsupportedVersion(err error) bool {
	return errors.Is(err, ErrUnsupportedVersion)
}
