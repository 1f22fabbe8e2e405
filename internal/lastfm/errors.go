package lastfm

import (
	"errors"
	"fmt"
)

// Last.fm error codes worth telling apart.
const (
	CodeInvalidParameters = 6
	CodeOperationFailed   = 8
	CodeServiceOffline    = 11
	CodeTemporaryError    = 16
	CodeRateLimited       = 29
)

// TransportError is a failure to reach Last.fm or an unexpected HTTP status
// without an error payload.
type TransportError struct {
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("last.fm transport: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("last.fm transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError is an error payload returned by Last.fm, such as an unknown
// user or an invalid range.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("last.fm error %d: %s", e.Code, e.Message)
}

// ParseError is a response body that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("last.fm parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsServiceError reports whether err carries a Last.fm error payload and
// returns it.
func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// transient reports whether a retry may succeed.
func transient(err error) bool {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr.StatusCode == 0 || tErr.StatusCode >= 500
	}
	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case CodeOperationFailed, CodeServiceOffline, CodeTemporaryError:
			return true
		}
	}
	return false
}
