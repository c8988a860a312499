package musicbrainz

import (
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies a failed request.
type ErrorKind int

// Error kinds. Every failure returned by this package carries exactly one.
const (
	// ErrKindValidation: bad builder input. No network call was made.
	ErrKindValidation ErrorKind = iota + 1
	// ErrKindRateLimited: the server kept throttling until retries ran out.
	ErrKindRateLimited
	// ErrKindAPI: the server rejected the request with a non-throttling status.
	ErrKindAPI
	// ErrKindTransport: the request never produced an HTTP response.
	ErrKindTransport
	// ErrKindDeserialization: the response body did not match the target record.
	ErrKindDeserialization
	// ErrKindConfiguration: the client or a static table is misconfigured.
	ErrKindConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindValidation:
		return "validation"
	case ErrKindRateLimited:
		return "rate limited"
	case ErrKindAPI:
		return "api"
	case ErrKindTransport:
		return "transport"
	case ErrKindDeserialization:
		return "deserialization"
	case ErrKindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error represents a failed MusicBrainz request.
//
// The Error type carries the failure kind together with whatever
// diagnostic payload that kind has: the HTTP status and body for API
// errors, the raw body for deserialization errors, the attempt count for
// rate limiting, and the wrapped cause for transport errors.
type Error struct {
	Kind       ErrorKind
	StatusCode int    // HTTP status (API and RateLimited)
	Body       []byte // Raw response body (API and Deserialization)
	Message    string // Human readable detail
	Attempts   int    // Dispatch attempts made (RateLimited)
	Err        error  // Underlying cause, if any
}

// Error returns the error message.
func (e *Error) Error() string {
	msg := "musicbrainz: " + e.Kind.String() + " error"
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
//
// This allows errors.Is(err, musicbrainz.ErrValidation) and friends.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Temporary returns true if repeating the request later may succeed.
//
// Rate limiting is always temporary. Transport errors are temporary when
// the underlying network error reports a timeout.
func (e *Error) Temporary() bool {
	switch e.Kind {
	case ErrKindRateLimited:
		return true
	case ErrKindTransport:
		var netErr net.Error
		return errors.As(e.Err, &netErr) && netErr.Timeout()
	case ErrKindAPI:
		return e.StatusCode >= 500
	default:
		return false
	}
}

// Sentinels for errors.Is. They only carry a kind.
var (
	ErrValidation      = &Error{Kind: ErrKindValidation}
	ErrRateLimited     = &Error{Kind: ErrKindRateLimited}
	ErrAPI             = &Error{Kind: ErrKindAPI}
	ErrTransport       = &Error{Kind: ErrKindTransport}
	ErrDeserialization = &Error{Kind: ErrKindDeserialization}
	ErrConfiguration   = &Error{Kind: ErrKindConfiguration}
)

func validationError(err error) *Error {
	return &Error{Kind: ErrKindValidation, Err: err}
}

func validationErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

func transportError(err error) *Error {
	return &Error{Kind: ErrKindTransport, Err: err}
}
