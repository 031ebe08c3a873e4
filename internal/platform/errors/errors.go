// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	"encoding/json"
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies errors for status mapping and logging
// Values are stable; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for a dependency that is not configured or not reachable
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is for rate limiting
	ErrorCodeTooManyRequests

	// ErrorCodeValidation is for bad or missing request input
	ErrorCodeValidation

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeUpstream is for a failed call to a third party API; see Upstream
	ErrorCodeUpstream
)

// String names the code for logs
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodePanic:
		return "panic"
	case ErrorCodeUnavailable:
		return "unavailable"
	case ErrorCodeTooManyRequests:
		return "too_many_requests"
	case ErrorCodeValidation:
		return "validation"
	case ErrorCodeNotFound:
		return "not_found"
	case ErrorCodeUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// HTTPStatusCode turns an ErrorCode into an http status code
// Upstream errors carry their own status, see HTTPStatus
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Upstream describes a failed third party response
// Status is 0 when no response arrived (dial error, timeout, bad body)
type Upstream struct {
	Source string          // wire key the raw body is reported under, e.g. "usda"
	Status int             // upstream HTTP status when it was not 2xx
	Body   json.RawMessage // raw upstream body when it was JSON, else nil
}

// Error is the structured error type with wrapping and metadata
// msg is client facing; code is machine facing
type Error struct {
	orig     error
	msg      string
	code     ErrorCode
	field    string
	op       string
	upstream *Upstream
}

// Wire is the client facing error body
// Upstream errors add one more key named after Upstream.Source
type Wire struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the client facing message without the cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Upstream returns the upstream metadata, nil unless code is ErrorCodeUpstream
func (e *Error) Upstream() *Upstream { return e.upstream }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// UpstreamOf returns upstream metadata anywhere in err's chain
func UpstreamOf(err error) (*Upstream, bool) {
	if e, ok := As(err); ok && e.upstream != nil {
		return e.upstream, true
	}
	return nil, false
}

// HTTPStatus returns the status to answer with for any error
// upstream errors mirror the upstream status when it is an error status, else 500
func HTTPStatus(err error) int {
	if up, ok := UpstreamOf(err); ok {
		if up.Status >= 400 && up.Status <= 599 {
			return up.Status
		}
		return http.StatusInternalServerError
	}
	return HTTPStatusCode(CodeOf(err))
}

// Details returns the cause text reported next to the client message
// empty when err carries no cause
func Details(err error) string {
	e, ok := As(err)
	if !ok {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	if e.orig == nil {
		return ""
	}
	return Root(e.orig).Error()
}

// WireFrom converts any error into the client facing body
// foreign errors are reported as a generic internal error
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Error: http.StatusText(http.StatusInternalServerError)}
	}
	w := Wire{Error: e.msg}
	if e.code == ErrorCodeUpstream {
		w.Details = Details(err)
	}
	return w
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error. If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error. If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// WithMessage replaces the client facing message, keeping code, cause and metadata
// foreign errors are wrapped with ErrorCodeUnknown
func WithMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		c := *e
		c.msg = msg
		return &c
	}
	return &Error{code: ErrorCodeUnknown, msg: msg, orig: err}
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapUpstream returns an ErrorCodeUpstream error wrapping orig with up attached
// a Body that is not valid JSON is dropped
func WrapUpstream(orig error, up Upstream, msg string) error {
	if len(up.Body) > 0 && !json.Valid(up.Body) {
		up.Body = nil
	}
	return &Error{code: ErrorCodeUpstream, msg: msg, orig: orig, upstream: &up}
}

// Sugar

// Validationf returns a validation error
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// TooManyRequestsf returns a rate limit error
func TooManyRequestsf(format string, a ...any) error {
	return Newf(ErrorCodeTooManyRequests, format, a...)
}

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// HTTP bundles status + wire in one shot
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}
