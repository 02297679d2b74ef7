package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which bridge operation the error occurred in
type Phase string

const (
	PhaseCreate  Phase = "create"  // encoder/decoder allocation and configuration
	PhaseEncode  Phase = "encode"  // PCM to packet
	PhaseDecode  Phase = "decode"  // packet to PCM
	PhaseDestroy Phase = "destroy" // resource release
	PhaseQuery   Phase = "query"   // version and size diagnostics
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidConfig Kind = "invalid_config"
	KindInvalidHandle Kind = "invalid_handle"
	KindNilBuffer     Kind = "nil_buffer"
	KindShortBuffer   Kind = "short_buffer"
	KindCodec         Kind = "codec"
	KindAllocation    Kind = "allocation"
	KindDestroyed     Kind = "destroyed"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string

	// Code is the codec library's own negative status code when the
	// error originated inside the codec, 0 otherwise. It is passed
	// through the bridge surface unchanged.
	Code int32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Code != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Code)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// Codec wraps a codec library status code. The code is preserved so the
// bridge surface can propagate it unchanged.
func Codec(phase Phase, code int32, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCodec,
		Code:   code,
		Detail: detail,
	}
}

// InvalidHandle creates an error for a zero, stale, or mismatched handle
func InvalidHandle(phase Phase, handle int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("handle %d is not a live resource", handle),
	}
}

// NilBuffer creates an error for a missing caller buffer
func NilBuffer(phase Phase, which string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilBuffer,
		Detail: fmt.Sprintf("%s buffer is nil or empty", which),
	}
}

// ShortBuffer creates an error for a buffer smaller than the frame requires
func ShortBuffer(phase Phase, which string, have, need int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindShortBuffer,
		Detail: fmt.Sprintf("%s buffer holds %d, frame requires %d", which, have, need),
	}
}

// InvalidConfig creates an error for rejected creation parameters
func InvalidConfig(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseCreate,
		Kind:   KindInvalidConfig,
		Detail: detail,
	}
}

// Allocation creates an error for a failed codec resource allocation
func Allocation(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseCreate,
		Kind:   KindAllocation,
		Detail: detail,
		Cause:  cause,
	}
}

// Destroyed creates an error for an operation on a released resource
func Destroyed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDestroyed,
		Detail: fmt.Sprintf("%s already destroyed", what),
	}
}

// Unsupported creates an error for an operation the linked codec
// implementation does not perform
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
