package boxsync

import (
	"errors"
	"fmt"
)

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNilCallback - asynchronous operations require a completion callback
	ErrNilCallback = Error("completion callback is required for asynchronous operations")

	// ErrBoundaryCollision - the multipart boundary token occurs inside a part value or file content
	ErrBoundaryCollision = Error("multipart boundary occurs in part content")

	// ErrUnknownStatus - the server returned a status string with no known mapping
	ErrUnknownStatus = Error("unknown operation status")

	// ErrNoFiles - an upload was requested without any file paths
	ErrNoFiles = Error("at least one file path is required")

	// ErrUnsupportedObjectType - the operation does not accept the given object type
	ErrUnsupportedObjectType = Error("object type is not supported by this operation")
)

// Kind classifies an OpError so callers can tell misuse apart from runtime failure.
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindPrecondition - caller misuse detected before any network activity (nil callback, bad arguments).
	KindPrecondition
	// KindLocalIO - a local file could not be read while encoding the request body.
	KindLocalIO
	// KindTransport - connection, DNS, TLS, timeout or cancellation during write or response read.
	KindTransport
	// KindProtocol - the server answered with a non-2xx status. The body is still delivered as status text.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindLocalIO:
		return "local i/o"
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// OpError records the operation and kind of a failure.
type OpError struct {
	Op   string
	Kind Kind
	// StatusCode is set for KindProtocol errors.
	StatusCode int
	Err        error
}

func (e *OpError) Error() string {
	if e.Kind == KindProtocol && e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s error (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *OpError) Unwrap() error { return e.Err }

// NewOpError wraps err with an operation name and kind. A nil err yields nil.
func NewOpError(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Kind: kind, Err: err}
}

// KindOf returns the Kind of the first OpError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
