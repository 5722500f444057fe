package ps2

import "fmt"

// ErrorKind is the closed set of transport-level failure causes a
// KeyboardPort implementation may report. Translation-level problems
// (unrecognized scancodes) are not errors and never appear here.
type ErrorKind int

const (
	// ErrDeviceUnavailable means no keyboard is present on the port, or the
	// device disappeared between detection and use.
	ErrDeviceUnavailable ErrorKind = iota
	// ErrNoData means a read was attempted where the implementation cannot
	// represent "nothing available" as a nil scancode (e.g. a closed stream).
	ErrNoData
	// ErrRetriesExceeded means a command was resent the maximum number of
	// times without an ack.
	ErrRetriesExceeded
	// ErrUnexpectedResponse means the device answered a command with a byte
	// that is neither ack nor resend.
	ErrUnexpectedResponse
	// ErrWriteFailed means the command byte could not be delivered at all.
	ErrWriteFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDeviceUnavailable:
		return "device unavailable"
	case ErrNoData:
		return "no data"
	case ErrRetriesExceeded:
		return "retries exceeded"
	case ErrUnexpectedResponse:
		return "unexpected response"
	case ErrWriteFailed:
		return "write failed"
	default:
		return "unknown"
	}
}

// Error is a transport failure tagged with its kind. Implementations of
// KeyboardPort wrap their failures in this type so callers can switch on
// Kind without parsing strings.
type Error struct {
	Kind ErrorKind
	// Response holds the offending byte for ErrUnexpectedResponse.
	Response byte
	Err      error
}

func (e *Error) Error() string {
	if e.Kind == ErrUnexpectedResponse {
		return fmt.Sprintf("ps2: %s (0x%02X)", e.Kind, e.Response)
	}
	if e.Err != nil {
		return fmt.Sprintf("ps2: %s: %v", e.Kind, e.Err)
	}
	return "ps2: " + e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError builds a transport error of the given kind wrapping err.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
