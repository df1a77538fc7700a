package api

import "fmt"

// ErrorKind represents the category of a client error.
type ErrorKind string

const (
	// ErrorKindInvalidAddress marks a server base URL (or a URL derived
	// from it) that cannot be parsed as an absolute URL.
	ErrorKindInvalidAddress ErrorKind = "invalid_address"
	// ErrorKindInvalidArgument marks a caller-supplied precondition
	// violation, such as an empty message history or a missing local file.
	ErrorKindInvalidArgument ErrorKind = "invalid_argument"
	// ErrorKindOperation marks transport failures, response decoding
	// failures, and request encoding failures.
	ErrorKindOperation ErrorKind = "operation"
)

// Error is the typed failure value returned by every client operation.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindInvalidAddress:
		return fmt.Sprintf("invalid address: %s", e.Message)
	case ErrorKindInvalidArgument:
		return fmt.Sprintf("invalid argument: %s", e.Message)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidAddressError creates an Error for an unparseable base or joined URL.
func NewInvalidAddressError(message string, cause error) *Error {
	return &Error{Kind: ErrorKindInvalidAddress, Message: message, Err: cause}
}

// NewInvalidArgumentError creates an Error for a violated caller precondition.
func NewInvalidArgumentError(message string) *Error {
	return &Error{Kind: ErrorKindInvalidArgument, Message: message}
}

// NewOperationError creates an Error for a transport, encoding, or decoding failure.
func NewOperationError(message string, cause error) *Error {
	return &Error{Kind: ErrorKindOperation, Message: message, Err: cause}
}

// OperationErrorf creates an operation Error with a formatted message.
func OperationErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrorKindOperation, Message: fmt.Sprintf(format, args...)}
}

// ErrorResponse is the error body returned by the server on non-2xx statuses.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}
