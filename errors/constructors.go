package errors

import "fmt"

// New creates a new PlatformError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidArgument, "unknown path mode")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidArgument, "unknown hash algorithm %q", name)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}

// NewPath creates a PlatformError for an operation on a single path.
// The message reads "op path" and the path is attached as the "path" context
// field so callers can recover it with GetPath.
//
// Example:
//
//	return errors.NewPath(errors.CodeNotFound, "walk", root)
func NewPath(code ErrorCode, op, path string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        op + " " + path,
		context:        map[string]interface{}{ContextOp: op, ContextPath: path},
	}
}
