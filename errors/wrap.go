package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If err already carries a PlatformError, its classification and context are
// preserved. Returns nil if err is nil.
//
// Example:
//
//	if err := fsys.MkdirAll(p, 0o755); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "create directory")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var ctx map[string]interface{}
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
		ctx = platformErr.Context()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        ctx,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
