package errors

import (
	"errors"
	"io/fs"
)

// FromFS translates an error returned by a filesystem provider into a
// PlatformError for the given operation and path.
//
// The standard sentinels map onto codes as follows; everything else is CodeIO:
//
//	fs.ErrNotExist       -> CodeNotFound
//	fs.ErrExist          -> CodeAlreadyExists
//	fs.ErrPermission     -> CodeAccessDenied
//	errors.ErrUnsupported -> CodeUnsupported
//
// The original error stays in the chain, so errors.Is(err, fs.ErrNotExist)
// keeps working on the result. An error that already is a PlatformError keeps
// its code and only gains the op and path fields it is missing.
// Returns nil if err is nil.
func FromFS(err error, op, path string) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		ctx := platformErr.Context()
		if _, ok := ctx[ContextPath]; ok {
			return platformErr
		}
		return WithContextMap(platformErr, map[string]interface{}{ContextOp: op, ContextPath: path})
	}

	code := codeFor(err)
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        op + " " + path,
		context:        map[string]interface{}{ContextOp: op, ContextPath: path},
		cause:          err,
	}
}

// codeFor picks the ErrorCode matching a provider error.
func codeFor(err error) ErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case errors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return CodeAccessDenied
	case errors.Is(err, errors.ErrUnsupported):
		return CodeUnsupported
	default:
		return CodeIO
	}
}

// GetPath returns the path an error refers to.
// It prefers the "path" context field of a PlatformError and falls back to
// the Path of an *fs.PathError in the chain. Returns "" when neither exists.
func GetPath(err error) string {
	if err == nil {
		return ""
	}

	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		if p, ok := platformErr.Context()[ContextPath].(string); ok {
			return p
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}
	return ""
}
