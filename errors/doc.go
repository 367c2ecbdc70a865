// Package errors provides the structured error type used across fsinspect.
//
// Every failure that leaves the inspect package is a PlatformError carrying
// an ErrorCode, a retry classification and context metadata. For path
// operations the context always holds the failing "path" and "op", so callers
// can tell "does not exist" apart from "I/O failure" by code instead of by
// matching on error types.
//
// # Codes
//
//   - Path errors: CodeNotFound, CodeAlreadyExists, CodeAccessDenied
//   - Argument errors: CodeInvalidArgument, CodeInvalidConfig
//   - Provider errors: CodeUnsupported, CodeIO
//   - System errors: CodeInternal, CodeUnknown
//
// # Translating provider errors
//
// Filesystem providers return plain *fs.PathError values. FromFS maps the
// standard sentinels onto codes and keeps the original error in the chain:
//
//	info, err := fsys.Stat(name)
//	if err != nil {
//	    return errors.FromFS(err, "stat", name)
//	}
//
//	errors.GetCode(err) == errors.CodeNotFound // true for a missing path
//	stderrors.Is(err, fs.ErrNotExist)          // still true
//	errors.GetPath(err)                        // name
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse; PlatformError values also
// implement json.Marshaler directly. The wrapped cause is never serialized.
package errors
