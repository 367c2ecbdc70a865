package errors

// ErrorCode identifies the category of a failure.
// Codes are strings so they read well in logs and serialize naturally to JSON.
type ErrorCode string

const (
	// Path errors.

	// CodeNotFound indicates a required path, or its parent, does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target path is already occupied.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeAccessDenied indicates the filesystem refused the operation for
	// permission reasons.
	CodeAccessDenied ErrorCode = "ACCESS_DENIED"

	// Argument errors.

	// CodeInvalidArgument indicates a malformed argument such as an unknown
	// path mode or hash algorithm.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeInvalidConfig indicates the configuration cannot be used.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Provider errors.

	// CodeUnsupported indicates the filesystem provider lacks the capability,
	// for example symlinks on object storage.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeIO indicates any other failure reported by the filesystem provider.
	CodeIO ErrorCode = "IO_ERROR"

	// System errors.

	// CodeInternal indicates a bug or broken invariant inside the module.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates the error carried no code.
	CodeUnknown ErrorCode = "UNKNOWN"
)
