package errors

// PlatformError extends the standard error interface with a code, a retry
// classification and context metadata such as the failing path.
//
// PlatformError values are immutable; the With* helpers return new errors.
// They work with errors.Is, errors.As and errors.Unwrap from the standard
// library.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns a copy of the attached metadata.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
