package errors

// ErrorClassification indicates whether repeating the operation may succeed.
// Nothing in this module retries; the classification is for callers that do.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a failure that may clear up on its own.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that repeats until the
	// filesystem or the arguments change.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Provider I/O can be transient (busy devices, flaky network mounts, S3 hiccups).
	CodeIO: ClassificationRetryable,

	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeAccessDenied:    ClassificationPermanent,
	CodeInvalidArgument: ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,
	CodeUnsupported:     ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unlisted codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
