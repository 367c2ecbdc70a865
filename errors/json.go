package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error.
// The wrapped cause is left out; the code, message and context carry what a
// caller needs, including the failing path.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Plain errors get CodeUnknown, ClassificationPermanent and their Error() text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler for platformError.
//
//	err := errors.NewPath(errors.CodeNotFound, "walk", "/missing")
//	data, _ := json.Marshal(err)
//	// {"code":"NOT_FOUND","message":"walk /missing","classification":"PERMANENT","context":{"op":"walk","path":"/missing"}}
func (e *platformError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &platformError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
