package errs

import (
	"net/http"
)

// Sentinels usable with errors.Is. Only Kind and Status are compared.
var (
	ErrConflict = &HTTPError{Kind: KindValidationConflict, Status: http.StatusBadRequest}
	ErrInternal = &HTTPError{Kind: KindInternal, Status: http.StatusInternalServerError}
)

// ConflictCode is the machine code for business precondition failures.
const ConflictCode = "VALIDATION_CONFLICT"

// NewBadRequestError creates a 400 Bad Request HTTPError for malformed input.
//
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional list of violated validation rules
func NewBadRequestError(message string, code *string, errors []string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
		Kind:    KindInputValidation,
	}
}

// NewConflictError creates the 400 response used when a request is well
// formed but contradicts stored state (a taken username, an unknown user).
func NewConflictError(message string) *HTTPError {
	return &HTTPError{
		Code:    ConflictCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Kind:    KindValidationConflict,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
		Kind:    KindNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying driver error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
		Kind:    KindInternal,
	}
}

// ValidationError converts a list of violated rules into a 400 Bad Request.
func ValidationError(messages []string) *HTTPError {
	return NewBadRequestError("Validation failed", nil, messages)
}
