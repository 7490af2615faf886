package errs

import "strings"

// Kind classifies an HTTPError for logging and metrics.
//
// The three kinds mirror how a request can fail:
//   - KindInputValidation: the request itself is malformed.
//   - KindValidationConflict: the request is well formed but a business
//     precondition failed (duplicate username, unknown user).
//   - KindInternal: the store failed unexpectedly.
type Kind string

const (
	KindInputValidation    Kind = "input_validation"
	KindValidationConflict Kind = "validation_conflict"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal"
)

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized directly
// to JSON by the global error handler:
//
//	{"code":"BAD_REQUEST","message":"Validation failed","status":400,"errors":["Invalid ID"]}
//
// Errors is only populated for request validation failures and carries one
// message per violated rule.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Errors  []string `json:"errors,omitempty"`

	// Kind is internal and never sent to clients.
	Kind Kind `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError of the same kind and status.
//
// This lets callers write errors.Is(err, errs.ErrConflict) without caring
// about the exact message.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Status == e.Status
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
		Kind:    e.Kind,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
