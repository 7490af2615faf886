// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules defined in
// struct tags and turns the first violated rule into the message
// the client receives.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/exercise-tracker/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,uuid"`)
// - Implement Validate() error that calls validation.Struct(req)
type Validatable interface {
	Validate() error
}

// Sanitizer is implemented by payloads that rewrite their values once they
// passed validation (HTML escaping free text, for example).
type Sanitizer interface {
	Sanitize()
}

// MessageTag is the struct tag holding client-facing messages for a field.
//
// Its format is a ';' separated list of tag=message pairs. The tag "*"
// matches any rule:
//
//	messages:"required=Username shouldn't be empty;username=The username is invalid"
const MessageTag = "messages"

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates the struct from path params, query params and the body.
// 2) payload.Validate() applies validation rules.
// 3) Sanitize() runs on payloads that implement Sanitizer.
//
// Rules are checked in field declaration order; only the first violated
// rule is reported, as a 400 with errors:[message].
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil, nil)
	}

	if err := payload.Validate(); err != nil {
		return errs.ValidationError(extractValidationError(payload, err))
	}

	if s, ok := payload.(Sanitizer); ok {
		s.Sanitize()
	}

	return nil
}

func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return "Invalid request payload"
}

// extractValidationError returns the message for the first violated rule.
func extractValidationError(payload any, err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return []string{err.Error()}
	}

	fe := validationErrors[0]
	if msg, ok := fieldMessage(payload, fe); ok {
		return []string{msg}
	}
	return []string{defaultMessage(fe)}
}

// fieldMessage looks the violated rule up in the field's MessageTag.
func fieldMessage(payload any, fe validator.FieldError) (string, bool) {
	t := reflect.TypeOf(payload)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", false
	}

	field, ok := t.FieldByName(fe.StructField())
	if !ok {
		return "", false
	}

	var fallback string
	for _, pair := range strings.Split(field.Tag.Get(MessageTag), ";") {
		tag, msg, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(tag) {
		case fe.Tag():
			return msg, true
		case "*":
			fallback = msg
		}
	}

	return fallback, fallback != ""
}

func defaultMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	case "posint":
		return fmt.Sprintf("%s must be a positive number", field)
	case "isodate":
		return fmt.Sprintf("%s must be a date in yyyy-mm-dd format", field)
	case "username":
		return fmt.Sprintf("%s may only contain letters, digits and underscores", field)
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", field, fe.Tag())
	}
}
