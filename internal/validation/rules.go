package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted format for dates sent by clients.
const DateLayout = "2006-01-02"

var usernameRegex = regexp.MustCompile(`^[\w_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	// posint only checks the sign; int32 reports out-of-range values
	// separately so a huge positive number is not called negative.
	_ = v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		n, err := strconv.ParseInt(s, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return !strings.HasPrefix(s, "-")
		}
		return err == nil && n > 0
	})
	_ = v.RegisterValidation("int32", func(fl validator.FieldLevel) bool {
		_, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 32)
		return err == nil
	})

	return v
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// ParseDate parses a yyyy-mm-dd calendar day as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
