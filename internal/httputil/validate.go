package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps request bodies accepted by the API.
const MaxBodyBytes = 1 << 20

var (
	// ErrInvalidBody wraps every decode and validation failure.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrBodyTooLarge reports a body cut off by http.MaxBytesReader.
	ErrBodyTooLarge = errors.New("request body too large")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the struct's validate tags and describes the first failure.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidBody, describe(fieldErrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrInvalidBody, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// DecodeJSON decodes the request body into dst and validates it.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if tooLarge(err) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: malformed JSON", ErrInvalidBody)
	}
	return Validate(dst)
}

// ParseForm parses a urlencoded body, reporting oversized bodies as
// ErrBodyTooLarge.
func ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		if tooLarge(err) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: malformed form", ErrInvalidBody)
	}
	return nil
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
