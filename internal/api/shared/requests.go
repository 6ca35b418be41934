package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/storefront-api/internal/domain"
)

// MaxBodyBytes caps the size of a JSON request body.
const MaxBodyBytes = 1 << 20

// ErrInvalidBody is returned by DecodeJSON for unreadable or malformed bodies.
var ErrInvalidBody = errors.New("invalid request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// "present" requires a domain.Optional to have been provided; zero values
	// such as a price of 0 count as provided.
	if err := v.RegisterValidation("present", func(fl validator.FieldLevel) bool {
		o, ok := fl.Field().Interface().(interface{ IsSet() bool })
		return ok && o.IsSet()
	}); err != nil {
		panic(err)
	}
	return v
}

// DecodeJSON decodes the request body into v. An empty body decodes as an
// empty object so required-field validation can report what is missing.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// ValidateRequest runs the struct's validate tags. Missing required fields
// are collected into a single *domain.ValidationError listing their JSON
// names in declaration order.
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missing []string
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required", "present":
			missing = append(missing, fe.Field())
		default:
			return domain.NewValidationError(fe.Field(), "is invalid", domain.ErrValidation)
		}
	}
	return domain.NewMissingFieldsError(missing...)
}
