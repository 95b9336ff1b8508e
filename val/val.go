// Package val wraps go-playground/validator with the tag naming and error shape used across the module.
package val

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate //nolint: gochecknoglobals // validator caches struct metadata and is safe for concurrent use

func init() { //nolint: gochecknoinits // custom validations must be registered before first use
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(getTagName)
	registerCustomValidations(validate)
}

// embeddedName marks an untagged or inlined embedded struct so fieldPath can drop it.
const embeddedName = "~"

// getTagName names a field after its yaml tag, falling back to the Go field name.
// Embedded structs without a yaml name, or with ",inline", are transparent.
func getTagName(fld reflect.StructField) string {
	tag := fld.Tag.Get("yaml")
	name := strings.SplitN(tag, ",", 2)[0]
	if fld.Anonymous && (name == "" || strings.Contains(tag, ",inline")) {
		return embeddedName
	}
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// Var reports whether a single value satisfies the validation tag.
func Var(field any, tag string) bool {
	return validate.Var(field, tag) == nil
}

// ValidateStruct validates schema against its `validate` tags.
// Failures are returned as an errx validation error carrying code, with one
// entry per failed field in the error fields, keyed by the field path below the root.
func ValidateStruct(schema any, code string) error {
	err := validate.Struct(schema)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errx.Wrap(err, errx.WithCode(code), errx.WithType(errx.T_Validation))
	}

	fields := make(errx.M, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fieldPath(fe)] = describe(fe)
	}

	return errx.New(
		"validation failed, see fields for details",
		errx.WithCode(code),
		errx.WithType(errx.T_Validation),
		errx.WithFields(fields),
	)
}

func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}
	return strings.Join(slices.DeleteFunc(segments, func(s string) bool {
		return s == embeddedName
	}), ".")
}

func describe(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("must contain at least %s item(s)", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "ltefield":
		return fmt.Sprintf("must not exceed %s", param)
	case "oneof":
		return fmt.Sprintf("must be one of: %s", param)
	case tagTCPPort:
		return "must be a TCP port between 1 and 65535"
	case tagRedisHost:
		return "must be an IP literal or a host name"
	default:
		if param != "" {
			return fmt.Sprintf("failed validation: %s=%s", fe.Tag(), param)
		}
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map || k == reflect.String
}
