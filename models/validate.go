// ABOUTME: Client-side validation run before any submission
// ABOUTME: Wraps go-playground/validator and reports failures per JSON field
package models

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("designation", func(fl validator.FieldLevel) bool {
			return inList(Designations, fl.Field().String())
		})
		_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
			return inList(Departments, fl.Field().String())
		})
		validate = v
	})
	return validate
}

// ValidationErrors maps a JSON field name to a human-readable message.
// Any entry blocks submission.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the required fields and enumerations of an entity. It
// returns nil when the value may be submitted.
func Validate(entity any) error {
	err := validatorInstance().Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return fmt.Sprintf("needs at least %s entry", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "designation":
		return "must be a listed designation"
	case "department":
		return "must be a listed department"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
