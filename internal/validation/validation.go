// Package validation holds the declarative input rules. The rules are the
// validate struct tags on the submission types in package domain; this
// package evaluates them and publishes them as data for clients.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/creditodds/creditodds-api/internal/domain"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notfuture", notFuture)
	_ = v.RegisterValidation("pastyear", pastYear)
	return v
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func notFuture(fl validator.FieldLevel) bool {
	d, err := time.Parse(dateLayout, fl.Field().String())
	if err != nil {
		// Format errors are reported by the datetime tag.
		return true
	}
	y, m, day := time.Now().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return !d.After(today)
}

func pastYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(time.Now().Year())
}

// Struct validates v against its validate tags and returns a
// *domain.ValidationError listing every failing field in declaration order.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

// ValidateRecord checks a record submission against the record rules.
func ValidateRecord(sub domain.RecordSubmission) error {
	return Struct(sub)
}

// ParseDate parses a date_applied value that already passed validation.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "notfuture":
		return "must not be in the future"
	case "pastyear":
		return "must not be after the current year"
	default:
		return "is invalid"
	}
}
