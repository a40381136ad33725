package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/classboard/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	gradePattern = regexp.MustCompile(`^[A-F]\+?$`)
)

// validatorInstance returns the shared validator with the custom tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
			return gradePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("mode", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseMode(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Validate checks the configuration against its struct rules.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   strings.TrimPrefix(fe.Namespace(), "Config."),
			Message: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "unique":
		return "ids must be unique"
	case "grade":
		return fmt.Sprintf("%q is not a letter grade", fe.Value())
	case "mode":
		return fmt.Sprintf("%q is not light or dark", fe.Value())
	case "min", "max":
		return fmt.Sprintf("must be within 0..100, got %v", fe.Value())
	}
	return fmt.Sprintf("failed %q", fe.Tag())
}
