package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-signupform/pkg/model"
)

// EmailTag is the validator tag backed by IsEmail.
const EmailTag = "signupemail"

var (
	structValidatorOnce sync.Once
	structValidator     *validator.Validate
)

func recordValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation(EmailTag, func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", EmailTag, err))
		}
		structValidator = v
	})
	return structValidator
}

// CheckRecord reports the fields of record that are missing altogether. It
// only checks presence; the field rules are applied by Validate.
func CheckRecord(record model.FormRecord) []Issue {
	err := recordValidator().Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Issue{{Message: strings.TrimSpace(err.Error())}}
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: fe.Field() + " is " + fe.Tag(),
		})
	}
	return issues
}

// CheckSubmission combines the presence check with the field rules, returning
// nil when record would be accepted by the form endpoint.
func CheckSubmission(record model.FormRecord) []Issue {
	if issues := CheckRecord(record); len(issues) > 0 {
		return issues
	}
	return ValidateAll(record.Values()).Result().Issues
}
