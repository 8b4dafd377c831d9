package models

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/medireon/site/pkg/errors"
)

// emailPattern is deliberately permissive: something@something.something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("leademail", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	return v
}

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks a lead's required fields. Failures come back as a
// CodeValidation error whose details map form field names to messages.
func Validate(lead Lead) error {
	if lead == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing submission")
	}
	if err := validate.Struct(lead); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address."
	case "name":
		return "Name is required"
	case "date":
		return "Please select a date"
	case "time":
		return "Please select a time"
	case "phone":
		return "Phone number is required"
	case "address":
		return "Address is required"
	case "purpose":
		return "Purpose is required"
	}
	return "is invalid"
}
