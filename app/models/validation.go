package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/naruhodo/newsapp/internal/pkg/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way the API spells them (json tag), not the Go
	// way. Hidden fields like the password hash fall back to the lower-cased
	// Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name[:1]) + fld.Name[1:]
		}
		return name
	})
	return v
}

// Validate runs struct-tag validation and converts the result into the
// aggregated field-error list the API reports on 422 responses.
func Validate(s any) *apperror.ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.FieldValidationError("", err.Error())
	}

	out := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperror.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return &apperror.ValidationError{Errors: out}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s is required.", fe.Field())
	case "email":
		return "The e-mail is not valid."
	case "min":
		return fmt.Sprintf("The %s is too short, %s characters minimum.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s is too long, %s characters maximum.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The %s is not valid.", fe.Field())
	}
}
