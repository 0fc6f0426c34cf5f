// Package apperror defines the typed failure values used across handlers and
// repositories, plus the single place where they are mapped to HTTP responses.
package apperror

import (
	"errors"
	"fmt"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the aggregated field-error list of a rejected write.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d errors)", len(e.Errors))
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(errs ...FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// FieldValidationError is a shorthand for a single-field validation failure.
func FieldValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError is a business-level "does not exist" condition. Soft-deleted
// records surface as NotFoundError too.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// UnsupportedMediaError rejects an upload whose detected MIME type is outside
// the accepted whitelist.
type UnsupportedMediaError struct {
	Detected string
}

func (e *UnsupportedMediaError) Error() string {
	if e.Detected == "" {
		return "unsupported media type"
	}
	return "unsupported media type: " + e.Detected
}

// UnauthorizedError rejects a request that failed the signature gate or a
// session check before any handler logic ran.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// BusinessError is an expected application-level condition reported with a
// plain message and HTTP 200 (e.g. "route was not found").
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusinessError(message string) *BusinessError {
	return &BusinessError{Message: message}
}

// IsValidation reports whether err resolves to a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err resolves to a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
