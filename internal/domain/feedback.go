package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	MessageMinLength = 10
	MessageMaxLength = 1000

	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError names the offending field. Every ValidationError matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrInvalidEmail    = &ValidationError{Field: "email", Reason: "must be a valid email address"}
	ErrInvalidMessage  = &ValidationError{Field: "message", Reason: "must be between 10 and 1000 characters"}
	ErrInvalidPage     = &ValidationError{Field: "page", Reason: "must be an integer greater than or equal to 1"}
	ErrInvalidPageSize = &ValidationError{Field: "page_size", Reason: "must be an integer between 1 and 50"}
	ErrInvalidQuery    = &ValidationError{Field: "query", Reason: "malformed query parameters"}
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type submission struct {
	Email   string `validate:"required,email"`
	Message string `validate:"min=10,max=1000"`
}

// ValidateSubmission checks email syntax and the message length in runes.
func ValidateSubmission(email, message string) error {
	err := validate.Struct(submission{Email: email, Message: message})
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	if fieldErrs[0].Field() == "Email" {
		return ErrInvalidEmail
	}
	return ErrInvalidMessage
}

func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePage(page, pageSize int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	return nil
}
