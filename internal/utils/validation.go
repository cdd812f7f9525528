package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs the validators in order and stops at the first failure
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotBlank validates that a string has non-whitespace content
func NotBlank(field string) Validator[string] {
	return Custom(field, "cannot be empty", func(value string) bool {
		return strings.TrimSpace(value) != ""
	})
}

// NoPathSeparator validates that a string can be used inside a single file name
func NoPathSeparator(field string) Validator[string] {
	return Custom(field, "must not contain a path separator", func(value string) bool {
		return !strings.ContainsAny(value, `/\`)
	})
}

// RelativePath validates that a path stays below the directory it is joined to
func RelativePath(field string) Validator[string] {
	return Custom(field, "must be a relative path inside the mock directory", func(value string) bool {
		if value == "" {
			return true
		}
		if filepath.IsAbs(value) || strings.HasPrefix(value, "/") {
			return false
		}
		clean := filepath.ToSlash(filepath.Clean(value))
		return clean != ".." && !strings.HasPrefix(clean, "../")
	})
}

// ValidateEach validates each item in a slice using the provided validator
func ValidateEach[T any](field string, itemValidator Validator[T]) Validator[[]T] {
	return func(value []T) error {
		for i, item := range value {
			if err := itemValidator(item); err != nil {
				message := err.Error()
				if ve, ok := err.(ValidationError); ok {
					message = ve.Message
				}
				return ValidationError{
					Field:   fmt.Sprintf("%s[%d]", field, i),
					Value:   item,
					Message: message,
				}
			}
		}
		return nil
	}
}

// Custom validates using a custom function
func Custom[T any](field string, message string, validatorFunc func(T) bool) Validator[T] {
	return func(value T) error {
		if !validatorFunc(value) {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: message,
			}
		}
		return nil
	}
}
