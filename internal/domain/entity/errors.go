package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors is a collection of per-field validation failures.
type ValidationErrors []ValidationError

// Error joins the individual field messages.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for i := range v {
		parts = append(parts, v[i].Error())
	}
	return strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidationFailed) match any ValidationErrors value.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Sorted returns a copy ordered by field name, case-insensitively.
// Ties keep their original relative order.
func (v ValidationErrors) Sorted() ValidationErrors {
	out := make(ValidationErrors, len(v))
	copy(out, v)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Field) < strings.ToLower(out[j].Field)
	})
	return out
}
