package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "title required",
			field:    "title",
			message:  MsgTitleRequired,
			expected: "validation error on field 'title': " + MsgTitleRequired,
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
		{
			name:     "empty message",
			field:    "test",
			message:  "",
			expected: "validation error on field 'test': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationErrors_Sorted(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "a"},
		{Field: "Content", Message: "b"},
		{Field: "author", Message: "c"},
	}

	sorted := errs.Sorted()

	assert.Equal(t, "author", sorted[0].Field)
	assert.Equal(t, "Content", sorted[1].Field)
	assert.Equal(t, "title", sorted[2].Field)
	// original untouched
	assert.Equal(t, "title", errs[0].Field)
}

func TestValidationErrors_IsValidationFailed(t *testing.T) {
	var err error = ValidationErrors{{Field: "title", Message: MsgTitleRequired}}
	wrapped := fmt.Errorf("save article: %w", err)

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))

	var verrs ValidationErrors
	assert.True(t, errors.As(wrapped, &verrs))
	assert.Len(t, verrs, 1)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "entity not found", ErrNotFound.Error())
	assert.False(t, errors.Is(ErrNotFound, ErrValidationFailed))
}
