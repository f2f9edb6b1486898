// Package validate checks request structs against their `validate` tags and
// converts failures into entity.ValidationErrors.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"simple-board/internal/domain/entity"
)

// messages holds the user-facing text per field and failed tag.
var messages = map[string]map[string]string{
	entity.FieldTitle:   {"required": entity.MsgTitleRequired},
	entity.FieldContent: {"required": entity.MsgContentRequired},
}

// Validator wraps a validator.Validate that reports fields by their JSON name.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator. It is safe for concurrent use.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s. It returns nil, a sorted entity.ValidationErrors with
// one entry per failing field, or the validator's own error when s is not a struct.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(entity.ValidationErrors, 0, len(fieldErrs))
	seen := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		out = append(out, entity.ValidationError{Field: field, Message: message(field, fe.Tag())})
	}
	return out.Sorted()
}

func message(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	if tag == "required" {
		return field + " is required"
	}
	return fmt.Sprintf("%s is invalid (%s)", field, tag)
}
