// utils/validation.go
package utils

import (
	"encoding/json"
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level validation problem on the wire.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationMessages turns a ShouldBindJSON error into the field-error list
// the API returns on 400. Validator tag failures and JSON type mismatches map
// to per-field entries; anything else (malformed JSON, empty body) maps to a
// single generic entry.
func ValidationMessages(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   jsonFieldName(fe.Field()),
				Message: tagMessage(fe),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: "must be of type " + typeErr.Type.String()}}
	}

	return []FieldError{{Field: "body", Message: "invalid JSON payload"}}
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "email":
		return "must be a valid email"
	default:
		return "is invalid"
	}
}

// jsonFieldName lowercases the leading rune of a Go field name, which matches
// the camelCase json tags used throughout the models.
func jsonFieldName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
