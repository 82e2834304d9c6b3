package validator

import (
	"strings"
)

// ValidationError describes a single invalid field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every invalid field of a request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ToMap returns field -> message, keeping the first message per field
func (e ValidationErrors) ToMap() map[string]string {
	out := make(map[string]string, len(e))
	for _, err := range e {
		if _, exists := out[err.Field]; !exists {
			out[err.Field] = err.Message
		}
	}
	return out
}

// IsEmpty reports whether s is empty after trimming whitespace
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsInSlice reports whether value is one of allowed
func IsInSlice(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// IsInRange reports whether min <= value <= max
func IsInRange(value, min, max int) bool {
	return value >= min && value <= max
}
