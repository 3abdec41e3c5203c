// Package validate turns raw textual input into well-formed record fields.
//
// All failures are reported as *ValidationError so callers can surface the
// message verbatim; validation errors are always recoverable.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"studenttracker/internal/model"
)

// ValidationError names the field that failed and carries a message fit
// for direct display.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ParseMarks parses three textual marks into integers, in input order.
// The order is meaningful: it maps to subject 1, 2 and 3.
func ParseMarks(m1, m2, m3 string) ([model.SubjectCount]int, error) {
	var marks [model.SubjectCount]int
	for i, raw := range []string{m1, m2, m3} {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return marks, &ValidationError{
				Field:   fmt.Sprintf("marks%d", i+1),
				Value:   raw,
				Message: "marks must be integers",
			}
		}
		if n < 0 || n > 100 {
			return marks, &ValidationError{
				Field:   fmt.Sprintf("marks%d", i+1),
				Value:   raw,
				Message: "marks out of range 0-100",
			}
		}
		marks[i] = n
	}
	return marks, nil
}

// RequireNonEmpty checks roll and name after trimming surrounding
// whitespace and reports the first empty field, roll before name.
// It returns the trimmed values.
func RequireNonEmpty(roll, name string) (string, string, error) {
	roll = strings.TrimSpace(roll)
	name = strings.TrimSpace(name)
	if roll == "" {
		return "", "", &ValidationError{Field: "roll", Message: "roll number cannot be empty"}
	}
	if name == "" {
		return "", "", &ValidationError{Field: "name", Message: "name cannot be empty"}
	}
	return roll, name, nil
}
