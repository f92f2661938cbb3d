package project

import (
	"fmt"
	"strings"
)

// oneOf reports whether value matches one of the accepted options.
func oneOf(value string, options []string) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}

// enumError formats a consistent out-of-range enum message.
func enumError(field, value string, options []string) error {
	return fmt.Errorf("%s %q is not one of %s", field, value, strings.Join(options, ", "))
}
