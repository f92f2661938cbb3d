package logging

import "strings"

// FormatSubject builds the project/operation subject string used in console
// output, e.g. `Signal Fires (import)`.
func FormatSubject(project, operation string) string {
	project = strings.TrimSpace(project)
	operation = strings.TrimSpace(operation)
	switch {
	case project != "" && operation != "":
		return project + " (" + operation + ")"
	case project != "":
		return project
	case operation != "":
		return operation
	}
	return ""
}
