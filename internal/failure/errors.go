package failure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIO            = errors.New("io error")
	ErrParse         = errors.New("parse error")
	ErrConstraint    = errors.New("constraint error")
	ErrQuery         = errors.New("query error")
	ErrConfiguration = errors.New("configuration error")
)

// Process exit codes returned by ExitCode.
const (
	ExitGeneric       = 1
	ExitConfiguration = 2
	ExitIO            = 3
	ExitParse         = 4
	ExitConstraint    = 5
	ExitQuery         = 6
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns the short classification name of err ("io", "parse",
// "constraint", "query", "configuration") or "internal" when unclassified.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrConstraint):
		return "constraint"
	case errors.Is(err, ErrQuery):
		return "query"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	default:
		return "internal"
	}
}

// ExitCode maps a fatal error to the process exit status.
func ExitCode(err error) int {
	switch Kind(err) {
	case "":
		return 0
	case "io":
		return ExitIO
	case "parse":
		return ExitParse
	case "constraint":
		return ExitConstraint
	case "query":
		return ExitQuery
	case "configuration":
		return ExitConfiguration
	default:
		return ExitGeneric
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "report failure"
	}
	return strings.Join(parts, ": ")
}
