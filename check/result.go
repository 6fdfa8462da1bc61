package check

import (
	"fmt"
	"strings"
)

// Error codes emitted by the engine itself. The predicate catalog defines
// additional codes of its own.
const (
	CodeMissingRequired = "missing_required"
	CodeConversion      = "conversion_failed"
	CodeUnknownProperty = "unknown_property"
)

// Error describes a single validation failure. All fields participate in
// equality: two Errors are equal iff every field matches, which plain ==
// provides since every field is a string.
type Error struct {
	// Property is the name of the offending property.
	Property string
	// Message is the human-readable description.
	Message string
	// Actual is the offending value, when one exists.
	Actual string
	// Expected describes the acceptable value(s), when known.
	Expected string
	// Code is a stable machine identifier for this failure class.
	Code string
	// Suggestion is an optional hint ("did you mean ...").
	Suggestion string
}

// String formats the error the way the CLI prints it.
func (e Error) String() string {
	var sb strings.Builder

	if e.Code != "" {
		fmt.Fprintf(&sb, "[%s] ", e.Code)
	}

	if e.Property != "" {
		sb.WriteString(e.Property)
		sb.WriteString(": ")
	}

	sb.WriteString(e.Message)

	if e.Expected != "" {
		fmt.Fprintf(&sb, " (expected %s", e.Expected)

		if e.Actual != "" {
			fmt.Fprintf(&sb, ", got %q", e.Actual)
		}

		sb.WriteString(")")
	} else if e.Actual != "" {
		fmt.Fprintf(&sb, " (got %q)", e.Actual)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "; %s", e.Suggestion)
	}

	return sb.String()
}

// Result is the outcome of evaluating one or more rules. The zero value is
// not meaningful; construct with OK or Fail.
type Result struct {
	// Valid is true when Errors is empty.
	Valid bool
	// Errors lists every failure in evaluation order.
	Errors []Error
}

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result carrying the given errors.
func Fail(errs ...Error) Result {
	return Result{Valid: false, Errors: errs}
}

// Failf builds a single-error failing result.
func Failf(property, code, format string, args ...any) Result {
	return Fail(Error{
		Property: property,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge combines two results into a new one: valid iff both are valid,
// errors concatenated in order. Neither receiver nor argument is mutated.
func (r Result) Merge(other Result) Result {
	if r.Valid && other.Valid {
		return OK()
	}

	errs := make([]Error, 0, len(r.Errors)+len(other.Errors))
	errs = append(errs, r.Errors...)
	errs = append(errs, other.Errors...)

	return Result{Valid: false, Errors: errs}
}
