package rules

import (
	"fmt"
	"strconv"
	"strings"

	"propcheck/check"
)

// Codes for the numeric rule family.
const (
	CodeNotNumeric  = "not_numeric"
	CodeBelowMin    = "below_minimum"
	CodeAboveMax    = "above_maximum"
	CodeOutOfRange  = "out_of_range"
	CodeNotPositive = "not_positive"
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// isInRange checks if a value is within the specified range, both
// inclusive.
func isInRange[T number](lo T, value T, hi T) bool {
	return lo <= value && value <= hi
}

// Min requires the value to parse as a number >= lo.
func Min(lo float64) check.Rule {
	return numericRule(CodeBelowMin,
		fmt.Sprintf("must be at least %v", lo),
		fmt.Sprintf(">= %v", lo),
		func(v float64) bool { return v >= lo })
}

// Max requires the value to parse as a number <= hi.
func Max(hi float64) check.Rule {
	return numericRule(CodeAboveMax,
		fmt.Sprintf("must be at most %v", hi),
		fmt.Sprintf("<= %v", hi),
		func(v float64) bool { return v <= hi })
}

// InRange requires lo <= value <= hi.
func InRange(lo, hi float64) check.Rule {
	return numericRule(CodeOutOfRange,
		fmt.Sprintf("must be between %v and %v", lo, hi),
		fmt.Sprintf("[%v, %v]", lo, hi),
		func(v float64) bool { return isInRange(lo, v, hi) })
}

// Positive requires a number strictly greater than zero.
func Positive() check.Rule {
	return numericRule(CodeNotPositive,
		"must be positive",
		"> 0",
		func(v float64) bool { return v > 0 })
}

func numericRule(code, message, expected string, ok func(v float64) bool) check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return check.Fail(check.Error{
				Property: name,
				Code:     CodeNotNumeric,
				Message:  "must be a number",
				Actual:   value,
				Expected: "numeric value",
			})
		}

		if ok(v) {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     code,
			Message:  message,
			Actual:   value,
			Expected: expected,
		})
	})
}
