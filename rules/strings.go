package rules

import (
	"fmt"
	"regexp"
	"strings"

	"propcheck/check"
)

// Codes for the string rule family.
const (
	CodeBlank      = "string_blank"
	CodeTooShort   = "string_too_short"
	CodeTooLong    = "string_too_long"
	CodeNoMatch    = "string_no_match"
	CodeNotAllowed = "value_not_allowed"
)

// NotBlank fails on values that are empty or whitespace-only.
func NotBlank() check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if strings.TrimSpace(value) != "" {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeBlank,
			Message:  "must not be blank",
		})
	})
}

// MinLength requires at least n characters.
func MinLength(n int) check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if len([]rune(value)) >= n {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeTooShort,
			Message:  fmt.Sprintf("must be at least %d characters", n),
			Actual:   value,
			Expected: fmt.Sprintf("length >= %d", n),
		})
	})
}

// MaxLength allows at most n characters.
func MaxLength(n int) check.Rule {
	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if len([]rune(value)) <= n {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeTooLong,
			Message:  fmt.Sprintf("must be at most %d characters", n),
			Actual:   value,
			Expected: fmt.Sprintf("length <= %d", n),
		})
	})
}

// Matches requires the value to match the anchored pattern. The pattern
// is compiled at construction; an invalid pattern panics, the same
// schema-authoring contract as regexp.MustCompile.
func Matches(pattern string) check.Rule {
	re := regexp.MustCompile(pattern)

	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if re.MatchString(value) {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeNoMatch,
			Message:  fmt.Sprintf("must match %s", pattern),
			Actual:   value,
			Expected: pattern,
		})
	})
}

// OneOf requires the value to be one of the allowed literals.
func OneOf(allowed ...string) check.Rule {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return check.RuleFunc(func(name, value string, _ *check.Context) check.Result {
		if _, ok := set[value]; ok {
			return check.OK()
		}

		return check.Fail(check.Error{
			Property: name,
			Code:     CodeNotAllowed,
			Message:  fmt.Sprintf("must be one of [%s]", strings.Join(allowed, ", ")),
			Actual:   value,
			Expected: strings.Join(allowed, "|"),
		})
	})
}
