package check

import (
	"fmt"
	"strconv"
	"strings"
)

// Codes for the multi-property rule families.
const (
	CodeNumericRelation    = "numeric_relation"
	CodeMutuallyExclusive  = "mutually_exclusive"
	CodeAtLeastOneRequired = "at_least_one_required"
	CodeDependentRequired  = "dependent_required"
	CodeAllOrNothing       = "all_or_nothing"
)

// relation compares two parsed numeric values.
type relation struct {
	word string
	hold func(a, b float64) bool
}

var (
	relLess           = relation{"less than", func(a, b float64) bool { return a < b }}
	relLessOrEqual    = relation{"less than or equal to", func(a, b float64) bool { return a <= b }}
	relGreater        = relation{"greater than", func(a, b float64) bool { return a > b }}
	relGreaterOrEqual = relation{"greater than or equal to", func(a, b float64) bool { return a >= b }}
)

// LessThan requires property a to be numerically less than property b.
// Validation is skipped when either property is absent or unparsable;
// per-property type checks report those cases.
func LessThan(a, b string) MultiRule { return numericRelation(a, b, relLess) }

// LessThanOrEqual requires a <= b.
func LessThanOrEqual(a, b string) MultiRule { return numericRelation(a, b, relLessOrEqual) }

// GreaterThan requires a > b.
func GreaterThan(a, b string) MultiRule { return numericRelation(a, b, relGreater) }

// GreaterThanOrEqual requires a >= b.
func GreaterThanOrEqual(a, b string) MultiRule { return numericRelation(a, b, relGreaterOrEqual) }

func numericRelation(a, b string, rel relation) MultiRule {
	return MultiRuleFunc(func(_ []string, ctx *Context) Result {
		rawA, okA := ctx.Value(a)
		rawB, okB := ctx.Value(b)

		if !okA || !okB {
			return OK()
		}

		numA, errA := strconv.ParseFloat(strings.TrimSpace(rawA), 64)
		numB, errB := strconv.ParseFloat(strings.TrimSpace(rawB), 64)

		if errA != nil || errB != nil {
			return OK()
		}

		if rel.hold(numA, numB) {
			return OK()
		}

		return Fail(Error{
			Property: a,
			Code:     CodeNumericRelation,
			Message:  fmt.Sprintf("must be %s %s", rel.word, b),
			Actual:   rawA,
			Expected: fmt.Sprintf("%s %s (%s)", rel.word, b, rawB),
		})
	})
}

// MutuallyExclusive fails when more than one of the given properties has a
// non-blank value. The properties default to the enclosing group's list
// when none are given at construction.
func MutuallyExclusive(props ...string) MultiRule {
	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		targets := pickNames(props, names)
		present := presentNames(targets, ctx)

		if len(present) <= 1 {
			return OK()
		}

		return Fail(Error{
			Property: strings.Join(present, ", "),
			Code:     CodeMutuallyExclusive,
			Message:  fmt.Sprintf("at most one of [%s] may be set, found %d", strings.Join(targets, ", "), len(present)),
		})
	})
}

// AtLeastOneRequired fails when none of the given properties has a
// non-blank value. Defaults to the group's property list.
func AtLeastOneRequired(props ...string) MultiRule {
	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		targets := pickNames(props, names)

		if len(presentNames(targets, ctx)) > 0 {
			return OK()
		}

		return Fail(Error{
			Property: strings.Join(targets, ", "),
			Code:     CodeAtLeastOneRequired,
			Message:  fmt.Sprintf("at least one of [%s] must be set", strings.Join(targets, ", ")),
		})
	})
}

// ExactlyOneRequired is the conjunction of AtLeastOneRequired and
// MutuallyExclusive.
func ExactlyOneRequired(props ...string) MultiRule {
	return AndAll(AtLeastOneRequired(props...), MutuallyExclusive(props...))
}

// IfThen requires property b to be non-blank whenever property a is.
func IfThen(a, b string) MultiRule {
	return MultiRuleFunc(func(_ []string, ctx *Context) Result {
		if !nonBlank(ctx, a) || nonBlank(ctx, b) {
			return OK()
		}

		return Fail(Error{
			Property: b,
			Code:     CodeDependentRequired,
			Message:  fmt.Sprintf("required because %s is set", a),
		})
	})
}

// AllOrNothing requires that either every given property is non-blank or
// none is. Partial presence fails, naming the present and missing
// subsets. Defaults to the group's property list.
func AllOrNothing(props ...string) MultiRule {
	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		targets := pickNames(props, names)
		present := presentNames(targets, ctx)

		if len(present) == 0 || len(present) == len(targets) {
			return OK()
		}

		missing := make([]string, 0, len(targets)-len(present))

		for _, n := range targets {
			if !nonBlank(ctx, n) {
				missing = append(missing, n)
			}
		}

		return Fail(Error{
			Property: strings.Join(missing, ", "),
			Code:     CodeAllOrNothing,
			Message: fmt.Sprintf("all or none of [%s] must be set: present [%s], missing [%s]",
				strings.Join(targets, ", "), strings.Join(present, ", "), strings.Join(missing, ", ")),
		})
	})
}

func pickNames(constructed, passed []string) []string {
	if len(constructed) > 0 {
		return constructed
	}

	return passed
}

func presentNames(names []string, ctx *Context) []string {
	var present []string

	for _, n := range names {
		if nonBlank(ctx, n) {
			present = append(present, n)
		}
	}

	return present
}

func nonBlank(ctx *Context, name string) bool {
	v, ok := ctx.Value(name)
	return ok && strings.TrimSpace(v) != ""
}
