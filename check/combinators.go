package check

// And returns a rule that evaluates a, and on failure returns that failure
// without evaluating b. On success it returns b's result.
func And(a, b Rule) Rule {
	return RuleFunc(func(name, value string, ctx *Context) Result {
		if res := a.Validate(name, value, ctx); !res.Valid {
			return res
		}

		return b.Validate(name, value, ctx)
	})
}

// Or returns a rule that evaluates a, and on success returns immediately
// without evaluating b. On a double failure only b's errors surface.
func Or(a, b Rule) Rule {
	return RuleFunc(func(name, value string, ctx *Context) Result {
		if res := a.Validate(name, value, ctx); res.Valid {
			return res
		}

		return b.Validate(name, value, ctx)
	})
}

// AllOf folds rules left to right with And, short-circuiting on the first
// failure. At least one rule is required; an empty call is an authoring
// defect and panics.
func AllOf(rules ...Rule) Rule {
	if len(rules) == 0 {
		panic("check: AllOf requires at least one rule")
	}

	out := rules[0]
	for _, r := range rules[1:] {
		out = And(out, r)
	}

	return out
}

// AnyOf succeeds as soon as any rule succeeds. When every rule fails it
// aggregates and returns all of their errors, unlike pairwise Or which
// keeps only the last failure. At least one rule is required; an empty
// call panics.
func AnyOf(rules ...Rule) Rule {
	if len(rules) == 0 {
		panic("check: AnyOf requires at least one rule")
	}

	return RuleFunc(func(name, value string, ctx *Context) Result {
		var failed Result = OK()

		for _, r := range rules {
			res := r.Validate(name, value, ctx)
			if res.Valid {
				return OK()
			}

			failed = failed.Merge(res)
		}

		return failed
	})
}

// OnlyIf evaluates the rule only when the condition holds; otherwise the
// result is trivially valid.
func OnlyIf(cond Condition, r Rule) Rule {
	return RuleFunc(func(name, value string, ctx *Context) Result {
		if !cond(ctx) {
			return OK()
		}

		return r.Validate(name, value, ctx)
	})
}

// AndAll is And for multi-property rules.
func AndAll(a, b MultiRule) MultiRule {
	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		if res := a.ValidateAll(names, ctx); !res.Valid {
			return res
		}

		return b.ValidateAll(names, ctx)
	})
}

// OrAll is Or for multi-property rules.
func OrAll(a, b MultiRule) MultiRule {
	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		if res := a.ValidateAll(names, ctx); res.Valid {
			return res
		}

		return b.ValidateAll(names, ctx)
	})
}

// AllOfMulti folds multi-property rules left to right with AndAll.
// An empty call panics.
func AllOfMulti(rules ...MultiRule) MultiRule {
	if len(rules) == 0 {
		panic("check: AllOfMulti requires at least one rule")
	}

	out := rules[0]
	for _, r := range rules[1:] {
		out = AndAll(out, r)
	}

	return out
}

// AnyOfMulti succeeds on the first passing rule and aggregates every
// rule's errors when all fail. An empty call panics.
func AnyOfMulti(rules ...MultiRule) MultiRule {
	if len(rules) == 0 {
		panic("check: AnyOfMulti requires at least one rule")
	}

	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		var failed Result = OK()

		for _, r := range rules {
			res := r.ValidateAll(names, ctx)
			if res.Valid {
				return OK()
			}

			failed = failed.Merge(res)
		}

		return failed
	})
}

// OnlyIfAll gates a multi-property rule on a condition.
func OnlyIfAll(cond Condition, r MultiRule) MultiRule {
	return MultiRuleFunc(func(names []string, ctx *Context) Result {
		if !cond(ctx) {
			return OK()
		}

		return r.ValidateAll(names, ctx)
	})
}
