package check

// Rule validates a single named property value against a context. Rules
// are pure: the same inputs always produce the same Result.
type Rule interface {
	Validate(name, value string, ctx *Context) Result
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(name, value string, ctx *Context) Result

// Validate implements Rule.
func (f RuleFunc) Validate(name, value string, ctx *Context) Result {
	return f(name, value, ctx)
}

// MultiRule validates a relationship across several properties. The names
// slice is the property list of the enclosing group; rules constructed
// with explicit property names (e.g. LessThan) may ignore it.
type MultiRule interface {
	ValidateAll(names []string, ctx *Context) Result
}

// MultiRuleFunc adapts a plain function to the MultiRule interface.
type MultiRuleFunc func(names []string, ctx *Context) Result

// ValidateAll implements MultiRule.
func (f MultiRuleFunc) ValidateAll(names []string, ctx *Context) Result {
	return f(names, ctx)
}

// Condition gates conditional rules and default overrides.
type Condition func(ctx *Context) bool

// Always is a Condition that holds for every context.
func Always(*Context) bool { return true }

// MetaEquals returns a Condition that holds when the context metadata key
// has the given value.
func MetaEquals(key, value string) Condition {
	return func(ctx *Context) bool {
		v, ok := ctx.Meta(key)
		return ok && v == value
	}
}

// PropertyEquals returns a Condition that holds when the named property is
// present with the given value.
func PropertyEquals(name, value string) Condition {
	return func(ctx *Context) bool {
		v, ok := ctx.Value(name)
		return ok && v == value
	}
}

// PropertyPresent returns a Condition that holds when the named property
// is present, regardless of value.
func PropertyPresent(name string) Condition {
	return func(ctx *Context) bool {
		return ctx.Has(name)
	}
}
