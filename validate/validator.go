package validate

import (
	"fmt"

	"propcheck/check"
	"propcheck/convert"
	"propcheck/internal/match"
	"propcheck/property"
	"propcheck/registry"
)

// Validator is anything that validates a full property map. Implemented
// by *Engine and by *Cached.
type Validator interface {
	Validate(props map[string]string) check.Result
}

// Engine validates property maps against one frozen registry using one
// injected converter. Stateless; safe for concurrent use.
type Engine struct {
	reg  *registry.Registry
	conv *convert.Converter
	meta map[string]string
}

// New returns an Engine over the given registry and converter. A nil
// converter falls back to the built-in table.
func New(reg *registry.Registry, conv *convert.Converter) *Engine {
	if conv == nil {
		conv = convert.NewConverter()
	}

	return &Engine{reg: reg, conv: conv}
}

// WithMeta returns an Engine whose rule contexts carry the given metadata
// side channel.
func (e *Engine) WithMeta(meta map[string]string) *Engine {
	cp := make(map[string]string, len(meta))
	for k, v := range meta {
		cp[k] = v
	}

	return &Engine{reg: e.reg, conv: e.conv, meta: cp}
}

// Validate checks every definition and every group against props and
// aggregates all failures. Per-property checks run in topological order
// so a rule can rely on its declared dependencies having been examined
// first; group checks run afterwards and independently, so one call can
// report both an individual-property error and a group error.
func (e *Engine) Validate(props map[string]string) check.Result {
	ctx := e.newContext(props)
	res := check.OK()

	for _, name := range e.reg.TopologicalOrder() {
		def, _ := e.reg.Definition(name)
		res = res.Merge(e.checkDefinition(def, props, ctx))
	}

	for _, g := range e.reg.Groups() {
		res = res.Merge(e.checkGroup(g, ctx))
	}

	return res
}

// ValidateProperty runs the per-property pipeline for a single named
// property. An unregistered name fails with an unknown-property error
// carrying a nearest-name suggestion when one is close enough.
func (e *Engine) ValidateProperty(name, value string, all map[string]string) check.Result {
	def, ok := e.reg.Definition(name)
	if !ok {
		err := check.Error{
			Property: name,
			Code:     check.CodeUnknownProperty,
			Message:  "property is not registered",
		}

		if near := match.Closest(name, e.reg.Names()); near != "" {
			err.Suggestion = fmt.Sprintf("did you mean %q?", near)
		}

		return check.Fail(err)
	}

	props := make(map[string]string, len(all)+1)
	for k, v := range all {
		props[k] = v
	}

	props[name] = value

	return e.checkDefinition(def, props, e.newContext(props))
}

// ValidateGroup evaluates one group's rules outside full registry
// validation, for ad hoc checks.
func (e *Engine) ValidateGroup(g *property.Group, props map[string]string) check.Result {
	return e.checkGroup(g, e.newContext(props))
}

func (e *Engine) newContext(props map[string]string) *check.Context {
	ctx := check.NewContext(props).WithConverter(e.conv)
	if e.meta != nil {
		ctx = ctx.WithMeta(e.meta)
	}

	return ctx
}

// checkDefinition runs missing-required, type conversion, and the
// definition's rule, in that order. A value that fails conversion yields
// the single conversion error and skips the rule: the rule contract
// assumes a type-correct value.
func (e *Engine) checkDefinition(def *property.Definition, props map[string]string, ctx *check.Context) check.Result {
	name := def.Name()

	value, present := props[name]
	if !present {
		if def.IsRequired() {
			return check.Fail(check.Error{
				Property: name,
				Code:     check.CodeMissingRequired,
				Message:  "required property is missing",
				Expected: string(def.Type()),
			})
		}

		return check.OK()
	}

	if _, err := e.conv.Convert(value, def.Type()); err != nil {
		return check.Fail(check.Error{
			Property: name,
			Code:     check.CodeConversion,
			Message:  err.Error(),
			Actual:   value,
			Expected: string(def.Type()),
		})
	}

	if rule := def.Rule(); rule != nil {
		return rule.Validate(name, value, ctx)
	}

	return check.OK()
}

func (e *Engine) checkGroup(g *property.Group, ctx *check.Context) check.Result {
	res := check.OK()
	names := g.Properties()

	for _, rule := range g.Rules() {
		res = res.Merge(rule.ValidateAll(names, ctx))
	}

	return res
}
