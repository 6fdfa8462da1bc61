package property

import (
	"fmt"
	"strings"

	"github.com/blang/semver/v4"

	"propcheck/check"
	"propcheck/convert"
)

// DefaultProvider computes a property's default value from a context, or
// reports that no default applies. Providers see only caller-supplied
// values and metadata, never defaults produced in the same pass.
type DefaultProvider func(ctx *check.Context) (string, bool)

// Deprecation marks a property as deprecated.
type Deprecation struct {
	// Since is the semantic version that introduced the deprecation.
	Since semver.Version
	// Message explains the deprecation, if anything beyond ReplacedBy is
	// worth saying.
	Message string
	// ReplacedBy names the successor property, when one exists.
	ReplacedBy string
}

// Definition is one immutable schema entry. Build one with NewDefinition;
// after Build it never changes and is safe to share across goroutines.
type Definition struct {
	name       string
	typ        convert.Type
	rule       check.Rule
	def        DefaultProvider
	required   bool
	category   string
	dependsOn  []string
	order      int
	deprecated *Deprecation
}

// DefinitionBuilder accumulates the fields of a Definition.
type DefinitionBuilder struct {
	d   Definition
	err error
}

// NewDefinition starts a builder for a property with the given name and
// declared type.
func NewDefinition(name string, typ convert.Type) *DefinitionBuilder {
	return &DefinitionBuilder{d: Definition{name: name, typ: typ}}
}

// WithRule sets the single-property validation rule.
func (b *DefinitionBuilder) WithRule(r check.Rule) *DefinitionBuilder {
	b.d.rule = r
	return b
}

// WithDefault sets the default provider.
func (b *DefinitionBuilder) WithDefault(p DefaultProvider) *DefinitionBuilder {
	b.d.def = p
	return b
}

// Required marks the property as mandatory in every input map.
func (b *DefinitionBuilder) Required() *DefinitionBuilder {
	b.d.required = true
	return b
}

// Category sets a free-form category tag used for grouping in listings.
func (b *DefinitionBuilder) Category(c string) *DefinitionBuilder {
	b.d.category = c
	return b
}

// DependsOn declares the properties this one's rule consults. The registry
// verifies at build time that every name exists and that the resulting
// graph is acyclic. Duplicate names collapse to one edge.
func (b *DefinitionBuilder) DependsOn(names ...string) *DefinitionBuilder {
	for _, n := range names {
		if !contains(b.d.dependsOn, n) {
			b.d.dependsOn = append(b.d.dependsOn, n)
		}
	}

	return b
}

// Order sets the validation-order hint. Properties with equal dependency
// depth validate in ascending hint order, ties broken by name.
func (b *DefinitionBuilder) Order(n int) *DefinitionBuilder {
	b.d.order = n
	return b
}

// Deprecated records deprecation metadata. since must parse as a semantic
// version; a malformed version fails the Build.
func (b *DefinitionBuilder) Deprecated(since, message, replacedBy string) *DefinitionBuilder {
	v, err := semver.Parse(since)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("property %q: deprecation since %q: %w", b.d.name, since, err)
		}

		return b
	}

	b.d.deprecated = &Deprecation{Since: v, Message: message, ReplacedBy: replacedBy}

	return b
}

// Build finalizes the definition. It fails on a blank name, an unusable
// type tag, or a malformed deprecation version.
func (b *DefinitionBuilder) Build() (*Definition, error) {
	if b.err != nil {
		return nil, b.err
	}

	if strings.TrimSpace(b.d.name) == "" {
		return nil, fmt.Errorf("property name must not be blank")
	}

	if b.d.typ == "" {
		return nil, fmt.Errorf("property %q: type must be set", b.d.name)
	}

	d := b.d
	d.dependsOn = append([]string(nil), b.d.dependsOn...)

	return &d, nil
}

// MustBuild is Build for hand-written schemas where a failure is a
// programming error.
func (b *DefinitionBuilder) MustBuild() *Definition {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}

	return d
}

// Name returns the unique property name.
func (d *Definition) Name() string { return d.name }

// Type returns the declared type tag.
func (d *Definition) Type() convert.Type { return d.typ }

// Rule returns the validation rule, or nil when the property carries none.
func (d *Definition) Rule() check.Rule { return d.rule }

// Default returns the default provider, or nil.
func (d *Definition) Default() DefaultProvider { return d.def }

// IsRequired reports whether the property must appear in every input.
func (d *Definition) IsRequired() bool { return d.required }

// Category returns the category tag.
func (d *Definition) Category() string { return d.category }

// DependsOn returns a copy of the declared dependency names.
func (d *Definition) DependsOn() []string {
	return append([]string(nil), d.dependsOn...)
}

// Order returns the validation-order hint.
func (d *Definition) Order() int { return d.order }

// Deprecation returns the deprecation metadata, or nil for live
// properties.
func (d *Definition) Deprecation() *Deprecation {
	if d.deprecated == nil {
		return nil
	}

	cp := *d.deprecated

	return &cp
}

func contains(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}

	return false
}
