package property

import (
	"fmt"
	"strings"

	"propcheck/check"
)

// Group is a named bundle of property names plus the multi-property rules
// that hold across them. Immutable after Build.
type Group struct {
	name        string
	description string
	properties  []string
	rules       []check.MultiRule
}

// GroupBuilder accumulates the fields of a Group.
type GroupBuilder struct {
	g Group
}

// NewGroup starts a builder for a group with the given name.
func NewGroup(name string) *GroupBuilder {
	return &GroupBuilder{g: Group{name: name}}
}

// Description sets an optional human-readable description.
func (b *GroupBuilder) Description(d string) *GroupBuilder {
	b.g.description = d
	return b
}

// WithProperties appends property names to the group, preserving order and
// collapsing duplicates.
func (b *GroupBuilder) WithProperties(names ...string) *GroupBuilder {
	for _, n := range names {
		if !contains(b.g.properties, n) {
			b.g.properties = append(b.g.properties, n)
		}
	}

	return b
}

// WithRule appends a group-scoped multi-property rule.
func (b *GroupBuilder) WithRule(r check.MultiRule) *GroupBuilder {
	b.g.rules = append(b.g.rules, r)
	return b
}

// Build finalizes the group. A blank name or an empty property list is a
// schema-authoring error.
func (b *GroupBuilder) Build() (*Group, error) {
	if strings.TrimSpace(b.g.name) == "" {
		return nil, fmt.Errorf("group name must not be blank")
	}

	if len(b.g.properties) == 0 {
		return nil, fmt.Errorf("group %q: at least one property is required", b.g.name)
	}

	g := b.g
	g.properties = append([]string(nil), b.g.properties...)
	g.rules = append([]check.MultiRule(nil), b.g.rules...)

	return &g, nil
}

// MustBuild is Build for hand-written schemas where a failure is a
// programming error.
func (b *GroupBuilder) MustBuild() *Group {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}

	return g
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Description returns the optional description.
func (g *Group) Description() string { return g.description }

// Properties returns a copy of the ordered property names.
func (g *Group) Properties() []string {
	return append([]string(nil), g.properties...)
}

// Rules returns a copy of the group's multi-property rules.
func (g *Group) Rules() []check.MultiRule {
	return append([]check.MultiRule(nil), g.rules...)
}
