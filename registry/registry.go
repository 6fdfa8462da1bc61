package registry

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"propcheck/property"
)

// Sentinel errors for schema-authoring failures. Wrap-tested with
// errors.Is.
var (
	ErrDuplicateProperty   = errors.New("duplicate property registration")
	ErrDuplicateGroup      = errors.New("duplicate group registration")
	ErrUndefinedDependency = errors.New("undefined dependency")
	ErrCircularDependency  = errors.New("circular dependency detected")
	ErrUnknownGroupMember  = errors.New("group references unknown property")
)

// Builder accumulates definitions and groups before the one
// mutable-to-immutable transition in Build. A Builder is not safe for
// concurrent use; the Registry it produces is.
type Builder struct {
	defs       map[string]*property.Definition
	order      []string
	groups     map[string]*property.Group
	groupOrder []string
}

// NewBuilder returns an empty schema builder.
func NewBuilder() *Builder {
	return &Builder{
		defs:   make(map[string]*property.Definition),
		groups: make(map[string]*property.Group),
	}
}

// Register adds a definition, preserving insertion order for enumeration.
// Registering a name twice fails with ErrDuplicateProperty.
func (b *Builder) Register(def *property.Definition) error {
	if def == nil {
		return fmt.Errorf("definition must not be nil")
	}

	name := def.Name()
	if _, ok := b.defs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProperty, name)
	}

	b.defs[name] = def
	b.order = append(b.order, name)

	return nil
}

// MustRegister is Register for hand-written schemas.
func (b *Builder) MustRegister(def *property.Definition) *Builder {
	if err := b.Register(def); err != nil {
		panic(err)
	}

	return b
}

// RegisterGroup adds a group. Registering a group name twice fails with
// ErrDuplicateGroup. Membership is checked against the registered
// definitions at Build time, not here, so registration order does not
// matter.
func (b *Builder) RegisterGroup(g *property.Group) error {
	if g == nil {
		return fmt.Errorf("group must not be nil")
	}

	name := g.Name()
	if _, ok := b.groups[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateGroup, name)
	}

	b.groups[name] = g
	b.groupOrder = append(b.groupOrder, name)

	return nil
}

// MustRegisterGroup is RegisterGroup for hand-written schemas.
func (b *Builder) MustRegisterGroup(g *property.Group) *Builder {
	if err := b.RegisterGroup(g); err != nil {
		panic(err)
	}

	return b
}

// Build freezes the schema. It verifies every declared dependency and
// every group member against the registered names (all violations are
// reported at once), runs Kahn's algorithm over the dependency graph, and
// fails on any cycle including self-loops. On success the returned
// Registry owns private copies of everything and the Builder can be
// discarded.
func (b *Builder) Build() (*Registry, error) {
	var err error

	for _, name := range b.order {
		for _, dep := range b.defs[name].DependsOn() {
			if _, ok := b.defs[dep]; !ok {
				err = multierr.Append(err, fmt.Errorf("%w: %q required by %q", ErrUndefinedDependency, dep, name))
			}
		}
	}

	for _, gname := range b.groupOrder {
		for _, member := range b.groups[gname].Properties() {
			if _, ok := b.defs[member]; !ok {
				err = multierr.Append(err, fmt.Errorf("%w: %q in group %q", ErrUnknownGroupMember, member, gname))
			}
		}
	}

	if err != nil {
		return nil, err
	}

	topo, err := topoSortProperties(b.order,
		func(name string) []string { return b.defs[name].DependsOn() },
		func(name string) int { return b.defs[name].Order() },
	)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		defs:       make(map[string]*property.Definition, len(b.defs)),
		order:      append([]string(nil), b.order...),
		topo:       topo,
		groups:     make(map[string]*property.Group, len(b.groups)),
		groupOrder: append([]string(nil), b.groupOrder...),
	}

	for name, def := range b.defs {
		r.defs[name] = def
	}

	for name, g := range b.groups {
		r.groups[name] = g
	}

	return r, nil
}

// Registry is the frozen schema: name-keyed definitions and groups plus
// the computed topological validation order. Immutable; safe for
// unlimited concurrent readers.
type Registry struct {
	defs       map[string]*property.Definition
	order      []string
	topo       []string
	groups     map[string]*property.Group
	groupOrder []string
}

// Definition returns the definition for a name, if registered.
func (r *Registry) Definition(name string) (*property.Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Definitions returns every definition in registration order.
func (r *Registry) Definitions() []*property.Definition {
	out := make([]*property.Definition, len(r.order))
	for i, name := range r.order {
		out[i] = r.defs[name]
	}

	return out
}

// Names returns the property names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// TopologicalOrder returns the property names in dependency order: every
// property appears after all of its declared dependencies.
func (r *Registry) TopologicalOrder() []string {
	return append([]string(nil), r.topo...)
}

// Group returns the group for a name, if registered.
func (r *Registry) Group(name string) (*property.Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// Groups returns every group in registration order.
func (r *Registry) Groups() []*property.Group {
	out := make([]*property.Group, len(r.groupOrder))
	for i, name := range r.groupOrder {
		out[i] = r.groups[name]
	}

	return out
}

// DeprecatedProperties returns the definitions carrying deprecation
// metadata, in registration order, for host integrations that want to
// warn on startup.
func (r *Registry) DeprecatedProperties() []*property.Definition {
	var out []*property.Definition

	for _, name := range r.order {
		if r.defs[name].Deprecation() != nil {
			out = append(out, r.defs[name])
		}
	}

	return out
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}
