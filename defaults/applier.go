package defaults

import (
	"sort"

	"propcheck/check"
	"propcheck/registry"
)

// Info records which properties received a default during one Apply pass
// and the value each one received.
type Info struct {
	applied map[string]string
}

// Applied returns true if the named property's value came from a default.
func (i Info) Applied(name string) bool {
	_, ok := i.applied[name]
	return ok
}

// Value returns the default applied to the named property, if any.
func (i Info) Value(name string) (string, bool) {
	v, ok := i.applied[name]
	return v, ok
}

// Names returns the sorted names of all defaulted properties.
func (i Info) Names() []string {
	out := make([]string, 0, len(i.applied))
	for n := range i.applied {
		out = append(out, n)
	}

	sort.Strings(out)

	return out
}

// Count returns the number of applied defaults.
func (i Info) Count() int {
	return len(i.applied)
}

// Applier fills in defaults for one frozen registry.
type Applier struct {
	reg  *registry.Registry
	meta map[string]string
}

// NewApplier returns an Applier over the given registry.
func NewApplier(reg *registry.Registry) *Applier {
	return &Applier{reg: reg}
}

// WithMeta returns an Applier whose providers see the given metadata side
// channel in their context.
func (a *Applier) WithMeta(meta map[string]string) *Applier {
	cp := make(map[string]string, len(meta))
	for k, v := range meta {
		cp[k] = v
	}

	return &Applier{reg: a.reg, meta: cp}
}

// Apply merges user values with applicable defaults. The input map is
// never mutated and user values are never overwritten. Providers evaluate
// against the user-supplied values only, not against defaults applied in
// the same pass; a provider that yields nothing leaves its property
// absent, as does a definition without a provider.
func (a *Applier) Apply(user map[string]string) (map[string]string, Info) {
	merged := make(map[string]string, len(user))
	for k, v := range user {
		merged[k] = v
	}

	info := Info{applied: make(map[string]string)}

	ctx := check.NewContext(user)
	if a.meta != nil {
		ctx = ctx.WithMeta(a.meta)
	}

	for _, def := range a.reg.Definitions() {
		name := def.Name()

		if _, ok := user[name]; ok {
			continue
		}

		provider := def.Default()
		if provider == nil {
			continue
		}

		if v, ok := provider(ctx); ok {
			merged[name] = v
			info.applied[name] = v
		}
	}

	return merged, info
}
