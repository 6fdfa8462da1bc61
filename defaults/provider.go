package defaults

import (
	"sync"

	"propcheck/check"
	"propcheck/property"
)

// Static returns a provider that always yields the given value.
func Static(value string) property.DefaultProvider {
	return func(*check.Context) (string, bool) {
		return value, true
	}
}

// Computed returns a provider backed by an arbitrary function of the
// context.
func Computed(fn func(ctx *check.Context) (string, bool)) property.DefaultProvider {
	return property.DefaultProvider(fn)
}

// None returns a provider that never yields a value.
func None() property.DefaultProvider {
	return func(*check.Context) (string, bool) {
		return "", false
	}
}

// ComputedCached wraps fn with a bounded memo keyed by a fingerprint of
// the context's property map. A hit returns the cached value without
// invoking fn. Absent results are never cached, since they may reflect
// preconditions that later hold. Once maxEntries keys are stored, new
// keys are computed but not cached; there is no eviction.
func ComputedCached(fn func(ctx *check.Context) (string, bool), maxEntries int) property.DefaultProvider {
	memo := &fingerprintMemo{entries: make(map[string]string), max: maxEntries}

	return func(ctx *check.Context) (string, bool) {
		key := check.Fingerprint(ctx.Snapshot())

		if v, ok := memo.get(key); ok {
			return v, true
		}

		v, ok := fn(ctx)
		if ok {
			memo.put(key, v)
		}

		return v, ok
	}
}

type fingerprintMemo struct {
	mu      sync.Mutex
	entries map[string]string
	max     int
}

func (m *fingerprintMemo) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.entries[key]

	return v, ok
}

func (m *fingerprintMemo) put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.max > 0 && len(m.entries) >= m.max {
		if _, ok := m.entries[key]; !ok {
			return
		}
	}

	m.entries[key] = value
}

// Chain builds conditional override chains over a base provider. Each
// When wraps the current provider, so the most recently added override is
// tested first: when several conditions hold at once, the last registered
// one wins.
type Chain struct {
	p property.DefaultProvider
}

// Over starts a chain from a base provider.
func Over(base property.DefaultProvider) Chain {
	if base == nil {
		base = None()
	}

	return Chain{p: base}
}

// When adds a static-value override applied when cond holds.
func (c Chain) When(cond check.Condition, value string) Chain {
	return c.WhenFunc(cond, Static(value))
}

// WhenFunc adds a computed override applied when cond holds.
func (c Chain) WhenFunc(cond check.Condition, fn property.DefaultProvider) Chain {
	prev := c.p

	return Chain{p: func(ctx *check.Context) (string, bool) {
		if cond(ctx) {
			return fn(ctx)
		}

		return prev(ctx)
	}}
}

// Provider returns the chained provider.
func (c Chain) Provider() property.DefaultProvider {
	return c.p
}
