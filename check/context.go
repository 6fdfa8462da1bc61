package check

import "propcheck/convert"

// Context is the read-only view rules and default providers evaluate
// against. It exposes the caller-supplied property values, an orthogonal
// string metadata side channel, and typed access through an injected
// Converter.
//
// The maps are copied on construction, so a Context never observes later
// mutation of its sources.
type Context struct {
	props map[string]string
	meta  map[string]string
	conv  *convert.Converter
}

// NewContext builds a Context over the given property values.
func NewContext(props map[string]string) *Context {
	cp := make(map[string]string, len(props))
	for k, v := range props {
		cp[k] = v
	}

	return &Context{props: cp}
}

// WithMeta returns a copy of the context carrying the given metadata.
func (c *Context) WithMeta(meta map[string]string) *Context {
	cp := make(map[string]string, len(meta))
	for k, v := range meta {
		cp[k] = v
	}

	out := *c
	out.meta = cp

	return &out
}

// WithConverter returns a copy of the context using conv for typed access.
func (c *Context) WithConverter(conv *convert.Converter) *Context {
	out := *c
	out.conv = conv

	return &out
}

// Value returns the raw value of a property and whether it is present.
func (c *Context) Value(name string) (string, bool) {
	v, ok := c.props[name]
	return v, ok
}

// Has returns true if the property is present.
func (c *Context) Has(name string) bool {
	_, ok := c.props[name]
	return ok
}

// TypedValue converts the property's raw value using the context's
// Converter. Absent properties, contexts without a converter, and
// conversion failures all yield (nil, false).
func (c *Context) TypedValue(name string, t convert.Type) (any, bool) {
	if c.conv == nil {
		return nil, false
	}

	raw, ok := c.props[name]
	if !ok {
		return nil, false
	}

	typed, err := c.conv.Convert(raw, t)
	if err != nil {
		return nil, false
	}

	return typed, true
}

// Meta returns a metadata value and whether the key is present.
func (c *Context) Meta(key string) (string, bool) {
	v, ok := c.meta[key]
	return v, ok
}

// Len returns the number of properties visible in the context.
func (c *Context) Len() int {
	return len(c.props)
}

// Snapshot returns a copy of the property map, primarily for
// fingerprinting. Mutating the copy does not affect the context.
func (c *Context) Snapshot() map[string]string {
	cp := make(map[string]string, len(c.props))
	for k, v := range c.props {
		cp[k] = v
	}

	return cp
}
