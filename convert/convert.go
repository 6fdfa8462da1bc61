package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type is the declared value type of a property.
type Type string

const (
	// TypeString accepts any value unchanged.
	TypeString Type = "string"
	// TypeInt parses a base-10 int.
	TypeInt Type = "int"
	// TypeInt64 parses a base-10 int64.
	TypeInt64 Type = "int64"
	// TypeFloat parses a float64.
	TypeFloat Type = "float"
	// TypeBool parses strconv-style booleans ("true", "1", "f", ...).
	TypeBool Type = "bool"
	// TypeDuration parses time.ParseDuration syntax ("250ms", "1h30m").
	TypeDuration Type = "duration"
	// TypeSize parses a byte size with an optional KB/MB/GB/TB suffix.
	TypeSize Type = "size"
	// TypePath accepts any non-empty value as a filesystem path.
	TypePath Type = "path"
)

// IsValid returns true if the tag is one of the built-in types.
func (t Type) IsValid() bool {
	switch t {
	case TypeString, TypeInt, TypeInt64, TypeFloat, TypeBool, TypeDuration, TypeSize, TypePath:
		return true
	default:
		return false
	}
}

// ParseFunc converts a raw string into a typed value.
type ParseFunc func(value string) (any, error)

// Converter maps type tags to parse functions.
type Converter struct {
	parsers map[Type]ParseFunc
}

// NewConverter returns a Converter seeded with the built-in type tags.
func NewConverter() *Converter {
	c := &Converter{parsers: make(map[Type]ParseFunc)}

	c.Register(TypeString, func(v string) (any, error) { return v, nil })
	c.Register(TypeInt, func(v string) (any, error) {
		return strconv.Atoi(strings.TrimSpace(v))
	})
	c.Register(TypeInt64, func(v string) (any, error) {
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	})
	c.Register(TypeFloat, func(v string) (any, error) {
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	})
	c.Register(TypeBool, func(v string) (any, error) {
		return strconv.ParseBool(strings.TrimSpace(v))
	})
	c.Register(TypeDuration, func(v string) (any, error) {
		return time.ParseDuration(strings.TrimSpace(v))
	})
	c.Register(TypeSize, parseSize)
	c.Register(TypePath, func(v string) (any, error) {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("empty path")
		}

		return v, nil
	})

	return c
}

// Register installs (or replaces) the parse function for a tag.
func (c *Converter) Register(t Type, fn ParseFunc) {
	c.parsers[t] = fn
}

// Knows returns true if the tag has a registered parse function.
func (c *Converter) Knows(t Type) bool {
	_, ok := c.parsers[t]
	return ok
}

// Convert parses value according to the tag. An unregistered tag or a
// malformed value yields an error describing the failure.
func (c *Converter) Convert(value string, t Type) (any, error) {
	fn, ok := c.parsers[t]
	if !ok {
		return nil, fmt.Errorf("no converter registered for type %q", t)
	}

	typed, err := fn(value)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as %s: %w", value, t, err)
	}

	return typed, nil
}

var sizeSuffixes = []struct {
	suffix string
	mult   int64
}{
	{"TB", 1 << 40},
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// parseSize parses "512", "64KB", "10MB" etc. into a byte count.
func parseSize(value string) (any, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v == "" {
		return nil, fmt.Errorf("empty size")
	}

	for _, s := range sizeSuffixes {
		if !strings.HasSuffix(v, s.suffix) {
			continue
		}

		num := strings.TrimSpace(strings.TrimSuffix(v, s.suffix))
		if num == "" {
			return nil, fmt.Errorf("size %q has no numeric part", value)
		}

		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return nil, err
		}

		if n < 0 {
			return nil, fmt.Errorf("negative size %q", value)
		}

		return n * s.mult, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("negative size %q", value)
	}

	return n, nil
}
