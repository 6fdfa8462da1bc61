package schemafile

import (
	"errors"
	"fmt"
)

// File represents the root of a YAML schema definition file.
type File struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Properties lists every property definition.
	Properties []PropertyDef `yaml:"properties"`

	// Groups lists property groups with their cross-property rules.
	Groups []GroupDef `yaml:"groups,omitempty"`
}

// PropertyDef is the YAML form of one property definition.
type PropertyDef struct {
	// Name is the unique property key.
	Name string `yaml:"name"`

	// Type is the declared value type tag (string, int, bool, ...).
	Type string `yaml:"type"`

	// Required marks the property as mandatory.
	Required bool `yaml:"required,omitempty"`

	// Category is a free-form grouping tag.
	Category string `yaml:"category,omitempty"`

	// Order is the validation-order hint.
	Order int `yaml:"order,omitempty"`

	// Default is a static default value.
	Default *string `yaml:"default,omitempty"`

	// DependsOn lists properties this one's rule consults. Accepts a
	// single string or a list.
	DependsOn StringArray `yaml:"depends_on,omitempty"`

	// Rules names the single-property rules, applied as a conjunction.
	Rules []RuleSpec `yaml:"rules,omitempty"`

	// Deprecated carries optional deprecation metadata.
	Deprecated *DeprecationDef `yaml:"deprecated,omitempty"`
}

// DeprecationDef is the YAML form of deprecation metadata.
type DeprecationDef struct {
	Since      string `yaml:"since"`
	Message    string `yaml:"message,omitempty"`
	ReplacedBy string `yaml:"replaced_by,omitempty"`
}

// GroupDef is the YAML form of a property group.
type GroupDef struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Properties  StringArray `yaml:"properties"`
	Rules       []RuleSpec  `yaml:"rules,omitempty"`
}

// RuleSpec names a catalog rule with optional arguments. YAML formats:
//   - Bare string: "not_blank"
//   - Single-key map, scalar arg: {min: 1}
//   - Single-key map, list args: {less_than_or_equal: [pool.min, pool.max]}
type RuleSpec struct {
	Name string
	Args []string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RuleSpec) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		r.Name = s
		return nil
	}

	var m map[string]any
	if err := unmarshal(&m); err == nil {
		if len(m) != 1 {
			return errors.New("rule must be a name or a single {name: args} entry")
		}

		for name, args := range m {
			r.Name = name

			switch v := args.(type) {
			case nil:
			case []any:
				for _, e := range v {
					r.Args = append(r.Args, fmt.Sprint(e))
				}
			default:
				r.Args = []string{fmt.Sprint(v)}
			}
		}

		return nil
	}

	return errors.New("expected rule name or {name: args}")
}

// MarshalYAML implements yaml.Marshaler, emitting the same compact forms
// UnmarshalYAML accepts.
func (r RuleSpec) MarshalYAML() (any, error) {
	switch len(r.Args) {
	case 0:
		return r.Name, nil
	case 1:
		return map[string]string{r.Name: r.Args[0]}, nil
	default:
		return map[string][]string{r.Name: r.Args}, nil
	}
}

// StringArray is a string slice that can be unmarshaled from a single
// string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
