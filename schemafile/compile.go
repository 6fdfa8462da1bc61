package schemafile

import (
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/multierr"

	"propcheck/check"
	"propcheck/convert"
	"propcheck/defaults"
	"propcheck/property"
	"propcheck/registry"
	"propcheck/rules"
)

// Compile turns a parsed schema file into a frozen registry. Every
// problem found while compiling is reported, not just the first; a nil
// converter falls back to the built-in table.
func Compile(f *File, conv *convert.Converter) (*registry.Registry, error) {
	if conv == nil {
		conv = convert.NewConverter()
	}

	b := registry.NewBuilder()

	var errs error

	for i := range f.Properties {
		def, err := compileProperty(&f.Properties[i], conv)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if err := b.Register(def); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	for i := range f.Groups {
		g, err := compileGroup(&f.Groups[i])
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if err := b.RegisterGroup(g); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		return nil, errs
	}

	return b.Build()
}

func compileProperty(p *PropertyDef, conv *convert.Converter) (*property.Definition, error) {
	typ := convert.Type(p.Type)
	if !conv.Knows(typ) {
		return nil, fmt.Errorf("property %q: unknown type %q", p.Name, p.Type)
	}

	pb := property.NewDefinition(p.Name, typ).
		Category(p.Category).
		Order(p.Order).
		DependsOn(p.DependsOn...)

	if p.Required {
		pb.Required()
	}

	if p.Default != nil {
		pb.WithDefault(defaults.Static(*p.Default))
	}

	if p.Deprecated != nil {
		pb.Deprecated(p.Deprecated.Since, p.Deprecated.Message, p.Deprecated.ReplacedBy)
	}

	if len(p.Rules) > 0 {
		compiled := make([]check.Rule, 0, len(p.Rules))

		for i := range p.Rules {
			r, err := compileRule(&p.Rules[i])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", p.Name, err)
			}

			compiled = append(compiled, r)
		}

		pb.WithRule(check.AllOf(compiled...))
	}

	return pb.Build()
}

func compileGroup(g *GroupDef) (*property.Group, error) {
	gb := property.NewGroup(g.Name).
		Description(g.Description).
		WithProperties(g.Properties...)

	for i := range g.Rules {
		r, err := compileGroupRule(&g.Rules[i])
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}

		gb.WithRule(r)
	}

	return gb.Build()
}

// compileRule maps a rule spec to a catalog constructor.
func compileRule(spec *RuleSpec) (check.Rule, error) {
	switch spec.Name {
	case "not_blank":
		return rules.NotBlank(), nil
	case "min_length":
		n, err := intArg(spec)
		if err != nil {
			return nil, err
		}

		return rules.MinLength(n), nil
	case "max_length":
		n, err := intArg(spec)
		if err != nil {
			return nil, err
		}

		return rules.MaxLength(n), nil
	case "matches":
		pattern, err := oneArg(spec)
		if err != nil {
			return nil, err
		}

		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("rule matches: bad pattern: %w", err)
		}

		return rules.Matches(pattern), nil
	case "one_of":
		if len(spec.Args) == 0 {
			return nil, fmt.Errorf("rule one_of: at least one value required")
		}

		return rules.OneOf(spec.Args...), nil
	case "min":
		v, err := floatArg(spec)
		if err != nil {
			return nil, err
		}

		return rules.Min(v), nil
	case "max":
		v, err := floatArg(spec)
		if err != nil {
			return nil, err
		}

		return rules.Max(v), nil
	case "in_range":
		lo, hi, err := twoFloatArgs(spec)
		if err != nil {
			return nil, err
		}

		return rules.InRange(lo, hi), nil
	case "positive":
		return rules.Positive(), nil
	case "file_exists":
		return rules.FileExists(), nil
	case "is_dir":
		return rules.IsDir(), nil
	case "is_file":
		return rules.IsFile(), nil
	default:
		return nil, fmt.Errorf("unknown rule %q", spec.Name)
	}
}

// compileGroupRule maps a rule spec to a multi-property family.
func compileGroupRule(spec *RuleSpec) (check.MultiRule, error) {
	switch spec.Name {
	case "less_than":
		a, b, err := twoArgs(spec)
		if err != nil {
			return nil, err
		}

		return check.LessThan(a, b), nil
	case "less_than_or_equal":
		a, b, err := twoArgs(spec)
		if err != nil {
			return nil, err
		}

		return check.LessThanOrEqual(a, b), nil
	case "greater_than":
		a, b, err := twoArgs(spec)
		if err != nil {
			return nil, err
		}

		return check.GreaterThan(a, b), nil
	case "greater_than_or_equal":
		a, b, err := twoArgs(spec)
		if err != nil {
			return nil, err
		}

		return check.GreaterThanOrEqual(a, b), nil
	case "mutually_exclusive":
		return check.MutuallyExclusive(spec.Args...), nil
	case "at_least_one_required":
		return check.AtLeastOneRequired(spec.Args...), nil
	case "exactly_one_required":
		return check.ExactlyOneRequired(spec.Args...), nil
	case "all_or_nothing":
		return check.AllOrNothing(spec.Args...), nil
	case "if_then":
		a, b, err := twoArgs(spec)
		if err != nil {
			return nil, err
		}

		return check.IfThen(a, b), nil
	default:
		return nil, fmt.Errorf("unknown group rule %q", spec.Name)
	}
}

func oneArg(spec *RuleSpec) (string, error) {
	if len(spec.Args) != 1 {
		return "", fmt.Errorf("rule %s: exactly one argument required, got %d", spec.Name, len(spec.Args))
	}

	return spec.Args[0], nil
}

func twoArgs(spec *RuleSpec) (string, string, error) {
	if len(spec.Args) != 2 {
		return "", "", fmt.Errorf("rule %s: exactly two arguments required, got %d", spec.Name, len(spec.Args))
	}

	return spec.Args[0], spec.Args[1], nil
}

func intArg(spec *RuleSpec) (int, error) {
	s, err := oneArg(spec)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("rule %s: integer argument required: %w", spec.Name, err)
	}

	return n, nil
}

func floatArg(spec *RuleSpec) (float64, error) {
	s, err := oneArg(spec)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("rule %s: numeric argument required: %w", spec.Name, err)
	}

	return v, nil
}

func twoFloatArgs(spec *RuleSpec) (float64, float64, error) {
	a, b, err := twoArgs(spec)
	if err != nil {
		return 0, 0, err
	}

	lo, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("rule %s: numeric arguments required: %w", spec.Name, err)
	}

	hi, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("rule %s: numeric arguments required: %w", spec.Name, err)
	}

	return lo, hi, nil
}
