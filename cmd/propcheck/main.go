// Package main provides the CLI entrypoint for propcheck.
//
// propcheck validates a key=value properties file against a YAML schema:
//   - Compiles the schema into a frozen registry (dependency-checked)
//   - Applies declared defaults to absent properties
//   - Runs every property and group rule, printing all failures
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"propcheck/convert"
	"propcheck/defaults"
	"propcheck/schemafile"
	"propcheck/validate"
)

func main() {
	var (
		schemaPath = flag.String("schema", "", "path to the YAML schema file (required)")
		propsPath  = flag.String("props", "", "path to the key=value properties file (required)")
		noDefaults = flag.Bool("no-defaults", false, "validate the raw input without applying defaults")
		dump       = flag.Bool("dump", false, "dump the merged property map before validating")
	)

	flag.Parse()

	if *schemaPath == "" || *propsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*schemaPath, *propsPath, !*noDefaults, *dump); err != nil {
		fmt.Fprintln(os.Stderr, "propcheck:", err)
		os.Exit(2)
	}
}

func run(schemaPath, propsPath string, applyDefaults, dump bool) error {
	file, err := schemafile.LoadFile(schemaPath)
	if err != nil {
		return err
	}

	conv := convert.NewConverter()

	reg, err := schemafile.Compile(file, conv)
	if err != nil {
		return fmt.Errorf("schema %s: %w", schemaPath, err)
	}

	props, err := schemafile.LoadProperties(propsPath)
	if err != nil {
		return err
	}

	for _, def := range reg.DeprecatedProperties() {
		if _, ok := props[def.Name()]; !ok {
			continue
		}

		dep := def.Deprecation()
		fmt.Fprintf(os.Stderr, "warning: %s is deprecated since %s", def.Name(), dep.Since)

		if dep.ReplacedBy != "" {
			fmt.Fprintf(os.Stderr, ", use %s instead", dep.ReplacedBy)
		}

		fmt.Fprintln(os.Stderr)
	}

	if applyDefaults {
		merged, info := defaults.NewApplier(reg).Apply(props)
		props = merged

		for _, name := range info.Names() {
			v, _ := info.Value(name)
			fmt.Printf("default applied: %s=%s\n", name, v)
		}
	}

	if dump {
		spew.Dump(props)
	}

	res := validate.New(reg, conv).Validate(props)
	if res.Valid {
		fmt.Printf("OK: %d properties valid\n", len(props))
		return nil
	}

	for _, e := range res.Errors {
		fmt.Println(e.String())
	}

	fmt.Printf("%d validation error(s)\n", len(res.Errors))
	os.Exit(1)

	return nil
}
