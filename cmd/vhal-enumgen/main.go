// Command vhal-enumgen generates the built-in enumeration tables of the
// constants registry from YAML schema files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/tools/imports"

	"github.com/rpi-demonstrator/vhal-go/pkg/enumspec"
)

func main() {
	schemaDir := flag.String("schemas", "schema/enums", "Directory of enumeration schema YAMLs")
	output := flag.String("output", "pkg/constants/tables_gen.go", "Output path of the generated Go file")
	pkg := flag.String("package", "constants", "Package name of the generated file")
	flag.Parse()

	if *schemaDir == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: vhal-enumgen -schemas <dir> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaDir, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaDir, output, pkg string) error {
	schemas, err := loadSchemas(schemaDir)
	if err != nil {
		return err
	}

	code, err := Generate(pkg, schemas)
	if err != nil {
		return fmt.Errorf("generating tables: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(output, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

// loadSchemas reads every *.yaml file in dir, system tier first, then by
// file name.
func loadSchemas(dir string) ([]*enumspec.RawEnumSchema, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no schema files in %s", dir)
	}
	sort.Strings(paths)

	schemas := make([]*enumspec.RawEnumSchema, 0, len(paths))
	for _, path := range paths {
		schema, err := enumspec.LoadEnumSchema(path)
		if err != nil {
			return nil, fmt.Errorf("loading schema: %w", err)
		}
		schemas = append(schemas, schema)
	}

	sort.SliceStable(schemas, func(i, j int) bool {
		return schemas[i].Tier == enumspec.TierSystem && schemas[j].Tier != enumspec.TierSystem
	})
	return schemas, nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so the generator output can be inspected.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
