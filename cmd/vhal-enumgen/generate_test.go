package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpi-demonstrator/vhal-go/pkg/enumspec"
)

func gearSchema() *enumspec.RawEnumSchema {
	return &enumspec.RawEnumSchema{
		Version: "1",
		Tier:    enumspec.TierSystem,
		Enums: []enumspec.RawEnumDef{
			{
				Name: "VehicleGear",
				Values: []enumspec.RawEnumValue{
					{Name: "GEAR_UNKNOWN", Value: 0},
					{Name: "GEAR_NEUTRAL", Value: 1, Description: "not carried"},
					{Name: "GEAR_1", Value: 0x10},
				},
				Aliases: []enumspec.RawEnumAlias{
					{Name: "GEAR_FIRST", Target: "GEAR_1"},
				},
			},
		},
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output missing %q\n--- output ---\n%s", substr, output)
	}
}

func TestGenerateTables(t *testing.T) {
	output, err := Generate("constants", []*enumspec.RawEnumSchema{gearSchema()})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "// Code generated by vhal-enumgen. DO NOT EDIT.")
	mustContain(t, output, "package constants")
	mustContain(t, output, `Name: "VehicleGear",`)
	mustContain(t, output, "Tier: TierSystem,")
	mustContain(t, output, `{Name: "GEAR_UNKNOWN", Value: 0},`)
	mustContain(t, output, `{Name: "GEAR_1", Value: 0x10},`)
	mustContain(t, output, `{Name: "GEAR_FIRST", Value: 0x10}, // alias of GEAR_1`)

	if strings.Contains(output, "not carried") {
		t.Error("value descriptions should not be emitted")
	}
}

func TestGenerateVendorTier(t *testing.T) {
	vendor := &enumspec.RawEnumSchema{
		Tier: enumspec.TierVendor,
		Enums: []enumspec.RawEnumDef{
			{Name: "AmbientLightMode", Values: []enumspec.RawEnumValue{{Name: "CUSTOM", Value: 0}}},
		},
	}

	output, err := Generate("constants", []*enumspec.RawEnumSchema{gearSchema(), vendor})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "Tier: TierVendor,")
	if strings.Index(output, "VehicleGear") > strings.Index(output, "AmbientLightMode") {
		t.Error("tables should keep schema order")
	}
}

func TestGenerateRejectsDuplicateEnum(t *testing.T) {
	_, err := Generate("constants", []*enumspec.RawEnumSchema{gearSchema(), gearSchema()})
	if err == nil {
		t.Fatal("expected error for duplicate enum")
	}
	if !strings.Contains(err.Error(), "VehicleGear") {
		t.Errorf("error = %v, want mention of VehicleGear", err)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{9, "9"},
		{10, "0xa"},
		{0x75, "0x75"},
		{0x21402001, "0x21402001"},
		{-1, "-0x1"},
	}
	for _, tt := range tests {
		if got := literal(tt.in); got != tt.want {
			t.Errorf("literal(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadSchemasOrdersSystemFirst(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "a_vendor.yaml", "tier: vendor\nenums:\n  - name: AmbientLightMode\n    values:\n      - { name: CUSTOM, value: 0 }\n")
	writeSchema(t, dir, "b_system.yaml", "tier: system\nenums:\n  - name: VehicleGear\n    values:\n      - { name: GEAR_PARK, value: 4 }\n")
	writeSchema(t, dir, "notes.txt", "ignored")

	schemas, err := loadSchemas(dir)
	if err != nil {
		t.Fatalf("loadSchemas failed: %v", err)
	}
	if len(schemas) != 2 {
		t.Fatalf("len(schemas) = %d, want 2", len(schemas))
	}
	if schemas[0].Tier != enumspec.TierSystem {
		t.Errorf("schemas[0].Tier = %s, want system", schemas[0].Tier)
	}
}

func TestLoadSchemasEmptyDir(t *testing.T) {
	if _, err := loadSchemas(t.TempDir()); err == nil {
		t.Fatal("expected error for empty schema directory")
	}
}

func TestRunRepositorySchemas(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tables_gen.go")
	if err := run(filepath.Join("..", "..", "schema", "enums"), out, "constants"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	output := string(data)

	mustContain(t, output, `{Name: "US_GALLON", Value: 0x42}, // alias of GALLON`)
	mustContain(t, output, `{Name: "AMBIENT_LIGHT_MODE", Value: 0x21402001},`)
	mustContain(t, output, "Tier: TierVendor,")
}

func writeSchema(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
