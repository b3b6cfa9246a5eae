package enumspec

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// schemaDir returns the absolute path to schema/enums/ relative to this test file.
func schemaDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "schema", "enums")
}

func TestParseEnumSchema_Minimal(t *testing.T) {
	yaml := `
version: "1"
tier: vendor
enums:
  - name: AmbientLightMode
    description: "Ambient light source"
    values:
      - { name: CUSTOM, value: 0 }
      - { name: BATTERY_LEVEL, value: 0x01 }
`
	schema, err := ParseEnumSchema([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseEnumSchema failed: %v", err)
	}
	if schema.Tier != TierVendor {
		t.Errorf("tier = %q, want vendor", schema.Tier)
	}
	if len(schema.Enums) != 1 {
		t.Fatalf("len(enums) = %d, want 1", len(schema.Enums))
	}
	e := schema.Enums[0]
	if e.Name != "AmbientLightMode" {
		t.Errorf("name = %q, want AmbientLightMode", e.Name)
	}
	if len(e.Values) != 2 || e.Values[1].Name != "BATTERY_LEVEL" || e.Values[1].Value != 1 {
		t.Errorf("values = %+v", e.Values)
	}
}

func TestParseEnumSchema_DefaultTier(t *testing.T) {
	schema, err := ParseEnumSchema([]byte("enums: []\n"))
	if err != nil {
		t.Fatalf("ParseEnumSchema failed: %v", err)
	}
	if schema.Tier != TierSystem {
		t.Errorf("tier = %q, want system", schema.Tier)
	}
}

func TestParseEnumSchema_Aliases(t *testing.T) {
	yaml := `
enums:
  - name: VehicleUnit
    values:
      - { name: LITER, value: 0x41 }
      - { name: GALLON, value: 0x42 }
    aliases:
      - { name: US_GALLON, target: GALLON }
`
	schema, err := ParseEnumSchema([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseEnumSchema failed: %v", err)
	}

	resolved := schema.Enums[0].Resolved()
	if len(resolved) != 3 {
		t.Fatalf("len(resolved) = %d, want 3", len(resolved))
	}
	last := resolved[2]
	if last.Name != "US_GALLON" || last.Value != 0x42 {
		t.Errorf("alias = %+v, want US_GALLON/0x42", last)
	}
}

func TestParseEnumSchema_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad tier", "tier: oem\nenums: []\n"},
		{"missing enum name", "enums:\n  - values: []\n"},
		{"duplicate enum", "enums:\n  - name: A\n  - name: A\n"},
		{"duplicate value", "enums:\n  - name: A\n    values:\n      - { name: X, value: 1 }\n      - { name: X, value: 2 }\n"},
		{"dangling alias", "enums:\n  - name: A\n    values:\n      - { name: X, value: 1 }\n    aliases:\n      - { name: Y, target: Z }\n"},
		{"alias shadows value", "enums:\n  - name: A\n    values:\n      - { name: X, value: 1 }\n    aliases:\n      - { name: X, target: X }\n"},
		{"malformed yaml", "enums: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEnumSchema([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnumSchema_MissingFile(t *testing.T) {
	_, err := LoadEnumSchema(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEnumSchema_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	if err := os.WriteFile(path, []byte("tier: vendor\nenums:\n  - name: Extra\n    values:\n      - { name: ONE, value: 1 }\n"), 0644); err != nil {
		t.Fatal(err)
	}
	schema, err := LoadEnumSchema(path)
	if err != nil {
		t.Fatalf("LoadEnumSchema failed: %v", err)
	}
	if schema.Enums[0].Name != "Extra" {
		t.Errorf("name = %q, want Extra", schema.Enums[0].Name)
	}
}

func TestLoadEnumSchema_RealSchemas(t *testing.T) {
	dir := schemaDir(t)

	system, err := LoadEnumSchema(filepath.Join(dir, "system.yaml"))
	if err != nil {
		t.Fatalf("system.yaml: %v", err)
	}
	if system.Tier != TierSystem {
		t.Errorf("system tier = %q", system.Tier)
	}

	var unit *RawEnumDef
	for i := range system.Enums {
		if system.Enums[i].Name == "VehicleUnit" {
			unit = &system.Enums[i]
		}
	}
	if unit == nil {
		t.Fatal("VehicleUnit not found in system.yaml")
	}
	if len(unit.Aliases) != 1 || unit.Aliases[0].Name != "US_GALLON" {
		t.Errorf("VehicleUnit aliases = %+v, want US_GALLON", unit.Aliases)
	}

	vendor, err := LoadEnumSchema(filepath.Join(dir, "vendor.yaml"))
	if err != nil {
		t.Fatalf("vendor.yaml: %v", err)
	}
	if vendor.Tier != TierVendor {
		t.Errorf("vendor tier = %q", vendor.Tier)
	}
}
