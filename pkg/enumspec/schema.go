// Package enumspec provides YAML parsing for vehicle interface enumeration
// schemas. Both vhal-enumgen and the constants registry import this package.
package enumspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tier names used in schema files.
const (
	TierSystem = "system"
	TierVendor = "vendor"
)

// RawEnumSchema represents one enumeration schema file.
type RawEnumSchema struct {
	Version string       `yaml:"version"`
	Tier    string       `yaml:"tier"` // "system" or "vendor"
	Enums   []RawEnumDef `yaml:"enums"`
}

// RawEnumDef represents an enum type definition.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Values      []RawEnumValue `yaml:"values"`
	Aliases     []RawEnumAlias `yaml:"aliases"`
}

// RawEnumValue represents a single enum value.
type RawEnumValue struct {
	Name        string `yaml:"name"`
	Value       int64  `yaml:"value"`
	Description string `yaml:"description"`
}

// RawEnumAlias gives an existing value a second name.
type RawEnumAlias struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// ParseEnumSchema parses an enumeration schema from YAML bytes.
func ParseEnumSchema(data []byte) (*RawEnumSchema, error) {
	var schema RawEnumSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing enum schema: %w", err)
	}
	if schema.Tier == "" {
		schema.Tier = TierSystem
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &schema, nil
}

// LoadEnumSchema loads and parses an enumeration schema from a file.
func LoadEnumSchema(path string) (*RawEnumSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	schema, err := ParseEnumSchema(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

// Validate checks tier, enum names, value names and alias targets.
func (s *RawEnumSchema) Validate() error {
	if s.Tier != TierSystem && s.Tier != TierVendor {
		return fmt.Errorf("unknown tier %q", s.Tier)
	}

	seenEnums := make(map[string]bool, len(s.Enums))
	for _, e := range s.Enums {
		if e.Name == "" {
			return fmt.Errorf("enum definition missing name")
		}
		if seenEnums[e.Name] {
			return fmt.Errorf("duplicate enum %s", e.Name)
		}
		seenEnums[e.Name] = true

		names := make(map[string]bool, len(e.Values)+len(e.Aliases))
		for _, v := range e.Values {
			if v.Name == "" {
				return fmt.Errorf("enum %s: value missing name", e.Name)
			}
			if names[v.Name] {
				return fmt.Errorf("enum %s: duplicate value %s", e.Name, v.Name)
			}
			names[v.Name] = true
		}
		for _, a := range e.Aliases {
			if _, ok := e.Lookup(a.Target); !ok {
				return fmt.Errorf("enum %s: alias %s targets unknown value %s", e.Name, a.Name, a.Target)
			}
			if names[a.Name] {
				return fmt.Errorf("enum %s: alias %s shadows an existing name", e.Name, a.Name)
			}
			names[a.Name] = true
		}
	}
	return nil
}

// Lookup returns the value declared under name, ignoring aliases.
func (e *RawEnumDef) Lookup(name string) (int64, bool) {
	for _, v := range e.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// Resolved returns every (name, value) pair of the enum with aliases expanded,
// in declaration order.
func (e *RawEnumDef) Resolved() []RawEnumValue {
	out := make([]RawEnumValue, 0, len(e.Values)+len(e.Aliases))
	out = append(out, e.Values...)
	for _, a := range e.Aliases {
		v, _ := e.Lookup(a.Target)
		out = append(out, RawEnumValue{Name: a.Name, Value: v, Description: "alias of " + a.Target})
	}
	return out
}
