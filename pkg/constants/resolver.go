package constants

import (
	"fmt"
	"sort"
)

// Resolver maps value names of one type tag to integers.
type Resolver interface {
	Resolve(name string) (int64, error)
}

// Tier selects which enumerations a registry contains.
type Tier int

const (
	TierSystem Tier = iota
	TierVendor
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierSystem:
		return "system"
	case TierVendor:
		return "vendor"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// includes reports whether a registry of tier t contains tables of tier other.
func (t Tier) includes(other Tier) bool {
	return other == TierSystem || other == t
}

// Entry is one (name, value) pair of an enumeration table.
type Entry struct {
	Name  string
	Value int64
}

// EnumTable is the data table of one enumeration.
type EnumTable struct {
	Name    string
	Tier    Tier
	Entries []Entry
}

// EnumResolver resolves the value names of one enumeration.
type EnumResolver struct {
	name        string
	valueByName map[string]int64
	order       []Entry
}

// NewEnumResolver indexes the entries of table by name. A later entry with
// the same name replaces an earlier one.
func NewEnumResolver(table EnumTable) *EnumResolver {
	r := &EnumResolver{
		name:        table.Name,
		valueByName: make(map[string]int64, len(table.Entries)),
	}
	r.add(table.Entries)
	return r
}

func (r *EnumResolver) add(entries []Entry) {
	for _, e := range entries {
		if _, exists := r.valueByName[e.Name]; !exists {
			r.order = append(r.order, e)
		}
		r.valueByName[e.Name] = e.Value
	}
}

// Resolve returns the value of name.
func (r *EnumResolver) Resolve(name string) (int64, error) {
	v, ok := r.valueByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s::%s", ErrUndefinedConstant, r.name, name)
	}
	return v, nil
}

// Entries returns the entries in declaration order.
func (r *EnumResolver) Entries() []Entry {
	out := make([]Entry, len(r.order))
	for i, e := range r.order {
		out[i] = Entry{Name: e.Name, Value: r.valueByName[e.Name]}
	}
	return out
}

// NamedResolver resolves the fixed table of local named constants.
type NamedResolver struct {
	values map[string]int64
}

// NewNamedResolver builds the named constant table. Test-only constants are
// included when withTest is true.
func NewNamedResolver(withTest bool) *NamedResolver {
	values := make(map[string]int64, len(namedConstants)+len(testConstants))
	for k, v := range namedConstants {
		values[k] = v
	}
	if withTest {
		for k, v := range testConstants {
			values[k] = v
		}
	}
	return &NamedResolver{values: values}
}

// Resolve returns the value of name.
func (r *NamedResolver) Resolve(name string) (int64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: constant variable name %s", ErrUndefinedConstant, name)
	}
	return v, nil
}

// Entries returns the named constants sorted by name.
func (r *NamedResolver) Entries() []Entry {
	out := make([]Entry, 0, len(r.values))
	for k, v := range r.values {
		out = append(out, Entry{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Compile-time interface satisfaction checks.
var (
	_ Resolver = (*EnumResolver)(nil)
	_ Resolver = (*NamedResolver)(nil)
)
