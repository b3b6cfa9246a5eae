package constants

import (
	"fmt"
	"sort"

	"github.com/rpi-demonstrator/vhal-go/pkg/enumspec"
)

// Registry maps type tags to resolvers. It is populated once by NewRegistry
// and read-only afterwards.
type Registry struct {
	tier      Tier
	resolvers map[string]Resolver
	names     map[string]map[int64]string
}

type options struct {
	withTest    bool
	schemaFiles []string
	tables      []EnumTable
}

// Option configures NewRegistry.
type Option func(*options)

// WithTestConstants adds the test-only named constants.
func WithTestConstants() Option {
	return func(o *options) { o.withTest = true }
}

// WithSchemaFiles layers enumerations loaded from YAML schema files on top of
// the generated tables.
func WithSchemaFiles(paths ...string) Option {
	return func(o *options) { o.schemaFiles = append(o.schemaFiles, paths...) }
}

// WithTables layers additional enumeration tables on top of the generated
// tables. Entries of a table whose name is already registered are added to
// the existing resolver.
func WithTables(tables ...EnumTable) Option {
	return func(o *options) { o.tables = append(o.tables, tables...) }
}

// NewRegistry builds the registry for tier.
func NewRegistry(tier Tier, opts ...Option) (*Registry, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tables := generatedEnumTables()
	for _, path := range o.schemaFiles {
		schema, err := enumspec.LoadEnumSchema(path)
		if err != nil {
			return nil, fmt.Errorf("loading schema: %w", err)
		}
		tables = append(tables, TablesFromSchema(schema)...)
	}
	tables = append(tables, o.tables...)

	r := &Registry{
		tier:      tier,
		resolvers: make(map[string]Resolver, len(tables)+1),
		names:     make(map[string]map[int64]string, len(tables)+1),
	}

	for _, t := range tables {
		if !tier.includes(t.Tier) {
			continue
		}
		if t.Name == NamedTag {
			return nil, fmt.Errorf("type tag %s is reserved", NamedTag)
		}
		if existing, ok := r.resolvers[t.Name].(*EnumResolver); ok {
			existing.add(t.Entries)
			continue
		}
		r.resolvers[t.Name] = NewEnumResolver(t)
	}
	r.resolvers[NamedTag] = NewNamedResolver(o.withTest)

	for tag, res := range r.resolvers {
		r.names[tag] = reverseIndex(res)
	}

	return r, nil
}

// reverseIndex maps each value to the first name declaring it.
func reverseIndex(res Resolver) map[int64]string {
	lister, ok := res.(interface{ Entries() []Entry })
	if !ok {
		return nil
	}
	idx := make(map[int64]string)
	for _, e := range lister.Entries() {
		if _, exists := idx[e.Value]; !exists {
			idx[e.Value] = e.Name
		}
	}
	return idx
}

// TablesFromSchema converts a parsed schema into enumeration tables with
// aliases expanded.
func TablesFromSchema(schema *enumspec.RawEnumSchema) []EnumTable {
	tier := TierSystem
	if schema.Tier == enumspec.TierVendor {
		tier = TierVendor
	}

	out := make([]EnumTable, 0, len(schema.Enums))
	for i := range schema.Enums {
		def := &schema.Enums[i]
		values := def.Resolved()
		entries := make([]Entry, 0, len(values))
		for _, v := range values {
			entries = append(entries, Entry{Name: v.Name, Value: v.Value})
		}
		out = append(out, EnumTable{Name: def.Name, Tier: tier, Entries: entries})
	}
	return out
}

// Tier returns the tier the registry was built for.
func (r *Registry) Tier() Tier { return r.tier }

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.resolvers[tag]
	return ok
}

// Lookup returns the resolver registered under tag.
func (r *Registry) Lookup(tag string) (Resolver, bool) {
	res, ok := r.resolvers[tag]
	return res, ok
}

// Resolve resolves name against the resolver registered under tag.
func (r *Registry) Resolve(tag, name string) (int64, error) {
	res, ok := r.resolvers[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownType, tag)
	}
	return res.Resolve(name)
}

// ResolveRef resolves a parsed reference.
func (r *Registry) ResolveRef(ref ConstantRef) (int64, error) {
	return r.Resolve(ref.Type, ref.Name)
}

// Tags returns the registered type tags, sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.resolvers))
	for tag := range r.resolvers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Entries returns the entries registered under tag.
func (r *Registry) Entries(tag string) []Entry {
	lister, ok := r.resolvers[tag].(interface{ Entries() []Entry })
	if !ok {
		return nil
	}
	return lister.Entries()
}

// NameOf returns the first name under tag whose value is v.
func (r *Registry) NameOf(tag string, v int64) (string, bool) {
	name, ok := r.names[tag][v]
	return name, ok
}
