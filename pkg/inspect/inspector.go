package inspect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// ErrPropertyNotFound is returned when a query selects a property that is not
// in the table.
var ErrPropertyNotFound = errors.New("property not found")

// Registry is what the inspector needs from a constant registry.
type Registry interface {
	Names
	Resolver
}

// Inspector answers questions about a compiled table.
type Inspector struct {
	table     vehicle.Table
	registry  Registry
	formatter *Formatter
}

// NewInspector creates an Inspector for table. Names are resolved through
// registry, normally the vendor-tier registry so that every tag is known.
func NewInspector(table vehicle.Table, registry Registry) *Inspector {
	return &Inspector{
		table:     table,
		registry:  registry,
		formatter: NewFormatter(registry),
	}
}

// Table returns the inspected table.
func (i *Inspector) Table() vehicle.Table {
	return i.table
}

// Formatter returns the inspector's formatter.
func (i *Inspector) Formatter() *Formatter {
	return i.formatter
}

// PropertyInfo summarizes one declaration for listings.
type PropertyInfo struct {
	ID         int32
	Name       string
	Group      vehicle.Group
	AreaType   vehicle.AreaType
	ValueType  vehicle.ValueType
	Access     vehicle.Access
	ChangeMode vehicle.ChangeMode
	Areas      int
}

// List returns a summary of every property in id order.
func (i *Inspector) List() []PropertyInfo {
	out := make([]PropertyInfo, 0, len(i.table))
	for _, decl := range i.table.Declarations() {
		id := decl.Config.Prop
		out = append(out, PropertyInfo{
			ID:         id,
			Name:       PropertyName(i.registry, id),
			Group:      vehicle.GroupOf(id),
			AreaType:   vehicle.AreaTypeOf(id),
			ValueType:  vehicle.ValueTypeOf(id),
			Access:     decl.Config.Access,
			ChangeMode: decl.Config.ChangeMode,
			Areas:      len(decl.Config.AreaConfigs),
		})
	}
	return out
}

// FormatList formats List as one line per property.
func (i *Inspector) FormatList() string {
	infos := i.List()
	if len(infos) == 0 {
		return "(no properties)\n"
	}
	var sb strings.Builder
	for _, p := range infos {
		name := p.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&sb, "%s  %-50s %-10s %-9s areas=%d\n",
			FormatID(p.ID), name, p.Access, p.ChangeMode, p.Areas)
	}
	return sb.String()
}

// Lookup returns the declaration selected by input.
func (i *Inspector) Lookup(input string) (vehicle.ConfigDeclaration, error) {
	q, err := ParseQuery(input)
	if err != nil {
		return vehicle.ConfigDeclaration{}, err
	}
	id, err := q.Resolve(i.registry)
	if err != nil {
		return vehicle.ConfigDeclaration{}, err
	}
	decl, ok := i.table[id]
	if !ok {
		return vehicle.ConfigDeclaration{}, fmt.Errorf("%w: %s", ErrPropertyNotFound, q.Raw)
	}
	return decl, nil
}

// Show formats the declaration selected by input.
func (i *Inspector) Show(input string) (string, error) {
	decl, err := i.Lookup(input)
	if err != nil {
		return "", err
	}
	return i.formatter.FormatDeclaration(decl), nil
}

// ResolveConstant resolves a "Type::Name" reference.
func (i *Inspector) ResolveConstant(ref string) (int64, error) {
	r, ok := constants.ParseRef(strings.TrimSpace(ref))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuery, ref)
	}
	return i.registry.Resolve(r.Type, r.Name)
}

// Summary counts properties per group and value type.
func (i *Inspector) Summary() string {
	groups := map[string]int{}
	types := map[string]int{}
	for id := range i.table {
		groups[vehicle.GroupOf(id).String()]++
		types[vehicle.ValueTypeOf(id).String()]++
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "properties: %d\n", len(i.table))
	writeCounts(&sb, "groups", groups)
	writeCounts(&sb, "types", types)
	return sb.String()
}

func writeCounts(sb *strings.Builder, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString(title + ":")
	for _, k := range keys {
		fmt.Fprintf(sb, " %s=%d", k, counts[k])
	}
	sb.WriteString("\n")
}
