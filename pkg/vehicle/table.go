package vehicle

import "sort"

// Table maps property ids to their declarations.
type Table map[int32]ConfigDeclaration

// IDs returns the property ids in ascending order.
func (t Table) IDs() []int32 {
	ids := make([]int32, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Declarations returns the declarations ordered by property id.
func (t Table) Declarations() []ConfigDeclaration {
	out := make([]ConfigDeclaration, 0, len(t))
	for _, id := range t.IDs() {
		out = append(out, t[id])
	}
	return out
}

// Merge copies every declaration of other into t, replacing existing ids.
func (t Table) Merge(other Table) {
	for id, decl := range other {
		t[id] = decl
	}
}

// TableOf builds a table from a list of declarations. Later declarations
// replace earlier ones with the same property id.
func TableOf(decls ...ConfigDeclaration) Table {
	t := make(Table, len(decls))
	for _, d := range decls {
		t[d.Config.Prop] = d
	}
	return t
}
