package inspect

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Diff returns a unified diff of the formatted tables, or "" when they format
// identically.
func (f *Formatter) Diff(fromName, toName string, from, to vehicle.Table) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(f.FormatTable(from)),
		B:        difflib.SplitLines(f.FormatTable(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	})
}

// Changes lists the property ids that were added, removed or modified between
// two tables.
type Changes struct {
	Added    []int32
	Removed  []int32
	Modified []int32
}

// Empty reports whether the tables were identical.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Modified) == 0
}

// Compare computes the per-property changes from one table to another.
// Declarations are compared by their formatted form.
func (f *Formatter) Compare(from, to vehicle.Table) Changes {
	var c Changes
	for _, id := range from.IDs() {
		next, ok := to[id]
		if !ok {
			c.Removed = append(c.Removed, id)
			continue
		}
		if f.FormatDeclaration(from[id]) != f.FormatDeclaration(next) {
			c.Modified = append(c.Modified, id)
		}
	}
	for _, id := range to.IDs() {
		if _, ok := from[id]; !ok {
			c.Added = append(c.Added, id)
		}
	}
	return c
}
