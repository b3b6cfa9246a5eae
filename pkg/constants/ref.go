package constants

import "strings"

// Delimiter separates the type tag from the value name in a reference.
const Delimiter = "::"

// ConstantRef is a parsed "Type::Name" reference.
type ConstantRef struct {
	Type string
	Name string
}

// String returns the reference in "Type::Name" form.
func (r ConstantRef) String() string {
	return r.Type + Delimiter + r.Name
}

// ParseRef splits s on the first delimiter. It reports false if s contains
// no delimiter.
func ParseRef(s string) (ConstantRef, bool) {
	typ, name, ok := strings.Cut(s, Delimiter)
	if !ok {
		return ConstantRef{}, false
	}
	return ConstantRef{Type: typ, Name: name}, true
}
