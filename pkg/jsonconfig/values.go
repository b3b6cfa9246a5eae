package jsonconfig

import (
	"fmt"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
)

// ValueParser converts JSON values into typed scalars, resolving
// "Type::Name" constant references through a registry.
type ValueParser struct {
	registry *constants.Registry
}

// NewValueParser creates a ValueParser resolving against registry.
func NewValueParser(registry *constants.Registry) *ValueParser {
	return &ValueParser{registry: registry}
}

// Registry returns the registry constants are resolved against.
func (p *ValueParser) Registry() *constants.Registry {
	return p.registry
}

// ParseScalar parses raw as kind. Strings are constant references unless
// kind is KindString. Errors are *FieldError values.
func (p *ValueParser) ParseScalar(field string, raw any, kind Kind) (Value, error) {
	s, isString := raw.(string)
	if !isString || kind == KindString {
		return converters[kind](field, raw)
	}

	ref, ok := constants.ParseRef(s)
	if !ok || !p.registry.Has(ref.Type) {
		return Value{}, newFieldError(ErrUnresolvedConstant, field, fmt.Sprintf(
			"Invalid constant value: %s for field: %s", render(raw), field))
	}

	v, err := p.registry.ResolveRef(ref)
	if err != nil {
		fe := newFieldError(ErrUnresolvedConstant, field, ref.String()+" undefined")
		fe.Cause = err
		return Value{}, fe
	}
	return fromConstant(kind, v), nil
}

// ParseArray parses raw as a JSON array of kind. The first failing element
// fails the whole array.
func (p *ValueParser) ParseArray(field string, raw any, kind Kind) ([]Value, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, mismatch(field, raw, "array")
	}
	out := make([]Value, 0, len(items))
	for _, item := range items {
		v, err := p.ParseScalar(field, item, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func int32s(vs []Value) []int32 {
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = int32(v.Int)
	}
	return out
}

func int64s(vs []Value) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = v.Int
	}
	return out
}

func float32s(vs []Value) []float32 {
	out := make([]float32, len(vs))
	for i, v := range vs {
		out[i] = v.Float
	}
	return out
}
