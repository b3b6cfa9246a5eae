package jsonconfig

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind is the scalar kind a field is parsed as.
type Kind uint8

const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat
	KindString
)

// String returns the kind name used in type mismatch messages.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int"
	case KindInt64:
		return "int64"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one parsed scalar. Int is set for the integer kinds, Float for
// KindFloat and Str for KindString.
type Value struct {
	Kind  Kind
	Int   int64
	Float float32
	Str   string
}

// fromConstant casts a resolved constant to kind.
func fromConstant(kind Kind, v int64) Value {
	switch kind {
	case KindInt32:
		return Value{Kind: kind, Int: int64(int32(v))}
	case KindFloat:
		return Value{Kind: kind, Float: float32(v)}
	default:
		return Value{Kind: kind, Int: v}
	}
}

// converter turns a non-constant JSON value into a Value of one kind.
type converter func(field string, raw any) (Value, error)

var converters = [...]converter{
	KindInt32:  convertInt32,
	KindInt64:  convertInt64,
	KindFloat:  convertFloat,
	KindString: convertString,
}

func convertInt32(field string, raw any) (Value, error) {
	n, ok := integral(raw)
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return Value{}, mismatch(field, raw, KindInt32.String())
	}
	return Value{Kind: KindInt32, Int: n}, nil
}

func convertInt64(field string, raw any) (Value, error) {
	n, ok := integral(raw)
	if !ok {
		return Value{}, mismatch(field, raw, KindInt64.String())
	}
	return Value{Kind: KindInt64, Int: n}, nil
}

func convertFloat(field string, raw any) (Value, error) {
	num, ok := raw.(json.Number)
	if !ok {
		return Value{}, mismatch(field, raw, KindFloat.String())
	}
	f, err := num.Float64()
	if err != nil || math.Abs(f) > math.MaxFloat32 {
		return Value{}, mismatch(field, raw, KindFloat.String())
	}
	return Value{Kind: KindFloat, Float: float32(f)}, nil
}

func convertString(field string, raw any) (Value, error) {
	s, ok := raw.(string)
	if !ok {
		return Value{}, mismatch(field, raw, KindString.String())
	}
	return Value{Kind: KindString, Str: s}, nil
}

// integral returns the value of a JSON number with no fractional part.
// Numbers written in exponent or decimal form are accepted when integral.
func integral(raw any) (int64, bool) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	if n, err := num.Int64(); err == nil {
		return n, true
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func mismatch(field string, raw any, expect string) *FieldError {
	return newFieldError(ErrTypeMismatch, field, fmt.Sprintf(
		"The value: %s for field: %s is not in correct type, expect %s",
		render(raw), field, expect))
}

// render formats a decoded JSON value for error messages.
func render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
