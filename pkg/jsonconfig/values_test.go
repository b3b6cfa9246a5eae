package jsonconfig

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
)

// decode parses a JSON fragment the way the loader does.
func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func systemRegistry(t *testing.T) *constants.Registry {
	t.Helper()
	r, err := constants.NewRegistry(constants.TierSystem)
	require.NoError(t, err)
	return r
}

func vendorRegistry(t *testing.T) *constants.Registry {
	t.Helper()
	r, err := constants.NewRegistry(constants.TierVendor)
	require.NoError(t, err)
	return r
}

func TestParseScalar(t *testing.T) {
	p := NewValueParser(systemRegistry(t))

	tests := []struct {
		name string
		raw  string
		kind Kind
		want Value
	}{
		{"int32 literal", `42`, KindInt32, Value{Kind: KindInt32, Int: 42}},
		{"int32 negative", `-7`, KindInt32, Value{Kind: KindInt32, Int: -7}},
		{"int32 integral decimal", `1.0`, KindInt32, Value{Kind: KindInt32, Int: 1}},
		{"int32 named constant", `"Constants::HVAC_ALL"`, KindInt32, Value{Kind: KindInt32, Int: 0x75}},
		{"int32 enum constant", `"VehicleGear::GEAR_PARK"`, KindInt32, Value{Kind: KindInt32, Int: 4}},
		{"int64 large literal", `3000000000`, KindInt64, Value{Kind: KindInt64, Int: 3000000000}},
		{"int64 constant", `"VehicleUnit::GALLON"`, KindInt64, Value{Kind: KindInt64, Int: 0x42}},
		{"int64 alias constant", `"VehicleUnit::US_GALLON"`, KindInt64, Value{Kind: KindInt64, Int: 0x42}},
		{"float literal", `2.5`, KindFloat, Value{Kind: KindFloat, Float: 2.5}},
		{"float from integer", `2`, KindFloat, Value{Kind: KindFloat, Float: 2}},
		{"float constant", `"Constants::HVAC_ALL"`, KindFloat, Value{Kind: KindFloat, Float: 117}},
		{"string literal", `"hello"`, KindString, Value{Kind: KindString, Str: "hello"}},
		{"string never resolves", `"VehicleGear::GEAR_PARK"`, KindString, Value{Kind: KindString, Str: "VehicleGear::GEAR_PARK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseScalar("field", decode(t, tt.raw), tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScalarErrors(t *testing.T) {
	p := NewValueParser(systemRegistry(t))

	tests := []struct {
		name    string
		raw     string
		kind    Kind
		wantErr error
		wantMsg string
	}{
		{"fraction for int", `1.5`, KindInt32, ErrTypeMismatch,
			"The value: 1.5 for field: f is not in correct type, expect int"},
		{"int32 overflow", `3000000000`, KindInt32, ErrTypeMismatch,
			"The value: 3000000000 for field: f is not in correct type, expect int"},
		{"bool for int64", `true`, KindInt64, ErrTypeMismatch,
			"The value: true for field: f is not in correct type, expect int64"},
		{"bool for float", `false`, KindFloat, ErrTypeMismatch,
			"The value: false for field: f is not in correct type, expect float"},
		{"float32 overflow", `1e39`, KindFloat, ErrTypeMismatch,
			"The value: 1e39 for field: f is not in correct type, expect float"},
		{"float32 negative overflow", `-3.5e38`, KindFloat, ErrTypeMismatch,
			"The value: -3.5e38 for field: f is not in correct type, expect float"},
		{"number for string", `5`, KindString, ErrTypeMismatch,
			"The value: 5 for field: f is not in correct type, expect string"},
		{"object for int", `{"a":1}`, KindInt32, ErrTypeMismatch,
			`The value: {"a":1} for field: f is not in correct type, expect int`},
		{"missing delimiter", `"HVAC_ALL"`, KindInt32, ErrUnresolvedConstant,
			`Invalid constant value: "HVAC_ALL" for field: f`},
		{"unregistered tag", `"Bogus::FOO"`, KindInt32, ErrUnresolvedConstant,
			`Invalid constant value: "Bogus::FOO" for field: f`},
		{"vendor tag in system tier", `"AmbientLightMode::CUSTOM"`, KindInt32, ErrUnresolvedConstant,
			`Invalid constant value: "AmbientLightMode::CUSTOM" for field: f`},
		{"undefined name", `"VehicleGear::NOT_A_GEAR"`, KindInt32, ErrUnresolvedConstant,
			"VehicleGear::NOT_A_GEAR undefined"},
		{"split on first delimiter", `"Constants::HVAC::ALL"`, KindInt32, ErrUnresolvedConstant,
			"Constants::HVAC::ALL undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseScalar("f", decode(t, tt.raw), tt.kind)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "f", fe.Field)
		})
	}
}

func TestParseScalarUndefinedWrapsCause(t *testing.T) {
	p := NewValueParser(systemRegistry(t))

	_, err := p.ParseScalar("f", "VehicleGear::NOT_A_GEAR", KindInt32)
	assert.ErrorIs(t, err, constants.ErrUndefinedConstant)
}

func TestParseScalarVendorTier(t *testing.T) {
	p := NewValueParser(vendorRegistry(t))

	v, err := p.ParseScalar("f", "AmbientLightMode::BATTERY_LEVEL", KindInt32)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int)

	v, err = p.ParseScalar("f", "VendorVehicleProperty::AMBIENT_LIGHT_MODE", KindInt32)
	require.NoError(t, err)
	assert.Equal(t, int64(0x21402001), v.Int)

	// System tables stay visible in the vendor tier.
	v, err = p.ParseScalar("f", "VehicleGear::GEAR_DRIVE", KindInt32)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v.Int)
}

func TestParseArray(t *testing.T) {
	p := NewValueParser(systemRegistry(t))

	vs, err := p.ParseArray("configArray", decode(t, `[1, "VehicleGear::GEAR_PARK", "Constants::HVAC_LEFT"]`), KindInt32)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 4, 0x31}, int32s(vs))

	vs, err = p.ParseArray("floatValues", decode(t, `[]`), KindFloat)
	require.NoError(t, err)
	assert.Empty(t, vs)

	_, err = p.ParseArray("configArray", decode(t, `5`), KindInt32)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, "The value: 5 for field: configArray is not in correct type, expect array", err.Error())

	// The first failing element fails the array.
	vs, err = p.ParseArray("configArray", decode(t, `[1, "VehicleGear::NOT_A_GEAR", 1.5]`), KindInt32)
	require.Error(t, err)
	assert.Nil(t, vs)
	assert.Equal(t, "VehicleGear::NOT_A_GEAR undefined", err.Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt32.String())
	assert.Equal(t, "int64", KindInt64.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestFromConstantTruncatesToKind(t *testing.T) {
	v := fromConstant(KindInt32, 0x1_0000_0005)
	assert.Equal(t, int64(5), v.Int)

	v = fromConstant(KindInt64, 0x1_0000_0005)
	assert.Equal(t, int64(0x1_0000_0005), v.Int)
}
