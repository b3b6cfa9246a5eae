package vehicle

import "fmt"

// Access is the access mode of a property.
type Access int32

const (
	AccessNone      Access = 0
	AccessRead      Access = 1
	AccessWrite     Access = 2
	AccessReadWrite Access = 3
)

// String returns the access mode name.
func (a Access) String() string {
	switch a {
	case AccessNone:
		return "NONE"
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	case AccessReadWrite:
		return "READ_WRITE"
	default:
		return fmt.Sprintf("ACCESS(%d)", int32(a))
	}
}

// ChangeMode describes how a property value changes over time.
type ChangeMode int32

const (
	ChangeModeStatic     ChangeMode = 0
	ChangeModeOnChange   ChangeMode = 1
	ChangeModeContinuous ChangeMode = 2
)

// String returns the change mode name.
func (c ChangeMode) String() string {
	switch c {
	case ChangeModeStatic:
		return "STATIC"
	case ChangeModeOnChange:
		return "ON_CHANGE"
	case ChangeModeContinuous:
		return "CONTINUOUS"
	default:
		return fmt.Sprintf("CHANGE_MODE(%d)", int32(c))
	}
}

// AreaConfig holds the bounds and allowed values of one area of a property.
// Zero values mean "not specified".
type AreaConfig struct {
	AreaID int32 `cbor:"1,keyasint" json:"areaId"`

	MinInt32Value int32 `cbor:"2,keyasint,omitempty" json:"minInt32Value,omitempty"`
	MaxInt32Value int32 `cbor:"3,keyasint,omitempty" json:"maxInt32Value,omitempty"`

	MinInt64Value int64 `cbor:"4,keyasint,omitempty" json:"minInt64Value,omitempty"`
	MaxInt64Value int64 `cbor:"5,keyasint,omitempty" json:"maxInt64Value,omitempty"`

	MinFloatValue float32 `cbor:"6,keyasint,omitempty" json:"minFloatValue,omitempty"`
	MaxFloatValue float32 `cbor:"7,keyasint,omitempty" json:"maxFloatValue,omitempty"`

	// SupportedEnumValues is nil unless the configuration listed at least one value.
	SupportedEnumValues []int64 `cbor:"8,keyasint,omitempty" json:"supportedEnumValues,omitempty"`
}

// PropertyConfig is the structural definition of a property.
type PropertyConfig struct {
	Prop       int32      `cbor:"1,keyasint" json:"property"`
	Access     Access     `cbor:"2,keyasint" json:"access"`
	ChangeMode ChangeMode `cbor:"3,keyasint" json:"changeMode"`

	ConfigString string  `cbor:"4,keyasint,omitempty" json:"configString,omitempty"`
	ConfigArray  []int32 `cbor:"5,keyasint,omitempty" json:"configArray,omitempty"`

	MinSampleRate float32 `cbor:"6,keyasint,omitempty" json:"minSampleRate,omitempty"`
	MaxSampleRate float32 `cbor:"7,keyasint,omitempty" json:"maxSampleRate,omitempty"`

	// AreaConfigs keeps the configuration order. Duplicate area ids are kept as-is.
	AreaConfigs []AreaConfig `cbor:"8,keyasint,omitempty" json:"areas,omitempty"`
}

// RawPropValues holds the typed payload of an initial value.
type RawPropValues struct {
	Int32Values []int32   `cbor:"1,keyasint,omitempty" json:"int32Values,omitempty"`
	FloatValues []float32 `cbor:"2,keyasint,omitempty" json:"floatValues,omitempty"`
	Int64Values []int64   `cbor:"3,keyasint,omitempty" json:"int64Values,omitempty"`
	StringValue string    `cbor:"4,keyasint,omitempty" json:"stringValue,omitempty"`
}

// IsEmpty reports whether no value was set.
func (v RawPropValues) IsEmpty() bool {
	return len(v.Int32Values) == 0 && len(v.FloatValues) == 0 &&
		len(v.Int64Values) == 0 && v.StringValue == ""
}

// ConfigDeclaration is the parsed configuration of one property plus its
// initial values.
type ConfigDeclaration struct {
	Config PropertyConfig `cbor:"1,keyasint" json:"config"`

	// InitialValue applies to every area without an entry in InitialAreaValues.
	InitialValue RawPropValues `cbor:"2,keyasint" json:"defaultValue"`

	InitialAreaValues map[int32]RawPropValues `cbor:"3,keyasint,omitempty" json:"areaDefaultValues,omitempty"`
}

// AreaIDs returns the area ids of the declaration in configuration order.
func (d *ConfigDeclaration) AreaIDs() []int32 {
	ids := make([]int32, 0, len(d.Config.AreaConfigs))
	for _, ac := range d.Config.AreaConfigs {
		ids = append(ids, ac.AreaID)
	}
	return ids
}
