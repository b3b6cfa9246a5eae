package vehicle

import "fmt"

// Property id field masks.
const (
	GroupMask     int32 = 0x70000000
	AreaTypeMask  int32 = 0x0f000000
	ValueTypeMask int32 = 0x00ff0000
	UniqueIDMask  int32 = 0x0000ffff
)

// Group is the property group encoded in bits 28-30 of a property id.
type Group int32

const (
	GroupSystem Group = 0x10000000
	GroupVendor Group = 0x20000000
)

// String returns the group name.
func (g Group) String() string {
	switch g {
	case GroupSystem:
		return "SYSTEM"
	case GroupVendor:
		return "VENDOR"
	default:
		return fmt.Sprintf("GROUP(0x%08x)", int32(g))
	}
}

// AreaType is the area type encoded in bits 24-27 of a property id.
type AreaType int32

const (
	AreaGlobal AreaType = 0x01000000
	AreaWindow AreaType = 0x03000000
	AreaMirror AreaType = 0x04000000
	AreaSeat   AreaType = 0x05000000
	AreaDoor   AreaType = 0x06000000
	AreaWheel  AreaType = 0x07000000
)

// String returns the area type name.
func (a AreaType) String() string {
	switch a {
	case AreaGlobal:
		return "GLOBAL"
	case AreaWindow:
		return "WINDOW"
	case AreaMirror:
		return "MIRROR"
	case AreaSeat:
		return "SEAT"
	case AreaDoor:
		return "DOOR"
	case AreaWheel:
		return "WHEEL"
	default:
		return fmt.Sprintf("AREA(0x%08x)", int32(a))
	}
}

// ValueType is the value type encoded in bits 16-23 of a property id.
type ValueType int32

const (
	TypeString   ValueType = 0x00100000
	TypeBoolean  ValueType = 0x00200000
	TypeInt32    ValueType = 0x00400000
	TypeInt32Vec ValueType = 0x00410000
	TypeInt64    ValueType = 0x00500000
	TypeInt64Vec ValueType = 0x00510000
	TypeFloat    ValueType = 0x00600000
	TypeFloatVec ValueType = 0x00610000
	TypeBytes    ValueType = 0x00700000
	TypeMixed    ValueType = 0x00e00000
)

// String returns the value type name.
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "STRING"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInt32:
		return "INT32"
	case TypeInt32Vec:
		return "INT32_VEC"
	case TypeInt64:
		return "INT64"
	case TypeInt64Vec:
		return "INT64_VEC"
	case TypeFloat:
		return "FLOAT"
	case TypeFloatVec:
		return "FLOAT_VEC"
	case TypeBytes:
		return "BYTES"
	case TypeMixed:
		return "MIXED"
	default:
		return fmt.Sprintf("TYPE(0x%08x)", int32(t))
	}
}

// GroupOf extracts the group of a property id.
func GroupOf(prop int32) Group { return Group(prop & GroupMask) }

// AreaTypeOf extracts the area type of a property id.
func AreaTypeOf(prop int32) AreaType { return AreaType(prop & AreaTypeMask) }

// ValueTypeOf extracts the value type of a property id.
func ValueTypeOf(prop int32) ValueType { return ValueType(prop & ValueTypeMask) }

// IsGlobal reports whether the property is not split into areas.
func IsGlobal(prop int32) bool { return AreaTypeOf(prop) == AreaGlobal }
