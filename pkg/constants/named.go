package constants

import "github.com/rpi-demonstrator/vhal-go/pkg/vehicle"

// NamedTag is the type tag of the local named constant table.
const NamedTag = "Constants"

// Area bits and flags referenced by the named constant table.
const (
	doorRow1Left  = 0x00000001
	doorRow1Right = 0x00000004
	doorRow2Left  = 0x00000010
	doorRow2Right = 0x00000040
	doorRear      = 0x20000000

	windowRow1Left  = 0x00000010
	windowRow1Right = 0x00000040
	windowRow2Left  = 0x00000100
	windowRow2Right = 0x00000400
	windowRoofTop1  = 0x00010000

	seatRow1Left   = 0x0001
	seatRow1Right  = 0x0004
	seatRow2Left   = 0x0010
	seatRow2Center = 0x0020
	seatRow2Right  = 0x0040

	wheelFrontLeft  = 0x1
	wheelFrontRight = 0x2
	wheelRearLeft   = 0x4
	wheelRearRight  = 0x8

	portFrontLeft = 1
	portRearLeft  = 3

	fanDirectionFace    = 0x1
	fanDirectionFloor   = 0x2
	fanDirectionDefrost = 0x4

	mirrorDriverLeft  = 0x1
	mirrorDriverRight = 0x2

	hvacLeft  = seatRow1Left | seatRow2Left | seatRow2Center
	hvacRight = seatRow1Right | seatRow2Right
)

func vendorProp(id int32, area vehicle.AreaType, typ vehicle.ValueType) int64 {
	return int64(id | int32(vehicle.GroupVendor) | int32(area) | int32(typ))
}

// namedConstants backs the "Constants::NAME" references.
var namedConstants = map[string]int64{
	"DOOR_1_RIGHT": doorRow1Right,
	"DOOR_1_LEFT":  doorRow1Left,
	"DOOR_2_RIGHT": doorRow2Right,
	"DOOR_2_LEFT":  doorRow2Left,
	"DOOR_REAR":    doorRear,

	"HVAC_ALL":   hvacLeft | hvacRight,
	"HVAC_LEFT":  hvacLeft,
	"HVAC_RIGHT": hvacRight,

	"VENDOR_EXTENSION_BOOLEAN_PROPERTY": vendorProp(0x101, vehicle.AreaDoor, vehicle.TypeBoolean),
	"VENDOR_EXTENSION_FLOAT_PROPERTY":   vendorProp(0x102, vehicle.AreaSeat, vehicle.TypeFloat),
	"VENDOR_EXTENSION_INT_PROPERTY":     vendorProp(0x103, vehicle.AreaWindow, vehicle.TypeInt32),
	"VENDOR_EXTENSION_STRING_PROPERTY":  vendorProp(0x104, vehicle.AreaGlobal, vehicle.TypeString),

	"WINDOW_1_LEFT":                 windowRow1Left,
	"WINDOW_1_RIGHT":                windowRow1Right,
	"WINDOW_2_LEFT":                 windowRow2Left,
	"WINDOW_2_RIGHT":                windowRow2Right,
	"WINDOW_ROOF_TOP_1":             windowRoofTop1,
	"WINDOW_1_RIGHT_2_LEFT_2_RIGHT": windowRow1Right | windowRow2Left | windowRow2Right,

	"SEAT_1_LEFT":                  seatRow1Left,
	"SEAT_1_RIGHT":                 seatRow1Right,
	"SEAT_2_LEFT":                  seatRow2Left,
	"SEAT_2_RIGHT":                 seatRow2Right,
	"SEAT_2_CENTER":                seatRow2Center,
	"SEAT_2_LEFT_2_RIGHT_2_CENTER": seatRow2Left | seatRow2Right | seatRow2Center,

	"WHEEL_REAR_RIGHT":  wheelRearRight,
	"WHEEL_REAR_LEFT":   wheelRearLeft,
	"WHEEL_FRONT_RIGHT": wheelFrontRight,
	"WHEEL_FRONT_LEFT":  wheelFrontLeft,

	"CHARGE_PORT_FRONT_LEFT": portFrontLeft,
	"CHARGE_PORT_REAR_LEFT":  portRearLeft,
	"FUEL_DOOR_REAR_LEFT":    portRearLeft,

	"FAN_DIRECTION_UNKNOWN":            0,
	"FAN_DIRECTION_FLOOR":              fanDirectionFloor,
	"FAN_DIRECTION_FACE":               fanDirectionFace,
	"FAN_DIRECTION_DEFROST":            fanDirectionDefrost,
	"FAN_DIRECTION_FACE_FLOOR":         fanDirectionFace | fanDirectionFloor,
	"FAN_DIRECTION_FACE_DEFROST":       fanDirectionFace | fanDirectionDefrost,
	"FAN_DIRECTION_FLOOR_DEFROST":      fanDirectionFloor | fanDirectionDefrost,
	"FAN_DIRECTION_FLOOR_DEFROST_FACE": fanDirectionFloor | fanDirectionDefrost | fanDirectionFace,

	"LIGHT_STATE_ON":    1,
	"LIGHT_STATE_OFF":   0,
	"LIGHT_SWITCH_OFF":  0,
	"LIGHT_SWITCH_ON":   1,
	"LIGHT_SWITCH_AUTO": 0x100,

	"EV_STOPPING_MODE_CREEP": 1,
	"EV_STOPPING_MODE_ROLL":  2,
	"EV_STOPPING_MODE_HOLD":  3,

	"MIRROR_DRIVER_LEFT_RIGHT": mirrorDriverLeft | mirrorDriverRight,
}

// testConstants are only resolvable in registries built WithTestConstants.
var testConstants = map[string]int64{
	"ECHO_REVERSE_BYTES":              vendorProp(0x2a12, vehicle.AreaGlobal, vehicle.TypeBytes),
	"VENDOR_PROPERTY_ID":              vendorProp(0x2a13, vehicle.AreaGlobal, vehicle.TypeInt32),
	"kMixedTypePropertyForTest":       vendorProp(0x1111, vehicle.AreaGlobal, vehicle.TypeMixed),
	"VENDOR_CLUSTER_SWITCH_UI":        vendorProp(0x0f34, vehicle.AreaGlobal, vehicle.TypeInt32),
	"VENDOR_CLUSTER_DISPLAY_STATE":    vendorProp(0x0f35, vehicle.AreaGlobal, vehicle.TypeInt32Vec),
	"VENDOR_CLUSTER_REPORT_STATE":     vendorProp(0x0f36, vehicle.AreaGlobal, vehicle.TypeMixed),
	"VENDOR_CLUSTER_REQUEST_DISPLAY":  vendorProp(0x0f37, vehicle.AreaGlobal, vehicle.TypeInt32),
	"VENDOR_CLUSTER_NAVIGATION_STATE": vendorProp(0x0f38, vehicle.AreaGlobal, vehicle.TypeBytes),
	"PLACEHOLDER_PROPERTY_INT":        vendorProp(0x2a11, vehicle.AreaGlobal, vehicle.TypeInt32),
	"PLACEHOLDER_PROPERTY_FLOAT":      vendorProp(0x2a11, vehicle.AreaGlobal, vehicle.TypeFloat),
	"PLACEHOLDER_PROPERTY_BOOLEAN":    vendorProp(0x2a11, vehicle.AreaGlobal, vehicle.TypeBoolean),
	"PLACEHOLDER_PROPERTY_STRING":     vendorProp(0x2a11, vehicle.AreaGlobal, vehicle.TypeString),
}
