package inspect

import (
	"strings"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Type tags holding property ids.
const (
	PropertyTag       = "VehicleProperty"
	VendorPropertyTag = "VendorVehicleProperty"
)

// Names resolves values back to their symbolic names.
// *constants.Registry implements it.
type Names interface {
	NameOf(tag string, v int64) (string, bool)
	Entries(tag string) []constants.Entry
}

// areaTables lists, per area type, the enumeration tags consulted before the
// named constant table, and the name prefixes accepted from that table.
var areaTables = map[vehicle.AreaType]struct {
	tags     []string
	prefixes []string
}{
	vehicle.AreaWindow: {tags: []string{"VehicleAreaWindow"}, prefixes: []string{"WINDOW_"}},
	vehicle.AreaMirror: {tags: []string{"VehicleAreaMirror"}, prefixes: []string{"MIRROR_"}},
	vehicle.AreaSeat:   {prefixes: []string{"HVAC_", "SEAT_"}},
	vehicle.AreaDoor:   {prefixes: []string{"DOOR_"}},
	vehicle.AreaWheel:  {prefixes: []string{"WHEEL_"}},
}

// PropertyName returns the "Tag::NAME" form of a property id, or "" if names
// is nil or the id is unknown.
func PropertyName(names Names, id int32) string {
	if names == nil {
		return ""
	}
	for _, tag := range []string{PropertyTag, VendorPropertyTag} {
		if name, ok := names.NameOf(tag, int64(id)); ok {
			return tag + constants.Delimiter + name
		}
	}
	return ""
}

// AreaName returns the symbolic name of an area of prop, or "" if unknown.
func AreaName(names Names, prop, area int32) string {
	areaType := vehicle.AreaTypeOf(prop)
	if area == 0 && areaType == vehicle.AreaGlobal {
		return "GLOBAL"
	}
	if names == nil {
		return ""
	}

	tables, ok := areaTables[areaType]
	if !ok {
		return ""
	}
	for _, tag := range tables.tags {
		if name, ok := names.NameOf(tag, int64(area)); ok {
			return name
		}
	}
	for _, e := range names.Entries(constants.NamedTag) {
		if e.Value != int64(area) {
			continue
		}
		for _, prefix := range tables.prefixes {
			if strings.HasPrefix(e.Name, prefix) {
				return e.Name
			}
		}
	}
	return ""
}
