package jsonconfig

import (
	"fmt"
	"strings"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Namespace prefixes of the "property" value.
const (
	VendorPrefix = "VendorVehicleProperty::"
	SystemPrefix = "VehicleProperty::"
)

// Partition holds the property elements of one document grouped by namespace.
type Partition struct {
	System []any
	Vendor []any
}

// Split partitions nodes by the prefix of their "property" value. Elements
// without a "property" field or with an unknown prefix are reported to errs
// and left out of both groups.
func Split(nodes []any, errs *ErrorList) Partition {
	var part Partition
	for _, node := range nodes {
		obj, _ := node.(map[string]any)
		raw, present := obj[fieldProperty]
		if !present {
			errs.Add(newFieldError(ErrMissingField, fieldProperty, fmt.Sprintf(
				"Node: %s does not have required %q field", render(node), fieldProperty)))
			continue
		}

		name, isString := raw.(string)
		switch {
		case isString && strings.HasPrefix(name, VendorPrefix):
			part.Vendor = append(part.Vendor, node)
		case isString && strings.HasPrefix(name, SystemPrefix):
			part.System = append(part.System, node)
		default:
			if !isString {
				name = render(raw)
			}
			errs.Add(newFieldError(ErrUnknownNamespace, fieldProperty, fmt.Sprintf(
				"Node: %s has unknown property type %s", render(node), name)))
		}
	}
	return part
}

// merge combines the per-namespace tables. System declarations are inserted
// last and replace vendor declarations with the same id.
func merge(vendor, system vehicle.Table) vehicle.Table {
	out := make(vehicle.Table, len(vendor)+len(system))
	out.Merge(vendor)
	out.Merge(system)
	return out
}
