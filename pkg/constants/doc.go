// Package constants resolves symbolic constant references used in vehicle
// property configuration files.
//
// A reference has the form "Type::Name". Type selects a Resolver registered
// under that tag, Name selects a value inside it:
//
//	VehicleProperty::INFO_VIN           -> 0x11100100
//	VehiclePropertyAccess::READ         -> 1
//	Constants::HVAC_ALL                 -> 0x75
//
// Two kinds of resolvers exist. An EnumResolver indexes one enumeration of
// the vehicle interface by its canonical value names; the enumeration tables
// are generated from schema/enums/*.yaml by vhal-enumgen. The NamedResolver
// serves the fixed "Constants" table of area bits, flags and pre-combined
// masks.
//
// # Tiers
//
// A Registry is built once for a tier and never mutated afterwards, so it may
// be shared by concurrent loads:
//
//	system, _ := constants.NewRegistry(constants.TierSystem)
//	vendor, _ := constants.NewRegistry(constants.TierVendor)
//
// The vendor registry holds every system enumeration plus the enumerations
// declared with tier "vendor".
package constants

//go:generate go run ../../cmd/vhal-enumgen -schemas ../../schema/enums -output tables_gen.go
