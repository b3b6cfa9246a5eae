// Package jsonconfig compiles JSON vehicle property configuration files into
// a vehicle.Table.
//
// A configuration document is an object with a "properties" array. Each
// element declares one property:
//
//	{
//	  "properties": [
//	    {
//	      "property": "VehicleProperty::HVAC_FAN_SPEED",
//	      "access": "VehiclePropertyAccess::READ_WRITE",
//	      "changeMode": "VehiclePropertyChangeMode::ON_CHANGE",
//	      "areas": [
//	        {"areaId": "Constants::HVAC_ALL", "minInt32Value": 1, "maxInt32Value": 7}
//	      ],
//	      "defaultValue": {"int32Values": [3]}
//	    }
//	  ]
//	}
//
// Any numeric field may be written as a literal or as a "Type::Name"
// constant reference resolved through a constants.Registry.
//
// The Loader partitions the properties by the prefix of their "property"
// value. "VehicleProperty::" entries are parsed against the system registry,
// "VendorVehicleProperty::" entries against the vendor registry. Both
// partitions go through the same ConfigParser. Field errors are collected
// rather than returned one at a time; a load either yields the complete table
// or a single *LoadError listing every problem found.
package jsonconfig
