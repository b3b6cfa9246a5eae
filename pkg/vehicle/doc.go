// Package vehicle implements the vehicle property configuration model.
//
// # Property Model
//
// A vehicle property is identified by a 32-bit id that packs four fields:
//
//	0x1 1 40 0400
//	  │ │ │  └── unique id within the group
//	  │ │ └───── value type (INT32, FLOAT_VEC, ...)
//	  │ └─────── area type (GLOBAL, SEAT, WINDOW, ...)
//	  └───────── group (SYSTEM or VENDOR)
//
// Every property has one PropertyConfig describing its access and change
// modes and one AreaConfig per zone it applies to. A ConfigDeclaration adds
// the initial values used to seed the runtime property store.
//
// # Tables
//
// The configuration compiler (package jsonconfig) produces a Table keyed by
// property id. Tables are plain values: they are built fresh for every load
// and never mutated afterwards.
package vehicle
