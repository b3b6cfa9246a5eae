package jsonconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

func TestSplit(t *testing.T) {
	nodes := decode(t, `[
		{"property": "VehicleProperty::INFO_VIN"},
		{"property": "VendorVehicleProperty::AMBIENT_LIGHT_MODE"},
		{"property": "VehicleProperty::INFO_MAKE"},
		{"property": "Bogus::FOO"},
		{"property": 291504388},
		{"access": 1}
	]`).([]any)

	var errs ErrorList
	part := Split(nodes, &errs)

	assert.Len(t, part.System, 2)
	assert.Len(t, part.Vendor, 1)

	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], ErrUnknownNamespace)
	assert.Contains(t, errs[0].Message, "has unknown property type Bogus::FOO")
	assert.ErrorIs(t, errs[1], ErrUnknownNamespace)
	assert.Contains(t, errs[1].Message, "has unknown property type 291504388")
	assert.ErrorIs(t, errs[2], ErrMissingField)
	assert.Equal(t, `Node: {"access":1} does not have required "property" field`, errs[2].Message)
}

func TestSplitVendorPrefixIsNotSystem(t *testing.T) {
	// "VendorVehicleProperty::" contains "VehicleProperty::" but must not be
	// routed to the system group.
	nodes := decode(t, `[{"property": "VendorVehicleProperty::AMBIENT_LIGHT_COLOR"}]`).([]any)

	var errs ErrorList
	part := Split(nodes, &errs)
	assert.Empty(t, part.System)
	assert.Len(t, part.Vendor, 1)
	assert.Zero(t, errs.Len())
}

func TestSplitNonObjectElement(t *testing.T) {
	var errs ErrorList
	part := Split([]any{"VehicleProperty::INFO_VIN"}, &errs)

	assert.Empty(t, part.System)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrMissingField)
}

func TestMergeSystemWins(t *testing.T) {
	vendor := vehicle.TableOf(
		vehicle.ConfigDeclaration{Config: vehicle.PropertyConfig{Prop: 1, ConfigString: "vendor"}},
		vehicle.ConfigDeclaration{Config: vehicle.PropertyConfig{Prop: 2, ConfigString: "vendor"}},
	)
	system := vehicle.TableOf(
		vehicle.ConfigDeclaration{Config: vehicle.PropertyConfig{Prop: 2, ConfigString: "system"}},
		vehicle.ConfigDeclaration{Config: vehicle.PropertyConfig{Prop: 3, ConfigString: "system"}},
	)

	got := merge(vendor, system)

	require.Len(t, got, 3)
	assert.Equal(t, "vendor", got[1].Config.ConfigString)
	assert.Equal(t, "system", got[2].Config.ConfigString)
	assert.Equal(t, "system", got[3].Config.ConfigString)

	// Inputs are not modified.
	assert.Equal(t, "vendor", vendor[2].Config.ConfigString)
}
