package jsonconfig

import (
	"fmt"

	"github.com/rpi-demonstrator/vhal-go/pkg/constants"
	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Field names of a property entry.
const (
	fieldProperty            = "property"
	fieldAccess              = "access"
	fieldChangeMode          = "changeMode"
	fieldConfigString        = "configString"
	fieldConfigArray         = "configArray"
	fieldMinSampleRate       = "minSampleRate"
	fieldMaxSampleRate       = "maxSampleRate"
	fieldDefaultValue        = "defaultValue"
	fieldAreas               = "areas"
	fieldAreaID              = "areaId"
	fieldMinInt32Value       = "minInt32Value"
	fieldMaxInt32Value       = "maxInt32Value"
	fieldMinInt64Value       = "minInt64Value"
	fieldMaxInt64Value       = "maxInt64Value"
	fieldMinFloatValue       = "minFloatValue"
	fieldMaxFloatValue       = "maxFloatValue"
	fieldSupportedEnumValues = "supportedEnumValues"
	fieldInt32Values         = "int32Values"
	fieldFloatValues         = "floatValues"
	fieldInt64Values         = "int64Values"
	fieldStringValue         = "stringValue"
)

// Entry describes the outcome of parsing one property element.
type Entry struct {
	// PropertyID is zero when the element had no usable "property" field.
	PropertyID int32

	// Accepted is true when the element produced a declaration.
	Accepted bool

	// Errors are the problems found in this element.
	Errors ErrorList
}

// ConfigParser builds declarations from property elements. One ConfigParser
// is bound to one registry and may be shared between goroutines.
type ConfigParser struct {
	values *ValueParser
}

// NewConfigParser creates a ConfigParser resolving against registry.
func NewConfigParser(registry *constants.Registry) *ConfigParser {
	return &ConfigParser{values: NewValueParser(registry)}
}

// Values returns the parser's ValueParser.
func (p *ConfigParser) Values() *ValueParser {
	return p.values
}

// ParseProperties parses every element of nodes, appending problems to errs.
// Elements with errors are left out of the returned table. A later element
// replaces an earlier one with the same property id. onEntry, if non-nil, is
// called once per element.
func (p *ConfigParser) ParseProperties(nodes []any, errs *ErrorList, onEntry func(Entry)) vehicle.Table {
	table := make(vehicle.Table, len(nodes))
	for _, node := range nodes {
		before := errs.Len()
		decl, ok := p.ParseProperty(node, errs)
		if ok {
			table[decl.Config.Prop] = decl
		}
		if onEntry != nil {
			onEntry(Entry{
				PropertyID: decl.Config.Prop,
				Accepted:   ok,
				Errors:     (*errs)[before:errs.Len():errs.Len()],
			})
		}
	}
	return table
}

// ParseProperty parses one property element. It reports false when any
// problem was recorded for the element. A missing "property" field stops
// parsing immediately; every other field is parsed so that all of the
// element's problems are reported together.
func (p *ConfigParser) ParseProperty(node any, errs *ErrorList) (vehicle.ConfigDeclaration, bool) {
	before := errs.Len()
	var decl vehicle.ConfigDeclaration

	obj, ok := p.object(node, errs)
	if !ok {
		return decl, false
	}

	prop, ok := p.required(obj, fieldProperty, KindInt32, errs)
	if !ok {
		return decl, false
	}
	decl.Config.Prop = int32(prop.Int)
	propStr := render(obj[fieldProperty])

	if v, ok := p.soft(obj, fieldAccess, propStr, errs); ok {
		decl.Config.Access = vehicle.Access(v)
	}
	if v, ok := p.soft(obj, fieldChangeMode, propStr, errs); ok {
		decl.Config.ChangeMode = vehicle.ChangeMode(v)
	}

	if v, ok := p.optional(obj, fieldConfigString, KindString, errs); ok {
		decl.Config.ConfigString = v.Str
	}
	if vs, ok := p.optionalArray(obj, fieldConfigArray, KindInt32, errs); ok {
		decl.Config.ConfigArray = int32s(vs)
	}

	p.propValues(obj, fieldDefaultValue, &decl.InitialValue, errs)

	if v, ok := p.optional(obj, fieldMinSampleRate, KindFloat, errs); ok {
		decl.Config.MinSampleRate = v.Float
	}
	if v, ok := p.optional(obj, fieldMaxSampleRate, KindFloat, errs); ok {
		decl.Config.MaxSampleRate = v.Float
	}

	p.areas(obj, &decl, errs)

	return decl, errs.Len() == before
}

// areas parses the "areas" array. An area without an areaId is skipped; the
// remaining areas are still parsed. Duplicate area ids are kept as listed.
func (p *ConfigParser) areas(obj map[string]any, decl *vehicle.ConfigDeclaration, errs *ErrorList) {
	raw, present := obj[fieldAreas]
	if !present {
		return
	}
	items, ok := raw.([]any)
	if !ok {
		errs.Add(newFieldError(ErrTypeMismatch, fieldAreas,
			fmt.Sprintf("Field: %s is not an array", fieldAreas)))
		return
	}

	for _, item := range items {
		area, ok := p.object(item, errs)
		if !ok {
			continue
		}
		id, ok := p.required(area, fieldAreaID, KindInt32, errs)
		if !ok {
			continue
		}

		cfg := vehicle.AreaConfig{AreaID: int32(id.Int)}
		if v, ok := p.optional(area, fieldMinInt32Value, KindInt32, errs); ok {
			cfg.MinInt32Value = int32(v.Int)
		}
		if v, ok := p.optional(area, fieldMaxInt32Value, KindInt32, errs); ok {
			cfg.MaxInt32Value = int32(v.Int)
		}
		if v, ok := p.optional(area, fieldMinInt64Value, KindInt64, errs); ok {
			cfg.MinInt64Value = v.Int
		}
		if v, ok := p.optional(area, fieldMaxInt64Value, KindInt64, errs); ok {
			cfg.MaxInt64Value = v.Int
		}
		if v, ok := p.optional(area, fieldMinFloatValue, KindFloat, errs); ok {
			cfg.MinFloatValue = v.Float
		}
		if v, ok := p.optional(area, fieldMaxFloatValue, KindFloat, errs); ok {
			cfg.MaxFloatValue = v.Float
		}
		if vs, ok := p.optionalArray(area, fieldSupportedEnumValues, KindInt64, errs); ok && len(vs) > 0 {
			cfg.SupportedEnumValues = int64s(vs)
		}
		decl.Config.AreaConfigs = append(decl.Config.AreaConfigs, cfg)

		var initial vehicle.RawPropValues
		if p.propValues(area, fieldDefaultValue, &initial, errs) {
			if decl.InitialAreaValues == nil {
				decl.InitialAreaValues = make(map[int32]vehicle.RawPropValues)
			}
			decl.InitialAreaValues[cfg.AreaID] = initial
		}
	}
}

// propValues parses a defaultValue object into out. It reports true only if
// the field is present and every sub-field parsed.
func (p *ConfigParser) propValues(obj map[string]any, field string, out *vehicle.RawPropValues, errs *ErrorList) bool {
	raw, present := obj[field]
	if !present {
		return false
	}
	val, ok := p.object(raw, errs)
	if !ok {
		return false
	}

	before := errs.Len()
	if vs, ok := p.optionalArray(val, fieldInt32Values, KindInt32, errs); ok {
		out.Int32Values = int32s(vs)
	}
	if vs, ok := p.optionalArray(val, fieldFloatValues, KindFloat, errs); ok {
		out.FloatValues = float32s(vs)
	}
	if vs, ok := p.optionalArray(val, fieldInt64Values, KindInt64, errs); ok {
		out.Int64Values = int64s(vs)
	}
	if v, ok := p.optional(val, fieldStringValue, KindString, errs); ok {
		out.StringValue = v.Str
	}
	return errs.Len() == before
}

// object asserts node is a JSON object.
func (p *ConfigParser) object(node any, errs *ErrorList) (map[string]any, bool) {
	obj, ok := node.(map[string]any)
	if !ok {
		errs.Add(newFieldError(ErrStructural, "",
			fmt.Sprintf("Node: %s is not an object", render(node))))
	}
	return obj, ok
}

// required parses a field that must be present.
func (p *ConfigParser) required(obj map[string]any, field string, kind Kind, errs *ErrorList) (Value, bool) {
	if _, present := obj[field]; !present {
		errs.Add(newFieldError(ErrMissingField, field,
			fmt.Sprintf("Missing required field: %s in node: %s", field, render(obj))))
		return Value{}, false
	}
	return p.optional(obj, field, kind, errs)
}

// optional parses a field if present. It reports false when the field is
// absent or invalid.
func (p *ConfigParser) optional(obj map[string]any, field string, kind Kind, errs *ErrorList) (Value, bool) {
	raw, present := obj[field]
	if !present {
		return Value{}, false
	}
	v, err := p.values.ParseScalar(field, raw, kind)
	if err != nil {
		errs.Add(asFieldError(err, field))
		return Value{}, false
	}
	return v, true
}

// optionalArray parses an array field if present.
func (p *ConfigParser) optionalArray(obj map[string]any, field string, kind Kind, errs *ErrorList) ([]Value, bool) {
	raw, present := obj[field]
	if !present {
		return nil, false
	}
	vs, err := p.values.ParseArray(field, raw, kind)
	if err != nil {
		errs.Add(asFieldError(err, field))
		return nil, false
	}
	return vs, true
}

// soft parses an int32 field whose absence is an error that does not stop
// parsing the rest of the element.
func (p *ConfigParser) soft(obj map[string]any, field, propStr string, errs *ErrorList) (int32, bool) {
	if _, present := obj[field]; !present {
		errs.Add(newFieldError(ErrMissingField, field,
			fmt.Sprintf("No %s specified for property: %s", field, propStr)))
		return 0, false
	}
	v, ok := p.optional(obj, field, KindInt32, errs)
	return int32(v.Int), ok
}

func asFieldError(err error, field string) *FieldError {
	if fe, ok := err.(*FieldError); ok {
		return fe
	}
	return &FieldError{Kind: ErrTypeMismatch, Field: field, Message: err.Error(), Cause: err}
}
