package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpi-demonstrator/vhal-go/pkg/vehicle"
)

// Formatter formats property tables for display.
type Formatter struct {
	// ShowIDs includes numeric ids alongside names
	ShowIDs bool

	// ShowMetadata includes the group, area type and value type decoded
	// from the property id
	ShowMetadata bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int

	names Names
}

// NewFormatter creates a new Formatter with default settings. names may be
// nil, in which case only numeric ids are shown.
func NewFormatter(names Names) *Formatter {
	return &Formatter{
		ShowIDs:      true,
		ShowMetadata: true,
		IndentWidth:  2,
		names:        names,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatProperty formats a property id as its name, with the hex id when
// ShowIDs is set or the name is unknown.
func (f *Formatter) FormatProperty(id int32) string {
	hex := FormatID(id)
	name := PropertyName(f.names, id)
	switch {
	case name == "":
		return hex
	case f.ShowIDs:
		return name + " (" + hex + ")"
	default:
		return name
	}
}

// FormatArea formats an area id of prop.
func (f *Formatter) FormatArea(prop, area int32) string {
	hex := FormatID(area)
	name := AreaName(f.names, prop, area)
	switch {
	case name == "":
		return hex
	case f.ShowIDs:
		return name + " (" + hex + ")"
	default:
		return name
	}
}

// FormatTable formats every declaration of table in id order.
func (f *Formatter) FormatTable(table vehicle.Table) string {
	if len(table) == 0 {
		return "(no properties)\n"
	}
	var sb strings.Builder
	for _, decl := range table.Declarations() {
		sb.WriteString(f.FormatDeclaration(decl))
	}
	return sb.String()
}

// FormatDeclaration formats one declaration as an indented block.
func (f *Formatter) FormatDeclaration(decl vehicle.ConfigDeclaration) string {
	cfg := decl.Config
	var sb strings.Builder
	line := func(depth int, format string, args ...any) {
		sb.WriteString(f.Indent(depth, fmt.Sprintf(format, args...)))
		sb.WriteString("\n")
	}

	line(0, "%s", f.FormatProperty(cfg.Prop))
	if f.ShowMetadata {
		line(1, "type: %s %s %s", vehicle.GroupOf(cfg.Prop), vehicle.AreaTypeOf(cfg.Prop), vehicle.ValueTypeOf(cfg.Prop))
	}
	line(1, "access: %s", cfg.Access)
	line(1, "changeMode: %s", cfg.ChangeMode)
	if cfg.ConfigString != "" {
		line(1, "configString: %q", cfg.ConfigString)
	}
	if len(cfg.ConfigArray) > 0 {
		line(1, "configArray: %v", cfg.ConfigArray)
	}
	if cfg.MinSampleRate != 0 || cfg.MaxSampleRate != 0 {
		line(1, "sampleRate: %s..%s Hz", FormatFloat(cfg.MinSampleRate), FormatFloat(cfg.MaxSampleRate))
	}
	if !decl.InitialValue.IsEmpty() {
		line(1, "default: %s", FormatValues(decl.InitialValue))
	}

	if len(cfg.AreaConfigs) > 0 {
		line(1, "areas:")
		for _, area := range cfg.AreaConfigs {
			line(2, "%s", f.formatAreaConfig(cfg.Prop, area))
			if v, ok := decl.InitialAreaValues[area.AreaID]; ok && !v.IsEmpty() {
				line(3, "default: %s", FormatValues(v))
			}
		}
	}
	return sb.String()
}

func (f *Formatter) formatAreaConfig(prop int32, area vehicle.AreaConfig) string {
	parts := []string{f.FormatArea(prop, area.AreaID)}
	if area.MinInt32Value != 0 || area.MaxInt32Value != 0 {
		parts = append(parts, fmt.Sprintf("int32 %d..%d", area.MinInt32Value, area.MaxInt32Value))
	}
	if area.MinInt64Value != 0 || area.MaxInt64Value != 0 {
		parts = append(parts, fmt.Sprintf("int64 %d..%d", area.MinInt64Value, area.MaxInt64Value))
	}
	if area.MinFloatValue != 0 || area.MaxFloatValue != 0 {
		parts = append(parts, fmt.Sprintf("float %s..%s", FormatFloat(area.MinFloatValue), FormatFloat(area.MaxFloatValue)))
	}
	if len(area.SupportedEnumValues) > 0 {
		parts = append(parts, fmt.Sprintf("enums %v", area.SupportedEnumValues))
	}
	return strings.Join(parts, " ")
}

// FormatValues formats the non-empty fields of a value set.
func FormatValues(v vehicle.RawPropValues) string {
	if v.IsEmpty() {
		return "(none)"
	}
	var parts []string
	if len(v.Int32Values) > 0 {
		parts = append(parts, fmt.Sprintf("int32Values=%v", v.Int32Values))
	}
	if len(v.FloatValues) > 0 {
		fs := make([]string, len(v.FloatValues))
		for i, x := range v.FloatValues {
			fs[i] = FormatFloat(x)
		}
		parts = append(parts, "floatValues=["+strings.Join(fs, " ")+"]")
	}
	if len(v.Int64Values) > 0 {
		parts = append(parts, fmt.Sprintf("int64Values=%v", v.Int64Values))
	}
	if v.StringValue != "" {
		parts = append(parts, fmt.Sprintf("stringValue=%q", v.StringValue))
	}
	return strings.Join(parts, " ")
}

// FormatFloat formats a float32 in its shortest form.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// FormatID formats a property or area id as 8 hex digits.
func FormatID(id int32) string {
	return fmt.Sprintf("0x%08x", uint32(id))
}
