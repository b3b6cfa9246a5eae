package main

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rpi-demonstrator/vhal-go/pkg/enumspec"
)

var funcMap = template.FuncMap{
	"literal": literal,
	"tier":    tierConst,
}

const tablesTmpl = `// Code generated by vhal-enumgen. DO NOT EDIT.

package {{.Package}}

func generatedEnumTables() []EnumTable {
	return []EnumTable{
{{- range .Tables}}
		{
			Name: {{printf "%q" .Name}},
			Tier: {{tier .Tier}},
			Entries: []Entry{
{{- range .Values}}
				{Name: {{printf "%q" .Name}}, Value: {{literal .Value}}},{{if .Description}} // {{.Description}}{{end}}
{{- end}}
			},
		},
{{- end}}
	}
}
`

var templates = template.Must(template.New("tables").Funcs(funcMap).Parse(tablesTmpl))

type tableData struct {
	Name   string
	Tier   string
	Values []enumspec.RawEnumValue
}

type fileData struct {
	Package string
	Tables  []tableData
}

// Generate renders the tables of every schema, in order, as Go source.
// Aliases are expanded after the values of their enumeration.
func Generate(pkg string, schemas []*enumspec.RawEnumSchema) (string, error) {
	data := fileData{Package: pkg}
	seen := make(map[string]bool)

	for _, schema := range schemas {
		for i := range schema.Enums {
			def := &schema.Enums[i]
			if seen[def.Name] {
				return "", fmt.Errorf("enum %s declared in more than one schema", def.Name)
			}
			seen[def.Name] = true

			values := def.Resolved()
			for j := range values {
				// Only alias notes are carried into the generated comments.
				if !strings.HasPrefix(values[j].Description, "alias of ") {
					values[j].Description = ""
				}
			}
			data.Tables = append(data.Tables, tableData{Name: def.Name, Tier: schema.Tier, Values: values})
		}
	}

	var b strings.Builder
	if err := templates.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return b.String(), nil
}

// literal prints small values in decimal and everything else in hex.
func literal(v int64) string {
	if v >= 0 && v < 10 {
		return fmt.Sprintf("%d", v)
	}
	if v < 0 {
		return fmt.Sprintf("-%#x", -v)
	}
	return fmt.Sprintf("%#x", v)
}

func tierConst(tier string) string {
	if tier == enumspec.TierVendor {
		return "TierVendor"
	}
	return "TierSystem"
}
