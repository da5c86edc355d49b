// Package main generates the closed enum types from types/enums.yaml
//
// Usage:
//
//	go run ./cmd/generate-enums -in types/enums.yaml -out types/enums.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Definitions is the root of enums.yaml.
type Definitions struct {
	Enums []EnumDef `yaml:"enums"`
}

// EnumDef describes one closed string set.
type EnumDef struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	Values []string `yaml:"values"`
}

// EnumSpec is an EnumDef resolved into Go identifiers.
type EnumSpec struct {
	Name   string
	Doc    string
	Values []ValueSpec
}

// ValueSpec is a single wire value and its constant name.
type ValueSpec struct {
	Const string
	Wire  string
}

func main() {
	var in, out string
	flag.StringVar(&in, "in", "enums.yaml", "enum definitions")
	flag.StringVar(&out, "out", "enums.go", "output file")
	flag.Parse()

	defs, err := loadDefinitions(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	specs, err := buildSpecs(defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := render(specs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d enums in %s\n", len(specs), out)
}

func loadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &defs, nil
}

func buildSpecs(defs *Definitions) ([]EnumSpec, error) {
	seen := make(map[string]bool)
	specs := make([]EnumSpec, 0, len(defs.Enums))
	for _, d := range defs.Enums {
		if d.Name == "" {
			return nil, fmt.Errorf("enum without a name")
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate enum %s", d.Name)
		}
		seen[d.Name] = true
		if len(d.Values) == 0 {
			return nil, fmt.Errorf("enum %s has no values", d.Name)
		}

		spec := EnumSpec{Name: d.Name, Doc: d.Doc}
		consts := make(map[string]bool)
		for _, v := range d.Values {
			c := d.Name + constName(v)
			if consts[c] {
				return nil, fmt.Errorf("enum %s: values collide on %s", d.Name, c)
			}
			consts[c] = true
			spec.Values = append(spec.Values, ValueSpec{Const: c, Wire: v})
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

var separators = regexp.MustCompile(`[_\-\s]+`)

// constName turns a wire value into a Go identifier suffix:
// NON_PERSISTENT -> NonPersistent, IPV4_ONLY -> Ipv4Only,
// ChannelMessage -> ChannelMessage.
func constName(wire string) string {
	title := cases.Title(language.English)
	var b strings.Builder
	for _, part := range separators.Split(wire, -1) {
		if part == "" {
			continue
		}
		if strings.ToUpper(part) == part {
			b.WriteString(title.String(strings.ToLower(part)))
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func render(specs []EnumSpec) ([]byte, error) {
	tmpl, err := template.New("enums").Parse(enumsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, specs); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

const enumsTemplate = `// Code generated by cmd/generate-enums. DO NOT EDIT.

package types

import "github.com/DrewBradfordXYZ/chimemessaging-go/core"
{{range $e := .}}
// {{$e.Name}} {{$e.Doc}}
type {{$e.Name}} string

// Enum values for {{$e.Name}}
const (
{{- range $e.Values}}
	{{.Const}} {{$e.Name}} = "{{.Wire}}"
{{- end}}
)

// Values returns all known values for {{$e.Name}}, in definition order.
func ({{$e.Name}}) Values() []{{$e.Name}} {
	return []{{$e.Name}}{
{{- range $e.Values}}
		"{{.Wire}}",
{{- end}}
	}
}

// Parse{{$e.Name}} converts a wire string into a {{$e.Name}}.
func Parse{{$e.Name}}(s string) ({{$e.Name}}, error) {
	return core.ParseEnum("{{$e.Name}}", s, {{$e.Name}}("").Values())
}

// IsKnown reports whether e is one of the defined values.
func (e {{$e.Name}}) IsKnown() bool {
	_, err := Parse{{$e.Name}}(string(e))
	return err == nil
}

// EnumName returns the name of the enum type.
func ({{$e.Name}}) EnumName() string {
	return "{{$e.Name}}"
}

// String returns the wire value.
func (e {{$e.Name}}) String() string {
	return string(e)
}

// UnmarshalJSON rejects values outside the closed set.
func (e *{{$e.Name}}) UnmarshalJSON(b []byte) error {
	v, err := core.UnmarshalEnum("{{$e.Name}}", b, {{$e.Name}}("").Values())
	if err != nil {
		return err
	}
	*e = v
	return nil
}
{{end}}
// EnumNames returns the name of every enum type, in definition order.
func EnumNames() []string {
	return []string{
{{- range $e := .}}
		"{{$e.Name}}",
{{- end}}
	}
}

// EnumValues returns the wire values of the named enum type.
func EnumValues(name string) ([]string, bool) {
	switch name {
{{- range $e := .}}
	case "{{$e.Name}}":
		return core.EnumStrings({{$e.Name}}("").Values()), true
{{- end}}
	}
	return nil, false
}
`
