package gen

import "text/template"

// methodData is the per-accessor template input.
type methodData struct {
	Recv    string
	Wrapper string
	Target  string
	Field   string
	Comment bool
}

// Direct emission projects straight to the field; forward emission delegates
// to the field's own capability methods; the view pair is the forward
// emission for reference-shaped targets. Template keys are family.Method.
var methodTemplates = map[string]*template.Template{
	"direct.Deref": methodTemplate("direct.Deref", `
{{- if .Comment}}// Deref exposes read access to the {{.Target}} held by {{.Wrapper}}.
{{end -}}
func ({{.Recv}} *{{.Wrapper}}) Deref() *{{.Target}} {
	return &{{.Recv}}.{{.Field}}
}`),

	"direct.DerefMut": methodTemplate("direct.DerefMut", `
{{- if .Comment}}// DerefMut exposes write access to the {{.Target}} held by {{.Wrapper}}.
{{end -}}
func ({{.Recv}} *{{.Wrapper}}) DerefMut() *{{.Target}} {
	return &{{.Recv}}.{{.Field}}
}`),

	"forward.Deref": methodTemplate("forward.Deref", `
{{- if .Comment}}// Deref forwards read access through the {{.Field}} field's own capability.
{{end -}}
func ({{.Recv}} *{{.Wrapper}}) Deref() *{{.Target}} {
	return {{.Recv}}.{{.Field}}.Deref()
}`),

	"forward.DerefMut": methodTemplate("forward.DerefMut", `
{{- if .Comment}}// DerefMut forwards write access through the {{.Field}} field's own capability.
{{end -}}
func ({{.Recv}} *{{.Wrapper}}) DerefMut() *{{.Target}} {
	return {{.Recv}}.{{.Field}}.DerefMut()
}`),

	"forward.View": methodTemplate("forward.View", `
{{- if .Comment}}// View exposes a per-call {{.Target}} view of the contents reachable through {{.Wrapper}}.
{{end -}}
func ({{.Recv}} *{{.Wrapper}}) View() {{.Target}} {
	return {{.Recv}}.{{.Field}}.View()
}`),

	"forward.SetView": methodTemplate("forward.SetView", `
{{- if .Comment}}// SetView replaces the contents viewed through {{.Wrapper}}.
{{end -}}
func ({{.Recv}} *{{.Wrapper}}) SetView(val {{.Target}}) {
	{{.Recv}}.{{.Field}}.SetView(val)
}`),
}

func methodTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// assertionData is one compile-time interface assertion.
type assertionData struct {
	Iface   string
	Wrapper string
}

// fileData holds all data for the generated file template.
type fileData struct {
	PackageName string
	Imports     []importSpec
	Methods     []string
	Assertions  []assertionData
}

var fileTemplate = template.Must(
	template.New("deref_gen").
		Parse(`// Code generated by derefgen. DO NOT EDIT.

package {{.PackageName}}
{{- if .Imports}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{- end}}
{{- range .Methods}}

{{.}}
{{- end}}
{{- range .Assertions}}

var _ {{.Iface}} = (*{{.Wrapper}})(nil)
{{- end}}
`))
