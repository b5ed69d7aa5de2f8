package gen

import (
	"text/template"

	"vecop-generator/internal/emit"
)

// Header marks generated files.
const Header = "// Code generated by vecop-generator. DO NOT EDIT."

type opsFileData struct {
	Header  string
	Package string
	Units   []*emit.Unit
}

type examplesFileData struct {
	Header     string
	Package    string
	ImportPath string
	// Alias is set when the import path does not end in the package name.
	Alias    string
	Examples []emit.ExampleFunc
}

var opsFileTemplate = template.Must(template.New("ops").Parse(`{{.Header}}

package {{.Package}}
{{range .Units}}
{{.Text}}{{end}}`))

var examplesFileTemplate = template.Must(template.New("examples").Parse(`{{.Header}}

package {{.Package}}_test

import (
	"fmt"

	{{if .Alias}}{{.Alias}} {{end}}"{{.ImportPath}}"
)
{{range .Examples}}
{{.Code}}{{end}}`))
