package emit

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

// docData holds everything a doc template renders.
type docData struct {
	Name      string
	Modes     string
	Warning   []string
	Examples  []docExample
	Panics    bool
	ErrorType string
}

type docExample struct {
	Intro string
	Code  []string
}

var docTemplates = template.Must(template.New("doc").Parse(`
{{- define "doc.add" -}}
{{.Name}} implements element-wise addition for {{.Modes}}.
{{template "warning" .}}{{template "examples" .}}{{template "panics" .}}
{{- end}}

{{- define "doc.dot" -}}
{{.Name}} implements the dot product for {{.Modes}}.

It calculates the sum of the element-wise products of the two vectors.
Neither operand is modified.
{{template "warning" .}}{{template "examples" .}}{{template "panics" .}}
{{- end}}

{{- define "doc.scale" -}}
{{.Name}} implements scalar multiplication for {{.Modes}}.

The scalar follows the vector operand and every element is computed as
scalar * element.
{{template "warning" .}}{{template "examples" .}}
{{- end}}

{{- define "doc.empty"}}{{end}}

{{- define "warning"}}{{with .Warning}}
{{range .}}{{.}}
{{end}}{{end}}{{end}}

{{- define "examples"}}{{range .Examples}}
{{.Intro}}

{{range .Code}}{{if .}}	{{.}}{{end}}
{{end}}{{end}}{{end}}

{{- define "panics"}}{{if .Panics}}
{{.Name}} panics with a *{{.ErrorType}} if the vectors are not the same size.
{{end}}{{end}}
`))

// docTemplateFor returns the doc template used for a variant, filling in
// undocumented entries when CompleteDocs is set.
func (e *Emitter) docTemplateFor(v Variant) string {
	id := v.Spec.DocTemplate
	if id != variant.DocEmpty || !e.opts.CompleteDocs {
		return id
	}

	switch v.Key.Family {
	case variant.ElementwiseAdd:
		return variant.DocAdd
	case variant.DotProduct:
		return variant.DocDot
	case variant.ScalarMultiply:
		return variant.DocScale
	default:
		return id
	}
}

// Doc renders the doc comment of a variant. Variants without documentation
// yield an empty string.
func (e *Emitter) Doc(v Variant) (string, error) {
	id := e.docTemplateFor(v)

	tmpl := docTemplates.Lookup(id)
	if tmpl == nil {
		return "", fmt.Errorf("unknown doc template %q", id)
	}

	if id == variant.DocEmpty {
		return "", nil
	}

	data, err := e.docData(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing doc template %q: %w", id, err)
	}

	return commentLines(buf.String()), nil
}

func (e *Emitter) docData(v Variant) (*docData, error) {
	scenarios, err := e.examples(v)
	if err != nil {
		return nil, err
	}

	data := &docData{
		Name:      v.Name(),
		Modes:     modesPhrase(v.Key),
		Warning:   mutationWarning(v),
		Panics:    v.Key.Family.SizeSensitive(),
		ErrorType: e.opts.ErrorType,
	}

	for _, x := range scenarios {
		data.Examples = append(data.Examples, docExample{Intro: x.Intro, Code: x.DocCode()})
	}

	return data, nil
}

// modesPhrase returns e.g. "mutable-borrow left, owned right".
func modesPhrase(k variant.Key) string {
	if !k.Family.IsBinary() {
		return fmt.Sprintf("%s left, scalar right", k.Left)
	}

	return fmt.Sprintf("%s left, %s right", k.Left, k.Right)
}

// mutationWarning names the operand written in place and the one left
// untouched. Non-mutating variants have no warning.
func mutationWarning(v Variant) []string {
	switch v.Spec.MutationTarget {
	case variant.TargetLeft:
		lines := []string{"Warning: the left operand is mutated in place and returned."}

		switch {
		case !v.Key.Family.IsBinary():
		case v.Key.Right == mode.MutBorrowed:
			lines = append(lines,
				"The right operand is a mutable borrow too, but nothing is mutated",
				"on the right hand side. All changes happen to the left operand.")
		default:
			lines = append(lines, "The right operand is left untouched.")
		}

		return lines
	case variant.TargetRight:
		return []string{
			"Warning: the right operand is mutated in place and returned.",
			"The left operand is left untouched.",
		}
	default:
		return nil
	}
}

// commentLines turns plain text into a // comment block. Lines starting
// with a tab stay code blocks.
func commentLines(text string) string {
	var b strings.Builder

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.TrimRight(line, " \t")

		switch {
		case line == "":
			b.WriteString("//\n")
		case strings.HasPrefix(line, "\t"):
			b.WriteString("//" + line + "\n")
		default:
			b.WriteString("// " + line + "\n")
		}
	}

	return b.String()
}
