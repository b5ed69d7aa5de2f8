package emit

import (
	"bytes"
	"fmt"
	"text/template"

	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

// bodyData holds the names substituted into a body template.
type bodyData struct {
	Name        string
	Elem        string
	Constraint  string
	Constructor string
	ErrorType   string
	LeftType    string
	RightType   string
	ResultType  string
	// Op names the operation in size mismatch panics.
	Op string
}

var bodyTemplates = template.Must(template.New("body").Parse(`
{{- define "signature" -}}
func {{.Name}}[{{.Elem}} {{.Constraint}}](left {{.LeftType}}, right {{.RightType}}) {{.ResultType}} {
{{- end}}

{{- define "scale.signature" -}}
func {{.Name}}[{{.Elem}} {{.Constraint}}](left {{.LeftType}}, scalar {{.Elem}}) {{.ResultType}} {
{{- end}}

{{- define "sizeCheck"}}
	if left.Len() != right.Len() {
		panic(&{{.ErrorType}}{Op: "{{.Op}}", Left: left.Len(), Right: right.Len()})
	}
{{end}}

{{- define "add.new" -}}
{{template "signature" .}}
{{- template "sizeCheck" .}}
	length := left.Len()

	list := make([]{{.Elem}}, 0, length)
	for idx := range length {
		list = append(list, left.At(idx)+right.At(idx))
	}

	return {{.Constructor}}(list)
}
{{end}}

{{- define "add.left" -}}
{{template "signature" .}}
{{- template "sizeCheck" .}}
	for idx := range left.Len() {
		left.Set(idx, left.At(idx)+right.At(idx))
	}

	return left
}
{{end}}

{{- define "add.right" -}}
{{template "signature" .}}
{{- template "sizeCheck" .}}
	for idx := range left.Len() {
		right.Set(idx, left.At(idx)+right.At(idx))
	}

	return right
}
{{end}}

{{- define "dot" -}}
{{template "signature" .}}
{{- template "sizeCheck" .}}
	var product {{.Elem}}
	for idx := range left.Len() {
		product += left.At(idx) * right.At(idx)
	}

	return product
}
{{end}}

{{- define "scale.new" -}}
{{template "scale.signature" .}}
	list := make([]{{.Elem}}, 0, left.Len())
	for idx := range left.Len() {
		list = append(list, scalar*left.At(idx))
	}

	return {{.Constructor}}(list)
}
{{end}}

{{- define "scale.left" -}}
{{template "scale.signature" .}}
	for idx := range left.Len() {
		// the element is read before its slot is overwritten
		value := left.At(idx)
		left.Set(idx, scalar*value)
	}

	return left
}
{{end}}
`))

// Body renders the implementation of a variant.
func (e *Emitter) Body(v Variant) (string, error) {
	tmpl := bodyTemplates.Lookup(v.Spec.BodyTemplate)
	if tmpl == nil {
		return "", fmt.Errorf("unknown body template %q", v.Spec.BodyTemplate)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.bodyData(v)); err != nil {
		return "", fmt.Errorf("executing body template %q: %w", v.Spec.BodyTemplate, err)
	}

	return buf.String(), nil
}

func (e *Emitter) bodyData(v Variant) bodyData {
	o := e.opts

	data := bodyData{
		Name:        v.Name(),
		Elem:        o.Elem,
		Constraint:  o.constraintFor(v.Key.Family),
		Constructor: o.Constructor,
		ErrorType:   o.ErrorType,
		LeftType:    v.Key.Left.TypeExpr(o.Container, o.Elem),
		Op:          opName(v.Key.Family),
	}

	if v.Key.Family.IsBinary() {
		data.RightType = v.Key.Right.TypeExpr(o.Container, o.Elem)
	}

	switch v.Spec.ResultOwnership {
	case variant.NewOwnedVector:
		data.ResultType = mode.Owned.TypeExpr(o.Container, o.Elem)
	case variant.MutatedLeftRef, variant.MutatedRightRef:
		data.ResultType = mode.MutBorrowed.TypeExpr(o.Container, o.Elem)
	case variant.ScalarValue:
		data.ResultType = o.Elem
	}

	return data
}

func opName(f variant.Family) string {
	switch f {
	case variant.ElementwiseAdd:
		return "addition"
	case variant.DotProduct:
		return "dot product"
	case variant.ScalarMultiply:
		return "scalar multiplication"
	default:
		return f.String()
	}
}
