package emit

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

// Sample operands shared by every example.
var (
	sampleLeft   = []int{1, 2, 3}
	sampleRight  = []int{4, 5, 6}
	sampleScalar = 3
)

// example is one usage scenario, shown in the doc comment and emitted as an
// Example function.
type example struct {
	Intro  string
	Suffix string
	// Code is everything up to and including the operator call.
	Code   []string
	Print  string
	Output string
}

// DocCode returns the code block shown in the doc comment.
func (x example) DocCode() []string {
	return append(slices.Clone(x.Code), "", fmt.Sprintf("fmt.Println(%s) // %s", x.Print, x.Output))
}

var exampleTemplate = template.Must(template.New("example").Parse(`func {{.Func}}() {
{{range .Code}}{{if .}}	{{.}}{{end}}
{{end}}
	fmt.Println({{.Print}})
	// Output: {{.Output}}
}
`))

// examples builds the usage scenarios of a variant.
func (e *Emitter) examples(v Variant) ([]example, error) {
	if v.Key.Family == variant.ScalarMultiply {
		x, err := e.scaleExample(v)
		if err != nil {
			return nil, err
		}

		return []example{x}, nil
	}

	primary, err := e.binaryExample(v, 1, 1)
	if err != nil {
		return nil, err
	}

	res := []example{primary}

	if v.Key.Family != variant.ElementwiseAdd || !e.opts.ScaledExamples {
		return res, nil
	}

	leftFactor, rightFactor := 1, 1
	if v.Key.Left == mode.Owned {
		leftFactor = 2
	}

	if v.Key.Right == mode.Owned {
		rightFactor = leftFactor + 1
	}

	if leftFactor == 1 && rightFactor == 1 {
		return res, nil
	}

	scaled, err := e.binaryExample(v, leftFactor, rightFactor)
	if err != nil {
		return nil, err
	}

	scaled.Intro = "This is useful for addition of vectors that are scaled:"
	scaled.Suffix = "scaled"

	return append(res, scaled), nil
}

// binaryExample applies the variant to vector1 and vector2. An operand with a
// factor above one is passed as a freshly scaled owned vector.
func (e *Emitter) binaryExample(v Variant, leftFactor, rightFactor int) (example, error) {
	left := scaled(sampleLeft, leftFactor)
	right := scaled(sampleRight, rightFactor)

	res, err := evaluate(v, left, right, 0)
	if err != nil {
		return example{}, err
	}

	leftArg := e.operandArg(v.Key.Left, "vector1", leftFactor)
	rightArg := e.operandArg(v.Key.Right, "vector2", rightFactor)

	x := example{
		Intro: "Example:",
		Code: []string{
			e.literal("vector1", sampleLeft),
			e.literal("vector2", sampleRight),
			"",
		},
		Output: res.Printed(),
	}

	switch {
	case leftFactor > 1 && rightFactor > 1:
		x.Code = append(x.Code,
			fmt.Sprintf("// The result of %s is an owned %s,", e.unqualified(leftArg), e.opts.Container),
			fmt.Sprintf("// which is then added to another owned %s, %s.", e.opts.Container, e.unqualified(rightArg)),
		)
	case leftFactor > 1:
		x.Code = append(x.Code,
			fmt.Sprintf("// The result of %s is an owned %s,", e.unqualified(leftArg), e.opts.Container),
			fmt.Sprintf("// which is then added to %s.", rightArg),
		)
	case rightFactor > 1:
		x.Code = append(x.Code,
			fmt.Sprintf("// The result of %s is an owned %s,", e.unqualified(rightArg), e.opts.Container),
			fmt.Sprintf("// which is then added to %s.", leftArg),
		)
	default:
		if note := passedByValueNote(v.Key.Left, v.Key.Right); note != "" {
			x.Code = append(x.Code, note)
		}
	}

	call := fmt.Sprintf("%s(%s, %s)", e.qualified(v.Name()), leftArg, rightArg)
	x.Code = append(x.Code, e.callLine(v, call))
	x.Print = resultVar(v)

	return x, nil
}

func (e *Emitter) scaleExample(v Variant) (example, error) {
	res, err := evaluate(v, sampleLeft, nil, sampleScalar)
	if err != nil {
		return example{}, err
	}

	x := example{
		Intro:  "Example:",
		Code:   []string{e.literal("vector1", sampleLeft), ""},
		Output: res.Printed(),
	}

	if v.Key.Left == mode.Owned {
		x.Code = append(x.Code, "// vector1 is passed by value here.")
	}

	call := fmt.Sprintf("%s(%s, %d)", e.qualified(v.Name()), v.Key.Left.ArgExpr("vector1"), sampleScalar)
	x.Code = append(x.Code, e.callLine(v, call))
	x.Print = resultVar(v)

	return x, nil
}

// callLine binds the result to a new variable unless an operand receives it.
func (e *Emitter) callLine(v Variant, call string) string {
	switch v.Spec.ResultOwnership {
	case variant.MutatedLeftRef, variant.MutatedRightRef:
		return call
	default:
		return resultVar(v) + " := " + call
	}
}

// resultVar names the variable printed after the call.
func resultVar(v Variant) string {
	switch v.Spec.ResultOwnership {
	case variant.MutatedLeftRef:
		return "vector1"
	case variant.MutatedRightRef:
		return "vector2"
	case variant.ScalarValue:
		return "value"
	default:
		if v.Key.Family.IsBinary() {
			return "vector3"
		}

		return "vector2"
	}
}

func passedByValueNote(left, right mode.OperandMode) string {
	switch {
	case left == mode.Owned && right == mode.Owned:
		return "// Both vectors are passed by value here."
	case left == mode.Owned:
		return "// vector1 is passed by value here."
	case right == mode.Owned:
		return "// vector2 is passed by value here."
	default:
		return ""
	}
}

func (e *Emitter) operandArg(m mode.OperandMode, name string, factor int) string {
	if factor > 1 {
		scale := variant.Key{Family: variant.ScalarMultiply, Left: mode.Borrowed}.FuncName()
		return fmt.Sprintf("%s(%s, %d)", e.qualified(scale), mode.Borrowed.ArgExpr(name), factor)
	}

	return m.ArgExpr(name)
}

func (e *Emitter) literal(name string, values []int) string {
	return fmt.Sprintf("%s := %s(%s)", name, e.qualified(e.opts.Literal), joinSpaced(values))
}

func (e *Emitter) qualified(name string) string {
	if e.opts.Package == "" {
		return name
	}

	return e.opts.Package + "." + name
}

func (e *Emitter) unqualified(expr string) string {
	if e.opts.Package == "" {
		return expr
	}

	prefix := e.opts.Package + "."
	return strings.TrimPrefix(expr, prefix)
}

func joinSpaced(values []int) string {
	parts := make([]string, len(values))
	for i, x := range values {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ", ")
}

func scaled(values []int, factor int) []int {
	res := make([]int, len(values))
	for i, x := range values {
		res[i] = x * factor
	}

	return res
}

// Examples renders the Example functions mirroring the variant's
// documentation. Undocumented variants have none.
func (e *Emitter) Examples(v Variant) ([]ExampleFunc, error) {
	if e.docTemplateFor(v) == variant.DocEmpty {
		return nil, nil
	}

	scenarios, err := e.examples(v)
	if err != nil {
		return nil, err
	}

	res := make([]ExampleFunc, 0, len(scenarios))

	for _, x := range scenarios {
		name := "Example" + v.Name()
		if x.Suffix != "" {
			name += "_" + x.Suffix
		}

		var buf bytes.Buffer

		err := exampleTemplate.Execute(&buf, map[string]any{
			"Func":   name,
			"Code":   x.Code,
			"Print":  x.Print,
			"Output": x.Output,
		})
		if err != nil {
			return nil, fmt.Errorf("executing example template: %w", err)
		}

		res = append(res, ExampleFunc{Name: name, Code: buf.String()})
	}

	return res, nil
}
