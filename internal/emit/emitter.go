package emit

import (
	"fmt"

	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

// Options control the names used in generated code.
type Options struct {
	// Package is the target package name, used to qualify calls in examples.
	Package string
	// Container is the vector type name.
	Container string
	// Constructor builds a Container from a slice without copying it.
	Constructor string
	// Literal builds a Container from variadic elements; used in examples.
	Literal string
	// Elem is the name of the element type parameter.
	Elem string
	// Constraint is the element constraint used when a family has no entry
	// in Constraints.
	Constraint string
	// Constraints overrides Constraint per operator family.
	Constraints map[variant.Family]string
	// ErrorType is the panic value type for mismatched operand sizes.
	ErrorType string
	// CompleteDocs documents variants whose table entry has no documentation.
	CompleteDocs bool
	// ScaledExamples adds examples that feed a ScaleRef result into an owned
	// operand. Only valid when ScaleRef is generated as well.
	ScaledExamples bool
}

// DefaultOptions returns options matching the vector package.
func DefaultOptions() Options {
	return Options{
		Package:     "vector",
		Container:   "Vector",
		Constructor: "New",
		Literal:     "From",
		Elem:        "T",
		Constraint:  "Number",
		ErrorType:   "SizeMismatchError",
	}
}

// constraintFor returns the element constraint for a family.
func (o Options) constraintFor(f variant.Family) string {
	if c, ok := o.Constraints[f]; ok && c != "" {
		return c
	}

	return o.Constraint
}

// Request asks for one operator implementation.
type Request struct {
	Family variant.Family
	Left   mode.Descriptor
	// Right is ignored for unary families.
	Right mode.Descriptor
}

// String returns e.g. "add(mut *Vector, Vector)".
func (r Request) String() string {
	if !r.Family.IsBinary() {
		return fmt.Sprintf("%s(%s)", r.Family, r.Left)
	}

	return fmt.Sprintf("%s(%s, %s)", r.Family, r.Left, r.Right)
}

// RequestFor builds the request for a table key.
func RequestFor(k variant.Key) Request {
	r := Request{Family: k.Family, Left: mode.DescriptorOf(k.Left)}
	if k.Family.IsBinary() {
		r.Right = mode.DescriptorOf(k.Right)
	}

	return r
}

// Variant is a resolved table entry.
type Variant struct {
	Key  variant.Key
	Spec variant.Spec
}

// Name is the generated function name.
func (v Variant) Name() string {
	return v.Key.FuncName()
}

// Unit is one emitted documentation block plus implementation.
type Unit struct {
	Variant
	// Doc is the doc comment, possibly empty.
	Doc string
	// Body is the function definition.
	Body string
	// Text is Doc followed by Body.
	Text string
	// Examples are runnable Example functions mirroring the documentation.
	Examples []ExampleFunc
}

// ExampleFunc is a rendered Example test function.
type ExampleFunc struct {
	Name string
	Code string
}

// Emitter renders units. It holds no mutable state and can be shared
// between goroutines.
type Emitter struct {
	table *variant.Table
	opts  Options
}

// NewEmitter creates an Emitter. A nil table selects variant.Default().
func NewEmitter(table *variant.Table, opts Options) *Emitter {
	if table == nil {
		table = variant.Default()
	}

	return &Emitter{table: table, opts: opts}
}

// Options returns the emitter options.
func (e *Emitter) Options() Options {
	return e.opts
}

// Resolve classifies the request operands and selects the variant.
func (e *Emitter) Resolve(req Request) (Variant, error) {
	left := mode.Classify(req.Left)

	right := mode.None
	if req.Family.IsBinary() {
		right = mode.Classify(req.Right)
	}

	spec, err := e.table.Select(req.Family, left, right)
	if err != nil {
		return Variant{}, fmt.Errorf("resolving %s: %w", req, err)
	}

	return Variant{Key: variant.Key{Family: req.Family, Left: left, Right: right}, Spec: spec}, nil
}

// Emit produces the unit for a request.
func (e *Emitter) Emit(req Request) (*Unit, error) {
	v, err := e.Resolve(req)
	if err != nil {
		return nil, err
	}

	return e.EmitVariant(v)
}

// EmitVariant renders an already resolved variant.
func (e *Emitter) EmitVariant(v Variant) (*Unit, error) {
	body, err := e.Body(v)
	if err != nil {
		return nil, fmt.Errorf("%s: body: %w", v.Name(), err)
	}

	doc, err := e.Doc(v)
	if err != nil {
		return nil, fmt.Errorf("%s: doc: %w", v.Name(), err)
	}

	examples, err := e.Examples(v)
	if err != nil {
		return nil, fmt.Errorf("%s: examples: %w", v.Name(), err)
	}

	return &Unit{
		Variant:  v,
		Doc:      doc,
		Body:     body,
		Text:     Assemble(doc, body),
		Examples: examples,
	}, nil
}

// Assemble places the documentation immediately before the body.
func Assemble(doc, body string) string {
	return doc + body
}
