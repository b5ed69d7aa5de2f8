package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"

	"vecop-generator/internal/request"
)

// DirectivePrefix starts every operator directive.
const DirectivePrefix = "//vecop:"

// Directive is one //vecop: comment.
type Directive struct {
	// Family is the operator family name as written.
	Family string
	// Operands holds one or two type expressions; empty when All is set.
	Operands []string
	// All requests every mode combination of the family.
	All bool
	// Text is the full comment text.
	Text string
	// Pos is where the directive starts.
	Pos token.Position
}

// Position returns "file.go:line".
func (d Directive) Position() string {
	if d.Pos.Filename == "" {
		return fmt.Sprintf("line %d", d.Pos.Line)
	}

	return fmt.Sprintf("%s:%d", filepath.Base(d.Pos.Filename), d.Pos.Line)
}

// Operator converts the directive into a config operator.
func (d Directive) Operator() request.Operator {
	op := request.Operator{Family: d.Family, All: d.All, Position: d.Position()}

	if len(d.Operands) > 0 {
		op.Left = request.OperandList{d.Operands[0]}
	}

	if len(d.Operands) > 1 {
		op.Right = request.OperandList{d.Operands[1]}
	}

	return op
}

// PackageInfo describes a scanned package.
type PackageInfo struct {
	Path       string
	Name       string
	Dir        string
	Directives []Directive
	// Types is nil when the package could not be type-checked at all.
	Types *types.Package
}

// Operators returns the directives of the package as config operators, in
// source order.
func (p *PackageInfo) Operators() []request.Operator {
	res := make([]request.Operator, 0, len(p.Directives))
	for _, d := range p.Directives {
		res = append(res, d.Operator())
	}

	return res
}
