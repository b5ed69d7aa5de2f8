package mode

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"strings"
)

// mutQualifier marks a pointer operand as writable.
const mutQualifier = "mut"

var (
	// ErrInvalidDescriptor is returned for type expressions that cannot
	// describe an operand.
	ErrInvalidDescriptor = errors.New("invalid operand descriptor")
)

// Descriptor is the caller-supplied description of an operand type.
type Descriptor struct {
	// IsReference is true when the operand is passed by pointer.
	IsReference bool
	// IsMutable is true when the pointer may be written through.
	IsMutable bool
	// Source is the expression the descriptor was parsed from (if any).
	Source string
}

// DescriptorOf returns the canonical descriptor for a mode.
func DescriptorOf(m OperandMode) Descriptor {
	return Descriptor{IsReference: m.IsReference(), IsMutable: m.IsMutable()}
}

// String returns the source expression or a canonical rendering.
func (d Descriptor) String() string {
	if d.Source != "" {
		return d.Source
	}

	switch {
	case d.IsReference && d.IsMutable:
		return "mut *Vector"
	case d.IsReference:
		return "*Vector"
	case d.IsMutable:
		return "mut Vector"
	default:
		return "Vector"
	}
}

// Classify maps a descriptor onto its operand mode.
//
// A mutable descriptor that is not a reference cannot be produced by
// ParseDescriptor; passing one is a contract violation and panics.
func Classify(d Descriptor) OperandMode {
	switch {
	case !d.IsReference && d.IsMutable:
		panic("mode: mutable operand must be a reference: " + d.String())
	case !d.IsReference:
		return Owned
	case d.IsMutable:
		return MutBorrowed
	default:
		return Borrowed
	}
}

// ParseDescriptor parses a Go type expression with an optional leading
// "mut" qualifier, e.g. "Vector[T]", "*Vector" or "mut *Vector[T]".
func ParseDescriptor(expr string) (Descriptor, error) {
	src := strings.TrimSpace(expr)
	if src == "" {
		return Descriptor{}, fmt.Errorf("%w: empty expression", ErrInvalidDescriptor)
	}

	d := Descriptor{Source: src}

	if rest, ok := strings.CutPrefix(src, mutQualifier); ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '*') {
		d.IsMutable = true
		src = strings.TrimSpace(rest)
	}

	node, err := parser.ParseExpr(src)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: %q: %w", ErrInvalidDescriptor, expr, err)
	}

	if star, ok := node.(*ast.StarExpr); ok {
		d.IsReference = true
		node = star.X
	}

	if !isTypeName(node) {
		return Descriptor{}, fmt.Errorf("%w: %q is not a named type", ErrInvalidDescriptor, expr)
	}

	if d.IsMutable && !d.IsReference {
		return Descriptor{}, fmt.Errorf("%w: %q: %s requires a pointer type", ErrInvalidDescriptor, expr, mutQualifier)
	}

	return d, nil
}

// MustParseDescriptor is like ParseDescriptor but panics on error.
func MustParseDescriptor(expr string) Descriptor {
	d, err := ParseDescriptor(expr)
	if err != nil {
		panic(err)
	}

	return d
}

// isTypeName accepts identifiers, qualified identifiers and their generic
// instantiations.
func isTypeName(node ast.Expr) bool {
	switch n := node.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := n.X.(*ast.Ident)
		return ok
	case *ast.IndexExpr:
		return isTypeName(n.X)
	case *ast.IndexListExpr:
		return isTypeName(n.X)
	default:
		return false
	}
}
