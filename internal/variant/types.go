package variant

import (
	"fmt"
	"slices"

	"vecop-generator/internal/mode"
)

//go:generate go tool stringer -type=Family,MutationTarget,ResultOwnership -linecomment -output=types_string.go

// Family is an operator family.
type Family int

const (
	_ Family = iota // skip zero value, it marks an unset family

	ElementwiseAdd // add
	DotProduct     // dot
	ScalarMultiply // scale
)

// Families lists the supported operator families in table order.
func Families() []Family {
	return []Family{ElementwiseAdd, DotProduct, ScalarMultiply}
}

// ParseFamily resolves a family by its short name ("add", "dot", "scale").
func ParseFamily(name string) (Family, error) {
	for _, f := range Families() {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown operator family %q", name)
}

// IsBinary reports whether both operands of the family are vectors.
func (f Family) IsBinary() bool {
	return f == ElementwiseAdd || f == DotProduct
}

// SizeSensitive reports whether operands of the family must have equal length.
func (f Family) SizeSensitive() bool {
	return f.IsBinary()
}

// Prefix is the generated function name prefix.
func (f Family) Prefix() string {
	switch f {
	case ElementwiseAdd:
		return "Add"
	case DotProduct:
		return "Dot"
	case ScalarMultiply:
		return "Scale"
	default:
		return ""
	}
}

// MutationTarget names the operand modified in place, if any.
type MutationTarget int

const (
	TargetNone  MutationTarget = iota // none
	TargetLeft                        // left
	TargetRight                       // right
)

// ResultOwnership describes what the generated function returns.
type ResultOwnership int

const (
	NewOwnedVector  ResultOwnership = iota // new owned vector
	MutatedLeftRef                         // mutated left reference
	MutatedRightRef                        // mutated right reference
	ScalarValue                            // scalar value
)

// Body template identifiers.
const (
	BodyAddNew    = "add.new"
	BodyAddLeft   = "add.left"
	BodyAddRight  = "add.right"
	BodyDot       = "dot"
	BodyScaleNew  = "scale.new"
	BodyScaleLeft = "scale.left"
)

// Doc template identifiers.
const (
	DocAdd   = "doc.add"
	DocDot   = "doc.dot"
	DocScale = "doc.scale"
	// DocEmpty renders nothing; the variant still has an implementation.
	DocEmpty = "doc.empty"
)

// Key identifies one table entry. Right is mode.None for unary families.
type Key struct {
	Family Family
	Left   mode.OperandMode
	Right  mode.OperandMode
}

// KeyFor builds the key for a request, dropping the right mode of unary
// families.
func KeyFor(family Family, left, right mode.OperandMode) Key {
	if !family.IsBinary() {
		right = mode.None
	}

	return Key{Family: family, Left: left, Right: right}
}

// IsValid reports whether k names a known family with operand modes the
// family can take.
func (k Key) IsValid() bool {
	if !slices.Contains(Families(), k.Family) || !k.Left.IsValid() {
		return false
	}

	if k.Family.IsBinary() {
		return k.Right.IsValid()
	}

	return k.Right == mode.None
}

// String returns e.g. "add(mutable-borrow, owned)".
func (k Key) String() string {
	if !k.Family.IsBinary() {
		return fmt.Sprintf("%s(%s)", k.Family, k.Left)
	}

	return fmt.Sprintf("%s(%s, %s)", k.Family, k.Left, k.Right)
}

// FuncName is the name of the generated function, e.g. "AddMutVal".
func (k Key) FuncName() string {
	return k.Family.Prefix() + k.Left.Token() + k.Right.Token()
}

// Spec describes the implementation strategy chosen for a key.
type Spec struct {
	MutationTarget  MutationTarget
	ResultOwnership ResultOwnership
	BodyTemplate    string
	DocTemplate     string
}

// Mutates reports whether the variant writes into one of its operands.
func (s Spec) Mutates() bool {
	return s.MutationTarget != TargetNone
}
