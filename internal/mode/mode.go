package mode

//go:generate go tool stringer -type=OperandMode -linecomment -output=mode_string.go

// OperandMode describes how an operand is passed.
type OperandMode int

const (
	None OperandMode = iota // none

	Owned       // owned
	Borrowed    // borrowed
	MutBorrowed // mutable-borrow

	// Total is the number of valid modes, None excluded.
	Total = int(iota) - 1
)

// All lists the valid modes in table order.
func All() []OperandMode {
	return []OperandMode{Owned, Borrowed, MutBorrowed}
}

// IsValid reports whether m is one of the three operand modes.
func (m OperandMode) IsValid() bool {
	return m >= Owned && m <= MutBorrowed
}

// IsReference reports whether the operand is passed by pointer.
func (m OperandMode) IsReference() bool {
	return m == Borrowed || m == MutBorrowed
}

// IsMutable reports whether the operand may be written through.
func (m OperandMode) IsMutable() bool {
	return m == MutBorrowed
}

// Token is the short name used in generated function names.
func (m OperandMode) Token() string {
	switch m {
	case Owned:
		return "Val"
	case Borrowed:
		return "Ref"
	case MutBorrowed:
		return "Mut"
	default:
		return ""
	}
}

// TypeExpr renders the Go parameter type for an operand of this mode,
// e.g. "Vector[T]" or "*Vector[T]".
func (m OperandMode) TypeExpr(container, elem string) string {
	t := container + "[" + elem + "]"
	if m.IsReference() {
		return "*" + t
	}

	return t
}

// ArgExpr renders how a caller passes the variable name to an operand of
// this mode.
func (m OperandMode) ArgExpr(name string) string {
	if m.IsReference() {
		return "&" + name
	}

	return name
}
