package variant

import (
	"cmp"
	"fmt"
	"slices"

	"vecop-generator/internal/mode"
)

// Table maps every legal Key onto its Spec. A Table is immutable after
// construction.
type Table struct {
	entries map[Key]Spec
}

var defaultTable = &Table{entries: defaultEntries()}

// Default returns the shared decision table.
func Default() *Table {
	return defaultTable
}

// NewTable builds a table from explicit entries. The map is copied. A key
// that no request can produce is a programming error and panics.
func NewTable(entries map[Key]Spec) *Table {
	t := &Table{entries: make(map[Key]Spec, len(entries))}
	for k, v := range entries {
		if !k.IsValid() {
			panic(fmt.Sprintf("variant: invalid table key %s", k))
		}

		t.entries[k] = v
	}

	return t
}

// Lookup returns the Spec stored for k.
func (t *Table) Lookup(k Key) (Spec, bool) {
	s, ok := t.entries[k]
	return s, ok
}

// Select resolves the Spec for an operator family and operand modes.
// Unary families only accept mode.None as right mode.
func (t *Table) Select(family Family, left, right mode.OperandMode) (Spec, error) {
	k := Key{Family: family, Left: left, Right: right}

	s, ok := t.entries[k]
	if !ok {
		return Spec{}, &UnsupportedCombinationError{Key: k}
	}

	return s, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys lists all keys ordered by family, left mode, right mode.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, compareKeys)

	return keys
}

// KeysOf lists the keys of one family in table order.
func (t *Table) KeysOf(family Family) []Key {
	var keys []Key

	for _, k := range t.Keys() {
		if k.Family == family {
			keys = append(keys, k)
		}
	}

	return keys
}

func compareKeys(a, b Key) int {
	return cmp.Or(
		cmp.Compare(a.Family, b.Family),
		cmp.Compare(a.Left, b.Left),
		cmp.Compare(a.Right, b.Right),
	)
}

func defaultEntries() map[Key]Spec {
	var (
		addNew   = Spec{TargetNone, NewOwnedVector, BodyAddNew, DocAdd}
		addLeft  = Spec{TargetLeft, MutatedLeftRef, BodyAddLeft, DocAdd}
		addRight = Spec{TargetRight, MutatedRightRef, BodyAddRight, DocAdd}

		dot      = Spec{TargetNone, ScalarValue, BodyDot, DocDot}
		dotNoDoc = Spec{TargetNone, ScalarValue, BodyDot, DocEmpty}

		scaleNew  = Spec{TargetNone, NewOwnedVector, BodyScaleNew, DocScale}
		scaleLeft = Spec{TargetLeft, MutatedLeftRef, BodyScaleLeft, DocScale}
	)

	const (
		val = mode.Owned
		ref = mode.Borrowed
		mut = mode.MutBorrowed
	)

	return map[Key]Spec{
		{ElementwiseAdd, mut, mut}: addLeft, // left wins, right stays read-only
		{ElementwiseAdd, mut, ref}: addLeft,
		{ElementwiseAdd, mut, val}: addLeft,
		{ElementwiseAdd, ref, mut}: addRight,
		{ElementwiseAdd, val, mut}: addRight,
		{ElementwiseAdd, ref, ref}: addNew,
		{ElementwiseAdd, ref, val}: addNew,
		{ElementwiseAdd, val, ref}: addNew,
		{ElementwiseAdd, val, val}: addNew,

		// dot product never mutates; the mode pair only picks documentation
		{DotProduct, mut, mut}: dotNoDoc,
		{DotProduct, mut, ref}: dotNoDoc,
		{DotProduct, mut, val}: dotNoDoc,
		{DotProduct, ref, mut}: dotNoDoc,
		{DotProduct, val, mut}: dotNoDoc,
		{DotProduct, ref, ref}: dot,
		{DotProduct, ref, val}: dot,
		{DotProduct, val, ref}: dot,
		{DotProduct, val, val}: dot,

		{ScalarMultiply, mut, mode.None}: scaleLeft,
		{ScalarMultiply, ref, mode.None}: scaleNew,
		{ScalarMultiply, val, mode.None}: scaleNew,
	}
}
