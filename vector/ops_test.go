package vector

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binaryCase calls one generated operator on fresh copies of the operands
// and reports the result plus both operands after the call.
type binaryCase struct {
	name string
	// mutates is "left", "right" or "".
	mutates string
	call    func(l, r Vector[int]) (result any, left, right Vector[int])
}

var addCases = []binaryCase{
	{"AddValVal", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return AddValVal(l, r), l, r }},
	{"AddValRef", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return AddValRef(l, &r), l, r }},
	{"AddValMut", "right", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return *AddValMut(l, &r), l, r }},
	{"AddRefVal", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return AddRefVal(&l, r), l, r }},
	{"AddRefRef", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return AddRefRef(&l, &r), l, r }},
	{"AddRefMut", "right", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return *AddRefMut(&l, &r), l, r }},
	{"AddMutVal", "left", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return *AddMutVal(&l, r), l, r }},
	{"AddMutRef", "left", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return *AddMutRef(&l, &r), l, r }},
	{"AddMutMut", "left", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return *AddMutMut(&l, &r), l, r }},
}

var dotCases = []binaryCase{
	{"DotValVal", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotValVal(l, r), l, r }},
	{"DotValRef", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotValRef(l, &r), l, r }},
	{"DotValMut", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotValMut(l, &r), l, r }},
	{"DotRefVal", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotRefVal(&l, r), l, r }},
	{"DotRefRef", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotRefRef(&l, &r), l, r }},
	{"DotRefMut", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotRefMut(&l, &r), l, r }},
	{"DotMutVal", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotMutVal(&l, r), l, r }},
	{"DotMutRef", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotMutRef(&l, &r), l, r }},
	{"DotMutMut", "", func(l, r Vector[int]) (any, Vector[int], Vector[int]) { return DotMutMut(&l, &r), l, r }},
}

func TestAdd_EveryMode(t *testing.T) {
	for _, tc := range addCases {
		t.Run(tc.name, func(t *testing.T) {
			result, left, right := tc.call(From(1, 2, 3), From(4, 5, 6))

			assert.Equal(t, "[5 7 9]", fmt.Sprint(result))

			wantLeft, wantRight := "[1 2 3]", "[4 5 6]"

			switch tc.mutates {
			case "left":
				wantLeft = "[5 7 9]"
			case "right":
				wantRight = "[5 7 9]"
			}

			assert.Equal(t, wantLeft, left.String())
			assert.Equal(t, wantRight, right.String())
		})
	}
}

func TestAdd_MutatedOperandIsReturned(t *testing.T) {
	l, r := From(1, 2, 3), From(4, 5, 6)

	assert.Same(t, &l, AddMutMut(&l, &r))
	assert.Same(t, &r, AddRefMut(&l, &r))
}

func TestAdd_DoesNotAlias(t *testing.T) {
	l, r := From(1, 2, 3), From(4, 5, 6)

	sum := AddRefRef(&l, &r)
	sum.Set(0, 100)

	assert.Equal(t, "[1 2 3]", l.String())
	assert.Equal(t, "[4 5 6]", r.String())
}

func TestDot_EveryModeLeavesOperandsUnchanged(t *testing.T) {
	for _, tc := range dotCases {
		t.Run(tc.name, func(t *testing.T) {
			result, left, right := tc.call(From(1, 2, 3), From(4, 5, 6))

			assert.Equal(t, 32, result)
			assert.Equal(t, "[1 2 3]", left.String())
			assert.Equal(t, "[4 5 6]", right.String())
		})
	}
}

func TestDot_Empty(t *testing.T) {
	l, r := From[float64](), From[float64]()
	assert.Equal(t, 0.0, DotRefRef(&l, &r))
}

func TestScale_EveryMode(t *testing.T) {
	v := From(1, 2, 3)
	assert.Equal(t, "[3 6 9]", ScaleVal(v, 3).String())
	assert.Equal(t, "[1 2 3]", v.String())

	assert.Equal(t, "[3 6 9]", ScaleRef(&v, 3).String())
	assert.Equal(t, "[1 2 3]", v.String())

	got := ScaleMut(&v, 3)
	assert.Same(t, &v, got)
	assert.Equal(t, "[3 6 9]", v.String())
}

func TestScale_Float(t *testing.T) {
	v := From(0.5, 1.5)
	assert.Equal(t, []float64{1, 3}, ScaleVal(v, 2).List())
}

// sizeMismatch recovers the panic value of f.
func sizeMismatch(t *testing.T, f func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
	}()

	f()

	return nil
}

func TestSizeMismatch_EveryMode(t *testing.T) {
	cases := map[string][]binaryCase{"addition": addCases, "dot product": dotCases}

	for op, group := range cases {
		for _, tc := range group {
			t.Run(tc.name, func(t *testing.T) {
				err := sizeMismatch(t, func() {
					tc.call(From(1, 2, 3), From(1, 2))
				})

				assert.True(t, errors.Is(err, ErrSizeMismatch))

				var target *SizeMismatchError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, SizeMismatchError{Op: op, Left: 3, Right: 2}, *target)
			})
		}
	}
}

func TestSizeMismatch_LeavesOperandsUntouched(t *testing.T) {
	l, r := From(1, 2, 3), From(1, 2)

	_ = sizeMismatch(t, func() { AddMutMut(&l, &r) })

	assert.Equal(t, "[1 2 3]", l.String())
	assert.Equal(t, "[1 2]", r.String())
}
