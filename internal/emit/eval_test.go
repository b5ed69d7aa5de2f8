package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

func TestEvaluate_Add(t *testing.T) {
	t.Parallel()

	e := newTestEmitter(false)

	for _, k := range variant.Default().KeysOf(variant.ElementwiseAdd) {
		v := resolveKey(t, e, k)

		out, err := evaluate(v, []int{1, 2, 3}, []int{4, 5, 6}, 0)
		require.NoError(t, err, k.String())
		assert.Equal(t, []int{5, 7, 9}, out.Vector, k.String())

		switch v.Spec.MutationTarget {
		case variant.TargetLeft:
			assert.Equal(t, []int{5, 7, 9}, out.Left, k.String())
			assert.Equal(t, []int{4, 5, 6}, out.Right, k.String())
		case variant.TargetRight:
			assert.Equal(t, []int{1, 2, 3}, out.Left, k.String())
			assert.Equal(t, []int{5, 7, 9}, out.Right, k.String())
		default:
			assert.Equal(t, []int{1, 2, 3}, out.Left, k.String())
			assert.Equal(t, []int{4, 5, 6}, out.Right, k.String())
		}
	}
}

func TestEvaluate_Dot(t *testing.T) {
	t.Parallel()

	e := newTestEmitter(false)

	for _, k := range variant.Default().KeysOf(variant.DotProduct) {
		out, err := evaluate(resolveKey(t, e, k), []int{1, 2, 3}, []int{4, 5, 6}, 0)
		require.NoError(t, err, k.String())

		assert.Equal(t, 32, out.Scalar, k.String())
		assert.Equal(t, "32", out.Printed())
		assert.Equal(t, []int{1, 2, 3}, out.Left, k.String())
		assert.Equal(t, []int{4, 5, 6}, out.Right, k.String())
	}
}

func TestEvaluate_Scale(t *testing.T) {
	t.Parallel()

	e := newTestEmitter(false)

	for _, k := range variant.Default().KeysOf(variant.ScalarMultiply) {
		out, err := evaluate(resolveKey(t, e, k), []int{1, 2, 3}, nil, 3)
		require.NoError(t, err, k.String())

		assert.Equal(t, "[3 6 9]", out.Printed(), k.String())

		if k.Left == mode.MutBorrowed {
			assert.Equal(t, []int{3, 6, 9}, out.Left)
		} else {
			assert.Equal(t, []int{1, 2, 3}, out.Left)
		}
	}
}

func TestEvaluate_SizeMismatch(t *testing.T) {
	t.Parallel()

	e := newTestEmitter(false)

	for _, family := range []variant.Family{variant.ElementwiseAdd, variant.DotProduct} {
		v := resolveKey(t, e, variant.Key{Family: family, Left: mode.Owned, Right: mode.Owned})

		_, err := evaluate(v, []int{1, 2, 3}, []int{1, 2}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "size mismatch (3 != 2)")
	}

	// scaling has a single vector operand
	v := resolveKey(t, e, variant.Key{Family: variant.ScalarMultiply, Left: mode.Owned})
	_, err := evaluate(v, []int{1, 2, 3}, nil, 2)
	require.NoError(t, err)
}
