package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom_Copies(t *testing.T) {
	elems := []int{1, 2, 3}
	v := From(elems...)
	elems[0] = 100

	assert.Equal(t, []int{1, 2, 3}, v.List())
}

func TestNew_Wraps(t *testing.T) {
	list := []float64{1.5, 2.5}
	v := New(list)
	v.Set(0, 3)

	assert.Equal(t, 3.0, list[0])
	assert.Equal(t, 2, v.Len())
}

func TestVector_Clone(t *testing.T) {
	v := From(1, 2, 3)
	w := v.Clone()

	assert.Equal(t, v.List(), w.List())

	w.Set(1, 7)
	assert.Equal(t, []int{1, 2, 3}, v.List())
	assert.Equal(t, []int{1, 7, 3}, w.List())
}

func TestVector_CopiesShareStorage(t *testing.T) {
	a := From(1, 2, 3)
	b := a

	AddMutVal(&a, b)

	assert.Equal(t, []int{2, 4, 6}, a.List())
	assert.Equal(t, []int{2, 4, 6}, b.List())

	a = From(1, 2, 3)
	c := a.Clone()

	AddMutVal(&a, c)

	assert.Equal(t, []int{2, 4, 6}, a.List())
	assert.Equal(t, []int{1, 2, 3}, c.List())
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "[1 2 3]", From(1, 2, 3).String())
	assert.Equal(t, "[]", From[int]().String())
	assert.Equal(t, "[(1+2i)]", From(complex(1, 2)).String())
}

func TestSizeMismatchError(t *testing.T) {
	err := &SizeMismatchError{Op: "addition", Left: 3, Right: 2}

	assert.Equal(t, "vector: addition of vectors with different sizes (3 != 2)", err.Error())
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
