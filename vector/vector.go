package vector

import (
	"fmt"
	"slices"
)

// Number is the element constraint of Vector.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Vector is a fixed-length sequence of numbers.
type Vector[T Number] struct {
	list []T
}

// New wraps list without copying it. The caller must not use list afterwards.
func New[T Number](list []T) Vector[T] {
	return Vector[T]{list: list}
}

// From builds a vector from the given elements.
func From[T Number](elems ...T) Vector[T] {
	return Vector[T]{list: slices.Clone(elems)}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return len(v.list)
}

// At returns the element at index i.
func (v Vector[T]) At(i int) T {
	return v.list[i]
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, x T) {
	v.list[i] = x
}

// List returns a copy of the elements.
func (v Vector[T]) List() []T {
	return slices.Clone(v.list)
}

// Clone returns a vector with its own copy of the elements.
func (v Vector[T]) Clone() Vector[T] {
	return From(v.list...)
}

func (v Vector[T]) String() string {
	return fmt.Sprint(v.list)
}
