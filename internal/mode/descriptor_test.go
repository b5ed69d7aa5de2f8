package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Descriptor
		want OperandMode
	}{
		{"owned", Descriptor{}, Owned},
		{"borrowed", Descriptor{IsReference: true}, Borrowed},
		{"mutably borrowed", Descriptor{IsReference: true, IsMutable: true}, MutBorrowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_MutableValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		Classify(Descriptor{IsMutable: true})
	})
}

func TestClassify_RoundTripsDescriptorOf(t *testing.T) {
	for _, m := range All() {
		assert.Equal(t, m, Classify(DescriptorOf(m)), m.String())
	}
}

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		expr string
		want OperandMode
	}{
		{"Vector", Owned},
		{"Vector[T]", Owned},
		{"vector.Vector[int]", Owned},
		{"*Vector", Borrowed},
		{" *Vector[T] ", Borrowed},
		{"mut *Vector", MutBorrowed},
		{"mut*Vector[T]", MutBorrowed},
		{"mut *vector.Vector[float64]", MutBorrowed},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			d, err := ParseDescriptor(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Classify(d))
		})
	}
}

func TestParseDescriptor_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"mut",
		"mut Vector",
		"**Vector",
		"[]int",
		"map[string]int",
		"Vector +",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseDescriptor(expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDescriptor)
		})
	}
}

func TestParseDescriptor_KeepsSource(t *testing.T) {
	d := MustParseDescriptor("mut *Vector")
	assert.Equal(t, "mut *Vector", d.String())
	assert.Equal(t, "*Vector", Descriptor{IsReference: true}.String())
}
