package analyze

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		text     string
		family   string
		operands []string
		all      bool
	}{
		{"//vecop:add mut *Vector, Vector", "add", []string{"mut *Vector", "Vector"}, false},
		{"//vecop:scale *Vector", "scale", []string{"*Vector"}, false},
		{"//vecop:dot all", "dot", nil, true},
		{"//vecop:dot\tVector[T] ,  *Vector[T]", "dot", []string{"Vector[T]", "*Vector[T]"}, false},
		{"//vecop:add Pair[K, V], *Pair[K, V]", "add", []string{"Pair[K, V]", "*Pair[K, V]"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, err := ParseDirective(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.family, d.Family)
			assert.Equal(t, tt.operands, d.Operands)
			assert.Equal(t, tt.all, d.All)
			assert.Equal(t, tt.text, d.Text)
		})
	}
}

func TestParseDirective_Malformed(t *testing.T) {
	for _, text := range []string{
		"// vecop:add Vector, Vector",
		"//vecop:",
		"//vecop: add Vector",
		"//vecop:add",
		"//vecop:add Vector, , Vector",
		"//vecop:add Vector, Vector, Vector",
		"//vecop:add Vector,",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDirective(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDirective))
		})
	}
}

func TestDirective_Operator(t *testing.T) {
	d := Directive{
		Family:   "add",
		Operands: []string{"mut *Vector", "Vector"},
		Pos:      token.Position{Filename: "/src/vector/ops.go", Line: 9},
	}

	op := d.Operator()
	assert.Equal(t, "add", op.Family)
	assert.Equal(t, "mut *Vector", op.Left.First())
	assert.Equal(t, "Vector", op.Right.First())
	assert.Equal(t, "ops.go:9", op.Position)

	op = Directive{Family: "scale", All: true}.Operator()
	assert.True(t, op.All)
	assert.Empty(t, op.Left)
	assert.Equal(t, "line 0", op.Position)
}

func TestIsDirective(t *testing.T) {
	assert.True(t, IsDirective("//vecop:add Vector, Vector"))
	assert.False(t, IsDirective("/* vecop:add */"))
	assert.False(t, IsDirective("//go:generate stringer"))
}
