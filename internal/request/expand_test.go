package request

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

func TestRequests_Expansion(t *testing.T) {
	cfg := parseConfig(t, `
package: vector
operators:
  - family: add
    left: "mut *Vector"
    right: [Vector, "*Vector"]
  - family: dot
    all: true
  - family: scale
    left: Vector
`)

	entries, err := Requests(cfg, nil)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Key.FuncName())
	}

	assert.Equal(t, []string{
		"AddMutVal", "AddMutRef",
		"DotValVal", "DotValRef", "DotValMut",
		"DotRefVal", "DotRefRef", "DotRefMut",
		"DotMutVal", "DotMutRef", "DotMutMut",
		"ScaleVal",
	}, names)

	assert.Equal(t, "operators[0]", entries[0].Origin)
	assert.Equal(t, "mut *Vector", entries[0].Left.Source)
	assert.Equal(t, "operators[2]", entries[len(entries)-1].Origin)
	assert.Equal(t, mode.None, entries[len(entries)-1].Key.Right)
}

func TestRequests_Errors(t *testing.T) {
	cfg := parseConfig(t, "package: vector\noperators:\n  - family: add\n    left: Vector\n    right: mut Vector\n")

	_, err := Requests(cfg, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mode.ErrInvalidDescriptor))
	assert.Contains(t, err.Error(), "operators[0]: right:")

	table := variant.NewTable(nil)
	cfg = parseConfig(t, "package: vector\noperators:\n  - family: scale\n    left: Vector\n")

	_, err = Requests(cfg, table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, variant.ErrUnsupportedCombination))
}

func TestEmitOptions(t *testing.T) {
	cfg := parseConfig(t, `
package: linalg
container: Vec
constructor: Wrap
constraints:
  dot: Integer
error_type: LengthError
complete_docs: true
`)

	opts, err := EmitOptions(cfg)
	require.NoError(t, err)

	assert.Equal(t, "linalg", opts.Package)
	assert.Equal(t, "Vec", opts.Container)
	assert.Equal(t, "Wrap", opts.Constructor)
	assert.Equal(t, "From", opts.Literal)
	assert.Equal(t, "Number", opts.Constraint)
	assert.Equal(t, map[variant.Family]string{variant.DotProduct: "Integer"}, opts.Constraints)
	assert.Equal(t, "LengthError", opts.ErrorType)
	assert.True(t, opts.CompleteDocs)
	assert.False(t, opts.ScaledExamples)

	cfg.Constraints["mul"] = "Number"
	_, err = EmitOptions(cfg)
	require.Error(t, err)
}
