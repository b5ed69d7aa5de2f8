package analyze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"vecop-generator/internal/diagnostic"
	"vecop-generator/internal/request"
)

func scanVector(t *testing.T) *PackageInfo {
	t.Helper()

	res, err := NewScanner(zaptest.NewLogger(t)).Scan("vecop-generator/vector")
	require.NoError(t, err)
	require.NoError(t, res.Diagnostics.Error())
	require.Len(t, res.Packages, 1)

	return res.Packages[0]
}

func TestScanner_Scan(t *testing.T) {
	pkg := scanVector(t)

	assert.Equal(t, "vecop-generator/vector", pkg.Path)
	assert.Equal(t, "vector", pkg.Name)
	assert.Equal(t, "vector", filepath.Base(pkg.Dir))
	require.NotNil(t, pkg.Types)

	require.Len(t, pkg.Directives, 21)

	first := pkg.Directives[0]
	assert.Equal(t, "add", first.Family)
	assert.Equal(t, []string{"Vector", "Vector"}, first.Operands)
	assert.Equal(t, "ops.go", filepath.Base(first.Pos.Filename))

	last := pkg.Directives[20]
	assert.Equal(t, "scale", last.Family)
	assert.Equal(t, []string{"mut *Vector"}, last.Operands)
}

func TestScanner_OperatorsValidate(t *testing.T) {
	pkg := scanVector(t)

	cfg, err := request.LoadFile("../../vector/vecop.yaml")
	require.NoError(t, err)

	cfg.Operators = pkg.Operators()

	res := request.Validate(cfg, nil)
	require.NoError(t, res.Error())

	entries, err := request.Requests(cfg, nil)
	require.NoError(t, err)
	assert.Len(t, entries, 21)
	assert.Contains(t, entries[0].Origin, "ops.go:")
}

func TestScanner_UnknownPackage(t *testing.T) {
	_, err := NewScanner(nil).Scan("vecop-generator/does/not/exist")
	require.Error(t, err)
}

func TestVerifyContainer(t *testing.T) {
	pkg := scanVector(t)

	cfg, err := request.LoadFile("../../vector/vecop.yaml")
	require.NoError(t, err)

	res := VerifyContainer(pkg, cfg)
	require.NoError(t, res.Error())
}

func TestVerifyContainer_Missing(t *testing.T) {
	pkg := scanVector(t)

	cfg, err := request.Parse([]byte(`
package: linalg
container: Matrix
constructor: Make
error_type: Vector
constraint: Scalar
`))
	require.NoError(t, err)

	res := VerifyContainer(pkg, cfg)

	var got []string
	for _, e := range res.Errors {
		got = append(got, e.Code)
	}

	assert.ElementsMatch(t, []string{
		diagnostic.CodePackageMismatch,
		diagnostic.CodeMissingContainer,   // Matrix
		diagnostic.CodeMissingConstructor, // Make
		diagnostic.CodeMissingContainer,   // Vector.Op
		diagnostic.CodeMissingContainer,   // Vector.Left
		diagnostic.CodeMissingContainer,   // Vector.Right
		diagnostic.CodeMissingContainer,   // Scalar
	}, got)
}

func TestVerifyContainer_Suggestions(t *testing.T) {
	pkg := scanVector(t)

	cfg, err := request.Parse([]byte(`
package: vector
container: Vectr
constructor: Nw
error_type: SizeMismatch
constraint: Numbr
`))
	require.NoError(t, err)

	res := VerifyContainer(pkg, cfg)

	got := map[string][]string{}
	for _, e := range res.Errors {
		got[e.Position] = e.Suggestions
	}

	assert.Equal(t, map[string][]string{
		"Vectr":        {"Vector"},
		"Nw":           {"New"},
		"SizeMismatch": {"SizeMismatchError"},
		"Numbr":        {"Number"},
	}, got)
}
