package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecop-generator/internal/request"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestTableCmd(t *testing.T) {
	out, err := execute(t, "table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 22)

	assert.True(t, strings.HasPrefix(lines[0], "FUNC"))
	assert.Regexp(t, `^AddValVal\s+add\s+owned\s+owned\s+none\s+new owned vector\s+add.new\s+doc.add$`, lines[1])
	assert.Regexp(t, `^AddMutMut\s+add\s+mutable-borrow\s+mutable-borrow\s+left\s+mutated left reference\s+add.left\s+doc.add$`, lines[9])
	assert.Regexp(t, `^ScaleMut\s+scale\s+mutable-borrow\s+-\s+left\s+mutated left reference\s+scale.left\s+doc.scale$`, lines[21])
}

func TestGenAndCheckCmd(t *testing.T) {
	out := t.TempDir()
	args := []string{"--config", "../../vector/vecop.yaml", "--pkg", "../../vector", "--out", out}

	_, err := execute(t, append([]string{"check"}, args...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of date")

	stdout, err := execute(t, append([]string{"gen"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote ops_gen.go")
	assert.Contains(t, stdout, "wrote ops_gen_example_test.go")

	content, err := os.ReadFile(filepath.Join(out, "ops_gen.go"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("// Code generated by vecop-generator. DO NOT EDIT.")))

	stdout, err = execute(t, append([]string{"check", "-v"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "up to date")
}

func TestGenCmd_MissingConfig(t *testing.T) {
	_, err := execute(t, "gen", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "--pkg", "../../vector")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestGenCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "gen", "extra")
	require.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	stdout, err := execute(t, "config", "--config", "../../vector/vecop.yaml", "--pkg", "../../vector")
	require.NoError(t, err)

	cfg, err := request.Parse([]byte(stdout))
	require.NoError(t, err)

	assert.Equal(t, "vector", cfg.Package)
	assert.Equal(t, "vecop-generator/vector", cfg.ImportPath)
	assert.Equal(t, "ops_gen_example_test.go", cfg.ExamplesOutput)
	assert.Len(t, cfg.Operators, 21)
	assert.NotContains(t, stdout, "ops.go:")
}
