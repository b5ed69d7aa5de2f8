package request

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"vecop-generator/internal/diagnostic"
	"vecop-generator/internal/match"
	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

// Validate checks the settings and operators of a config against the
// decision table. Every operand pair must resolve to a table entry and no
// key may be requested twice.
func Validate(cfg *Config, table *variant.Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError(diagnostic.CodeInvalidConfig, "config is nil", "", "")
		return res
	}

	if table == nil {
		table = variant.Default()
	}

	if cfg.Version != DefaultVersion {
		res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("unsupported config version %q", cfg.Version), "", "version")
	}

	validateSettings(res, cfg)

	if len(cfg.Operators) == 0 {
		res.AddWarning(diagnostic.CodeNoOperators, "no operators requested", "", "operators")
		return res
	}

	seen := map[variant.Key]string{}

	for i := range cfg.Operators {
		op := &cfg.Operators[i]
		origin := originOf(op, i)

		if !validateOperator(res, op, origin) {
			continue
		}

		entries, err := expand(op, origin, table)
		if err != nil {
			code := diagnostic.CodeInvalidOperand
			if errors.Is(err, variant.ErrUnsupportedCombination) {
				code = diagnostic.CodeUnsupported
			}

			res.AddError(code, err.Error(), op.String(), origin)

			continue
		}

		for _, e := range entries {
			if first, ok := seen[e.Key]; ok {
				res.AddError(diagnostic.CodeDuplicateOperator,
					fmt.Sprintf("%s requested again (first at %s)", e.Key.FuncName(), first), e.Key.String(), origin)

				continue
			}

			seen[e.Key] = origin
		}
	}

	return res
}

func validateSettings(res *diagnostic.Diagnostics, cfg *Config) {
	idents := []struct {
		path, value string
	}{
		{"package", cfg.Package},
		{"container", cfg.Container},
		{"constructor", cfg.Constructor},
		{"literal", cfg.Literal},
		{"elem", cfg.Elem},
		{"error_type", cfg.ErrorType},
	}

	for _, id := range idents {
		if !token.IsIdentifier(id.value) {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("%q is not a Go identifier", id.value), "", id.path)
		}
	}

	if !isQualifiedIdent(cfg.Constraint) {
		res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("constraint %q is not a type name", cfg.Constraint), "", "constraint")
	}

	for name, constraint := range cfg.Constraints {
		path := "constraints." + name

		if _, err := variant.ParseFamily(name); err != nil {
			res.AddSuggestedError(diagnostic.CodeUnknownFamily, err.Error(), "", path, suggestFamily(name))
		}

		if !isQualifiedIdent(constraint) {
			res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("constraint %q is not a type name", constraint), "", path)
		}
	}

	if !strings.HasSuffix(cfg.Output, ".go") || strings.HasSuffix(cfg.Output, "_test.go") {
		res.AddError(diagnostic.CodeInvalidConfig, fmt.Sprintf("output %q must be a non-test .go file", cfg.Output), "", "output")
	}

	if !strings.HasSuffix(cfg.ExamplesOutput, "_test.go") {
		res.AddError(diagnostic.CodeInvalidConfig,
			fmt.Sprintf("examples_output %q must be a _test.go file", cfg.ExamplesOutput), "", "examples_output")
	}

	if cfg.Output == cfg.ExamplesOutput {
		res.AddError(diagnostic.CodeInvalidConfig, "output and examples_output name the same file", "", "examples_output")
	}
}

// validateOperator reports structural problems that make expansion
// pointless.
func validateOperator(res *diagnostic.Diagnostics, op *Operator, origin string) bool {
	family, err := variant.ParseFamily(op.Family)
	if err != nil {
		res.AddSuggestedError(diagnostic.CodeUnknownFamily, err.Error(), op.String(), origin, suggestFamily(op.Family))
		return false
	}

	if op.All {
		if len(op.Left) > 0 || len(op.Right) > 0 {
			res.AddError(diagnostic.CodeInvalidOperand, "all excludes explicit operands", op.String(), origin)
			return false
		}

		return true
	}

	ok := true

	if len(op.Left) == 0 {
		res.AddError(diagnostic.CodeInvalidOperand, "missing left operand", op.String(), origin)

		ok = false
	}

	switch {
	case family.IsBinary() && len(op.Right) == 0:
		res.AddError(diagnostic.CodeInvalidOperand, "missing right operand", op.String(), origin)

		ok = false
	case !family.IsBinary() && len(op.Right) > 0:
		res.AddError(diagnostic.CodeInvalidOperand,
			fmt.Sprintf("%s takes a single vector operand", family), op.String(), origin)

		ok = false
	}

	for _, expr := range append(append(OperandList{}, op.Left...), op.Right...) {
		if _, err := mode.ParseDescriptor(expr); err != nil {
			res.AddError(diagnostic.CodeInvalidOperand, err.Error(), op.String(), origin)

			ok = false
		}
	}

	return ok
}

func suggestFamily(name string) []string {
	var names []string
	for _, f := range variant.Families() {
		names = append(names, f.String())
	}

	return match.Suggest(name, names)
}

// isQualifiedIdent accepts "Name" and "pkg.Name".
func isQualifiedIdent(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}

	for _, p := range parts {
		if !token.IsIdentifier(p) {
			return false
		}
	}

	return true
}
