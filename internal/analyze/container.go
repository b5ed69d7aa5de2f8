package analyze

import (
	"fmt"
	"go/types"
	"strings"

	"vecop-generator/internal/diagnostic"
	"vecop-generator/internal/match"
	"vecop-generator/internal/request"
)

// methodShape is the expected parameter and result count of a container
// method.
type methodShape struct {
	name    string
	params  int
	results int
}

var containerMethods = []methodShape{
	{name: "Len", params: 0, results: 1},
	{name: "At", params: 1, results: 1},
	{name: "Set", params: 2, results: 0},
}

// VerifyContainer checks that the package declares everything generated code
// refers to: the container with Len, At and Set, the constructor and literal
// functions, the error type and the element constraint.
func VerifyContainer(pkg *PackageInfo, cfg *request.Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if pkg.Name != cfg.Package {
		res.AddError(diagnostic.CodePackageMismatch,
			fmt.Sprintf("config targets package %q, found %q", cfg.Package, pkg.Name), "", pkg.Path)
	}

	if pkg.Types == nil {
		res.AddError(diagnostic.CodeMissingContainer, "package has no type information", "", pkg.Path)
		return res
	}

	scope := pkg.Types.Scope()

	verifyContainerType(res, scope, cfg.Container)
	verifyFunc(res, scope, cfg.Constructor, 1)
	verifyFunc(res, scope, cfg.Literal, 1)
	verifyErrorType(res, scope, cfg.ErrorType)

	constraints := []string{cfg.Constraint}
	for _, c := range cfg.Constraints {
		constraints = append(constraints, c)
	}

	for _, c := range constraints {
		// qualified constraints live in other packages
		if strings.Contains(c, ".") {
			continue
		}

		tn, ok := scope.Lookup(c).(*types.TypeName)
		if !ok {
			res.AddSuggestedError(diagnostic.CodeMissingContainer, fmt.Sprintf("constraint %s is not declared", c), "", c,
				match.Suggest(c, scopeNames(scope, isInterface)))

			continue
		}

		if _, ok := tn.Type().Underlying().(*types.Interface); !ok {
			res.AddError(diagnostic.CodeMissingContainer, fmt.Sprintf("constraint %s is not an interface", c), "", c)
		}
	}

	return res
}

func verifyContainerType(res *diagnostic.Diagnostics, scope *types.Scope, name string) {
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		res.AddSuggestedError(diagnostic.CodeMissingContainer, fmt.Sprintf("container type %s is not declared", name), "", name,
			match.Suggest(name, scopeNames(scope, isGeneric)))

		return
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		res.AddError(diagnostic.CodeMissingContainer, fmt.Sprintf("%s is not a defined type", name), "", name)
		return
	}

	if named.TypeParams().Len() != 1 {
		res.AddError(diagnostic.CodeMissingContainer,
			fmt.Sprintf("%s must have exactly one type parameter, has %d", name, named.TypeParams().Len()), "", name)
	}

	methods := map[string]*types.Signature{}
	names := make([]string, 0, named.NumMethods())

	for i := range named.NumMethods() {
		m := named.Method(i)
		methods[m.Name()] = m.Type().(*types.Signature)
		names = append(names, m.Name())
	}

	for _, want := range containerMethods {
		path := name + "." + want.name

		sig, ok := methods[want.name]
		if !ok {
			res.AddSuggestedError(diagnostic.CodeMissingMethod, fmt.Sprintf("%s has no method %s", name, want.name), "", path,
				match.Suggest(want.name, names))

			continue
		}

		if sig.Params().Len() != want.params || sig.Results().Len() != want.results {
			res.AddError(diagnostic.CodeMissingMethod,
				fmt.Sprintf("%s.%s must take %d and return %d values, takes %d and returns %d",
					name, want.name, want.params, want.results, sig.Params().Len(), sig.Results().Len()),
				"", path)
		}
	}
}

func verifyFunc(res *diagnostic.Diagnostics, scope *types.Scope, name string, results int) {
	fn, ok := scope.Lookup(name).(*types.Func)
	if !ok {
		res.AddSuggestedError(diagnostic.CodeMissingConstructor, fmt.Sprintf("function %s is not declared", name), "", name,
			match.Suggest(name, scopeNames(scope, isFunc)))

		return
	}

	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 1 || sig.Results().Len() != results {
		res.AddError(diagnostic.CodeMissingConstructor,
			fmt.Sprintf("%s must take one argument and return %d value", name, results), "", name)
	}
}

func verifyErrorType(res *diagnostic.Diagnostics, scope *types.Scope, name string) {
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		res.AddSuggestedError(diagnostic.CodeMissingContainer, fmt.Sprintf("error type %s is not declared", name), "", name,
			match.Suggest(name, scopeNames(scope, isStruct)))

		return
	}

	st, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		res.AddError(diagnostic.CodeMissingContainer, fmt.Sprintf("error type %s is not a struct", name), "", name)
		return
	}

	fields := map[string]bool{}
	for i := range st.NumFields() {
		fields[st.Field(i).Name()] = true
	}

	for _, f := range []string{"Op", "Left", "Right"} {
		if !fields[f] {
			res.AddError(diagnostic.CodeMissingContainer, fmt.Sprintf("error type %s has no field %s", name, f), "", name+"."+f)
		}
	}
}

// scopeNames lists the package-level names whose objects satisfy keep.
func scopeNames(scope *types.Scope, keep func(types.Object) bool) []string {
	var names []string

	for _, name := range scope.Names() {
		if keep(scope.Lookup(name)) {
			names = append(names, name)
		}
	}

	return names
}

func isFunc(obj types.Object) bool {
	_, ok := obj.(*types.Func)
	return ok
}

func isGeneric(obj types.Object) bool {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return false
	}

	named, ok := tn.Type().(*types.Named)

	return ok && named.TypeParams().Len() > 0
}

func isInterface(obj types.Object) bool {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return false
	}

	_, ok = tn.Type().Underlying().(*types.Interface)

	return ok
}

func isStruct(obj types.Object) bool {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return false
	}

	_, ok = tn.Type().Underlying().(*types.Struct)

	return ok
}
