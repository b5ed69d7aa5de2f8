// Package analyze loads the target package and collects operator requests
// written as comment directives.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. A
// directive is a line comment of the form
//
//	//vecop:<family> <left>[, <right>]
//	//vecop:<family> all
//
// placed anywhere in a non-test file of the package. The container type,
// its constructors and the error type named in the config are verified
// against the loaded type information before any code is generated.
//
// Key types:
//   - Scanner: loads packages and collects directives
//   - Directive: one parsed directive with its source position
//   - PackageInfo: name, directory, directives and types of a package
package analyze
