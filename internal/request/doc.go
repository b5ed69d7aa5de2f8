// Package request provides the YAML schema, parsing, validation and
// expansion of operator requests.
//
// A config file names the target package and the identifiers used in
// generated code, and may list operators. Operators can also come from
// //vecop: directives found in Go source (see package analyze); both end up
// as Operator values and are validated the same way.
//
// # Schema Overview
//
//	version: "1"
//	package: vector
//	import_path: vecop-generator/vector
//	container: Vector
//	constructor: New
//	literal: From
//	constraint: Number          # default for every family
//	constraints: {dot: Number}  # optional per-family override
//	error_type: SizeMismatchError
//	output: ops_gen.go
//	examples_output: ops_gen_example_test.go
//	complete_docs: false
//	operators:
//	  - family: add
//	    left: "mut *Vector"
//	    right: [Vector, "*Vector"]   # one request per operand pair
//	  - family: scale
//	    all: true                     # every mode the table knows
//
// Operand types are Go type expressions. A leading "*" makes the operand
// borrowed, "mut *" mutably borrowed, anything else is passed by value.
package request
