// Package gen provides deterministic generation of operator files.
//
// Generation approach uses text/template + go/format for readable Go code.
// Units are emitted in parallel and assembled in request order, so the
// output only depends on the config and the operators requested.
//
// Every run produces:
//   - the operator file holding one documented generic function per request
//   - an external test file with the runnable examples of those functions
package gen
