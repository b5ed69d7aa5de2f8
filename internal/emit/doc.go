// Package emit turns one operator request into one generated source unit.
//
// A request is classified into an operand-mode pair, resolved against the
// variant table and rendered twice from the resolved spec: once into the
// function body and once into its doc comment. The unit is the doc comment
// immediately followed by the body.
//
// Both renderings are text/template based. Example outputs shown in the
// documentation are computed by evaluating the variant on sample operands,
// so the docs and the implementation cannot drift apart.
package emit
