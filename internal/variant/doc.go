// Package variant holds the decision table that maps an operator family and
// an operand-mode pair onto one implementation strategy.
//
// The table is a literal over every legal key, so totality is checked by
// enumerating Keys rather than by reading cascading conditionals. It is
// built once at package initialization and only read afterwards, which makes
// it safe to share between concurrent generation requests.
//
// Mutation precedence for element-wise addition is asymmetric: a mutably
// borrowed left operand always receives the result, even when the right
// operand is mutably borrowed as well.
package variant
