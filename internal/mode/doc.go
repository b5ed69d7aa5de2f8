// Package mode classifies how a vector operand is passed to a generated
// operator: by value (owned), by immutable reference (borrowed) or by
// mutable reference (mutably borrowed).
//
// Go has no borrow qualifiers, so the operand mode is carried by an explicit
// Descriptor. Descriptors are usually parsed from a Go type expression with
// an optional "mut" qualifier:
//
//	Vector        owned
//	*Vector[T]    borrowed
//	mut *Vector   mutably borrowed
package mode
