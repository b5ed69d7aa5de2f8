// Package vector is a small generic vector type whose arithmetic operators
// are generated by vecop-generator.
//
// Go has no operator overloading, so every combination of operand passing
// modes is a separate generic function. The name encodes the modes of the
// operands in order: Val for a vector passed by value, Ref for a pointer that
// is only read and Mut for a pointer that may be written through.
//
//	v := vector.From(1, 2, 3)
//	w := vector.From(4, 5, 6)
//
//	sum := vector.AddRefRef(&v, &w) // new vector, [5 7 9]
//	dot := vector.DotRefRef(&v, &w) // 32
//	vector.AddMutRef(&v, &w)        // v is now [5 7 9]
//	vector.ScaleMut(&w, 3)          // w is now [12 15 18]
//
// A Vector value shares its elements with every copy of it, so a Val operand
// copied from a Mut operand sees the mutation too. Use Clone for a separate
// copy.
//
// Addition and dot product panic with a *SizeMismatchError when the operands
// differ in length.
package vector

//go:generate go run ../cmd/vecop-generator gen --config vecop.yaml --pkg .
