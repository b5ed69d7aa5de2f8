package emit

import (
	"fmt"
	"slices"

	"vecop-generator/internal/variant"
)

// outcome is the observable effect of applying a variant to sample operands.
type outcome struct {
	// Vector holds the returned vector, nil for scalar results.
	Vector []int
	// Scalar holds the returned dot product.
	Scalar int
	// Left and Right hold the operands after the call.
	Left  []int
	Right []int
}

// Printed returns what fmt.Println prints for the returned value.
func (o outcome) Printed() string {
	if o.Vector == nil {
		return fmt.Sprint(o.Scalar)
	}

	return fmt.Sprint(o.Vector)
}

// evaluate applies the variant semantics to integer operands the way the
// generated body does. It reports a size mismatch as an error instead of
// panicking.
func evaluate(v Variant, left, right []int, scalar int) (outcome, error) {
	out := outcome{Left: slices.Clone(left), Right: slices.Clone(right)}

	if v.Key.Family.SizeSensitive() && len(left) != len(right) {
		return outcome{}, fmt.Errorf("%s: size mismatch (%d != %d)", v.Name(), len(left), len(right))
	}

	switch v.Spec.BodyTemplate {
	case variant.BodyAddNew:
		out.Vector = make([]int, 0, len(left))
		for i := range left {
			out.Vector = append(out.Vector, left[i]+right[i])
		}
	case variant.BodyAddLeft:
		for i := range out.Left {
			out.Left[i] = out.Left[i] + out.Right[i]
		}

		out.Vector = out.Left
	case variant.BodyAddRight:
		for i := range out.Right {
			out.Right[i] = out.Left[i] + out.Right[i]
		}

		out.Vector = out.Right
	case variant.BodyDot:
		for i := range left {
			out.Scalar += left[i] * right[i]
		}
	case variant.BodyScaleNew:
		out.Vector = make([]int, 0, len(left))
		for _, x := range left {
			out.Vector = append(out.Vector, scalar*x)
		}
	case variant.BodyScaleLeft:
		for i, x := range out.Left {
			out.Left[i] = scalar * x
		}

		out.Vector = out.Left
	default:
		return outcome{}, fmt.Errorf("unknown body template %q", v.Spec.BodyTemplate)
	}

	return out, nil
}
