package vector

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is matched by every SizeMismatchError.
var ErrSizeMismatch = errors.New("vector: size mismatch")

// SizeMismatchError is the panic value of an operator whose operands differ
// in length.
type SizeMismatchError struct {
	Op    string
	Left  int
	Right int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("vector: %s of vectors with different sizes (%d != %d)", e.Op, e.Left, e.Right)
}

func (e *SizeMismatchError) Unwrap() error { return ErrSizeMismatch }
