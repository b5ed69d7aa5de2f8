package variant

import (
	"errors"
	"fmt"
)

// ErrUnsupportedCombination is matched by every UnsupportedCombinationError.
var ErrUnsupportedCombination = errors.New("unsupported operand combination")

// UnsupportedCombinationError reports a key outside the table's domain.
type UnsupportedCombinationError struct {
	Key Key
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedCombination, e.Key)
}

func (e *UnsupportedCombinationError) Unwrap() error { return ErrUnsupportedCombination }
