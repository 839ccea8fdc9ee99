package minefield

import "errors"

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrDimensionOverflow = errors.New("board dimensions overflow the cell index")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrNegativeMines     = errors.New("mine count cannot be negative")
	ErrTooManyMines      = errors.New("more mines than cells")
	ErrNoSafeCell        = errors.New("no cell without a mine")
)

// AssertionError is the panic value for violated preconditions. It wraps
// one of the sentinel errors above.
type AssertionError struct {
	err     error
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	if e.message == "" {
		return e.err.Error()
	}
	return e.err.Error() + ": " + e.message
}

func (e AssertionError) Unwrap() error {
	return e.err
}
