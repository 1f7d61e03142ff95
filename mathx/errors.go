package mathx

import "errors"

var (
	// ErrNegative rejects negative input where only non-negative values
	// are defined (Factorial, Sqrt).
	ErrNegative = errors.New("mathx: argument must be non-negative")

	// ErrOverflow indicates the exact result exceeds the return type
	// (Factorial beyond 20! for uint64).
	ErrOverflow = errors.New("mathx: result overflows")

	// ErrNonPositive rejects zero or negative input where only positive
	// values are defined (Log argument).
	ErrNonPositive = errors.New("mathx: argument must be positive")

	// ErrInvalidBase rejects logarithm bases that are non-positive or 1.
	ErrInvalidBase = errors.New("mathx: log base must be positive and not 1")

	// ErrUndefined indicates a reciprocal trig function evaluated where
	// its underlying function is zero (e.g. Sec at cos θ = 0).
	ErrUndefined = errors.New("mathx: function undefined at this angle")

	// ErrInvalidUnit rejects angle units other than "degrees" or "radians".
	ErrInvalidUnit = errors.New("mathx: unit must be degrees or radians")
)
