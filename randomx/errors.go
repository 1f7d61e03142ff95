package randomx

import "errors"

var (
	// ErrEmpty indicates an empty sequence where at least one element is
	// required (Pick, WeightedChoice).
	ErrEmpty = errors.New("randomx: sequence must not be empty")

	// ErrBadRange indicates an inverted interval (a > b).
	ErrBadRange = errors.New("randomx: invalid range")

	// ErrBadSample indicates a sample size below 0 or above the sequence length.
	ErrBadSample = errors.New("randomx: sample size out of range")

	// ErrLengthMismatch indicates items and weights of different lengths.
	ErrLengthMismatch = errors.New("randomx: items and weights must have the same length")

	// ErrBadWeights indicates a negative weight or an all-zero weight total.
	ErrBadWeights = errors.New("randomx: weights must be non-negative with a positive sum")

	// ErrNonPositive indicates a requested length that is not positive
	// (Name, Token).
	ErrNonPositive = errors.New("randomx: length must be positive")
)
