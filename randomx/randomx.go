// Package randomx: sampling and generation helpers over a Source.

package randomx

// Character sets for Name and Token.
const (
	lowercase     = "abcdefghijklmnopqrstuvwxyz"
	alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Pick returns a uniformly random element of seq.
//
// Errors:
//   - ErrEmpty when seq has no elements.
func Pick[T any](src *Source, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, ErrEmpty
	}
	s := orDefault(src)

	return seq[s.rng.Intn(len(seq))], nil
}

// Shuffle returns a shuffled copy of seq via Fisher-Yates. The input is
// never reordered in place; an empty or nil seq yields an empty slice.
func Shuffle[T any](src *Source, seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	s := orDefault(src)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// IntN returns a uniform integer in the inclusive interval [a, b].
//
// Errors:
//   - ErrBadRange when a > b.
func IntN(src *Source, a, b int) (int, error) {
	if a > b {
		return 0, ErrBadRange
	}
	s := orDefault(src)

	return a + s.rng.Intn(b-a+1), nil
}

// Float returns a uniform float in the half-open interval [a, b).
//
// Errors:
//   - ErrBadRange when a > b.
func Float(src *Source, a, b float64) (float64, error) {
	if a > b {
		return 0, ErrBadRange
	}
	s := orDefault(src)

	return a + s.rng.Float64()*(b-a), nil
}

// Sample returns k unique elements of seq, drawn without replacement.
// Relative input order is not preserved; the input itself is untouched.
//
// Errors:
//   - ErrBadSample when k < 0 or k > len(seq).
func Sample[T any](src *Source, seq []T, k int) ([]T, error) {
	if k < 0 || k > len(seq) {
		return nil, ErrBadSample
	}
	s := orDefault(src)

	// Partial Fisher-Yates: the first k slots of the working copy become
	// the sample.
	work := make([]T, len(seq))
	copy(work, seq)
	var j int
	for i := 0; i < k; i++ {
		j = i + s.rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}

	return work[:k:k], nil
}

// WeightedChoice picks one item with probability proportional to its weight.
//
// Errors:
//   - ErrEmpty          when items is empty.
//   - ErrLengthMismatch when items and weights differ in length.
//   - ErrBadWeights     when any weight is negative or the total is zero.
func WeightedChoice[T any](src *Source, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}
	if len(items) != len(weights) {
		return zero, ErrLengthMismatch
	}

	var total float64
	for _, w := range weights {
		if w < 0 {
			return zero, ErrBadWeights
		}
		total += w
	}
	if total == 0 {
		return zero, ErrBadWeights
	}

	s := orDefault(src)
	r := s.rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return items[i], nil
		}
	}

	// r landed on the last cumulative boundary after rounding.
	return items[len(items)-1], nil
}

// Name generates a random lowercase name of the given length.
//
// Errors:
//   - ErrNonPositive when length <= 0.
func Name(src *Source, length int) (string, error) {
	return fromAlphabet(src, length, lowercase)
}

// Token generates a random letters+digits token of the given length.
//
// Errors:
//   - ErrNonPositive when length <= 0.
func Token(src *Source, length int) (string, error) {
	return fromAlphabet(src, length, alphanumerics)
}

// fromAlphabet draws length characters uniformly from alphabet.
func fromAlphabet(src *Source, length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", ErrNonPositive
	}
	s := orDefault(src)
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[s.rng.Intn(len(alphabet))]
	}

	return string(out), nil
}
