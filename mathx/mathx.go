// Package mathx: validated wrappers over the standard math package.

package mathx

import (
	"math"
	"strings"
)

// maxFactorial is the largest n whose factorial fits a uint64.
const maxFactorial = 20

// Unit names the angular unit accepted by the trigonometric helpers.
type Unit string

// Supported angle units. Matching is case-insensitive.
const (
	Radians Unit = "radians"
	Degrees Unit = "degrees"
)

// toRadians normalizes theta to radians according to unit.
func toRadians(theta float64, unit Unit) (float64, error) {
	switch Unit(strings.ToLower(string(unit))) {
	case Radians:
		return theta, nil
	case Degrees:
		return theta * math.Pi / 180.0, nil
	default:
		return 0, ErrInvalidUnit
	}
}

// Factorial returns n! for non-negative n.
//
// Errors:
//   - ErrNegative when n < 0.
//   - ErrOverflow when n > 20 (21! exceeds uint64).
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > maxFactorial {
		return 0, ErrOverflow
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}

	return result, nil
}

// Power returns base raised to exp. Semantics follow math.Pow.
func Power(base, exp float64) float64 { return math.Pow(base, exp) }

// Sqrt returns the square root of x.
//
// Errors:
//   - ErrNegative when x < 0.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrNegative
	}

	return math.Sqrt(x), nil
}

// Sin returns the sine of theta in the given unit.
func Sin(theta float64, unit Unit) (float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return 0, err
	}

	return math.Sin(rad), nil
}

// Cos returns the cosine of theta in the given unit.
func Cos(theta float64, unit Unit) (float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return 0, err
	}

	return math.Cos(rad), nil
}

// Tan returns the tangent of theta in the given unit.
func Tan(theta float64, unit Unit) (float64, error) {
	rad, err := toRadians(theta, unit)
	if err != nil {
		return 0, err
	}

	return math.Tan(rad), nil
}

// Sec returns the secant of theta (1/cos).
//
// Errors:
//   - ErrInvalidUnit for unknown units.
//   - ErrUndefined when cos(theta) is exactly zero.
func Sec(theta float64, unit Unit) (float64, error) {
	c, err := Cos(theta, unit)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, ErrUndefined
	}

	return 1 / c, nil
}

// Cosec returns the cosecant of theta (1/sin).
//
// Errors:
//   - ErrInvalidUnit for unknown units.
//   - ErrUndefined when sin(theta) is exactly zero.
func Cosec(theta float64, unit Unit) (float64, error) {
	s, err := Sin(theta, unit)
	if err != nil {
		return 0, err
	}
	if s == 0 {
		return 0, ErrUndefined
	}

	return 1 / s, nil
}

// Cot returns the cotangent of theta (1/tan).
//
// Errors:
//   - ErrInvalidUnit for unknown units.
//   - ErrUndefined when tan(theta) is exactly zero.
func Cot(theta float64, unit Unit) (float64, error) {
	t, err := Tan(theta, unit)
	if err != nil {
		return 0, err
	}
	if t == 0 {
		return 0, ErrUndefined
	}

	return 1 / t, nil
}

// Log returns the logarithm of x in the given base.
//
// Errors:
//   - ErrNonPositive when x <= 0.
//   - ErrInvalidBase when base <= 0 or base == 1.
func Log(x, base float64) (float64, error) {
	if x <= 0 {
		return 0, ErrNonPositive
	}
	if base <= 0 || base == 1 {
		return 0, ErrInvalidBase
	}

	return math.Log(x) / math.Log(base), nil
}

// GCD returns the greatest common divisor of a and b. The result is
// non-negative; GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b. The result is
// non-negative; LCM with either argument zero is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}
