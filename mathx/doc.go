// Package mathx bundles basic math helpers: factorial, powers and roots,
// trigonometry with a degrees/radians switch, logarithms with an explicit
// base, and gcd/lcm.
//
// Everything is a thin, validated wrapper over the standard math package.
// Domain violations (negative factorial or square root, non-positive
// logarithm argument, undefined reciprocal trig values, unknown angle
// units) are reported as package sentinel errors, never as NaN or panic.
package mathx
