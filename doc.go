// Package kitforge is a small, dependency-light toolbox of everyday
// helpers — from dense linear algebra to file, text, random and timing
// utilities.
//
// 🚀 What is kitforge?
//
//	A pure-Go collection of independent helper packages:
//		• matrix/  — vectors, dense matrices, Gaussian elimination
//		  (determinant, linear solve, Gauss-Jordan inverse) and
//		  2D/3D homogeneous affine transforms
//		• mathx/   — factorial, power, roots, trigonometry with a
//		  degrees/radians switch, logarithms, gcd/lcm
//		• randomx/ — deterministic random sampling, shuffles,
//		  weighted choice, token & name generation
//		• text/    — whitespace cleanup, slugging, substring
//		  extraction, rune-safe truncation
//		• files/   — read/write text, count lines, enumerate, copy
//		• timex/   — scoped timing, function benchmarking,
//		  duration formatting
//
// ✨ Why choose kitforge?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors everywhere, no panics, no
//     partial results
//   - Independent – every package stands alone; pull in only what
//     you need
//
// Each package carries its own doc.go with semantics, error contracts
// and runnable examples. The matrix package is the algorithmic core;
// everything else is a thin, well-tested convenience layer over the
// standard library.
//
//	go get github.com/kitforge/kitforge/matrix
package kitforge
