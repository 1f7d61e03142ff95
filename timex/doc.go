// Package timex offers timing helpers: a Stopwatch for scoped timing of a
// code block, Benchmark for averaging a function's wall time over N
// repeats, current-time retrieval, and second-precision duration
// formatting.
//
// The Stopwatch's Stop reports through an injectable io.Writer (stdout by
// default), so library code stays silent unless asked to speak.
package timex
