// Package randomx provides random-value helpers: element picks, shuffled
// copies, uniform ints and floats, unique sampling, weighted choice, and
// lowercase-name / token generation.
//
// Determinism is explicit: every function takes a *Source. New(seed)
// builds one; seed 0 selects a fixed default seed so zero-value usage
// stays reproducible. Passing a nil *Source falls back to a process-wide
// default stream with the same policy.
//
// Concurrency:
//   - A Source wraps math/rand.Rand, which is NOT goroutine-safe. Do not
//     share one Source across goroutines; create one per worker instead.
package randomx
