// Package timeit times the execution of a function and reports how long it
// took.
//
// Three forms build on one another:
//
//   - Measure runs a function and returns the elapsed duration with its result.
//   - Format does the same but renders the duration into a message such as
//     "Computing sum - Execution time: 1.234ms".
//   - Log writes that message to stderr and returns only the result.
//
// Each form has a Named variant that prefixes the message with a label, and an
// Err variant for functions that return an error:
//
//	sum := timeit.LogNamed("Computing sum", func() int {
//		total := 0
//		for i := 1; i <= 1000; i++ {
//			total += i
//		}
//		return total
//	})
//
// The wrapped function is called exactly once. Panics pass through untouched,
// and when an Err function fails its error is returned as is, with no duration,
// no message and nothing written to stderr.
package timeit
