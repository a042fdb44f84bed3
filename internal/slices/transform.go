// Package slices has small slice helpers
// that the standard library's slices package does not cover.
package slices

// Transform applies f to every element of from,
// returning the results in order.
// An empty input yields nil.
func Transform[From, To any](from []From, f func(From) To) []To {
	if len(from) == 0 {
		return nil
	}
	to := make([]To, len(from))
	for i, v := range from {
		to[i] = f(v)
	}
	return to
}
