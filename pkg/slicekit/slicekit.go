package slicekit

import "iter"

// Merge will merge every []T slice into a single one.
func Merge[T any](slices ...[]T) []T {
	var n int
	for _, s := range slices {
		n += len(s)
	}
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// First returns the first element of the slice.
// The boolean reports whether the slice had an element.
func First[T any](vs []T) (T, bool) {
	if len(vs) == 0 {
		var zero T
		return zero, false
	}
	return vs[0], true
}

// Last returns the last element of the slice.
// The boolean reports whether the slice had an element.
func Last[T any](vs []T) (T, bool) {
	if len(vs) == 0 {
		var zero T
		return zero, false
	}
	return vs[len(vs)-1], true
}

// IterReverse iterates over the slice from the last element to the first,
// yielding the original index along with the value.
func IterReverse[T any](vs []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(i, vs[i]) {
				return
			}
		}
	}
}
