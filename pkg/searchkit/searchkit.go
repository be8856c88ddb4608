// Package searchkit implements binary search over sorted slices.
//
// Every function expects the slice to be sorted in ascending order
// by the same ordering that is used for the comparison.
// On an unsorted slice the result is unspecified, the functions don't detect it.
package searchkit

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Find looks up key in the sorted slice.
//
// When key is present, the index of a matching element is returned.
// Otherwise the result is negative and encodes the position where key could be inserted
// while keeping the order, as -(insertion point) - 1. InsertionPoint decodes it.
func Find[S ~[]E, E constraints.Ordered](s S, key E) int {
	return FindFunc(s, key, cmp.Compare[E])
}

// FindFunc is Find with a custom comparison function.
func FindFunc[S ~[]E, E any](s S, key E, cmp func(a, b E) int) int {
	i, j := 0, len(s)-1
	for i <= j {
		m := int(uint(i+j) >> 1)
		switch c := cmp(key, s[m]); {
		case c < 0:
			j = m - 1
		case 0 < c:
			i = m + 1
		default:
			return m
		}
	}
	return -i - 1
}

// FindBalance gives the same result as Find, but it narrows a half-open [i, j) bracket
// with a single comparison per step and only checks for equality at the end.
// The number of comparisons is the same for hits and misses.
func FindBalance[S ~[]E, E constraints.Ordered](s S, key E) int {
	return FindBalanceFunc(s, key, cmp.Compare[E])
}

// FindBalanceFunc is FindBalance with a custom comparison function.
func FindBalanceFunc[S ~[]E, E any](s S, key E, cmp func(a, b E) int) int {
	if len(s) == 0 {
		return -1
	}
	i, j := 0, len(s)
	for 1 < j-i {
		m := int(uint(i+j) >> 1)
		if cmp(key, s[m]) < 0 {
			j = m
		} else {
			i = m
		}
	}
	switch c := cmp(key, s[i]); {
	case c == 0:
		return i
	case c < 0:
		return -i - 1
	default:
		return -(i + 1) - 1
	}
}

// FindLeftMost returns the smallest index whose element is greater than or equal to key.
// When every element is smaller than key, len(s) is returned.
func FindLeftMost[S ~[]E, E constraints.Ordered](s S, key E) int {
	return FindLeftMostFunc(s, key, cmp.Compare[E])
}

// FindLeftMostFunc is FindLeftMost with a custom comparison function.
func FindLeftMostFunc[S ~[]E, E any](s S, key E, cmp func(a, b E) int) int {
	i, j := 0, len(s)-1
	for i <= j {
		m := int(uint(i+j) >> 1)
		if cmp(key, s[m]) <= 0 {
			j = m - 1
		} else {
			i = m + 1
		}
	}
	return i
}

// FindRightMost returns the largest index whose element is less than or equal to key.
// When every element is greater than key, -1 is returned.
func FindRightMost[S ~[]E, E constraints.Ordered](s S, key E) int {
	return FindRightMostFunc(s, key, cmp.Compare[E])
}

// FindRightMostFunc is FindRightMost with a custom comparison function.
func FindRightMostFunc[S ~[]E, E any](s S, key E, cmp func(a, b E) int) int {
	i, j := 0, len(s)-1
	for i <= j {
		m := int(uint(i+j) >> 1)
		if 0 <= cmp(key, s[m]) {
			i = m + 1
		} else {
			j = m - 1
		}
	}
	return j
}

// InsertionPoint decodes the result of Find and FindBalance into the index
// where the searched key is, or where it should be inserted to keep the slice sorted.
func InsertionPoint(result int) int {
	if result < 0 {
		return -result - 1
	}
	return result
}
