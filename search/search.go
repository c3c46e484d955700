package search

import (
	"cmp"
	"errors"
	"slices"
)

// NotFound is returned by the unsorted searches when x does not occur.
const NotFound = -1

// ErrUnsorted is returned by BinaryChecked for input that is not sorted.
var ErrUnsorted = errors.New("search: input slice is not sorted")

// Linear returns the first index of x in a, or NotFound.
func Linear[S ~[]E, E comparable](a S, x E) int {
	i := 0
	for i < len(a) && a[i] != x {
		i++
	}
	if i < len(a) {
		return i
	}

	return NotFound
}

// Sentinel returns the same result as Linear with one comparison per element
// instead of two. a is modified during the call and restored before return,
// so it must not be shared with concurrent readers.
func Sentinel[S ~[]E, E comparable](a S, x E) int {
	// NaN never equals itself, so it could not stop the scan.
	if len(a) == 0 || x != x {
		return NotFound
	}
	last := len(a) - 1
	saved := a[last]
	a[last] = x
	i := 0
	for a[i] != x {
		i++
	}
	a[last] = saved
	if i < last || saved == x {
		return i
	}

	return NotFound
}

// Unrolled returns the same result as Linear, testing two elements per
// bounds check.
func Unrolled[S ~[]E, E comparable](a S, x E) int {
	i := 0
	if len(a)%2 == 1 {
		if a[0] == x {
			return 0
		}
		i = 1
	}
	for ; i < len(a); i += 2 {
		if a[i] == x {
			return i
		}
		if a[i+1] == x {
			return i + 1
		}
	}

	return NotFound
}

// Binary returns the leftmost position at which x could be inserted into the
// sorted slice a while keeping it sorted: the index of the first element
// >= x, or len(a) if every element is smaller.
//
// Complexity: O(log n).
func Binary[S ~[]E, E cmp.Ordered](a S, x E) int {
	lo, hi := 0, len(a)-1
	if hi < 0 || a[hi] < x {
		return len(a)
	}
	// Invariant: the answer lies in [lo, hi]; lo <= mid < hi.
	for lo < hi {
		mid := lo + (hi-lo)/2
		if a[mid] < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// BinaryChecked is Binary for input of unknown order.
// Returns ErrUnsorted if a is not sorted in non-decreasing order.
//
// Complexity: O(n) for the check.
func BinaryChecked[S ~[]E, E cmp.Ordered](a S, x E) (int, error) {
	if !slices.IsSorted(a) {
		return NotFound, ErrUnsorted
	}

	return Binary(a, x), nil
}

// BinaryEarlyExit returns as soon as a probed midpoint equals x, which gives
// some matching index rather than the leftmost one, and shrinks hi past the
// midpoint on every miss. The second shortcut breaks the search invariant:
// for an absent x the returned position is not always the insertion point
// (e.g. x=2 in [1 3 5] yields 0).
//
// Use Binary. This variant exists to be compared against it.
func BinaryEarlyExit[S ~[]E, E cmp.Ordered](a S, x E) int {
	lo, hi := 0, len(a)-1
	if hi < 0 || a[hi] < x {
		return len(a)
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case a[mid] == x:
			return mid
		case a[mid] < x:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return lo
}
