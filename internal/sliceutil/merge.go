package sliceutil

import "iter"

// MergeSlicesIter walks two sorted slices and yields their elements in sorted
// order. The cmp function should return:
//   - negative if a < b
//   - zero if a == b
//   - positive if a > b
//
// Equal elements are yielded from a before b, so the merge is stable.
func MergeSlicesIter[T any](a, b []T, cmp func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		i, j := 0, 0
		for i < len(a) && j < len(b) {
			if cmp(a[i], b[j]) <= 0 {
				if !yield(a[i]) {
					return
				}
				i++
			} else {
				if !yield(b[j]) {
					return
				}
				j++
			}
		}
		for ; i < len(a); i++ {
			if !yield(a[i]) {
				return
			}
		}
		for ; j < len(b); j++ {
			if !yield(b[j]) {
				return
			}
		}
	}
}
