package block

import (
	"iter"
	"slices"

	"github.com/garethgeorge/freebusy/internal/sliceutil"
)

// Merge coalesces blocks into the minimal sorted list of blocks covering the
// same points. Overlapping and adjacent blocks are joined, so consecutive
// results are always separated by a gap. The input is not modified.
func Merge[T Number](blocks []Block[T]) []Block[T] {
	if len(blocks) == 0 {
		return nil
	}
	sorted := slices.Clone(blocks)
	slices.SortFunc(sorted, Compare[T])
	return slices.Collect(Coalesce(slices.Values(sorted)))
}

// Coalesce joins overlapping neighbours of a sequence already sorted by top.
func Coalesce[T Number](seq iter.Seq[Block[T]]) iter.Seq[Block[T]] {
	return func(yield func(Block[T]) bool) {
		var current Block[T]
		started := false
		for next := range seq {
			if !started {
				current, started = next, true
				continue
			}
			if added := current.Add(next); len(added) == 1 {
				current = added[0]
				continue
			}
			if !yield(current) {
				return
			}
			current = next
		}
		if started {
			yield(current)
		}
	}
}

// Gaps returns the blocks lying between consecutive blocks of the merged
// input. The first gap starts where the first merged block ends.
func Gaps[T Number](blocks []Block[T]) []Block[T] {
	merged := Merge(blocks)
	if len(merged) < 2 {
		return nil
	}
	gaps := make([]Block[T], 0, len(merged)-1)
	for i := 1; i < len(merged); i++ {
		gaps = append(gaps, Block[T]{top: merged[i-1].bottom, bottom: merged[i].top})
	}
	return gaps
}

// UnionSets returns the merged union of two lists that are each sorted by
// Compare. It runs in linear time.
func UnionSets[T Number](a, b []Block[T]) []Block[T] {
	return slices.Collect(Coalesce(sliceutil.MergeSlicesIter(a, b, Compare[T])))
}

// Intersect returns the points present in both a and b. Both lists must be
// merged (see Merge). Blocks that only touch intersect in a degenerate block.
func Intersect[T Number](a, b []Block[T]) []Block[T] {
	var out []Block[T]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if clipped, ok := a[i].Limited(b[j]); ok {
			out = append(out, clipped)
		}
		if a[i].bottom < b[j].bottom {
			i++
		} else {
			j++
		}
	}
	return out
}
