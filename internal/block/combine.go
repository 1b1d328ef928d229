package block

// Union returns the smallest block spanning both b and other. It does not
// check that they overlap; callers that need a gap-free result should test
// Overlaps first or use Add.
func (b Block[T]) Union(other Block[T]) Block[T] {
	return Block[T]{top: min(b.top, other.top), bottom: max(b.bottom, other.bottom)}
}

// Split punches other out of b and returns the pieces before and after it.
// other must be covered by b. Either piece may be degenerate when other
// shares an edge with b.
func (b Block[T]) Split(other Block[T]) ([]Block[T], error) {
	if !b.Covers(other) {
		return nil, preconditionf("split", "other %v must lie within %v", other, b)
	}
	return []Block[T]{
		{top: b.top, bottom: other.top},
		{top: other.bottom, bottom: b.bottom},
	}, nil
}

// TrimFrom returns b with its top replaced by newTop.
func (b Block[T]) TrimFrom(newTop T) (Block[T], error) {
	if newTop > b.bottom {
		return Block[T]{}, preconditionf("trim from", "new top %v is past bottom %v", newTop, b.bottom)
	}
	return Block[T]{top: newTop, bottom: b.bottom}, nil
}

// TrimTo returns b with its bottom replaced by newBottom.
func (b Block[T]) TrimTo(newBottom T) (Block[T], error) {
	if newBottom < b.top {
		return Block[T]{}, preconditionf("trim to", "new bottom %v is before top %v", newBottom, b.top)
	}
	return Block[T]{top: b.top, bottom: newBottom}, nil
}

// Limited clips b to the limiter. ok is false when the two do not overlap.
// A limiter that only touches b yields a degenerate block.
func (b Block[T]) Limited(limiter Block[T]) (clipped Block[T], ok bool) {
	top := max(b.top, limiter.top)
	bottom := min(b.bottom, limiter.bottom)
	if top > bottom {
		return Block[T]{}, false
	}
	return Block[T]{top: top, bottom: bottom}, true
}

// Padded grows b outward by topPadding before and bottomPadding after.
// Negative paddings are treated as zero. Integer edges stop at the limits of
// T instead of wrapping around.
func (b Block[T]) Padded(topPadding, bottomPadding T) Block[T] {
	var zero T
	return Block[T]{
		top:    subSat(b.top, max(topPadding, zero)),
		bottom: addSat(b.bottom, max(bottomPadding, zero)),
	}
}

// Add merges b and other into one block when they overlap (adjacent blocks
// included). Otherwise both are returned in ascending order, whichever of
// the two is the receiver.
func (b Block[T]) Add(other Block[T]) []Block[T] {
	if b.Overlaps(other) {
		return []Block[T]{b.Union(other)}
	}
	if other.Less(b) {
		return []Block[T]{other, b}
	}
	return []Block[T]{b, other}
}

// Subtract removes the part of b covered by other. The result is sorted and
// holds zero, one or two non-degenerate blocks, or b itself when nothing is
// removed. Because blocks are closed, taking away a block that only touches b,
// or a single point, leaves b unchanged.
func (b Block[T]) Subtract(other Block[T]) []Block[T] {
	if !b.Overlaps(other) {
		return []Block[T]{b}
	}
	if other.Covers(b) {
		return nil
	}
	if other.IsDegenerate() {
		return []Block[T]{b}
	}

	var pieces []Block[T]
	if other.top > b.top {
		pieces = append(pieces, Block[T]{top: b.top, bottom: other.top})
	}
	if other.bottom < b.bottom {
		pieces = append(pieces, Block[T]{top: other.bottom, bottom: b.bottom})
	}
	return pieces
}

// SubtractAll removes every block in others from b.
func (b Block[T]) SubtractAll(others []Block[T]) []Block[T] {
	remaining := []Block[T]{b}
	for _, other := range others {
		if len(remaining) == 0 {
			break
		}
		next := make([]Block[T], 0, len(remaining)+1)
		for _, r := range remaining {
			next = append(next, r.Subtract(other)...)
		}
		remaining = next
	}
	return remaining
}
