package block

// Surrounds reports whether other lies strictly inside b, touching neither edge.
func (b Block[T]) Surrounds(other Block[T]) bool {
	return other.top > b.top && other.bottom < b.bottom
}

// Covers reports whether other lies inside b. Shared edges are allowed.
func (b Block[T]) Covers(other Block[T]) bool {
	return other.top >= b.top && other.bottom <= b.bottom
}

// IntersectsTop reports whether b starts at or before other and ends inside it.
func (b Block[T]) IntersectsTop(other Block[T]) bool {
	return b.top <= other.top && other.Include(b.bottom)
}

// IntersectsBottom reports whether b starts inside other and ends at or after it.
func (b Block[T]) IntersectsBottom(other Block[T]) bool {
	return b.bottom >= other.bottom && other.Include(b.top)
}

// Overlaps reports whether b and other share at least one point. Blocks that
// only touch (b.Bottom() == other.Top()) overlap. This is the one overlap test
// used by Add, Subtract, Merge and everything built on them.
func (b Block[T]) Overlaps(other Block[T]) bool {
	return b.top <= other.bottom && other.top <= b.bottom
}
