package block

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any endpoint type a Block can be built over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Block is an immutable closed interval [Top, Bottom] with Top <= Bottom.
// The zero value is the degenerate block [0, 0].
type Block[T Number] struct {
	top    T
	bottom T
}

// New returns the block spanning from and to, in whichever order they are given.
func New[T Number](from, to T) Block[T] {
	if to < from {
		from, to = to, from
	}
	return Block[T]{top: from, bottom: to}
}

// Top is the start of the block (inclusive).
func (b Block[T]) Top() T {
	return b.top
}

// Bottom is the end of the block (inclusive).
func (b Block[T]) Bottom() T {
	return b.bottom
}

// Length is Bottom - Top. For signed integers a block wider than the largest
// T reports the largest T.
func (b Block[T]) Length() T {
	var zero T
	if l := b.bottom - b.top; l >= zero {
		return l
	}
	return highest[T]()
}

func (b Block[T]) IsDegenerate() bool {
	return b.top == b.bottom
}

// Include reports whether n lies within the block, edges included.
func (b Block[T]) Include(n T) bool {
	return b.top <= n && n <= b.bottom
}

func (b Block[T]) Equal(other Block[T]) bool {
	return b == other
}

// Less orders blocks by top, then by bottom.
func (b Block[T]) Less(other Block[T]) bool {
	return Compare(b, other) < 0
}

// Compare orders blocks by top, breaking ties on bottom. It returns -1, 0 or +1
// and can be passed directly to slices.SortFunc.
func Compare[T Number](a, b Block[T]) int {
	switch {
	case a.top < b.top:
		return -1
	case a.top > b.top:
		return 1
	case a.bottom < b.bottom:
		return -1
	case a.bottom > b.bottom:
		return 1
	}
	return 0
}

func (b Block[T]) String() string {
	return fmt.Sprintf("[%v, %v]", b.top, b.bottom)
}
