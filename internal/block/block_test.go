package block

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name           string
		from, to       int
		expectedTop    int
		expectedBottom int
	}{
		{"ordered", 3, 8, 3, 8},
		{"reversed", 8, 3, 3, 8},
		{"degenerate", 5, 5, 5, 5},
		{"negative", -2, -10, -10, -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.from, tc.to)
			assert.Equal(t, tc.expectedTop, b.Top())
			assert.Equal(t, tc.expectedBottom, b.Bottom())
		})
	}

	t.Run("zero value is degenerate", func(t *testing.T) {
		var b Block[int64]
		assert.True(t, b.IsDegenerate())
		assert.Equal(t, New[int64](0, 0), b)
	})
}

func TestBlock_Length(t *testing.T) {
	assert.Equal(t, 5, New(3, 8).Length())
	assert.Equal(t, 0, New(4, 4).Length())
	assert.Equal(t, uint64(10), New[uint64](20, 10).Length())
	assert.InDelta(t, 1.5, New(0.5, 2.0).Length(), 1e-9)

	// Signed blocks wider than the type's range saturate.
	assert.Equal(t, int64(math.MaxInt64), New[int64](math.MinInt64, math.MaxInt64).Length())
	assert.Equal(t, int8(127), New[int8](-128, 127).Length())
	assert.Equal(t, int8(127), New[int8](-1, 126).Length())
	assert.Equal(t, uint8(255), New[uint8](0, 255).Length())
}

func TestBlock_Include(t *testing.T) {
	b := New(5, 10)
	assert.True(t, b.Include(5))
	assert.True(t, b.Include(7))
	assert.True(t, b.Include(10))
	assert.False(t, b.Include(4))
	assert.False(t, b.Include(11))

	p := New(3, 3)
	assert.True(t, p.Include(3))
	assert.False(t, p.Include(2))
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Block[int]
		expected int
	}{
		{"top decides", New(1, 20), New(2, 3), -1},
		{"top decides reversed", New(2, 3), New(1, 20), 1},
		{"bottom breaks tie", New(1, 5), New(1, 6), -1},
		{"bottom breaks tie reversed", New(1, 6), New(1, 5), 1},
		{"equal", New(1, 5), New(5, 1), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Compare(tc.a, tc.b))
			assert.Equal(t, tc.expected < 0, tc.a.Less(tc.b))
			assert.Equal(t, tc.expected == 0, tc.a.Equal(tc.b))
		})
	}

	t.Run("sorts", func(t *testing.T) {
		blocks := []Block[int]{New(4, 9), New(1, 5), New(1, 2), New(20, 25)}
		slices.SortFunc(blocks, Compare[int])
		assert.Equal(t, []Block[int]{New(1, 2), New(1, 5), New(4, 9), New(20, 25)}, blocks)
	})
}

func TestBlock_String(t *testing.T) {
	assert.Equal(t, "[3, 12]", New(12, 3).String())
	assert.Equal(t, "[0.5, 1.25]", New(0.5, 1.25).String())
}

func TestTopology(t *testing.T) {
	outer := New(10, 20)

	t.Run("Surrounds", func(t *testing.T) {
		testCases := []struct {
			name     string
			other    Block[int]
			expected bool
		}{
			{"strictly inside", New(12, 18), true},
			{"touches top", New(10, 18), false},
			{"touches bottom", New(12, 20), false},
			{"identical", New(10, 20), false},
			{"degenerate inside", New(15, 15), true},
			{"crossing", New(5, 15), false},
			{"disjoint", New(30, 40), false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, outer.Surrounds(tc.other))
			})
		}
	})

	t.Run("Covers", func(t *testing.T) {
		testCases := []struct {
			name     string
			other    Block[int]
			expected bool
		}{
			{"strictly inside", New(12, 18), true},
			{"touches top", New(10, 18), true},
			{"touches bottom", New(12, 20), true},
			{"identical", New(10, 20), true},
			{"degenerate on edge", New(20, 20), true},
			{"crossing", New(5, 15), false},
			{"larger", New(5, 25), false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, outer.Covers(tc.other))
			})
		}
	})

	t.Run("IntersectsTop", func(t *testing.T) {
		testCases := []struct {
			name     string
			self     Block[int]
			expected bool
		}{
			{"enters from above", New(5, 15), true},
			{"ends on other top", New(5, 10), true},
			{"same top ends inside", New(10, 15), true},
			{"runs past other", New(5, 25), false},
			{"starts inside", New(12, 15), false},
			{"entirely above", New(1, 5), false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.self.IntersectsTop(outer))
			})
		}
	})

	t.Run("IntersectsBottom", func(t *testing.T) {
		testCases := []struct {
			name     string
			self     Block[int]
			expected bool
		}{
			{"leaves from below", New(15, 25), true},
			{"starts on other bottom", New(20, 25), true},
			{"starts inside same bottom", New(15, 20), true},
			{"starts before other", New(5, 25), false},
			{"ends inside", New(12, 15), false},
			{"entirely below", New(25, 30), false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.self.IntersectsBottom(outer))
			})
		}
	})

	t.Run("Overlaps", func(t *testing.T) {
		testCases := []struct {
			name     string
			r1, r2   Block[int]
			expected bool
		}{
			{"r2 starts during r1", New(10, 20), New(15, 25), true},
			{"r1 and r2 are adjacent", New(5, 10), New(10, 15), true},
			{"r1 contains r2", New(5, 25), New(10, 20), true},
			{"identical", New(10, 20), New(10, 20), true},
			{"degenerate on edge", New(10, 20), New(20, 20), true},
			{"gap of one", New(10, 20), New(21, 30), false},
			{"no overlap", New(10, 20), New(25, 30), false},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.r1.Overlaps(tc.r2))
				assert.Equal(t, tc.expected, tc.r2.Overlaps(tc.r1))
			})
		}
	})
}

func FuzzBlock_Overlaps(f *testing.F) {
	f.Add(int64(5), int64(10), int64(10), int64(15))
	f.Add(int64(1), int64(2), int64(3), int64(4))
	f.Add(int64(0), int64(0), int64(0), int64(0))

	f.Fuzz(func(t *testing.T, a, b, c, d int64) {
		x := New(a, b)
		y := New(c, d)

		assert.LessOrEqual(t, x.Top(), x.Bottom())

		// Overlap is the same as one block holding an endpoint of the other.
		byEndpoints := x.Include(y.Top()) || x.Include(y.Bottom()) ||
			y.Include(x.Top()) || y.Include(x.Bottom())
		assert.Equal(t, byEndpoints, x.Overlaps(y))
		assert.Equal(t, x.Overlaps(y), y.Overlaps(x))

		if x.Surrounds(y) {
			assert.True(t, x.Covers(y))
		}
		if x.Covers(y) {
			assert.True(t, x.Overlaps(y))
		}
	})
}
