package busyset

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"github.com/garethgeorge/freebusy/internal/block"
	"github.com/google/btree"
)

// Block is a span of time, typically in Unix seconds.
type Block = block.Block[int64]

// Set tracks busy time within a fixed domain and answers free-space queries.
// It is not thread-safe.
type Set struct {
	Domain Block

	// busy holds busy blocks ordered by top. Entries never overlap or touch,
	// so every top is unique.
	busy *btree.BTreeG[Block]
}

func New(domain Block) *Set {
	return &Set{
		Domain: domain,
		busy:   btree.NewG[Block](32, func(a, b Block) bool { return a.Top() < b.Top() }),
	}
}

// Len returns the number of disjoint busy blocks.
func (s *Set) Len() int {
	return s.busy.Len()
}

// overlapping returns the busy blocks that overlap b, edges included, in order.
func (s *Set) overlapping(b Block) []Block {
	var found []Block
	// Only the last block starting before b can reach into it. A block sharing
	// b's top is picked up by the ascending pass below.
	s.busy.DescendLessOrEqual(b, func(item Block) bool {
		if item.Top() == b.Top() {
			return true
		}
		if item.Overlaps(b) {
			found = append(found, item)
		}
		return false
	})
	s.busy.AscendGreaterOrEqual(b, func(item Block) bool {
		if item.Top() > b.Bottom() {
			return false
		}
		found = append(found, item)
		return true
	})
	return found
}

// Reserve marks the given blocks busy, coalescing them with any busy blocks
// they overlap or touch. Every block must lie within the domain; if one does
// not, nothing is reserved.
func (s *Set) Reserve(blocks ...Block) error {
	for _, b := range blocks {
		if !s.Domain.Covers(b) {
			return setError(ErrOutOfDomain, "reserve %v in %v", b, s.Domain)
		}
	}
	for _, b := range blocks {
		merged := b
		for _, item := range s.overlapping(b) {
			s.busy.Delete(item)
			merged = merged.Union(item)
		}
		s.busy.ReplaceOrInsert(merged)
	}
	return nil
}

// Release frees b, trimming or splitting any busy block it overlaps. Parts of
// b that were already free are ignored.
func (s *Set) Release(b Block) {
	for _, item := range s.overlapping(b) {
		s.busy.Delete(item)
		for _, piece := range item.Subtract(b) {
			s.busy.ReplaceOrInsert(piece)
		}
	}
}

// IsFree reports whether b lies entirely within one free window.
func (s *Set) IsFree(b Block) bool {
	if !s.Domain.Covers(b) {
		return false
	}
	for _, window := range s.Domain.SubtractAll(s.overlapping(b)) {
		if window.Covers(b) {
			return true
		}
	}
	return false
}

// All iterates over the busy blocks in order.
func (s *Set) All() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		s.busy.Ascend(func(item Block) bool {
			return yield(item)
		})
	}
}

// Busy returns the busy blocks in order.
func (s *Set) Busy() []Block {
	busy := make([]Block, 0, s.busy.Len())
	for b := range s.All() {
		busy = append(busy, b)
	}
	return busy
}

// Free returns the parts of the domain that are not busy, in order.
func (s *Set) Free() []Block {
	free := []Block{s.Domain}
	// Busy blocks are sorted and disjoint, so only the last free piece can
	// overlap the next busy block.
	for b := range s.All() {
		last := free[len(free)-1]
		free = append(free[:len(free)-1], last.Subtract(b)...)
		if len(free) == 0 {
			break
		}
	}
	return free
}

func (s *Set) BusyTime() int64 {
	var total int64
	for b := range s.All() {
		total += b.Length()
	}
	return total
}

func (s *Set) FreeTime() int64 {
	var total int64
	for _, b := range s.Free() {
		total += b.Length()
	}
	return total
}

// FindSlot returns the earliest free block of the requested length. It
// returns ErrNoCapacity if no free window is long enough.
func (s *Set) FindSlot(length int64) (Block, error) {
	if length < 0 {
		return Block{}, fmt.Errorf("find slot: negative length %d", length)
	}
	for _, window := range s.Free() {
		if window.Length() >= length {
			return block.New(window.Top(), window.Top()+length), nil
		}
	}
	return Block{}, setError(ErrNoCapacity, "find slot of length %d", length)
}

// Fingerprint hashes the busy blocks. Sets with the same busy blocks have the
// same fingerprint regardless of the order reservations were made in.
func (s *Set) Fingerprint() uint64 {
	return Fingerprint(s.All())
}

// Fingerprint hashes a sequence of blocks with xxhash64.
func Fingerprint(blocks iter.Seq[Block]) uint64 {
	digest := xxhash.New()
	var buf [16]byte
	for b := range blocks {
		binary.LittleEndian.PutUint64(buf[:8], uint64(b.Top()))
		binary.LittleEndian.PutUint64(buf[8:], uint64(b.Bottom()))
		_, _ = digest.Write(buf[:])
	}
	return digest.Sum64()
}
