package availability

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/garethgeorge/freebusy/internal/block"
	"github.com/garethgeorge/freebusy/internal/busyset"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidCalendar = errors.New("invalid calendar")

// Calendar is one participant's busy time. Busy blocks may be unsorted and
// may overlap.
type Calendar struct {
	Name string
	Busy []busyset.Block
}

type Options struct {
	// MinLength drops free windows shorter than this.
	MinLength int64
	// PadBefore and PadAfter grow every busy block before it is counted.
	// Negative values are treated as zero.
	PadBefore int64
	PadAfter  int64
	// Concurrency bounds how many calendars are normalized at once.
	// Zero means runtime.GOMAXPROCS(0).
	Concurrency int
}

// Result is the combined view of all calendars within the window.
type Result struct {
	Window busyset.Block
	// Merged holds each calendar's normalized busy blocks, clipped to the
	// window, in the same order as the input calendars.
	Merged [][]busyset.Block
	// Busy is the union of every calendar's busy time.
	Busy []busyset.Block
	// Free holds the windows when nobody is busy.
	Free []busyset.Block
	// Fingerprint identifies Busy; equal busy time gives equal fingerprints.
	Fingerprint uint64
}

func validate(calendars []Calendar) error {
	seen := make(map[string]struct{}, len(calendars))
	for i, c := range calendars {
		if c.Name == "" {
			return fmt.Errorf("calendar %d: empty name: %w", i, ErrInvalidCalendar)
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("calendar %q: duplicate name: %w", c.Name, ErrInvalidCalendar)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// normalize pads, clips and merges one calendar's busy blocks.
func normalize(c Calendar, window busyset.Block, opts Options) []busyset.Block {
	clipped := make([]busyset.Block, 0, len(c.Busy))
	for _, b := range c.Busy {
		if in, ok := b.Padded(opts.PadBefore, opts.PadAfter).Limited(window); ok {
			clipped = append(clipped, in)
		}
	}
	return block.Merge(clipped)
}

// Solve finds the windows within window when none of the calendars are busy.
// Calendars are normalized concurrently; Solve stops early and returns the
// context's error if ctx is cancelled.
func Solve(ctx context.Context, window busyset.Block, calendars []Calendar, opts Options) (*Result, error) {
	if err := validate(calendars); err != nil {
		return nil, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	merged := make([][]busyset.Block, len(calendars))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, c := range calendars {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			merged[i] = normalize(c, window, opts)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("normalize calendars: %w", err)
	}

	set := busyset.New(window)
	for i, busy := range merged {
		if err := set.Reserve(busy...); err != nil {
			return nil, fmt.Errorf("calendar %q: %w", calendars[i].Name, err)
		}
	}

	var free []busyset.Block
	for _, w := range set.Free() {
		if w.Length() >= opts.MinLength {
			free = append(free, w)
		}
	}

	return &Result{
		Window:      window,
		Merged:      merged,
		Busy:        set.Busy(),
		Free:        free,
		Fingerprint: set.Fingerprint(),
	}, nil
}
