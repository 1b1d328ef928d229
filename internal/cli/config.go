package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/garethgeorge/freebusy/internal/availability"
	"github.com/garethgeorge/freebusy/internal/block"
	"github.com/garethgeorge/freebusy/internal/busyset"
)

// Config is the TOML input read by every command.
//
//	[window]
//	from = 0
//	to = 100
//
//	[[calendar]]
//	name = "alice"
//	busy = [[1, 5], [4, 9]]
type Config struct {
	Window    WindowConfig     `toml:"window"`
	Calendars []CalendarConfig `toml:"calendar"`
}

type WindowConfig struct {
	From        int64 `toml:"from"`
	To          int64 `toml:"to"`
	MinLength   int64 `toml:"min_length"`
	PadBefore   int64 `toml:"pad_before"`
	PadAfter    int64 `toml:"pad_after"`
	Concurrency int   `toml:"concurrency"`
}

type CalendarConfig struct {
	Name string    `toml:"name"`
	Busy [][]int64 `toml:"busy"`
}

// LoadConfig decodes and validates the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("decode %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.From > c.Window.To {
		return fmt.Errorf("window: from %d is after to %d", c.Window.From, c.Window.To)
	}
	if c.Window.MinLength < 0 {
		return errors.New("window: min_length must not be negative")
	}
	for i, cal := range c.Calendars {
		if cal.Name == "" {
			return fmt.Errorf("calendar %d: missing name", i)
		}
		for j, pair := range cal.Busy {
			if len(pair) != 2 {
				return fmt.Errorf("calendar %q: busy entry %d has %d values, want 2", cal.Name, j, len(pair))
			}
		}
	}
	return nil
}

func (c *Config) window() busyset.Block {
	return block.New(c.Window.From, c.Window.To)
}

func (c *Config) options() availability.Options {
	return availability.Options{
		MinLength:   c.Window.MinLength,
		PadBefore:   c.Window.PadBefore,
		PadAfter:    c.Window.PadAfter,
		Concurrency: c.Window.Concurrency,
	}
}

func (c *Config) calendars() []availability.Calendar {
	calendars := make([]availability.Calendar, 0, len(c.Calendars))
	for _, cal := range c.Calendars {
		calendars = append(calendars, availability.Calendar{Name: cal.Name, Busy: cal.blocks()})
	}
	return calendars
}

func (c CalendarConfig) blocks() []busyset.Block {
	blocks := make([]busyset.Block, 0, len(c.Busy))
	for _, pair := range c.Busy {
		blocks = append(blocks, block.New(pair[0], pair[1]))
	}
	return blocks
}
