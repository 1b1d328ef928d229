package cli

import (
	"errors"
	"fmt"

	"github.com/garethgeorge/freebusy/internal/availability"
	"github.com/spf13/cobra"
)

func newFreeCmd() *cobra.Command {
	var minLength int64

	cmd := &cobra.Command{
		Use:   "free FILE",
		Short: "Print the windows when no calendar is busy",
		Long: `Free reads calendars from a TOML file and prints every window inside
[window] during which none of the calendars is busy, one per line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(args[0])
			if err != nil {
				return fmt.Errorf("free: %w", err)
			}
			if cmd.Flags().Changed("min-length") {
				if minLength < 0 {
					return errors.New("free: --min-length must not be negative")
				}
				cfg.Window.MinLength = minLength
			}
			return runFree(cmd, cfg)
		},
	}

	cmd.Flags().Int64Var(&minLength, "min-length", 0, "drop free windows shorter than this (overrides the file)")
	return cmd
}

func runFree(cmd *cobra.Command, cfg *Config) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	res, err := availability.Solve(cmd.Context(), cfg.window(), cfg.calendars(), cfg.options())
	if err != nil {
		return fmt.Errorf("free: %w", err)
	}
	logger.Debug("solved", "window", res.Window.String(), "busy", len(res.Busy), "fingerprint", fmt.Sprintf("%016x", res.Fingerprint))

	for _, w := range res.Free {
		fmt.Fprintln(cmd.OutOrStdout(), w.String())
	}

	prog.done(fmt.Sprintf("Found %d free windows across %d calendars", len(res.Free), len(cfg.Calendars)))
	return nil
}
