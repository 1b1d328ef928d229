package cli

import (
	"fmt"

	"github.com/garethgeorge/freebusy/internal/block"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE",
		Short: "Print each calendar's busy blocks, coalesced",
		Long: `Merge reads calendars from a TOML file and prints, for every calendar,
the minimal sorted list of busy blocks. Overlapping and touching blocks
are joined.`,
		Args: cobra.ExactArgs(1),
		RunE: runMerge,
	}
}

func runMerge(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	cfg, err := LoadConfig(args[0])
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	total := 0
	for _, cal := range cfg.Calendars {
		merged := block.Merge(cal.blocks())
		logger.Debug("merged calendar", "name", cal.Name, "blocks", len(cal.Busy), "merged", len(merged))
		writeBlocks(cmd.OutOrStdout(), cal.Name, merged)
		total += len(merged)
	}

	prog.done(fmt.Sprintf("Merged %d calendars into %d blocks", len(cfg.Calendars), total))
	return nil
}
