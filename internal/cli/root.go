// Package cli implements the blockcalc command-line interface.
//
// Commands read calendars of busy blocks from a TOML file (see Config):
//   - merge: print each calendar's busy blocks, coalesced
//   - free: print the windows when no calendar is busy
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in the command's context.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/garethgeorge/freebusy/internal/busyset"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information shown by --version. main calls it
// with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCmd builds the blockcalc command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "blockcalc",
		Short:         "blockcalc merges busy blocks and finds common free time",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("blockcalc %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMergeCmd())
	root.AddCommand(newFreeCmd())
	return root
}

// Execute runs blockcalc with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func writeBlocks(w io.Writer, label string, blocks []busyset.Block) {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.String()
	}
	if label == "" {
		fmt.Fprintln(w, strings.Join(parts, " "))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(parts, " "))
}
