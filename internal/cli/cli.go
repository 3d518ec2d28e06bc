// Package cli implements the sortable command-line interface.
//
// The CLI is a demo surface for the drag-to-reorder engine: an interactive
// bubbletea program backed by an in-memory host surface, plus a preset
// checker. Engine behavior is configured through TOML preset files; see the
// examples/presets directory.
//
// # Commands
//
//   - demo: Run the interactive drag-to-reorder demo in the terminal
//   - check: Validate a preset file and print the resolved options
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Nuclino/sortable/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "sortable"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sortable",
		Short:        "Sortable is an interactive drag-to-reorder demo",
		Long:         `Sortable demonstrates a drag-to-reorder engine: press an item, drag it across its siblings, and watch the list reflow around it. Gesture behavior (activation thresholds, axis locking, edge clamping, autoscroll) is driven by TOML presets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.completionCommand())

	return root
}
