package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nuclino/sortable/pkg/errors"
	"github.com/Nuclino/sortable/pkg/sortable"
)

// checkCommand creates the check command for validating preset files.
func (c *CLI) checkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [preset.toml]",
		Short: "Validate a preset file and print the resolved options",
		Long: `Validate a preset file and print the resolved options.

The preset is parsed, merged over the engine defaults, and run through the
same validation the demo performs, so configuration mistakes (conflicting
activation thresholds, malformed lock offsets, unknown axes) surface here
instead of mid-gesture.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0])
		},
	}

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	preset, err := LoadPreset(path)
	if err != nil {
		if code := errors.GetCode(err); code != "" {
			c.Logger.Error("preset invalid", "path", path, "code", code)
		}
		return err
	}

	// LoadPreset already validated; this resolves the merged options for
	// display.
	opts, err := preset.Options()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, StyleSuccess.Render(fmt.Sprintf("%s is valid", path)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, StyleTitle.Render("Resolved options"))
	printOption(out, "axis", opts.Axis.String())
	printOption(out, "lock_axis", orDash(opts.LockAxis))
	printOption(out, "distance", fmt.Sprintf("%g", opts.Distance))
	printOption(out, "press_delay", opts.PressDelay.String())
	printOption(out, "press_threshold", fmt.Sprintf("%g", opts.PressThreshold))
	printOption(out, "lock_to_container_edges", fmt.Sprintf("%t", opts.LockToContainerEdges))
	printOption(out, "lock_offset", lockOffsetDisplay(opts))
	printOption(out, "transition", opts.TransitionDuration.String())
	printOption(out, "helper_class", orDash(opts.HelperClass))
	printOption(out, "hide_ghost", fmt.Sprintf("%t", opts.HideSortableGhost))
	printOption(out, "use_drag_handle", fmt.Sprintf("%t", opts.UseDragHandle))
	printOption(out, "window_scroll_container", fmt.Sprintf("%t", opts.UseWindowAsScrollContainer))

	fmt.Fprintln(out)
	fmt.Fprintln(out, StyleTitle.Render("Demo"))
	printOption(out, "items", fmt.Sprintf("%d", len(preset.Items())))
	if cols := preset.Columns(); cols > 0 {
		printOption(out, "columns", fmt.Sprintf("%d", cols))
	}

	if opts.Distance == 0 && opts.PressDelay == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, StyleDim.Render("note: no activation threshold; presses activate immediately"))
	}
	if opts.PressDelay >= time.Second {
		fmt.Fprintln(out)
		fmt.Fprintln(out, StyleWarning.Render("note: press delay of a second or more feels unresponsive"))
	}

	return nil
}

func printOption(out io.Writer, name, value string) {
	fmt.Fprintf(out, "  %s %s\n", StyleDim.Render(fmt.Sprintf("%-24s", name)), StyleValue.Render(value))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func lockOffsetDisplay(opts sortable.Options) string {
	if len(opts.LockOffset) == 0 {
		return "50% (default)"
	}
	out := opts.LockOffset[0]
	for _, o := range opts.LockOffset[1:] {
		out += ", " + o
	}
	return out
}
