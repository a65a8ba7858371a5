package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zappabad/trendtape/internal/ticker"
)

func newSplitCmd(a *cli) *cobra.Command {
	var (
		width float64
		at    float64
	)

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Show how tape text splits into selectable topics",
		Long: `Splits text on the configured delimiter and prints each selectable
segment with its right boundary, in cells from the start of the text.

Example:
  trendtape split "#solar record#mars lake#" --at 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			if width < 0 {
				return fmt.Errorf("--width must not be negative, got %v", width)
			}
			if !cmd.Flags().Changed("width") {
				width = float64(ticker.Measure(raw))
			}
			content := ticker.SplitOn(raw, a.cfg.DelimiterRune(), width)

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("at") {
				seg, ok := content.SegmentAt(at)
				if !ok {
					fmt.Fprintln(out, "none")
					return nil
				}
				fmt.Fprintln(out, seg)
				return nil
			}

			if content.Empty() {
				fmt.Fprintln(out, "no selectable segments")
				return nil
			}
			for i, seg := range content.Segments {
				fmt.Fprintf(out, "%d\t%.2f\t%q\n", i, content.Boundaries[i], seg)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 0, "rendered width of the text (default: measured)")
	cmd.Flags().Float64Var(&at, "at", 0, "print only the segment under this offset")
	return cmd
}
