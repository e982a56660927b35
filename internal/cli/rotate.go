package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopkit/grid"
)

// NewRotateCommand creates the rotate command.
func NewRotateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		turns int
		ccw   bool
	)

	cmd := &cobra.Command{
		Use:   "rotate <row>...",
		Short: "Rotate a square grid by quarter turns",
		Long: `Rotate a square grid in place by quarter turns.

Each argument is one row with comma-separated cells:

  loopkit rotate 1,2,3 4,5,6 7,8,9`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseGrid(args)
			if err != nil {
				return rootOpts.usageError(cmd, err)
			}
			if err := grid.ValidateSquare(g); err != nil {
				return rootOpts.finish(cmd, nil, err)
			}

			rotate := grid.Rotate[int]
			if ccw {
				rotate = grid.RotateCounterClockwise[int]
			}
			n := ((turns % 4) + 4) % 4
			rootOpts.Logger.Debug("rotating grid", "size", len(g), "quarter_turns", n, "ccw", ccw)

			for i := 0; i < n; i++ {
				if _, err := rotate(g); err != nil {
					return rootOpts.finish(cmd, nil, err)
				}
			}
			return rootOpts.finish(cmd, g, nil)
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 1, "number of quarter turns (taken modulo 4)")
	cmd.Flags().BoolVar(&ccw, "ccw", false, "turn counter-clockwise")

	return cmd
}
