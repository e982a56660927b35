package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopkit/grid"
)

// NewSpiralCommand creates the spiral command.
func NewSpiralCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		start int
		ccw   bool
	)

	cmd := &cobra.Command{
		Use:   "spiral <size>",
		Short: "Print a size×size grid filled in spiral order",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseInt("size", args[0])
			if err != nil {
				return rootOpts.usageError(cmd, err)
			}

			dir := grid.Clockwise
			if ccw {
				dir = grid.CounterClockwise
			}
			rootOpts.Logger.Debug("building spiral", "size", size, "start", start, "direction", dir.String())

			g, err := grid.Spiral(size, grid.WithStart(start), grid.WithDirection(dir))
			return rootOpts.finish(cmd, g, err)
		},
	}

	cmd.Flags().IntVar(&start, "start", grid.DefaultStart, "value written into the top-left cell")
	cmd.Flags().BoolVar(&ccw, "ccw", false, "walk counter-clockwise")

	return cmd
}
