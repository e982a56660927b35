package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopkit/shuffle"
)

// NewShuffleCommand creates the shuffle command.
func NewShuffleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shuffle <text> <iterations>",
		Short: "Apply the even/odd interleave shuffle iterations times",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations, err := parseInt("iterations", args[1])
			if err != nil {
				return rootOpts.usageError(cmd, err)
			}
			out, period, err := shuffle.InterleavePeriod(args[0], iterations)
			if err != nil {
				return rootOpts.finish(cmd, nil, err)
			}
			rootOpts.Logger.Debug("shuffled", "length", len([]rune(args[0])),
				"iterations", iterations, "period", period)
			return rootOpts.finish(cmd, out, nil)
		},
	}

	return cmd
}
