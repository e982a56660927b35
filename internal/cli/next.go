package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopkit/digits"
)

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next <number>",
		Short: "Print the next greater permutation of a number's digits",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return rootOpts.usageError(cmd, fmt.Errorf("number: %w", err))
			}
			rootOpts.Logger.Debug("next permutation", "n", n)

			next, err := digits.NextGreater(n)
			if err != nil {
				return rootOpts.finish(cmd, nil, err)
			}
			return rootOpts.finish(cmd, next, nil)
		},
	}

	return cmd
}
