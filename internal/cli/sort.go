package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loopkit/sorting"
)

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <number>...",
		Short: "Sort numbers ascending with insertion sort",
		Long: `Sort numbers ascending with insertion sort.

Separate negative numbers from flags with --:

  loopkit sort -- -2 9 5 -3`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseFloats(args)
			if err != nil {
				return rootOpts.usageError(cmd, err)
			}
			rootOpts.Logger.Debug("sorting", "count", len(nums))

			return rootOpts.finish(cmd, sorting.InsertionSort(nums), nil)
		},
	}

	return cmd
}
