package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// FormatEnv names the environment variable that overrides the default of --format.
const FormatEnv = "LOOPKIT_FORMAT"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"

	// Logger is built in PersistentPreRunE from --verbose.
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the loopkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	defaultFormat := FormatText
	if env := os.Getenv(FormatEnv); env != "" {
		defaultFormat = env
	}

	cmd := &cobra.Command{
		Use:   "loopkit",
		Short: "loopkit - grid, sort, shuffle and digit puzzles",
		Long: `Command-line front end for the loopkit packages: spiral grids,
in-place rotation, insertion sort, interleave shuffle with period
detection and next greater digit permutation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = NewLogger(cmd.ErrOrStderr(), level)

			if !isValidFormat(opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaultFormat, "output format (text|json|yaml)")

	cmd.AddCommand(NewSpiralCommand(opts))
	cmd.AddCommand(NewRotateCommand(opts))
	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewShuffleCommand(opts))
	cmd.AddCommand(NewNextCommand(opts))

	return cmd
}

// exactArgs is cobra.ExactArgs with the usage exit code attached.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

// finish renders a result, or the algorithm's rejection of its input.
func (o *RootOptions) finish(cmd *cobra.Command, result any, err error) error {
	f := &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
	if err != nil {
		o.Logger.Debug("input rejected", "command", cmd.Name(), "err", err)
		if ferr := f.Error(ExitFailure, err.Error()); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitFailure, cmd.Name()+" failed", err)
	}
	return f.Success(result)
}

// usageError reports arguments that could not be parsed.
func (o *RootOptions) usageError(cmd *cobra.Command, err error) error {
	f := &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
	if ferr := f.Error(ExitCommandError, err.Error()); ferr != nil {
		return ferr
	}
	return WrapExitError(ExitCommandError, "invalid arguments", err)
}
