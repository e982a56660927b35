// Command loopkit exposes the loopkit algorithms on the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/katalvlaran/loopkit/internal/cli"
)

func main() {
	logger := cli.NewLogger(os.Stderr, slog.LevelInfo)
	slog.SetDefault(logger)

	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(cli.GetExitCode(err))
	}
}
