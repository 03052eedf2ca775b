package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/paucazou/wait-until/internal/config"
	"github.com/paucazou/wait-until/internal/progress"
	"github.com/paucazou/wait-until/internal/ui"
	"github.com/paucazou/wait-until/internal/version"
)

// Runners are the collaborators the root command hands a resolved countdown to.
type Runners struct {
	Now         func() time.Time
	Plain       func(ctx context.Context, out io.Writer, c progress.Countdown) error
	Interactive func(ctx context.Context, c progress.Countdown) error
}

// DefaultRunners draws on the real terminal behind stdout.
func DefaultRunners() Runners {
	return Runners{
		Now: func() time.Time { return time.Now().In(time.Local) },
		Plain: func(ctx context.Context, out io.Writer, c progress.Countdown) error {
			return progress.NewLoop(out, os.Stdout.Fd()).Run(ctx, c)
		},
		Interactive: ui.Run,
	}
}

// NewRootCommand creates the wait-until command: one positional target time.
func NewRootCommand(ctx context.Context, cfg config.Config, runners Runners) *cobra.Command {
	tuiFlag := cfg.TUI

	cmd := &cobra.Command{
		Use:     "wait-until H[:M[:S]]",
		Short:   "Show a progress bar counting down to a time of day.",
		Long:    "Counts down to the next occurrence of the given local time, rolling over to tomorrow when it has already passed today.",
		Args:    cobra.ExactArgs(1),
		Version: version.Info(),
		RunE: func(cmd *cobra.Command, args []string) error {
			countdown, err := progress.NewCountdown(args[0], runners.Now())
			if err != nil {
				return err
			}

			if tuiFlag {
				return runners.Interactive(ctx, countdown)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, countdown.Summary())
			return runners.Plain(ctx, out, countdown)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&tuiFlag, "tui", tuiFlag, "Use the interactive full-screen view (default from "+config.TUIEnv+")")

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, config.FromEnv(), DefaultRunners())
	return cmd.Execute()
}

// Main is a helper used by cmd/wait-until/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
