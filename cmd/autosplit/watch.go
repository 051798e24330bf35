package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/autosplit/autosplit-go/pkg/autosplit"
)

var (
	// watch flags
	watchLogPath    string
	watchSplitsPath string
	watchFormat     string
	watchRaw        bool
	watchPoll       bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor a game log and output trigger events",
	Long: `Tail a game log file and print every trigger match as it happens,
without running the timer. Useful for tuning trigger text in a splits file
before a real attempt.

Events are output as JSON Lines by default (one JSON object per line),
which makes it easy to process with tools like jq.

Examples:
  # Watch with triggers from a splits file
  autosplit watch --log ~/celeste/output.log --splits celeste.json

  # Human-readable output
  autosplit watch --log output.log --splits celeste.json --format pretty

  # Include the matched log lines
  autosplit watch --log output.log --splits celeste.json --raw

  # Pipe to jq for filtering
  autosplit watch --log output.log --splits celeste.json | jq 'select(.type == "split")'`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchLogPath, "log", "l", "",
		"Path to game log file to watch (required)")
	watchCmd.Flags().StringVarP(&watchSplitsPath, "splits", "s", "",
		"Path to splits JSON file with trigger configuration (required)")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "jsonl",
		"Output format: jsonl, pretty")
	watchCmd.Flags().BoolVar(&watchRaw, "raw", false,
		"Include matched log lines in output")
	watchCmd.Flags().BoolVar(&watchPoll, "poll", false,
		"Use filesystem polling instead of change notification")
	watchCmd.MarkFlagRequired("log")
	watchCmd.MarkFlagRequired("splits")
}

func runWatch(cmd *cobra.Command, args []string) error {
	// Validate format
	if !ValidFormats[watchFormat] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", watchFormat)
	}

	run, err := loadSplits(watchSplitsPath)
	if err != nil {
		return err
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build watch options
	var watchOpts []autosplit.WatchOption

	if watchRaw {
		watchOpts = append(watchOpts, autosplit.WithIncludeRawLine(true))
	}
	if watchPoll {
		watchOpts = append(watchOpts, autosplit.WithPoll(true))
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		watchOpts = append(watchOpts, autosplit.WithLogger(logger))
	}

	watcher, err := autosplit.NewWatcher(watchLogPath, run.Triggers(), watchOpts...)
	if err != nil {
		return err
	}
	defer watcher.Close()

	events, errs := watcher.Watch(ctx)

	// Output loop
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil // Channel closed
			}
			if err := OutputEvent(watchFormat, ev, os.Stdout); err != nil {
				return fmt.Errorf("output error: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				return nil // Channel closed
			}
			// Always output errors to stderr
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)

		case <-ctx.Done():
			return nil
		}
	}
}
