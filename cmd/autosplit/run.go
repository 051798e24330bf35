package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/autosplit/autosplit-go/internal/gamefinder"
	"github.com/autosplit/autosplit-go/internal/splits"
	"github.com/autosplit/autosplit-go/internal/timer"
	"github.com/autosplit/autosplit-go/internal/ui"
	"github.com/autosplit/autosplit-go/pkg/autosplit"
)

var (
	// run flags
	runSplitsPath string
	runWatchPath  string
	runGame       string
	runBundleDir  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the split timer",
	Long: `Start the terminal split timer.

With --watch, the given log file is tailed for the trigger text configured
in the splits file and the timer starts, splits, and resets automatically.
Without it, the timer is driven entirely by keyboard.

Examples:
  # Manual timer with a default single split
  autosplit run

  # Timer with a splits definition
  autosplit run --splits celeste.json

  # Auto-splitting from the game's log
  autosplit run --splits celeste.json --watch ~/celeste/output.log

  # Use a discovered autosplitter bundle (splits + log location)
  autosplit run --game celeste

Keys: space start/split, p pause, r reset, u undo, s skip, q quit.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runSplitsPath, "splits", "s", "",
		"Path to splits JSON file (default: built-in single split)")
	runCmd.Flags().StringVarP(&runWatchPath, "watch", "w", "",
		"Path to game log file to watch for auto-splitting")
	runCmd.Flags().StringVarP(&runGame, "game", "g", "",
		"Autosplitter bundle to load (folder or game name)")
	runCmd.Flags().StringVarP(&runBundleDir, "bundle-dir", "d", "",
		"Autosplitters directory (auto-detected if not specified)")
}

func runRun(cmd *cobra.Command, args []string) error {
	if runGame != "" && (runSplitsPath != "" || runWatchPath != "") {
		return fmt.Errorf("--game cannot be combined with --splits or --watch")
	}

	splitsPath := runSplitsPath
	watchPath := runWatchPath

	if runGame != "" {
		dir, err := gamefinder.FindBundleDir(runBundleDir)
		if err != nil {
			return err
		}
		bundle, err := gamefinder.FindBundle(dir, runGame)
		if err != nil {
			return err
		}
		splitsPath = bundle.SplitsPath
		watchPath = bundle.LogPath
	}

	run, err := loadSplits(splitsPath)
	if err != nil {
		return err
	}

	tm, err := timer.New(run.Names(), run.BestSegments())
	if err != nil {
		return err
	}

	// A missing or unreadable log is not fatal: the run proceeds without
	// auto-splitting, driven by keyboard alone.
	var watcher *autosplit.LogWatcher
	if watchPath != "" {
		watcher, err = autosplit.NewLogWatcher(watchPath, run.Triggers())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: auto-splitting disabled: %v\n", err)
			watcher = nil
		}
	}

	program := tea.NewProgram(ui.New(run, tm, watcher), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// loadSplits loads the definition at path, falling back to the default
// single-split run when no path is given or the file is malformed.
func loadSplits(path string) (*splits.File, error) {
	if path == "" {
		return splits.DefaultRun(), nil
	}

	run, err := splits.Load(path)
	if err != nil {
		if errors.Is(err, splits.ErrMalformed) {
			fmt.Fprintf(os.Stderr, "warning: %v; using default run\n", err)
			return splits.DefaultRun(), nil
		}
		return nil, err
	}
	return run, nil
}
