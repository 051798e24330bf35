package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/autosplit/autosplit-go/internal/gamefinder"
)

var gamesBundleDir string

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List discovered autosplitter bundles",
	Long: `List autosplitter bundles found in the autosplitters directory.

A bundle is a folder containing config.json (game name and log location)
and splits.json (the run definition). Bundles are looked for in the
working directory, next to the executable, or in $` + gamefinder.EnvBundleDir + `.`,
	RunE: runGames,
}

func init() {
	gamesCmd.Flags().StringVarP(&gamesBundleDir, "bundle-dir", "d", "",
		"Autosplitters directory (auto-detected if not specified)")
}

func runGames(cmd *cobra.Command, args []string) error {
	dir, err := gamefinder.FindBundleDir(gamesBundleDir)
	if err != nil {
		return err
	}

	bundles, err := gamefinder.ListBundles(dir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUNDLE\tGAME\tLOG")
	for _, b := range bundles {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Game, b.LogPath)
	}
	return tw.Flush()
}
