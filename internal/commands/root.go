package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodviz/prodviz/internal/db"
	"github.com/prodviz/prodviz/internal/tracker"
	"github.com/prodviz/prodviz/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "prodviz",
	Short: "Rate your hours, understand your days",
	Long: `prodviz is an hourly productivity tracker for the terminal.
Rate each hour of your day 1-5 stars, tag what you did, and get a daily
summary with an achievement score, peak hours, and insights.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation opens the interactive tracker
		return withTracker(func(tr *tracker.Tracker) error {
			return tui.RunTrackerTUI(tr)
		})
	},
}

// withTracker wires the composition root: open the store, build the
// tracker on top of it, run fn, close the store
func withTracker(fn func(*tracker.Tracker) error) error {
	path, err := db.DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to locate data directory: %w", err)
	}
	store, err := db.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(tracker.New(store))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prodviz %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
