package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prodviz/prodviz/internal/insights"
	"github.com/prodviz/prodviz/internal/parser"
	"github.com/prodviz/prodviz/internal/tracker"
	"github.com/prodviz/prodviz/internal/tui"
)

var rateCmd = &cobra.Command{
	Use:   "rate [hour] <stars> [#tags note...]",
	Short: "Rate an hour of today",
	Long: `Rate an hour of today with 1-5 stars, optionally tagging the
activity and attaching a note.

Modes:
  Interactive: prodviz rate (no arguments opens the tracker UI)
  Current hour: prodviz rate 4
  Specific hour: prodviz rate 9 4

Smart syntax after the stars:
  #tag1,tag2  - Tags (comma-separated or individual)
  free text   - Everything else becomes the note

Examples:
  prodviz rate 5 #work shipped the big feature
  prodviz rate 14 2 #meetings standup ran long`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return withTracker(func(tr *tracker.Tracker) error {
				return tui.RunTrackerTUI(tr)
			})
		}
		return withTracker(func(tr *tracker.Tracker) error {
			return runRate(cmd, args, tr)
		})
	},
}

func runRate(cmd *cobra.Command, args []string, tr *tracker.Tracker) error {
	now := time.Now()
	hour := now.Hour()

	// "rate <stars>" rates the current hour; "rate <hour> <stars>" is explicit
	first, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number '%s'", args[0])
	}
	rating := first
	rest := args[1:]
	if len(args) > 1 {
		if second, err := strconv.Atoi(args[1]); err == nil {
			hour = first
			rating = second
			rest = args[2:]
		}
	}

	parsed := parser.ParseEntry(strings.Join(rest, " "))
	tags := parsed.Tags
	notes := parsed.Notes

	// Explicit flags take precedence over smart syntax
	if flagTags, _ := cmd.Flags().GetString("tags"); flagTags != "" {
		tags = parser.SplitTags(flagTags)
	}
	if flagNote, _ := cmd.Flags().GetString("note"); flagNote != "" {
		notes = flagNote
	}

	if err := tr.SaveHourRating(now, hour, rating, tags, notes); err != nil {
		return err
	}

	fmt.Printf("⭐ Rated %s with %d star%s\n", insights.FormatHour(hour), rating, plural(rating))
	if len(tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(tags, ", "))
	}
	if notes != "" {
		fmt.Printf("  Note: %s\n", notes)
	}

	summary, err := tr.Summary(now)
	if err != nil {
		return err
	}
	if summary != nil {
		fmt.Printf("  Today: %.1f%% achievement over %d rated hour%s\n",
			summary.AchievementPercentage, summary.TotalHoursRated, plural(summary.TotalHoursRated))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func init() {
	rateCmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	rateCmd.Flags().StringP("note", "n", "", "Note for the hour")
}
