package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prodviz/prodviz/internal/insights"
	"github.com/prodviz/prodviz/internal/models"
	"github.com/prodviz/prodviz/internal/parser"
	"github.com/prodviz/prodviz/internal/tracker"
)

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show the daily summary",
	Long: `Show the summary for a date: achievement score, peak and low
hours, top tags, insights, wins and challenges.

Examples:
  prodviz day
  prodviz day yesterday
  prodviz day 2025-03-10 --hours`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateArg := ""
		if len(args) > 0 {
			dateArg = args[0]
		}
		date, err := parser.ParseDate(dateArg)
		if err != nil {
			return err
		}
		showHours, _ := cmd.Flags().GetBool("hours")

		return withTracker(func(tr *tracker.Tracker) error {
			return runDay(tr, date, showHours)
		})
	},
}

func runDay(tr *tracker.Tracker, date time.Time, showHours bool) error {
	summary, err := tr.Summary(date)
	if err != nil {
		return err
	}
	if summary == nil {
		fmt.Printf("No summary for %s yet. Rate an hour with 'prodviz rate' to get one.\n", models.DateKey(date))
		return nil
	}

	printSummary(summary)

	if trend, ok, err := tr.DayTrend(date); err != nil {
		return err
	} else if ok {
		fmt.Printf("\n  Trend vs yesterday: %s\n", trend)
	}

	if showHours {
		records, err := tr.HourRecords(date)
		if err != nil {
			return err
		}
		fmt.Println()
		printHourBreakdown(records)
	}
	return nil
}

func printSummary(summary *models.DailySummary) {
	fmt.Printf("%s — %.1f%% achievement (%s)\n", summary.Date, summary.AchievementPercentage, summary.ProductivityLevel())
	fmt.Printf("  Rated hours: %d   Average: %.1f★\n", summary.TotalHoursRated, summary.AverageRating)
	if len(summary.PeakHours) > 0 {
		fmt.Printf("  Peak hours: %s\n", insights.FormatHourRanges(summary.PeakHours))
	}
	if len(summary.LowHours) > 0 {
		fmt.Printf("  Low hours:  %s\n", insights.FormatHourRanges(summary.LowHours))
	}
	if len(summary.TopTags) > 0 {
		fmt.Printf("  Top tags:   %s\n", strings.Join(summary.TopTags, ", "))
	}
	if len(summary.Insights) > 0 {
		fmt.Println("\n  Insights:")
		for _, insight := range summary.Insights {
			fmt.Printf("   • %s\n", insight)
		}
	}
	if len(summary.Wins) > 0 {
		fmt.Println("\n  Wins:")
		for _, win := range summary.Wins {
			fmt.Printf("   ✓ %s\n", win)
		}
	}
	if len(summary.Challenges) > 0 {
		fmt.Println("\n  Challenges:")
		for _, challenge := range summary.Challenges {
			fmt.Printf("   ✗ %s\n", challenge)
		}
	}
	if summary.JournalEntry != "" {
		fmt.Printf("\n  Journal: %s\n", summary.JournalEntry)
	}
}

func printHourBreakdown(records []models.HourRecord) {
	fmt.Printf("  %-6s %-7s %-20s %s\n", "HOUR", "RATING", "TAGS", "NOTE")
	fmt.Println("  " + strings.Repeat("-", 60))
	for _, rec := range records {
		rating := "-"
		if rec.Rating != nil {
			rating = formatStars(*rec.Rating)
		}
		fmt.Printf("  %-6s %-7s %-20s %s\n",
			insights.FormatHour(rec.Hour), rating, strings.Join(rec.Tags, ","), rec.Notes)
	}
}

func formatStars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

func init() {
	dayCmd.Flags().Bool("hours", false, "Also print the hour-by-hour breakdown")
}
