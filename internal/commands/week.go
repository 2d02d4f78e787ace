package commands

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/prodviz/prodviz/internal/models"
	"github.com/prodviz/prodviz/internal/tracker"
	"github.com/prodviz/prodviz/internal/tui"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last 7 days",
	Long:  "Show achievement for the last 7 days as a chart, with the trend against the week before.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(runWeek)
	},
}

func runWeek(tr *tracker.Tracker) error {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -6)

	summaries, err := tr.SummariesBetween(from, today)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No summaries in the last 7 days. Rate an hour with 'prodviz rate' to get started.")
		return nil
	}

	byDate := make(map[string]models.DailySummary, len(summaries))
	for _, s := range summaries {
		byDate[s.Date] = s
	}

	chart := barchart.New(56, 12)
	var bars []barchart.BarData
	for d := from; !d.After(today); d = d.AddDate(0, 0, 1) {
		value, style := 0.0, lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorDisabledText))
		if s, ok := byDate[d.Format("2006-01-02")]; ok {
			value = s.AchievementPercentage
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(tui.RatingColor(ratingBand(s.AverageRating))))
		}
		bars = append(bars, barchart.BarData{
			Label:  d.Format("Mon"),
			Values: []barchart.BarValue{{Name: "achievement", Value: value, Style: style}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()

	fmt.Printf("Achievement %% — %s to %s\n\n", from.Format("Jan 02"), today.Format("Jan 02"))
	fmt.Println(chart.View())

	weekTotal := 0.0
	for _, s := range summaries {
		weekTotal += s.AchievementPercentage
	}
	fmt.Printf("\n%d day%s tracked, %.1f%% average achievement\n",
		len(summaries), plural(len(summaries)), weekTotal/float64(len(summaries)))

	if trend, ok, err := tr.WeekTrend(today); err != nil {
		return err
	} else if ok {
		fmt.Printf("Trend vs previous week: %s\n", trend)
	}
	return nil
}

// ratingBand maps an average rating to a representative star count for
// color selection
func ratingBand(avg float64) int {
	switch {
	case avg >= 3.5:
		return 5
	case avg >= 2.5:
		return 3
	default:
		return 1
	}
}
