package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/prodviz/prodviz/internal/models"
)

// ToCSV writes the summaries to path as CSV, one row per day. List-valued
// fields are joined with semicolons so the row stays a single cell per
// column.
func ToCSV(summaries []models.DailySummary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"Date", "Hours Rated", "Achievement %", "Level", "Avg Rating",
		"Peak Hours", "Low Hours", "Top Tags", "Insights", "Wins", "Challenges", "Journal",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range summaries {
		row := []string{
			s.Date,
			fmt.Sprintf("%d", s.TotalHoursRated),
			fmt.Sprintf("%.1f", s.AchievementPercentage),
			s.ProductivityLevel(),
			fmt.Sprintf("%.1f", s.AverageRating),
			joinInts(s.PeakHours),
			joinInts(s.LowHours),
			strings.Join(s.TopTags, ";"),
			strings.Join(s.Insights, ";"),
			strings.Join(s.Wins, ";"),
			strings.Join(s.Challenges, ";"),
			s.JournalEntry,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func joinInts(hours []int) string {
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%d", h)
	}
	return strings.Join(parts, ";")
}
