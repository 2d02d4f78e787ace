package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prodviz/prodviz/internal/models"
)

type jsonExport struct {
	ExportedAt string    `json:"exported_at"`
	Count      int       `json:"count"`
	Days       []jsonDay `json:"days"`
}

type jsonDay struct {
	Date                  string   `json:"date"`
	TotalHoursRated       int      `json:"total_hours_rated"`
	AchievementPercentage float64  `json:"achievement_percentage"`
	ProductivityLevel     string   `json:"productivity_level"`
	AverageRating         float64  `json:"average_rating"`
	PeakHours             []int    `json:"peak_hours,omitempty"`
	LowHours              []int    `json:"low_hours,omitempty"`
	TopTags               []string `json:"top_tags,omitempty"`
	Insights              []string `json:"insights,omitempty"`
	Wins                  []string `json:"wins,omitempty"`
	Challenges            []string `json:"challenges,omitempty"`
	JournalEntry          string   `json:"journal_entry,omitempty"`
}

// ToJSON writes the summaries to path as a pretty-printed JSON document
func ToJSON(summaries []models.DailySummary, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(summaries),
	}

	for _, s := range summaries {
		export.Days = append(export.Days, jsonDay{
			Date:                  s.Date,
			TotalHoursRated:       s.TotalHoursRated,
			AchievementPercentage: s.AchievementPercentage,
			ProductivityLevel:     s.ProductivityLevel(),
			AverageRating:         s.AverageRating,
			PeakHours:             s.PeakHours,
			LowHours:              s.LowHours,
			TopTags:               s.TopTags,
			Insights:              s.Insights,
			Wins:                  s.Wins,
			Challenges:            s.Challenges,
			JournalEntry:          s.JournalEntry,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
