package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prodviz/prodviz/internal/models"
)

func sampleSummaries() []models.DailySummary {
	return []models.DailySummary{
		{
			Date:                  "2025-03-10",
			TotalHoursRated:       8,
			AchievementPercentage: 81.3,
			AverageRating:         4.3,
			PeakHours:             []int{9, 10, 11},
			LowHours:              []int{14},
			TopTags:               []string{"work", "focus"},
			Insights:              []string{"Excellent day! You achieved 81% productivity. Keep up the outstanding work! 🌟"},
			Wins:                  []string{"shipped the release"},
			JournalEntry:          "long but satisfying day",
			CreatedAt:             time.Now(),
		},
		{
			Date:                  "2025-03-11",
			TotalHoursRated:       2,
			AchievementPercentage: 25.0,
			AverageRating:         2.0,
			LowHours:              []int{13, 14},
			Challenges:            []string{"meetings ran over"},
			CreatedAt:             time.Now(),
		},
	}
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.json")
	if err := ToJSON(sampleSummaries(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var parsed struct {
		ExportedAt string `json:"exported_at"`
		Count      int    `json:"count"`
		Days       []struct {
			Date              string  `json:"date"`
			Achievement       float64 `json:"achievement_percentage"`
			ProductivityLevel string  `json:"productivity_level"`
			PeakHours         []int   `json:"peak_hours"`
		} `json:"days"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("exported file is not valid json: %v", err)
	}
	if parsed.Count != 2 || len(parsed.Days) != 2 {
		t.Fatalf("expected 2 days, got count=%d len=%d", parsed.Count, len(parsed.Days))
	}
	if parsed.Days[0].Date != "2025-03-10" || parsed.Days[0].Achievement != 81.3 {
		t.Fatalf("unexpected first day: %+v", parsed.Days[0])
	}
	if parsed.Days[0].ProductivityLevel != "Excellent" || parsed.Days[1].ProductivityLevel != "Needs Improvement" {
		t.Fatalf("productivity levels wrong: %+v", parsed.Days)
	}
	if len(parsed.Days[0].PeakHours) != 3 {
		t.Fatalf("peak hours missing: %+v", parsed.Days[0])
	}
	if parsed.ExportedAt == "" {
		t.Fatal("exported_at should be set")
	}
}

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.csv")
	if err := ToCSV(sampleSummaries(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("exported file is not valid csv: %v", err)
	}
	if len(rows) != 3 { // header + 2 days
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Date" {
		t.Fatalf("missing header row: %v", rows[0])
	}
	if rows[1][0] != "2025-03-10" || rows[1][2] != "81.3" || rows[1][3] != "Excellent" {
		t.Fatalf("unexpected day row: %v", rows[1])
	}
	if rows[1][5] != "9;10;11" {
		t.Fatalf("peak hours not joined: %q", rows[1][5])
	}
	if rows[2][6] != "13;14" {
		t.Fatalf("low hours not joined: %q", rows[2][6])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}
	f, _ := os.Open(path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
