package models

import "time"

// DailySummary is the derived aggregate of one date's hour records.
// It is recomputed and replaced on every rating write; only JournalEntry
// is authored by the user and survives recomputes.
type DailySummary struct {
	Date      string    `gorm:"primarykey" json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`

	TotalHoursRated       int      `json:"total_hours_rated"`
	AchievementPercentage float64  `json:"achievement_percentage"` // 0-100
	AverageRating         float64  `json:"average_rating"`
	PeakHours             []int    `gorm:"serializer:json" json:"peak_hours"` // rating >= 4
	LowHours              []int    `gorm:"serializer:json" json:"low_hours"`  // rating <= 2
	TopTags               []string `gorm:"serializer:json" json:"top_tags"`
	Insights              []string `gorm:"serializer:json" json:"insights"`
	Wins                  []string `gorm:"serializer:json" json:"wins"`
	Challenges            []string `gorm:"serializer:json" json:"challenges"`
	JournalEntry          string   `json:"journal_entry"`
}

// ProductivityLevel maps the achievement percentage to a display label
func (s DailySummary) ProductivityLevel() string {
	switch {
	case s.AchievementPercentage >= 80:
		return "Excellent"
	case s.AchievementPercentage >= 60:
		return "Good"
	case s.AchievementPercentage >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
