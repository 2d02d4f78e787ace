package models

import (
	"fmt"
	"time"
)

// HourRecord represents one tracked hour of a calendar date
type HourRecord struct {
	ID        string    `gorm:"primarykey" json:"id"` // format: YYYY-MM-DD-HH
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DateTime time.Time `gorm:"not null;index" json:"date_time"`
	Hour     int       `gorm:"not null" json:"hour"` // 0-23, kept for grouping queries
	Rating   *int      `json:"rating"`               // 1-5 stars, nil if not rated
	Tags     []string  `gorm:"serializer:json" json:"tags"`
	Notes    string    `json:"notes"`
}

// IsRated reports whether the hour has been given a rating
func (h HourRecord) IsRated() bool {
	return h.Rating != nil
}

// HourRecordID builds the deterministic record key for a date and hour-of-day.
// At most one record exists per (date, hour); writes with the same key replace.
func HourRecordID(date time.Time, hour int) string {
	return fmt.Sprintf("%s-%02d", date.Format("2006-01-02"), hour)
}

// DateKey formats a date the way summaries are keyed
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
