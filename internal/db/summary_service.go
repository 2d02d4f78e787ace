package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prodviz/prodviz/internal/models"
)

// UpsertSummary inserts or replaces the summary for its date. All derived
// fields are overwritten; journal_entry and created_at are left untouched
// on conflict, since the journal is authored by the user and created_at
// marks first creation.
func (s *Store) UpsertSummary(sum *models.DailySummary) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_hours_rated", "achievement_percentage", "average_rating",
			"peak_hours", "low_hours", "top_tags", "insights", "wins", "challenges",
		}),
	}).Create(sum).Error
	return storageErr("upsert summary", err)
}

// GetSummary returns the summary for a date key (YYYY-MM-DD), or nil when
// no summary has been computed yet. Absence is not an error and is never
// conflated with a zero-achievement day.
func (s *Store) GetSummary(date string) (*models.DailySummary, error) {
	var sum models.DailySummary
	err := s.db.First(&sum, "date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get summary", err)
	}
	return &sum, nil
}

// SaveJournalEntry sets the user-authored journal text on an existing
// summary. Summary rows are derived from ratings, so journaling a date
// that has none is rejected.
func (s *Store) SaveJournalEntry(date, entry string) error {
	res := s.db.Model(&models.DailySummary{}).Where("date = ?", date).Update("journal_entry", entry)
	if res.Error != nil {
		return storageErr("save journal entry", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("no summary for %s yet, rate at least one hour first", date)
	}
	return nil
}

// GetSummariesBetween returns summaries for date keys in [from, to],
// oldest first
func (s *Store) GetSummariesBetween(from, to string) ([]models.DailySummary, error) {
	var summaries []models.DailySummary
	err := s.db.
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, storageErr("get summaries", err)
	}
	return summaries, nil
}

// GetRecentSummaries returns the newest summaries, most recent first
func (s *Store) GetRecentSummaries(limit int) ([]models.DailySummary, error) {
	var summaries []models.DailySummary
	err := s.db.Order("date DESC").Limit(limit).Find(&summaries).Error
	if err != nil {
		return nil, storageErr("get recent summaries", err)
	}
	return summaries, nil
}
