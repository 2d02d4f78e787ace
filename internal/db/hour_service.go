package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/prodviz/prodviz/internal/models"
)

// UpsertHourRecord inserts or fully replaces the record for its id.
// The deterministic id (date+hour) guarantees at most one record per
// (date, hour) pair; created_at survives the replace.
func (s *Store) UpsertHourRecord(rec *models.HourRecord) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date_time", "hour", "rating", "tags", "notes", "updated_at",
		}),
	}).Create(rec).Error
	return storageErr("upsert hour record", err)
}

// GetHourRecord returns the record with the given id, or nil if absent
func (s *Store) GetHourRecord(id string) (*models.HourRecord, error) {
	var rec models.HourRecord
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get hour record", err)
	}
	return &rec, nil
}

// GetHourRecordsForDate returns all records for the calendar date, rated
// or not, ordered by hour
func (s *Store) GetHourRecordsForDate(date time.Time) ([]models.HourRecord, error) {
	start, end := dayBounds(date)
	var records []models.HourRecord
	err := s.db.
		Where("date_time >= ? AND date_time < ?", start, end).
		Order("hour ASC").
		Find(&records).Error
	if err != nil {
		return nil, storageErr("get hour records", err)
	}
	return records, nil
}

// GetRatedHoursForDate returns the date's records that carry a rating,
// ordered by hour
func (s *Store) GetRatedHoursForDate(date time.Time) ([]models.HourRecord, error) {
	start, end := dayBounds(date)
	var records []models.HourRecord
	err := s.db.
		Where("date_time >= ? AND date_time < ? AND rating IS NOT NULL", start, end).
		Order("hour ASC").
		Find(&records).Error
	if err != nil {
		return nil, storageErr("get rated hours", err)
	}
	return records, nil
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
