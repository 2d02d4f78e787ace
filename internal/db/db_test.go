package db

import (
	"errors"
	"testing"
	"time"

	"github.com/prodviz/prodviz/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func hourRecord(date time.Time, hour, rating int, tags []string, notes string) *models.HourRecord {
	now := time.Now()
	r := rating
	return &models.HourRecord{
		ID:        models.HourRecordID(date, hour),
		DateTime:  time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location()),
		Hour:      hour,
		Rating:    &r,
		Tags:      tags,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUpsertHourRecordReplacesNotDuplicates(t *testing.T) {
	s := newTestStore(t)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	if err := s.UpsertHourRecord(hourRecord(date, 9, 3, []string{"work"}, "")); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertHourRecord(hourRecord(date, 9, 5, []string{"deep"}, "flow")); err != nil {
		t.Fatal(err)
	}

	records, err := s.GetHourRecordsForDate(date)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one record after double save, got %d", len(records))
	}
	rec := records[0]
	if rec.Rating == nil || *rec.Rating != 5 {
		t.Fatalf("second save should win: %+v", rec)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "deep" || rec.Notes != "flow" {
		t.Fatalf("record fields not replaced: %+v", rec)
	}
}

func TestGetHourRecordAbsent(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.GetHourRecord("2025-03-10-09")
	if err != nil {
		t.Fatal(err)
	}
	if rec != nil {
		t.Fatalf("expected nil for missing record, got %+v", rec)
	}
}

func TestGetRatedHoursForDateFiltersAndOrders(t *testing.T) {
	s := newTestStore(t)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	s.UpsertHourRecord(hourRecord(date, 14, 2, nil, ""))
	s.UpsertHourRecord(hourRecord(date, 9, 5, nil, ""))

	// An unrated record on the same date
	unrated := hourRecord(date, 11, 1, nil, "")
	unrated.Rating = nil
	s.UpsertHourRecord(unrated)

	// A record on another date must not leak in
	other := date.AddDate(0, 0, 1)
	s.UpsertHourRecord(hourRecord(other, 9, 4, nil, ""))

	rated, err := s.GetRatedHoursForDate(date)
	if err != nil {
		t.Fatal(err)
	}
	if len(rated) != 2 {
		t.Fatalf("expected 2 rated records, got %d", len(rated))
	}
	if rated[0].Hour != 9 || rated[1].Hour != 14 {
		t.Fatalf("expected chronological order, got %d then %d", rated[0].Hour, rated[1].Hour)
	}

	all, err := s.GetHourRecordsForDate(date)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records incl. unrated, got %d", len(all))
	}
}

func TestUpsertSummaryPreservesJournalEntry(t *testing.T) {
	s := newTestStore(t)

	sum := &models.DailySummary{
		Date:                  "2025-03-10",
		TotalHoursRated:       2,
		AchievementPercentage: 75.0,
		PeakHours:             []int{9},
		CreatedAt:             time.Now(),
	}
	if err := s.UpsertSummary(sum); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveJournalEntry("2025-03-10", "good day"); err != nil {
		t.Fatal(err)
	}

	// Recompute-style replace with fresh derived values
	replacement := &models.DailySummary{
		Date:                  "2025-03-10",
		TotalHoursRated:       3,
		AchievementPercentage: 80.0,
		PeakHours:             []int{9, 10},
		CreatedAt:             time.Now().Add(time.Hour),
	}
	if err := s.UpsertSummary(replacement); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetSummary("2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("summary missing after upsert")
	}
	if got.TotalHoursRated != 3 || got.AchievementPercentage != 80.0 {
		t.Fatalf("derived fields not replaced: %+v", got)
	}
	if got.JournalEntry != "good day" {
		t.Fatalf("journal entry lost on replace: %q", got.JournalEntry)
	}
}

func TestGetSummaryAbsentIsNil(t *testing.T) {
	s := newTestStore(t)
	got, err := s.GetSummary("2025-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for uncomputed date, got %+v", got)
	}
}

func TestSaveJournalEntryWithoutSummary(t *testing.T) {
	s := newTestStore(t)
	err := s.SaveJournalEntry("2025-01-01", "text")
	if err == nil {
		t.Fatal("expected error for journaling a date with no summary")
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		t.Fatalf("missing summary is a validation problem, not a storage failure: %v", err)
	}
}

func TestGetSummariesBetween(t *testing.T) {
	s := newTestStore(t)
	for _, d := range []string{"2025-03-08", "2025-03-09", "2025-03-10", "2025-03-12"} {
		s.UpsertSummary(&models.DailySummary{Date: d, AchievementPercentage: 50, CreatedAt: time.Now()})
	}

	got, err := s.GetSummariesBetween("2025-03-09", "2025-03-11")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].Date != "2025-03-09" || got[1].Date != "2025-03-10" {
		t.Fatalf("expected ascending order, got %s then %s", got[0].Date, got[1].Date)
	}
}

func TestGetRecentSummaries(t *testing.T) {
	s := newTestStore(t)
	for _, d := range []string{"2025-03-08", "2025-03-09", "2025-03-10"} {
		s.UpsertSummary(&models.DailySummary{Date: d, CreatedAt: time.Now()})
	}
	got, err := s.GetRecentSummaries(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Date != "2025-03-10" {
		t.Fatalf("expected newest first, got %+v", got)
	}
}
