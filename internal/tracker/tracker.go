package tracker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prodviz/prodviz/internal/db"
	"github.com/prodviz/prodviz/internal/insights"
	"github.com/prodviz/prodviz/internal/models"
	"github.com/prodviz/prodviz/internal/scoring"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5 stars")
	ErrInvalidHour   = errors.New("hour must be between 0 and 23")
)

const maxWinsAndChallenges = 3

// Tracker owns the rating write path and the daily summary lifecycle.
// It is the only writer of summaries; UI layers read them back, either
// directly or through the event stream.
type Tracker struct {
	store *db.Store
	clock func() time.Time

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex

	subMu sync.Mutex
	subs  map[chan Event]struct{}
}

// Event is published after every successful rating write
type Event struct {
	Date    string
	Record  *models.HourRecord
	Summary *models.DailySummary
}

// New creates a tracker on top of an already-opened store
func New(store *db.Store) *Tracker {
	return &Tracker{
		store:     store,
		clock:     time.Now,
		dateLocks: make(map[string]*sync.Mutex),
		subs:      make(map[chan Event]struct{}),
	}
}

// SaveHourRating writes the full record for (date, hour) and recomputes
// that date's summary. The record is replaced wholesale; there is no
// partial-field update path. Concurrent writes for the same date
// serialize on a per-date lock so the read-recompute-write sequence
// never loses updates.
func (t *Tracker) SaveHourRating(date time.Time, hour, rating int, tags []string, notes string) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, hour)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	lock := t.lockForDate(models.DateKey(date))
	lock.Lock()
	defer lock.Unlock()

	now := t.clock()
	rec := &models.HourRecord{
		ID:        models.HourRecordID(date, hour),
		DateTime:  time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location()),
		Hour:      hour,
		Rating:    &rating,
		Tags:      tags,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.store.UpsertHourRecord(rec); err != nil {
		return err
	}

	if err := t.recompute(date); err != nil {
		return err
	}

	summary, err := t.store.GetSummary(models.DateKey(date))
	if err != nil {
		return err
	}
	t.publish(Event{Date: models.DateKey(date), Record: rec, Summary: summary})
	return nil
}

// SaveCurrentHourRating rates the hour that is happening right now
func (t *Tracker) SaveCurrentHourRating(rating int, tags []string, notes string) error {
	now := t.clock()
	return t.SaveHourRating(now, now.Hour(), rating, tags, notes)
}

// RecomputeSummary rebuilds the summary for a date from its hour records.
// A date with zero rated hours is a documented no-op: nothing is written
// and any prior summary stays as it was.
func (t *Tracker) RecomputeSummary(date time.Time) error {
	lock := t.lockForDate(models.DateKey(date))
	lock.Lock()
	defer lock.Unlock()
	return t.recompute(date)
}

func (t *Tracker) recompute(date time.Time) error {
	records, err := t.store.GetRatedHoursForDate(date)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	achievement := scoring.AchievementPercentage(records)

	ratingSum := 0
	var peakHours, lowHours []int
	var wins, challenges []string
	for _, rec := range records {
		rating := *rec.Rating
		ratingSum += rating
		if rating >= 4 {
			peakHours = append(peakHours, rec.Hour)
			if note := strings.TrimSpace(rec.Notes); note != "" && len(wins) < maxWinsAndChallenges {
				wins = append(wins, rec.Notes)
			}
		}
		if rating <= 2 {
			lowHours = append(lowHours, rec.Hour)
			if note := strings.TrimSpace(rec.Notes); note != "" && len(challenges) < maxWinsAndChallenges {
				challenges = append(challenges, rec.Notes)
			}
		}
	}

	summary := &models.DailySummary{
		Date:                  models.DateKey(date),
		TotalHoursRated:       len(records),
		AchievementPercentage: achievement,
		AverageRating:         float64(ratingSum) / float64(len(records)),
		PeakHours:             peakHours,
		LowHours:              lowHours,
		TopTags:               topTags(records),
		Insights:              insights.GenerateDaily(records, achievement, peakHours, lowHours),
		Wins:                  wins,
		Challenges:            challenges,
		CreatedAt:             t.clock(),
	}
	return t.store.UpsertSummary(summary)
}

// topTags ranks tags across rated records by frequency, stable on ties
// (first-seen order), and keeps the top 3
func topTags(records []models.HourRecord) []string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		for _, tag := range rec.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	return order
}

// Summary returns the computed summary for a date, or nil when none exists
func (t *Tracker) Summary(date time.Time) (*models.DailySummary, error) {
	return t.store.GetSummary(models.DateKey(date))
}

// SummariesBetween returns the summaries for dates in [from, to], oldest first
func (t *Tracker) SummariesBetween(from, to time.Time) ([]models.DailySummary, error) {
	return t.store.GetSummariesBetween(models.DateKey(from), models.DateKey(to))
}

// HourRecords returns all of a date's hour records, rated or not
func (t *Tracker) HourRecords(date time.Time) ([]models.HourRecord, error) {
	return t.store.GetHourRecordsForDate(date)
}

// SaveJournalEntry attaches the user's journal text to a date's summary
func (t *Tracker) SaveJournalEntry(date time.Time, entry string) error {
	return t.store.SaveJournalEntry(models.DateKey(date), entry)
}

func (t *Tracker) lockForDate(date string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	lock, ok := t.dateLocks[date]
	if !ok {
		lock = &sync.Mutex{}
		t.dateLocks[date] = lock
	}
	return lock
}
