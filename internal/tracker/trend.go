package tracker

import (
	"time"

	"github.com/prodviz/prodviz/internal/models"
	"github.com/prodviz/prodviz/internal/scoring"
)

// DayTrend classifies a date's achievement against the previous day.
// The second return value is false when either day has no summary.
func (t *Tracker) DayTrend(date time.Time) (scoring.Trend, bool, error) {
	current, err := t.store.GetSummary(models.DateKey(date))
	if err != nil {
		return scoring.TrendStable, false, err
	}
	previous, err := t.store.GetSummary(models.DateKey(date.AddDate(0, 0, -1)))
	if err != nil {
		return scoring.TrendStable, false, err
	}
	if current == nil || previous == nil {
		return scoring.TrendStable, false, nil
	}
	return scoring.CalculateTrend(current.AchievementPercentage, previous.AchievementPercentage), true, nil
}

// WeekTrend compares the average achievement of the 7 days ending at date
// with the 7 days before that. The second return value is false when
// either window has no summaries.
func (t *Tracker) WeekTrend(date time.Time) (scoring.Trend, bool, error) {
	currentAvg, currentOK, err := t.averageAchievement(date.AddDate(0, 0, -6), date)
	if err != nil {
		return scoring.TrendStable, false, err
	}
	previousAvg, previousOK, err := t.averageAchievement(date.AddDate(0, 0, -13), date.AddDate(0, 0, -7))
	if err != nil {
		return scoring.TrendStable, false, err
	}
	if !currentOK || !previousOK {
		return scoring.TrendStable, false, nil
	}
	return scoring.CalculateTrend(currentAvg, previousAvg), true, nil
}

func (t *Tracker) averageAchievement(from, to time.Time) (float64, bool, error) {
	summaries, err := t.store.GetSummariesBetween(models.DateKey(from), models.DateKey(to))
	if err != nil {
		return 0, false, err
	}
	if len(summaries) == 0 {
		return 0, false, nil
	}
	sum := 0.0
	for _, s := range summaries {
		sum += s.AchievementPercentage
	}
	return sum / float64(len(summaries)), true, nil
}
