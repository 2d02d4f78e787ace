package scoring

import (
	"math"

	"github.com/prodviz/prodviz/internal/models"
)

// Trend classifies achievement movement between two periods
type Trend int

const (
	TrendStable Trend = iota
	TrendImproving
	TrendDeclining
)

func (t Trend) String() string {
	switch t {
	case TrendImproving:
		return "improving"
	case TrendDeclining:
		return "declining"
	default:
		return "stable"
	}
}

// AchievementPercentage converts a day's rated hours into a 0-100 score.
//
// The score is normalized against the worst case (all 1s) and best case
// (all 5s) for exactly the hours that were rated, so days with different
// numbers of rated hours stay comparable:
//
//	achievement = ((sum - n*1) / (n*5 - n*1)) * 100
//
// Hours without a rating are ignored. Returns 0 when nothing is rated.
func AchievementPercentage(records []models.HourRecord) float64 {
	sum, n := 0, 0
	for _, rec := range records {
		if rec.Rating == nil {
			continue
		}
		sum += *rec.Rating
		n++
	}
	if n == 0 {
		return 0
	}

	minPossible := n * 1
	maxPossible := n * 5

	achievement := 0.0
	if maxPossible > minPossible {
		achievement = float64(sum-minPossible) / float64(maxPossible-minPossible) * 100
	}
	return clampRound(achievement)
}

// WeightedAchievement computes an achievement score with per-hour-of-day
// weights applied, so conventional working hours can count for more than
// lunch or late night. Hours missing from the weight table weigh 1.0.
// The weighted mean rating (1-5) maps linearly onto 0-100.
func WeightedAchievement(records []models.HourRecord, weights map[int]float64) float64 {
	weightedSum, totalWeight := 0.0, 0.0
	for _, rec := range records {
		if rec.Rating == nil {
			continue
		}
		weight, ok := weights[rec.Hour]
		if !ok {
			weight = 1.0
		}
		weightedSum += float64(*rec.Rating) * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}

	weightedMean := weightedSum / totalWeight
	achievement := (weightedMean - 1) / 4 * 100
	return clampRound(achievement)
}

// DefaultHourWeights returns the standard weight table: higher weight for
// typical productive hours, lower for lunch and night.
func DefaultHourWeights() map[int]float64 {
	return map[int]float64{
		// Early morning (5-8 AM): medium weight
		5: 0.8, 6: 0.9, 7: 1.0, 8: 1.0,
		// Morning (9-11 AM): high weight
		9: 1.2, 10: 1.2, 11: 1.2,
		// Lunch hour: low weight
		12: 0.7,
		// Afternoon (1-5 PM): high weight
		13: 1.1, 14: 1.2, 15: 1.2, 16: 1.1, 17: 1.0,
		// Evening (6-9 PM): medium weight
		18: 0.9, 19: 0.8, 20: 0.8, 21: 0.7,
		// Night (10 PM - 4 AM): low weight
		22: 0.6, 23: 0.5, 0: 0.4, 1: 0.3, 2: 0.3, 3: 0.3, 4: 0.4,
	}
}

// CalculateTrend compares two achievement percentages with a 5-point
// deadband: moves of more than 5 points classify as improving/declining,
// anything within the band is stable.
func CalculateTrend(current, previous float64) Trend {
	diff := current - previous
	switch {
	case diff > 5:
		return TrendImproving
	case diff < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// clampRound clamps to [0,100] and rounds to 1 decimal place
func clampRound(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return math.Round(v*10) / 10
}
