package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/prodviz/prodviz/internal/models"
)

const maxInsights = 3

// GenerateDaily turns a day's rated hours plus derived stats into at most
// three short natural-language insights. Candidates are produced in a fixed
// priority order (achievement, peak hours, low hours, patterns, tags) and
// the first three win; the achievement insight is always present, so a day
// with at least one rated hour always yields at least one insight.
func GenerateDaily(records []models.HourRecord, achievementPercentage float64, peakHours, lowHours []int) []string {
	insights := []string{achievementInsight(achievementPercentage)}

	if len(peakHours) > 0 {
		insights = append(insights, peakHoursInsight(peakHours))
	}
	if len(lowHours) > 0 {
		insights = append(insights, lowHoursInsight(lowHours))
	}

	insights = append(insights, patternInsights(records)...)
	insights = append(insights, tagInsights(records)...)

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func achievementInsight(percentage float64) string {
	rounded := int(math.Round(percentage))
	switch {
	case percentage >= 80:
		return fmt.Sprintf("Excellent day! You achieved %d%% productivity. Keep up the outstanding work! 🌟", rounded)
	case percentage >= 60:
		return fmt.Sprintf("Good progress today with %d%% achievement. You're on the right track! 💪", rounded)
	case percentage >= 40:
		return fmt.Sprintf("You achieved %d%% today. Try to maintain focus during your peak hours tomorrow.", rounded)
	default:
		return fmt.Sprintf("Achievement at %d%%. Consider breaking tasks into smaller chunks for better momentum.", rounded)
	}
}

func peakHoursInsight(peakHours []int) string {
	return fmt.Sprintf("Your peak performance hours: %s. Schedule important tasks during these times! ⚡", FormatHourRanges(peakHours))
}

// lowHourSuggestions maps hour-of-day bands to contextual advice. The first
// low hour of the day picks the band.
var lowHourSuggestions = []struct {
	from, to   int
	suggestion string
}{
	{11, 13, "post-lunch dip → try a 10-min walk or light stretching"},
	{14, 16, "afternoon slump → consider a healthy snack or brief meditation"},
	{20, 23, "evening fatigue → wind down with lighter tasks or planning"},
	{0, 6, "late night hours → prioritize sleep for better next-day performance"},
}

func lowHoursInsight(lowHours []int) string {
	first := lowHours[0]
	suggestion := "energy dip → try changing your environment or task type"
	for _, band := range lowHourSuggestions {
		if first >= band.from && first <= band.to {
			suggestion = band.suggestion
			break
		}
	}
	return fmt.Sprintf("Low ratings around %s suggest %s", FormatHour(first), suggestion)
}

func patternInsights(records []models.HourRecord) []string {
	var insights []string

	// Consistent morning performance
	var morningRatings []int
	for _, rec := range records {
		if rec.Rating != nil && rec.Hour >= 6 && rec.Hour <= 11 {
			morningRatings = append(morningRatings, *rec.Rating)
		}
	}
	if len(morningRatings) >= 3 {
		if avg := mean(morningRatings); avg >= 4.0 {
			insights = append(insights, fmt.Sprintf("Strong morning performance (avg %.1f★). You're a morning person! 🌅", avg))
		}
	}

	// Post-lunch dip
	var postLunchRatings []int
	for _, rec := range records {
		if rec.Rating != nil && rec.Hour >= 13 && rec.Hour <= 14 {
			postLunchRatings = append(postLunchRatings, *rec.Rating)
		}
	}
	if len(postLunchRatings) > 0 && mean(postLunchRatings) <= 2.5 {
		insights = append(insights, "Post-lunch productivity dip detected. Try lighter meals or a quick walk 🚶‍♂️")
	}

	// Consistency across the whole day
	var ratings []int
	for _, rec := range records {
		if rec.Rating != nil {
			ratings = append(ratings, *rec.Rating)
		}
	}
	if len(ratings) >= 5 && variance(ratings) < 0.5 {
		insights = append(insights, "Very consistent performance today! Stability is a superpower 💫")
	}

	return insights
}

func tagInsights(records []models.HourRecord) []string {
	// Group ratings by tag, keeping first-seen order so ties resolve
	// deterministically to the tag encountered first.
	ratingsByTag := make(map[string][]int)
	var tagOrder []string
	for _, rec := range records {
		if rec.Rating == nil {
			continue
		}
		for _, tag := range rec.Tags {
			if _, seen := ratingsByTag[tag]; !seen {
				tagOrder = append(tagOrder, tag)
			}
			ratingsByTag[tag] = append(ratingsByTag[tag], *rec.Rating)
		}
	}
	if len(tagOrder) == 0 {
		return nil
	}

	bestTag, worstTag := tagOrder[0], tagOrder[0]
	bestAvg, worstAvg := mean(ratingsByTag[bestTag]), mean(ratingsByTag[worstTag])
	for _, tag := range tagOrder[1:] {
		avg := mean(ratingsByTag[tag])
		if avg > bestAvg {
			bestTag, bestAvg = tag, avg
		}
		if avg < worstAvg {
			worstTag, worstAvg = tag, avg
		}
	}

	var insights []string
	if bestAvg >= 4.0 {
		insights = append(insights, fmt.Sprintf("%s activities drove your best performance (%.1f★ avg)", bestTag, bestAvg))
	}
	if worstAvg <= 2.5 {
		insights = append(insights, fmt.Sprintf("%s tasks were challenging today. Consider different approaches or timing", worstTag))
	}
	return insights
}

// FormatHourRanges collapses consecutive hours into compact ranges:
// [9,10,11,14] renders as "9AM-11AM, 2PM".
func FormatHourRanges(hours []int) string {
	if len(hours) == 0 {
		return ""
	}

	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	var ranges []string
	start, end := sorted[0], sorted[0]
	flush := func() {
		if start == end {
			ranges = append(ranges, FormatHour(start))
		} else {
			ranges = append(ranges, FormatHour(start)+"-"+FormatHour(end))
		}
	}
	for _, h := range sorted[1:] {
		if h == end+1 {
			end = h
			continue
		}
		flush()
		start, end = h, h
	}
	flush()

	return strings.Join(ranges, ", ")
}

// FormatHour renders an hour-of-day on a 12-hour clock: 0 -> 12AM, 13 -> 1PM
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12AM"
	case hour < 12:
		return fmt.Sprintf("%dAM", hour)
	case hour == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", hour-12)
	}
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// variance is the population variance of the ratings
func variance(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	avg := mean(values)
	sum := 0.0
	for _, v := range values {
		d := float64(v) - avg
		sum += d * d
	}
	return sum / float64(len(values))
}
