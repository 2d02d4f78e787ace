package parser

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a date argument
// Supported formats:
// - "today", "yesterday"
// - yyyy-mm-dd (e.g., "2025-03-10")
// - dd/mm/yyyy (e.g., "10/03/2025")
func ParseDate(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if parsed, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return parsed, nil
	}
	if parsed, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("invalid date '%s'. Use: today, yesterday, yyyy-mm-dd or dd/mm/yyyy", input)
}
