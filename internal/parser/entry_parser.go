package parser

import (
	"regexp"
	"strings"
)

// ParsedEntry represents rating metadata parsed from natural syntax
type ParsedEntry struct {
	Tags  []string
	Notes string
}

// ParseEntry extracts tags and notes from the free text of a rating
// Syntax: "#tag1,tag2 the rest becomes the note" (#tag1 #tag2 also works)
func ParseEntry(input string) ParsedEntry {
	result := ParsedEntry{
		Tags: []string{},
	}

	// Extract tags (#tag1,tag2 or #tag1 #tag2)
	tagRegex := regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	tagMatches := tagRegex.FindAllStringSubmatch(input, -1)
	for _, match := range tagMatches {
		if len(match) > 1 {
			// Split by comma in case of #tag1,tag2
			tagGroup := strings.Split(match[1], ",")
			for _, tag := range tagGroup {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					result.Tags = append(result.Tags, tag)
				}
			}
		}
	}
	// Remove from the note text
	input = tagRegex.ReplaceAllString(input, "")

	// Clean up the note (remove extra spaces)
	result.Notes = strings.Join(strings.Fields(input), " ")

	return result
}

// SplitTags parses a comma-separated tag flag value, dropping empties
// and a leading # on each tag
func SplitTags(input string) []string {
	var tags []string
	for _, tag := range strings.Split(input, ",") {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
