package parser

import (
	"reflect"
	"testing"
	"time"
)

func TestParseEntry(t *testing.T) {
	cases := []struct {
		input string
		tags  []string
		notes string
	}{
		{"#work,focus deep coding session", []string{"work", "focus"}, "deep coding session"},
		{"#work #health gym then emails", []string{"work", "health"}, "gym then emails"},
		{"just a note", []string{}, "just a note"},
		{"#solo", []string{"solo"}, ""},
		{"", []string{}, ""},
	}
	for _, c := range cases {
		got := ParseEntry(c.input)
		if !reflect.DeepEqual(got.Tags, c.tags) {
			t.Errorf("ParseEntry(%q).Tags = %v, want %v", c.input, got.Tags, c.tags)
		}
		if got.Notes != c.notes {
			t.Errorf("ParseEntry(%q).Notes = %q, want %q", c.input, got.Notes, c.notes)
		}
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("#work, focus , ,health")
	want := []string{"work", "focus", "health"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitTags = %v, want %v", got, want)
	}
	if got := SplitTags(""); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestParseDateKeywords(t *testing.T) {
	today, err := ParseDate("today")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	if today.Day() != now.Day() || today.Hour() != 0 {
		t.Fatalf("unexpected today: %v", today)
	}

	yesterday, err := ParseDate("yesterday")
	if err != nil {
		t.Fatal(err)
	}
	if !yesterday.AddDate(0, 0, 1).Equal(today) {
		t.Fatalf("yesterday should be one day before today: %v", yesterday)
	}

	// Empty input defaults to today
	d, err := ParseDate("")
	if err != nil || !d.Equal(today) {
		t.Fatalf("empty input should mean today, got %v (%v)", d, err)
	}
}

func TestParseDateFormats(t *testing.T) {
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	for _, input := range []string{"2025-03-10", "10/03/2025"} {
		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", input, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseDate("next tuesday"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
