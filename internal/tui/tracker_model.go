package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prodviz/prodviz/internal/insights"
	"github.com/prodviz/prodviz/internal/models"
	"github.com/prodviz/prodviz/internal/parser"
	"github.com/prodviz/prodviz/internal/tracker"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusGrid Focus = iota
	FocusTags
	FocusNotes
)

// TrackerModel is the TUI model for the interactive day tracker
type TrackerModel struct {
	tracker *tracker.Tracker
	events  chan tracker.Event

	date    time.Time
	records map[int]models.HourRecord
	summary *models.DailySummary

	selectedHour int
	focus        Focus

	tagsInput      textinput.Model
	notesInput     textinput.Model
	achievementBar progress.Model

	width  int
	height int
	status string
	err    error
}

type eventMsg tracker.Event

type savedMsg struct {
	err error
}

// NewTrackerModel loads today's data and subscribes to rating writes
func NewTrackerModel(tr *tracker.Tracker) (TrackerModel, error) {
	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	records, err := tr.HourRecords(date)
	if err != nil {
		return TrackerModel{}, err
	}
	summary, err := tr.Summary(date)
	if err != nil {
		return TrackerModel{}, err
	}

	byHour := make(map[int]models.HourRecord, len(records))
	for _, rec := range records {
		byHour[rec.Hour] = rec
	}

	tagsInput := textinput.New()
	tagsInput.Placeholder = "work, focus"
	tagsInput.CharLimit = 100

	notesInput := textinput.New()
	notesInput.Placeholder = "what happened this hour?"
	notesInput.CharLimit = 200

	return TrackerModel{
		tracker:        tr,
		events:         tr.Subscribe(),
		date:           date,
		records:        byHour,
		summary:        summary,
		selectedHour:   now.Hour(),
		focus:          FocusGrid,
		tagsInput:      tagsInput,
		notesInput:     notesInput,
		achievementBar: progress.New(progress.WithDefaultGradient()),
	}, nil
}

// Init starts listening for rating writes
func (m TrackerModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(ch chan tracker.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(ev)
	}
}

// Update handles messages
func (m TrackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.achievementBar.Width = 30
		return m, nil

	case eventMsg:
		// Only today's writes matter; this process is usually the writer,
		// but the stream keeps the panel fresh either way
		if msg.Date == models.DateKey(m.date) {
			if msg.Record != nil {
				m.records[msg.Record.Hour] = *msg.Record
			}
			m.summary = msg.Summary
		}
		return m, waitForEvent(m.events)

	case savedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			m.status = "saved"
		}
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case FocusTags, FocusNotes:
			return m.handleInputKeys(msg)
		default:
			return m.handleGridKeys(msg)
		}
	}

	return m, nil
}

func (m TrackerModel) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.selectedHour > 0 {
			m.selectedHour--
		}
		return m, nil

	case "down", "j":
		if m.selectedHour < 23 {
			m.selectedHour++
		}
		return m, nil

	case "g":
		m.selectedHour = time.Now().Hour()
		return m, nil

	case "1", "2", "3", "4", "5":
		rating, _ := strconv.Atoi(msg.String())
		rec := m.records[m.selectedHour]
		m.status = ""
		return m, m.saveRating(m.selectedHour, rating, rec.Tags, rec.Notes)

	case "t":
		rec, ok := m.records[m.selectedHour]
		if !ok || rec.Rating == nil {
			m.status = "rate the hour first (press 1-5)"
			return m, nil
		}
		m.focus = FocusTags
		m.tagsInput.SetValue(strings.Join(rec.Tags, ", "))
		m.tagsInput.Focus()
		return m, textinput.Blink

	case "n":
		rec, ok := m.records[m.selectedHour]
		if !ok || rec.Rating == nil {
			m.status = "rate the hour first (press 1-5)"
			return m, nil
		}
		m.focus = FocusNotes
		m.notesInput.SetValue(rec.Notes)
		m.notesInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m TrackerModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = FocusGrid
		m.tagsInput.Blur()
		m.notesInput.Blur()
		return m, nil

	case "enter":
		rec := m.records[m.selectedHour]
		if rec.Rating == nil {
			m.focus = FocusGrid
			m.status = "rate the hour first (press 1-5)"
			return m, nil
		}
		tags, notes := rec.Tags, rec.Notes
		if m.focus == FocusTags {
			tags = parser.SplitTags(m.tagsInput.Value())
			m.tagsInput.Blur()
		} else {
			notes = strings.TrimSpace(m.notesInput.Value())
			m.notesInput.Blur()
		}
		m.focus = FocusGrid
		m.status = ""
		return m, m.saveRating(m.selectedHour, *rec.Rating, tags, notes)
	}

	var cmd tea.Cmd
	if m.focus == FocusTags {
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	} else {
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	return m, cmd
}

// saveRating persists a full-record write off the UI goroutine; the
// event stream delivers the refreshed summary
func (m TrackerModel) saveRating(hour, rating int, tags []string, notes string) tea.Cmd {
	tr, date := m.tracker, m.date
	return func() tea.Msg {
		return savedMsg{err: tr.SaveHourRating(date, hour, rating, tags, notes)}
	}
}

// View renders the hour grid next to the summary panel
func (m TrackerModel) View() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Render("prodviz — " + m.date.Format("Monday, Jan 2"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewGrid(), "  ", m.viewSummary())

	var footer string
	switch m.focus {
	case FocusTags:
		footer = "tags: " + m.tagsInput.View()
	case FocusNotes:
		footer = "note: " + m.notesInput.View()
	default:
		footer = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Render("↑/↓: hour  1-5: rate  t: tags  n: note  g: now  q: quit")
	}

	var status string
	if m.status != "" {
		statusColor := ColorSuccess
		if strings.HasPrefix(m.status, "save failed") || strings.HasPrefix(m.status, "rate the hour") {
			statusColor = ColorError
		}
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", footer, status)
}

func (m TrackerModel) viewGrid() string {
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	hourStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var rows []string
	for hour := 0; hour < 24; hour++ {
		cursor := "  "
		if hour == m.selectedHour {
			cursor = "▸ "
		}

		label := fmt.Sprintf("%-5s", insights.FormatHour(hour))
		stars := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorRatingUnrated)).
			Render("·····")
		tags := ""

		if rec, ok := m.records[hour]; ok && rec.Rating != nil {
			stars = lipgloss.NewStyle().
				Foreground(lipgloss.Color(RatingColor(*rec.Rating))).
				Render(strings.Repeat("★", *rec.Rating) + strings.Repeat("☆", 5-*rec.Rating))
			if len(rec.Tags) > 0 {
				tags = tagStyle.Render(" #" + strings.Join(rec.Tags, " #"))
			}
		}

		row := cursor + hourStyle.Render(label) + " " + stars + tags
		if hour == m.selectedHour {
			row = selectedStyle.Render(cursor+label) + " " + stars + tags
		}
		rows = append(rows, row)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

func (m TrackerModel) viewSummary() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	var lines []string
	if m.summary == nil {
		lines = append(lines,
			labelStyle.Render("No hours rated yet."),
			"",
			labelStyle.Render("Select an hour and press 1-5"),
			labelStyle.Render("to rate it."),
		)
	} else {
		s := m.summary
		lines = append(lines,
			valueStyle.Bold(true).Render(fmt.Sprintf("%.1f%% — %s", s.AchievementPercentage, s.ProductivityLevel())),
			m.achievementBar.ViewAs(s.AchievementPercentage/100),
			"",
			labelStyle.Render("Rated hours: ")+valueStyle.Render(fmt.Sprintf("%d", s.TotalHoursRated)),
			labelStyle.Render("Average:     ")+valueStyle.Render(fmt.Sprintf("%.1f★", s.AverageRating)),
		)
		if len(s.PeakHours) > 0 {
			lines = append(lines, labelStyle.Render("Peak:        ")+valueStyle.Render(insights.FormatHourRanges(s.PeakHours)))
		}
		if len(s.LowHours) > 0 {
			lines = append(lines, labelStyle.Render("Low:         ")+valueStyle.Render(insights.FormatHourRanges(s.LowHours)))
		}
		if len(s.TopTags) > 0 {
			lines = append(lines, labelStyle.Render("Top tags:    ")+valueStyle.Render(strings.Join(s.TopTags, ", ")))
		}
		if len(s.Insights) > 0 {
			lines = append(lines, "", labelStyle.Render("Insights:"))
			for _, insight := range s.Insights {
				lines = append(lines, valueStyle.Render(wrapText("• "+insight, 40)))
			}
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 1).
		Width(44).
		Render(strings.Join(lines, "\n"))
}

// wrapText does simple word wrapping at the given width
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = "  " + word
		} else {
			line += " " + word
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
