package records

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	"github.com/keyquiz/keyquiz/internal/store"
	"github.com/keyquiz/keyquiz/internal/ui/layout"
	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// recordLimit caps how many finished sessions are listed.
const recordLimit = 50

type recordsLoadedMsg struct {
	Records []store.SessionRecord
	Err     error
}

// RecordsScreen lists finished quiz sessions, newest first.
type RecordsScreen struct {
	eventRepo store.EventRepo
	records   []store.SessionRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*RecordsScreen)(nil)
var _ screen.KeyHintProvider = (*RecordsScreen)(nil)

// New creates a new RecordsScreen.
func New(eventRepo store.EventRepo) *RecordsScreen {
	return &RecordsScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *RecordsScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return recordsLoadedMsg{}
		}
		recs, err := repo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: recordLimit})
		return recordsLoadedMsg{Records: recs, Err: err}
	}
}

func (s *RecordsScreen) Title() string {
	return "Records"
}

func (s *RecordsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RecordsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *RecordsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading records...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games played yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-9s  score %d/%d  %d skipped  %s",
			prefix,
			rec.Timestamp.Local().Format("Jan 02 15:04"),
			outcomeLabel(rec.Outcome),
			rec.Score,
			rec.Total,
			rec.Skipped,
			formatDuration(rec.DurationSecs),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d resolved · session %s",
				rec.Resolved, shortID(rec.SessionID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case "exhausted":
		return "cleared"
	case "timed_out":
		return "time over"
	default:
		return outcome
	}
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
