package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/layout"
	"github.com/abhisek/limitz/internal/ui/theme"
)

const (
	sessionLimit = 50
	attemptLimit = 500
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Attempts map[string][]store.AttemptRecord // sessionID → attempts, newest first
	Recent   []store.AttemptRecord
	Err      error
}

// HistoryScreen displays past sessions and the attempts made in each.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	attempts  map[string][]store.AttemptRecord
	recent    []store.AttemptRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		recent, err := repo.QueryAttempts(ctx, store.QueryOpts{Limit: attemptLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		bySession := make(map[string][]store.AttemptRecord)
		for _, a := range recent {
			bySession[a.SessionID] = append(bySession[a.SessionID], a)
		}

		return historyLoadedMsg{Sessions: sessions, Attempts: bySession, Recent: recent}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Attempts"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.attempts = msg.Attempts
			s.recent = msg.Recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	if s.errMsg != "" {
		return center.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		if len(s.recent) == 0 {
			return center.Foreground(theme.TextDim).Italic(true).
				Render("\n\n  No attempts yet. Start practicing!")
		}
		return "\n" + renderAttempts(s.recent, width)
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Local().Format("Jan 02, 2006 15:04")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60

		var accuracy float64
		if sess.QuestionsServed > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsServed) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %d questions  %.0f%% accuracy  best streak %d",
			prefix, dateStr, mins, secs, sess.QuestionsServed, accuracy, sess.BestStreak)

		style := theme.Unselected
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			attempts := s.attempts[sess.SessionID]
			if len(attempts) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render("    No attempts recorded")))
				b.WriteString("\n")
			} else {
				b.WriteString(renderAttempts(attempts, width))
			}
		}
	}

	return b.String()
}

// renderAttempts lists attempts with a correctness mark, oldest first.
func renderAttempts(attempts []store.AttemptRecord, width int) string {
	var b strings.Builder
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		mark := theme.Correct.Render("✓")
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		explained := ""
		if a.ExplanationViewed {
			explained = theme.Hint.Render("  (explained)")
		}
		line := fmt.Sprintf("    %s  a=%-3d x²+%dx+%d  answered %s  %.1fs%s",
			mark, a.A, a.C, a.B, a.LearnerAnswer, float64(a.TimeMs)/1000, explained)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}
