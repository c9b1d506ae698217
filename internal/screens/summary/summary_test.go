package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		SessionID:      "test-session",
		Duration:       3*time.Minute + 7*time.Second,
		TotalQuestions: 8,
		TotalCorrect:   6,
		Accuracy:       0.75,
		BestStreak:     4,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "3:07", "Questions: 8", "Correct: 6", "Best streak: 4", "75%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Headlines(t *testing.T) {
	empty := New(&session.Summary{})
	if !strings.Contains(empty.View(80, 24), "Session ended") {
		t.Error("expected 'Session ended' for empty session")
	}
	if strings.Contains(empty.View(80, 24), "Accuracy") {
		t.Error("empty session should not show accuracy")
	}

	perfect := New(&session.Summary{TotalQuestions: 3, TotalCorrect: 3, Accuracy: 1})
	if !strings.Contains(perfect.View(80, 24), "Perfect session!") {
		t.Error("expected 'Perfect session!'")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: key})
		if cmd == nil {
			t.Fatalf("expected a command on key %v", key)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg on key %v", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
