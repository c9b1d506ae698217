package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/limitz/internal/problemgen"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/screens/history"
	"github.com/abhisek/limitz/internal/screens/practice"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/components"
	"github.com/abhisek/limitz/internal/ui/layout"
	"github.com/abhisek/limitz/internal/ui/theme"
)

// statsLoadedMsg carries lifetime stats read from the store.
type statsLoadedMsg struct {
	stats *store.AttemptStats
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu      components.Menu
	eventRepo store.EventRepo
	stats     *store.AttemptStats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. eventRepo may be nil, in which case history
// is disabled and nothing is persisted.
func New(generator problemgen.Generator, eventRepo store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "PRACTICE", Shortcut: "p", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(generator, eventRepo)}
			}
		}},
		{Label: "HISTORY", Shortcut: "h", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		eventRepo: eventRepo,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads lifetime stats after a practice session or history view.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	if h.eventRepo == nil {
		return nil
	}
	repo := h.eventRepo
	return func() tea.Msg {
		stats, err := repo.AttemptStats(context.Background())
		if err != nil {
			logrus.WithError(err).Warn("load attempt stats")
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{stats: stats}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = msg.stats
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		renderBanner(width),
		h.renderStats(),
		theme.Card.Render(h.menu.View()),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats() string {
	if h.stats == nil || h.stats.Attempts == 0 {
		return theme.Hint.Render("No attempts yet. Pick PRACTICE to start.")
	}
	return theme.Subtitle.Render(fmt.Sprintf("%d answered   %d correct   %.0f%% accuracy",
		h.stats.Attempts, h.stats.Correct, h.stats.Accuracy()*100))
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
