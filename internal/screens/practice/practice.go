package practice

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/limitz/internal/problemgen"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/screen"
	"github.com/abhisek/limitz/internal/screens/summary"
	sess "github.com/abhisek/limitz/internal/session"
	"github.com/abhisek/limitz/internal/store"
	"github.com/abhisek/limitz/internal/ui/components"
	"github.com/abhisek/limitz/internal/ui/layout"
)

const (
	inputPlaceholder = "1/3 or 0.333"
	inputCharLimit   = 24

	warnEmptyAnswer = "Please enter your answer!"
)

// PracticeScreen runs one practice session: a problem, an answer, feedback
// and an optional worked solution, repeated until the learner leaves.
type PracticeScreen struct {
	state      *sess.State
	generator  problemgen.Generator
	eventRepo  store.EventRepo
	input      components.AnswerInput
	explainBtn components.ToggleButton
	warning    string
	milestone  int
	errMsg     string

	// attemptQ is the answer number of the latest submitted attempt and
	// attemptSeq its stored sequence once known. markOnSave defers
	// MarkExplanationViewed until the save lands.
	attemptQ   int
	attemptSeq int64
	markOnSave bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscapeHandler = (*PracticeScreen)(nil)
var _ screen.ScoreProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen. eventRepo may be nil to skip persistence.
func New(generator problemgen.Generator, eventRepo store.EventRepo) *PracticeScreen {
	return &PracticeScreen{
		generator:  generator,
		eventRepo:  eventRepo,
		input:      components.NewAnswerInput(inputPlaceholder, inputCharLimit),
		explainBtn: components.NewToggleButton("Show Explanation", "Hide Explanation"),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// HandlesEscape makes Esc end the session instead of popping the screen.
func (s *PracticeScreen) HandlesEscape() bool {
	return true
}

func (s *PracticeScreen) Score() layout.Score {
	if s.state == nil {
		return layout.Score{}
	}
	return layout.Score{
		Correct: s.state.TotalCorrect,
		Total:   s.state.TotalQuestions,
		Streak:  s.state.Streak,
	}
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.state == nil || s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if !s.state.Phase.Submitted() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+N", Description: "New problem"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return []layout.KeyHint{
		{Key: "E", Description: s.explainBtn.Label()},
		{Key: "N", Description: "New problem"},
		{Key: "Esc", Description: "End session"},
	}
}

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	return s.renderProblem(width, height)
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case attemptSavedMsg:
		return s.handleAttemptSaved(msg)

	case persistDoneMsg:
		if msg.Err != nil {
			logrus.WithError(msg.Err).WithField("event", msg.What).Warn("persist event")
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state != nil && !s.state.Phase.Submitted() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// initSession generates the first problem and records the session start.
func (s *PracticeScreen) initSession() tea.Cmd {
	gen := s.generator
	repo := s.eventRepo
	return func() tea.Msg {
		sessionID := uuid.New().String()
		state, err := sess.NewState(gen, sessionID)
		if err != nil {
			return sessionInitMsg{Err: err}
		}
		if repo != nil {
			if err := repo.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: sessionID,
				Action:    "start",
			}); err != nil {
				logrus.WithError(err).Warn("persist session start")
			}
		}
		logrus.WithFields(logrus.Fields{
			"session": sessionID,
			"a":       state.Problem.A,
		}).Debug("session started")
		return sessionInitMsg{State: state}
	}
}

func (s *PracticeScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		logrus.WithError(msg.Err).Error("start session")
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	switch key {
	case "esc":
		return s.endSession()
	case "ctrl+n":
		return s.nextProblem()
	}

	if !s.state.Phase.Submitted() {
		if key == "enter" {
			return s.submitAnswer()
		}
		s.warning = ""
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "e", "E":
		return s.toggleExplanation()
	case "n", "N", "enter":
		return s.nextProblem()
	}
	return s, nil
}

// submitAnswer grades the input and persists the attempt.
func (s *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	res, err := sess.Submit(s.state, raw)
	if errors.Is(err, sess.ErrEmptyAnswer) {
		s.warning = warnEmptyAnswer
		return s, nil
	}
	if err != nil {
		return s, nil
	}

	s.warning = ""
	s.milestone = res.StreakMilestone
	s.input.Lock(res.Correct)
	s.explainBtn.Enabled = true
	s.explainBtn.On = false

	logrus.WithFields(logrus.Fields{
		"session": s.state.SessionID,
		"a":       s.state.Problem.A,
		"correct": res.Correct,
	}).Debug("answer submitted")

	s.attemptQ = s.state.TotalQuestions
	s.attemptSeq = 0
	s.markOnSave = false
	if s.eventRepo == nil {
		return s, nil
	}

	p := s.state.Problem
	data := store.AttemptEventData{
		SessionID:     s.state.SessionID,
		A:             p.A,
		B:             p.B,
		C:             p.C,
		LearnerAnswer: res.Input,
		Correct:       res.Correct,
		TimeMs:        res.Elapsed.Milliseconds(),
	}
	repo := s.eventRepo
	question := s.attemptQ
	return s, func() tea.Msg {
		seq, err := repo.AppendAttemptEvent(context.Background(), data)
		return attemptSavedMsg{Question: question, Seq: seq, Err: err}
	}
}

func (s *PracticeScreen) handleAttemptSaved(msg attemptSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		logrus.WithError(msg.Err).Warn("persist attempt")
		return s, nil
	}
	if msg.Question != s.attemptQ {
		return s, nil
	}
	s.attemptSeq = msg.Seq
	if s.markOnSave {
		s.markOnSave = false
		return s, s.markViewed(msg.Seq)
	}
	return s, nil
}

func (s *PracticeScreen) toggleExplanation() (screen.Screen, tea.Cmd) {
	firstView := !s.state.ExplanationViewed
	phase, err := sess.ToggleExplanation(s.state)
	if err != nil {
		return s, nil
	}
	s.explainBtn.On = phase == sess.PhaseExplanationShown

	if !firstView || s.eventRepo == nil {
		return s, nil
	}
	if s.attemptSeq == 0 {
		s.markOnSave = true
		return s, nil
	}
	return s, s.markViewed(s.attemptSeq)
}

func (s *PracticeScreen) markViewed(seq int64) tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		err := repo.MarkExplanationViewed(context.Background(), seq)
		return persistDoneMsg{What: "explanation_viewed", Err: err}
	}
}

func (s *PracticeScreen) nextProblem() (screen.Screen, tea.Cmd) {
	if err := sess.NextProblem(s.state, s.generator); err != nil {
		logrus.WithError(err).Error("generate next problem")
		s.warning = "Could not generate a new problem. Try again."
		return s, nil
	}
	s.warning = ""
	s.milestone = 0
	s.input = components.NewAnswerInput(inputPlaceholder, inputCharLimit)
	s.explainBtn = components.NewToggleButton("Show Explanation", "Hide Explanation")
	return s, s.input.Init()
}

// endSession records the session end and hands over to the summary.
func (s *PracticeScreen) endSession() (screen.Screen, tea.Cmd) {
	sum := sess.BuildSummary(s.state)
	logrus.WithFields(logrus.Fields{
		"session":   sum.SessionID,
		"questions": sum.TotalQuestions,
		"correct":   sum.TotalCorrect,
	}).Debug("session ended")

	show := func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
	if s.eventRepo == nil {
		return s, show
	}

	repo := s.eventRepo
	data := store.SessionEventData{
		SessionID:       sum.SessionID,
		Action:          "end",
		QuestionsServed: sum.TotalQuestions,
		CorrectAnswers:  sum.TotalCorrect,
		BestStreak:      sum.BestStreak,
		DurationSecs:    int(sum.Duration.Seconds()),
	}
	return s, func() tea.Msg {
		if err := repo.AppendSessionEvent(context.Background(), data); err != nil {
			logrus.WithError(err).Warn("persist session end")
		}
		return show()
	}
}
