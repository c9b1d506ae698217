package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/problemgen"
	sess "github.com/abhisek/limitz/internal/session"
	"github.com/abhisek/limitz/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice in line mode without the full-screen UI",
	Long: `Answer limit problems one line at a time on stdin.

After each answer, type "e" to toggle the explanation, "n" (or Enter) for a
new problem, or "q" to finish. Attempts are saved to history unless
--no-history is given.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().Int("count", 0, "Stop after this many answered problems (0 = no limit)")
	practiceCmd.Flags().Bool("no-history", false, "Do not save attempts to the database")
}

func runPractice(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	noHistory, _ := cmd.Flags().GetBool("no-history")
	if count < 0 {
		return fmt.Errorf("invalid count %d: must be 0 or more", count)
	}

	gen, err := problemgen.New(problemgen.DefaultConfig())
	if err != nil {
		return fmt.Errorf("problem generator: %w", err)
	}

	var repo store.EventRepo
	if !noHistory {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		repo = st.EventRepo()
	}

	p := &linePractice{
		in:    bufio.NewScanner(cmd.InOrStdin()),
		out:   cmd.OutOrStdout(),
		gen:   gen,
		repo:  repo,
		count: count,
	}
	return p.run(cmd.Context())
}

// linePractice drives a session over a line-oriented reader and writer.
type linePractice struct {
	in    *bufio.Scanner
	out   io.Writer
	gen   problemgen.Generator
	repo  store.EventRepo
	count int

	// lastSeq is the stored sequence of the latest attempt, 0 when unsaved.
	lastSeq int64
}

func (p *linePractice) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	state, err := sess.NewState(p.gen, uuid.New().String())
	if err != nil {
		return err
	}
	p.persistSession(ctx, store.SessionEventData{SessionID: state.SessionID, Action: "start"})

	for problem := 1; ; problem++ {
		fmt.Fprintf(p.out, "── Problem %d ──\n", problem)
		fmt.Fprintf(p.out, "Evaluate the limit:  %s\n", state.Problem.Limit())

		if !p.answer(ctx, state) {
			break
		}
		if p.count > 0 && state.TotalQuestions >= p.count {
			break
		}
		if !p.afterAnswer(ctx, state) {
			break
		}
		fmt.Fprintln(p.out)
	}

	sum := sess.BuildSummary(state)
	p.persistSession(ctx, store.SessionEventData{
		SessionID:       sum.SessionID,
		Action:          "end",
		QuestionsServed: sum.TotalQuestions,
		CorrectAnswers:  sum.TotalCorrect,
		BestStreak:      sum.BestStreak,
		DurationSecs:    int(sum.Duration.Seconds()),
	})

	fmt.Fprintf(p.out, "\n── Summary: %d/%d correct, best streak %d ──\n",
		sum.TotalCorrect, sum.TotalQuestions, sum.BestStreak)
	return nil
}

// answer prompts until the learner submits a non-blank answer. It reports
// false when input ends or the learner quits.
func (p *linePractice) answer(ctx context.Context, state *sess.State) bool {
	for {
		fmt.Fprint(p.out, "Your answer (fraction like 1/3 or decimal like 0.333, q to quit): ")
		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return false
		}
		line := p.in.Text()
		if strings.TrimSpace(line) == "q" {
			return false
		}

		res, err := sess.Submit(state, line)
		if errors.Is(err, sess.ErrEmptyAnswer) {
			fmt.Fprintln(p.out, "Please enter your answer!")
			continue
		}
		if err != nil {
			return false
		}

		fmt.Fprintln(p.out, sess.Feedback(state))
		if res.StreakMilestone > 0 {
			fmt.Fprintf(p.out, "★ %d in a row!\n", res.StreakMilestone)
		}
		if !res.Correct {
			fmt.Fprintln(p.out, "Type e to see the worked solution.")
		}
		p.persistAttempt(ctx, state, res)
		return true
	}
}

// afterAnswer handles the explanation toggle and moves on to the next
// problem. It reports false when the session should end.
func (p *linePractice) afterAnswer(ctx context.Context, state *sess.State) bool {
	for {
		fmt.Fprint(p.out, "[e] explanation  [n] new problem  [q] quit: ")
		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
		case "e":
			firstView := !state.ExplanationViewed
			phase, err := sess.ToggleExplanation(state)
			if err != nil {
				continue
			}
			if phase == sess.PhaseExplanationShown {
				fmt.Fprintln(p.out)
				fmt.Fprintln(p.out, sess.Explanation(state))
			} else {
				fmt.Fprintln(p.out, "(explanation hidden)")
			}
			if firstView {
				p.markViewed(ctx)
			}
		case "n", "":
			if err := sess.NextProblem(state, p.gen); err != nil {
				logrus.WithError(err).Error("generate next problem")
				fmt.Fprintln(p.out, "Could not generate a new problem. Try again.")
				continue
			}
			return true
		case "q":
			return false
		}
	}
}

func (p *linePractice) persistSession(ctx context.Context, data store.SessionEventData) {
	if p.repo == nil {
		return
	}
	if err := p.repo.AppendSessionEvent(ctx, data); err != nil {
		logrus.WithError(err).WithField("action", data.Action).Warn("persist session event")
	}
}

func (p *linePractice) persistAttempt(ctx context.Context, state *sess.State, res *sess.Result) {
	p.lastSeq = 0
	if p.repo == nil {
		return
	}
	pr := state.Problem
	seq, err := p.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		SessionID:     state.SessionID,
		A:             pr.A,
		B:             pr.B,
		C:             pr.C,
		LearnerAnswer: res.Input,
		Correct:       res.Correct,
		TimeMs:        res.Elapsed.Milliseconds(),
	})
	if err != nil {
		logrus.WithError(err).Warn("persist attempt")
		return
	}
	p.lastSeq = seq
}

func (p *linePractice) markViewed(ctx context.Context) {
	if p.repo == nil || p.lastSeq == 0 {
		return
	}
	if err := p.repo.MarkExplanationViewed(ctx, p.lastSeq); err != nil {
		logrus.WithError(err).Warn("persist explanation view")
	}
}
