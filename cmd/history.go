package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return printHistory(cmd.Context(), cmd.OutOrStdout(), st.EventRepo(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().String("session", "", "Only show attempts from this session")
}

func printHistory(ctx context.Context, w io.Writer, repo store.EventRepo, opts store.QueryOpts) error {
	attempts, err := repo.QueryAttempts(ctx, opts)
	if err != nil {
		return fmt.Errorf("query attempts: %w", err)
	}
	if len(attempts) == 0 {
		fmt.Fprintln(w, "No attempts recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-4s  %-14s  %-12s  %-7s  %6s  %s\n",
		"SEQ", "TIME", "A", "QUADRATIC", "ANSWER", "RESULT", "SECS", "EXPLAINED")
	for _, a := range attempts {
		result := "wrong"
		if a.Correct {
			result = "correct"
		}
		explained := ""
		if a.ExplanationViewed {
			explained = "yes"
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-4d  %-14s  %-12s  %-7s  %6.1f  %s\n",
			a.Sequence,
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			a.A,
			fmt.Sprintf("x²+%dx+%d", a.C, a.B),
			truncate(a.LearnerAnswer, 12),
			result,
			float64(a.TimeMs)/1000,
			explained,
		)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
