package cmd

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		return printStats(cmd.Context(), cmd.OutOrStdout(), st.EventRepo())
	},
}

func printStats(ctx context.Context, w io.Writer, repo store.EventRepo) error {
	stats, err := repo.AttemptStats(ctx)
	if err != nil {
		return fmt.Errorf("attempt stats: %w", err)
	}
	if stats.Attempts == 0 {
		fmt.Fprintln(w, "No attempts recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "Attempts:          %d\n", stats.Attempts)
	fmt.Fprintf(w, "Correct:           %d (%.0f%%)\n", stats.Correct, stats.Accuracy()*100)
	fmt.Fprintf(w, "Explanations read: %d\n", stats.ExplanationViews)
	fmt.Fprintf(w, "Average time:      %.1fs\n", float64(stats.AvgTimeMs)/1000)

	fmt.Fprintf(w, "\n%-8s  %8s  %7s  %8s\n", "A", "ATTEMPTS", "CORRECT", "ACCURACY")
	for _, b := range stats.Buckets {
		if b.Attempts == 0 {
			continue
		}
		fmt.Fprintf(w, "%-8s  %8d  %7d  %7.0f%%\n", bucketLabel(b), b.Attempts, b.Correct, b.Accuracy()*100)
	}
	return nil
}

func bucketLabel(b store.BucketStats) string {
	if b.MaxA == math.MaxInt64 {
		return fmt.Sprintf("%d+", b.MinA)
	}
	return fmt.Sprintf("%d-%d", b.MinA, b.MaxA)
}
