package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all practice history",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return resetHistory(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), st.EventRepo(), yes)
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

func resetHistory(ctx context.Context, in io.Reader, w io.Writer, repo store.EventRepo, yes bool) error {
	if !yes {
		fmt.Fprint(w, "Delete all practice history? Type 'yes' to confirm: ")
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}
	if err := repo.Reset(ctx); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	logrus.Info("practice history reset")
	fmt.Fprintln(w, "History deleted.")
	return nil
}
