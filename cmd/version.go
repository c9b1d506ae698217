package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "limitz", config.Version)
	},
}
