package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/config"
	"github.com/abhisek/limitz/internal/logger"
	"github.com/abhisek/limitz/internal/store"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "limitz",
	Short: "Practice evaluating 0/0 limits",
	Long:  "Limitz is a terminal quiz on limits of the form lim (x → -1) √((x+1)/(x²+cx+b)).",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Finalizers run even when a command returns an error, unlike
	// PersistentPostRun.
	cobra.OnFinalize(closeLogging)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIMITZ_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides LIMITZ_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to log file (overrides LIMITZ_LOG_FILE)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging(cmd *cobra.Command) error {
	levelFlag, _ := cmd.Flags().GetString("log-level")
	fileFlag, _ := cmd.Flags().GetString("log-file")

	path, err := config.LogFilePath(fileFlag)
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}
	closer, err := logger.Init(config.LogLevel(levelFlag), path)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

func closeLogging() {
	if logCloser == nil {
		return
	}
	logrus.SetOutput(os.Stderr)
	_ = logCloser.Close()
	logCloser = nil
}

// openStore resolves the database path from --db and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	flag, _ := cmd.Flags().GetString("db")
	dbPath, err := config.DBPath(flag)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
