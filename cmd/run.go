package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/limitz/internal/app"
	"github.com/abhisek/limitz/internal/problemgen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	gen, err := problemgen.New(problemgen.DefaultConfig())
	if err != nil {
		return fmt.Errorf("problem generator: %w", err)
	}

	logrus.Info("starting tui")
	return app.Run(app.Options{
		Generator: gen,
		EventRepo: st.EventRepo(),
	})
}
