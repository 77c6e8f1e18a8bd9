package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/retomath/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	src, offline := e.source(cmd.Context())
	if offline {
		fmt.Fprintln(os.Stderr, "LLM provider not configured; playing with offline questions.")
	}

	return app.Run(app.Options{
		Profile: e.profile,
		Source:  src,
		Offline: offline,
		Log:     e.log,
	})
}
