package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zft5024/manus-aicad/internal"
	"github.com/zft5024/manus-aicad/internal/ui"
)

var (
	verbose     bool
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aicad",
	Short: "Conversational 3D model generation demo",
	Long: `AiCAD is a terminal demo of a conversational 3D CAD assistant.

Describe the model you want in plain language and watch a (simulated)
assistant generate it into an interactive preview. Sessions persist
locally, so you stay signed in between runs.

Quick Start:
  aicad            # Launch the app
  aicad whoami     # Show the signed-in user
  aicad logout     # Clear the stored session
  aicad demo       # Run a scripted conversation without the TUI

Nothing leaves your machine: authentication is mock, generation is
simulated, and all state lives in a local SQLite file.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		env.Session.Restore()
		return ui.Run(env.Session, env.Feedback, env.Config, env.Paths.DataDir)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer internal.SyncLogger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom data directory (overrides the default location)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
