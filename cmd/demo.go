package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/zft5024/manus-aicad/internal"
	"github.com/zft5024/manus-aicad/internal/export"
)

var (
	demoFormat string
	demoSave   bool
	demoFast   bool
)

var demoPrompts = []string{
	"Create a simple gear with 12 teeth",
	"Make the teeth slightly wider",
	"Design a coffee mug with a handle",
}

// demoCmd runs a scripted conversation through the engine without the
// TUI, printing each turn as it happens.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted conversation without the TUI",
	Long: `Run a scripted conversation through the generation engine and print
each turn. Useful for seeing the interaction flow without a terminal UI,
and for saving a sample transcript with --save.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		delay := env.Config.GenerationDelay()
		if demoFast {
			delay = 10 * time.Millisecond
		}

		engine := internal.NewEngine(internal.NewCannedGenerator(), delay)
		printTurn(engine.Messages()[0])

		for _, prompt := range demoPrompts {
			done := make(chan internal.Message, 1)
			task, ok := engine.Generate(prompt, func(m internal.Message) { done <- m })
			if !ok {
				return fmt.Errorf("engine rejected prompt %q", prompt)
			}
			_ = task // runs to completion; cancellation unused

			printTurn(internal.Message{Role: internal.RoleUser, Content: prompt})
			printTurn(<-done)
		}

		if demoSave {
			return saveDemoTranscript(env, engine)
		}
		return nil
	},
}

func printTurn(msg internal.Message) {
	label := "AiCAD"
	if msg.Role == internal.RoleUser {
		label = "You"
	}
	fmt.Printf("%s: %s\n\n", label, msg.Content)
}

func saveDemoTranscript(env *Env, engine *internal.Engine) error {
	exporter, err := export.NewExporter(demoFormat)
	if err != nil {
		return err
	}

	user := ""
	env.Session.Restore()
	if id := env.Session.Current(); id != nil {
		user = id.Name
	}

	name := fmt.Sprintf("aicad-demo-%s.%s", time.Now().Format("20060102-150405"), exporter.Extension())
	path := filepath.Join(env.Paths.DataDir, name)
	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: demoFormat, Path: path, Err: err}
	}
	defer f.Close()

	t := internal.NewTranscript(user, engine.Messages())
	if err := exporter.Export(t, f); err != nil {
		return &internal.ExportError{Format: demoFormat, Path: path, Err: err}
	}

	fmt.Printf("Transcript saved to %s\n", path)
	return nil
}

func init() {
	demoCmd.Flags().StringVar(&demoFormat, "format", "md", "Transcript format for --save (jsonl, md, yaml, json)")
	demoCmd.Flags().BoolVar(&demoSave, "save", false, "Save the transcript to the data directory")
	demoCmd.Flags().BoolVar(&demoFast, "fast", false, "Skip the simulated generation delay")
	rootCmd.AddCommand(demoCmd)
}
