package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/workflow"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var scriptPath string
	var title string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "generate [project-dir]",
		Short: "Build manifest.json, markers.csv and edit_notes.md for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			gen := workflow.NewGenerator(cfg, logger)
			res, err := gen.Generate(cmd.Context(), projectDir, workflow.Options{
				ScriptPath: scriptPath,
				Title:      title,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated edit plan for %q (%d segments, %.1fs)\n", res.Title, res.Segments, res.TotalDurationS)
			fmt.Fprintf(out, "  manifest: %s\n", res.ManifestPath)
			fmt.Fprintf(out, "  markers:  %s\n", res.MarkersPath)
			fmt.Fprintf(out, "  notes:    %s\n", res.NotesPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&scriptPath, "script", "", "Script path relative to the project directory (default script.txt)")
	cmd.Flags().StringVar(&title, "title", "", "Video title (default: overrides.yaml title, then directory name)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	return cmd
}
