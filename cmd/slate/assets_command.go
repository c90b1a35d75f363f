package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/assets"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "assets [project-dir]",
		Short: "Inspect discovered assets for a project",
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
			library := assets.DiscoverWithOptions(projectDir, assets.Options{
				DefaultImageSource: cfg.Assets.DefaultImageSource,
			})

			if jsonOutput {
				return writeJSON(cmd, library)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Assets in %s\n", library.ProjectDir)
			fmt.Fprintln(out, renderStatusLine("voiceover", presence(library.Voiceover != ""), library.Voiceover, colorize))
			fmt.Fprintln(out, renderStatusLine("music bed", presence(library.MusicBed != ""), library.MusicBed, colorize))
			fmt.Fprintln(out, renderStatusLine("thumbnail", presence(library.Thumbnail != ""), library.Thumbnail, colorize))
			fmt.Fprintln(out, renderStatusLine("avatar video", presence(library.AvatarIntroVideo != ""), library.AvatarIntroVideo, colorize))
			fmt.Fprintln(out, renderStatusLine("voice chunks", countKind(len(library.VoiceChunks)), fmt.Sprintf("%d files", len(library.VoiceChunks)), colorize))
			fmt.Fprintln(out, renderStatusLine("backgrounds", countKind(len(library.Backgrounds)), fmt.Sprintf("%d files", len(library.Backgrounds)), colorize))
			fmt.Fprintln(out, renderStatusLine("sfx", countKind(len(library.SFX)), fmt.Sprintf("%d files", len(library.SFX)), colorize))

			rows := make([][]string, 0, 5)
			for rank := 1; rank <= 5; rank++ {
				bucket := library.Products[rank]
				rows = append(rows, []string{
					"#" + strconv.Itoa(rank),
					strconv.Itoa(len(bucket.Amazon)),
					strconv.Itoa(len(bucket.Dzine)),
					strconv.Itoa(len(bucket.Clips)),
					yesNo(!bucket.Empty()),
				})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(
				[]string{"Rank", "Amazon", "Dzine", "Clips", "Covered"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the discovered library as JSON")
	return cmd
}

func presence(found bool) statusKind {
	if found {
		return statusOK
	}
	return statusError
}

func countKind(n int) statusKind {
	if n > 0 {
		return statusOK
	}
	return statusWarn
}
