package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"slate/internal/manifest"
)

var titleCaser = cases.Title(language.English)

// Notes renders the human-readable edit notes document. Times are reduced to
// whole seconds; this is a review document, the JSON and marker files carry
// the precise values.
func Notes(m manifest.EditManifest) string {
	var sb strings.Builder

	title := strings.TrimSpace(m.Title)
	if title == "" {
		title = "Untitled Countdown"
	}
	fmt.Fprintf(&sb, "# Edit Notes: %s\n\n", title)
	fmt.Fprintf(&sb, "Total runtime %s at %d fps, %dx%d.\n\n",
		secs(m.TotalDurationS), m.Profile.FrameRate, m.Profile.Width, m.Profile.Height)

	sb.WriteString("## Timeline Layout\n\n")
	sb.WriteString(timelineTable(m))
	sb.WriteString("\n\n")

	sb.WriteString("## Audio Mix\n\n")
	writeAudioMix(&sb, m)
	sb.WriteString("\n")

	sb.WriteString("## Per-Segment Visuals\n\n")
	writeSegmentVisuals(&sb, m)

	sb.WriteString("## Resolve Workflow\n\n")
	writeWorkflowSteps(&sb, m)

	return sb.String()
}

func timelineTable(m manifest.EditManifest) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Section", "Start", "End", "Length", "Note"})

	appendWindow := func(name string, w manifest.Window, note string) {
		tw.AppendRow(table.Row{name, secs(w.StartS), secs(w.EndS), secs(w.Duration()), note})
	}

	appendWindow("Hook", m.Hook, "")
	appendWindow("Avatar Intro", m.AvatarIntro, "fixed-length clip")
	for _, seg := range m.Segments {
		tw.AppendRow(table.Row{
			fmt.Sprintf("Product #%d", seg.Rank),
			secs(seg.StartS), secs(seg.EndS), secs(seg.DurationS),
			titleCaser.String(seg.Name),
		})
		if seg.Rank == 3 && m.RetentionReset.Duration() > 0 {
			appendWindow("Retention Reset", m.RetentionReset, "pattern interrupt")
		}
	}
	appendWindow("Outro", m.Outro, "")

	return tw.RenderMarkdown()
}

func writeAudioMix(sb *strings.Builder, m manifest.EditManifest) {
	if m.Voice.File != "" {
		fmt.Fprintf(sb, "- Voiceover `%s` normalized to %g LUFS, %g dB peak.\n",
			m.Voice.File, m.Voice.TargetLUFS, m.Voice.PeakDB)
	} else {
		fmt.Fprintf(sb, "- No voiceover file discovered; targets are %g LUFS, %g dB peak.\n",
			m.Profile.VoiceTargetLUFS, m.Profile.VoicePeakDB)
	}
	if len(m.Voice.Chunks) > 0 {
		fmt.Fprintf(sb, "- %d voice chunks available for per-section alignment.\n", len(m.Voice.Chunks))
	}
	if m.Music != nil {
		fmt.Fprintf(sb, "- Music bed `%s` spans %s-%s at %g LUFS, ducked under voice.\n",
			m.Music.File, secs(m.Music.StartS), secs(m.Music.EndS), m.Music.TargetLUFS)
	} else {
		sb.WriteString("- No music bed discovered.\n")
	}
	fmt.Fprintf(sb, "- Sound effects normalized to %g LUFS.\n", m.Profile.SfxTargetLUFS)
}

func writeSegmentVisuals(sb *strings.Builder, m manifest.EditManifest) {
	for _, seg := range m.Segments {
		name := seg.Name
		if name == "" {
			name = "unnamed"
		}
		fmt.Fprintf(sb, "### Product #%d: %s\n\n", seg.Rank, titleCaser.String(name))
		if len(seg.Visuals) == 0 {
			sb.WriteString("- No visuals assigned; segment plays over the avatar or background.\n")
		}
		for _, v := range seg.Visuals {
			fmt.Fprintf(sb, "- %s to %s: %s `%s` (%s)\n",
				secs(v.StartS), secs(v.StartS+v.DurationS), v.Type, v.File, v.Motion)
		}
		for _, o := range seg.Overlays {
			fmt.Fprintf(sb, "- %s overlay at %s: %q\n", o.Type, secs(o.TimeS), o.Text)
		}
		for _, cue := range seg.Sfx {
			fmt.Fprintf(sb, "- SFX %s at %s\n", cue.Label, secs(cue.TimeS))
		}
		sb.WriteString("\n")
	}
}

func writeWorkflowSteps(sb *strings.Builder, m manifest.EditManifest) {
	steps := []string{
		fmt.Sprintf("Create a %dx%d timeline at %d fps.", m.Profile.Width, m.Profile.Height, m.Profile.FrameRate),
		"Import markers.csv via the Edit Index to lay down the section markers.",
		"Place the voiceover on A1 and normalize it to the targets above.",
		"Place the music bed on A2 with ducking automation under the voice.",
		"Drop each segment's visuals at the listed timecodes; clips stay static, stills get their motion treatment.",
		fmt.Sprintf("Apply zoom treatments within the %g-%g%% range from the project template.", m.Profile.ZoomMinPercent, m.Profile.ZoomMaxPercent),
		"Add the text overlays from manifest.json using the template title styles.",
		fmt.Sprintf("Deliver H.264 at %d-%d Mbps.", m.Profile.BitrateMinMbps, m.Profile.BitrateMaxMbps),
	}
	for i, step := range steps {
		fmt.Fprintf(sb, "%d. %s\n", i+1, step)
	}
}

func secs(v float64) string {
	return fmt.Sprintf("%.0fs", v)
}
