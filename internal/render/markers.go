package render

import (
	"encoding/csv"
	"fmt"
	"strings"

	"slate/internal/manifest"
)

// Marker row colors. Rank 1 gets the distinct color so the payoff moment
// stands out on the editor timeline.
const (
	colorTopRank   = "Red"
	colorOtherRank = "Yellow"
	colorStructure = "Blue"
	colorOverlay   = "Green"
)

var markersHeader = []string{"Name", "Start TC", "Duration", "Note", "Color"}

// MarkersCSV renders the editor marker-import file: one row per structural
// marker in chronological order, then one row per global overlay. Marker
// rows use a one-frame duration placeholder; the editor snaps real edits to
// the start timecodes.
func MarkersCSV(m manifest.EditManifest) (string, error) {
	fps := m.Profile.FrameRate
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	row := func(name string, startS float64, note, color string) error {
		return w.Write([]string{name, Timecode(startS, fps), oneFrame(fps), note, color})
	}

	if err := w.Write(markersHeader); err != nil {
		return "", err
	}
	if err := row("Hook", m.Hook.StartS, firstLine(m.Hook.Text), colorStructure); err != nil {
		return "", err
	}
	if err := row("Avatar Intro", m.AvatarIntro.StartS, firstLine(m.AvatarIntro.Text), colorStructure); err != nil {
		return "", err
	}
	for _, seg := range m.Segments {
		color := colorOtherRank
		if seg.Rank == 1 {
			color = colorTopRank
		}
		if err := row(fmt.Sprintf("Product #%d", seg.Rank), seg.StartS, seg.Name, color); err != nil {
			return "", err
		}
		if seg.Rank == 3 && m.RetentionReset.Duration() > 0 {
			if err := row("Retention Reset", m.RetentionReset.StartS, firstLine(m.RetentionReset.Text), colorStructure); err != nil {
				return "", err
			}
		}
	}
	if err := row("Outro", m.Outro.StartS, firstLine(m.Outro.Text), colorStructure); err != nil {
		return "", err
	}
	for _, overlay := range m.GlobalOverlays {
		name := fmt.Sprintf("Overlay: %s", overlay.Type)
		if err := row(name, overlay.TimeS, firstLine(overlay.Text), colorOverlay); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	if len(line) > 80 {
		line = line[:80]
	}
	return strings.TrimSpace(line)
}
