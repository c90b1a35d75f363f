package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleScript builds a complete five-product countdown script with every
// structural section marker present.
func SampleScript() string {
	var sb strings.Builder
	sb.WriteString("[HOOK]\nThese five picks fixed my whole setup in a single weekend.\n\n")
	sb.WriteString("[AVATAR_INTRO]\nHey, quick intro before we count them down.\n\n")
	for rank := 5; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "[PRODUCT_%d]\nSample Pick %d\n", rank, rank)
		for i := 0; i < 5; i++ {
			sb.WriteString("It earns its spot with daily use, solid build quality and a fair price.\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("[RETENTION_RESET]\nStay with me, the top two picks surprised even me this year.\n\n")
	sb.WriteString("[CONCLUSION]\nEvery link is below and prices change fast, so check them while you watch.\n")
	return sb.String()
}

// NewProject scaffolds a project directory in the current asset layout:
// script, voiceover, per-rank amazon images, a music bed and one SFX file.
// It returns the project root.
func NewProject(t testing.TB) string {
	t.Helper()

	dir := t.TempDir()
	WriteScript(t, dir, SampleScript())
	WriteFile(t, filepath.Join(dir, "audio", "voiceover.wav"), 64)
	WriteFile(t, filepath.Join(dir, "audio", "music_bed.mp3"), 64)
	WriteFile(t, filepath.Join(dir, "audio", "sfx", "whoosh.wav"), 16)
	for rank := 1; rank <= 5; rank++ {
		WriteFile(t, filepath.Join(dir, "assets", "amazon", fmt.Sprintf("%02d_main.png", rank)), 32)
	}
	return dir
}

// WriteScript places script text at the conventional script.txt location.
func WriteScript(t testing.TB, projectDir, text string) {
	t.Helper()

	path := filepath.Join(projectDir, "script.txt")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", projectDir, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
}
