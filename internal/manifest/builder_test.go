package manifest

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"slate/internal/assets"
)

// fiveSegmentScript returns a script whose sections all have enough words to
// produce non-trivial durations.
func fiveSegmentScript() string {
	var sb strings.Builder
	sb.WriteString("[HOOK]\nThese five kitchen gadgets completely changed how I cook at home this year.\n")
	sb.WriteString("[AVATAR_INTRO]\nHey, quick intro before we count them down.\n")
	for rank := 5; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "[PRODUCT_%d]\nThe Gadget %d\n", rank, rank)
		for i := 0; i < 8; i++ {
			sb.WriteString("It earns its spot with everyday use and honest value for money.\n")
		}
	}
	sb.WriteString("[RETENTION_RESET]\nHold on, because the top two are not what you think they are at all.\n")
	sb.WriteString("[CONCLUSION]\nLinks to every pick are in the description, and the prices update daily so check them now.\n")
	return sb.String()
}

func testLibrary() assets.Library {
	lib := assets.Library{
		Voiceover:   "audio/voiceover.wav",
		MusicBed:    "audio/music_bed.mp3",
		Backgrounds: []string{"assets/backgrounds/bg.jpg"},
		SFX:         []string{"audio/sfx/click.wav", "audio/sfx/whoosh.wav"},
		Products:    make(map[int]assets.Bucket),
	}
	for rank := 1; rank <= 5; rank++ {
		lib.Products[rank] = assets.Bucket{
			Amazon: []string{fmt.Sprintf("assets/amazon/%02d_a.png", rank)},
			Dzine:  []string{fmt.Sprintf("assets/dzine/products/%02d.png", rank)},
		}
	}
	return lib
}

func buildFull(t *testing.T) EditManifest {
	t.Helper()
	return Build(Inputs{
		ID:         "m-1",
		Title:      "Top 5 Kitchen Gadgets",
		ScriptText: fiveSegmentScript(),
		Library:    testLibrary(),
		Benefits: map[int][]string{
			5: {"saves counter space", "cleans itself after every use"},
		},
		SignatureLine: "- Alex",
	}, DefaultProfile())
}

func TestBuildSegmentOrderAndContinuity(t *testing.T) {
	m := buildFull(t)

	if len(m.Segments) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(m.Segments))
	}
	wantRanks := []int{5, 4, 3, 2, 1}
	for i, seg := range m.Segments {
		if seg.Rank != wantRanks[i] {
			t.Errorf("segment %d rank = %d, want %d", i, seg.Rank, wantRanks[i])
		}
	}

	if m.Hook.EndS <= m.Hook.StartS {
		t.Error("hook must have positive duration")
	}
	if m.AvatarIntro.StartS != m.Hook.EndS {
		t.Errorf("avatar intro must start exactly at hook end: %v vs %v", m.AvatarIntro.StartS, m.Hook.EndS)
	}
	if m.Segments[0].StartS != m.AvatarIntro.EndS {
		t.Errorf("first segment must start at avatar intro end")
	}
	if m.Outro.EndS != m.TotalDurationS {
		t.Errorf("total duration %v must equal outro end %v", m.TotalDurationS, m.Outro.EndS)
	}
	if m.TotalDurationS <= 0 {
		t.Error("total duration must be positive")
	}
}

func TestBuildRetentionResetPlacement(t *testing.T) {
	m := buildFull(t)

	var rank3, rank2 ProductSegment
	for _, seg := range m.Segments {
		switch seg.Rank {
		case 3:
			rank3 = seg
		case 2:
			rank2 = seg
		}
	}

	if !(m.RetentionReset.StartS > rank3.StartS) {
		t.Errorf("reset start %v must be after rank-3 start %v", m.RetentionReset.StartS, rank3.StartS)
	}
	if m.RetentionReset.StartS != rank3.EndS {
		t.Errorf("reset must begin where rank 3 ends: %v vs %v", m.RetentionReset.StartS, rank3.EndS)
	}
	if !(m.RetentionReset.EndS < rank2.EndS) {
		t.Errorf("reset end %v must be before rank-2 end %v", m.RetentionReset.EndS, rank2.EndS)
	}
	if rank2.StartS != m.RetentionReset.EndS {
		t.Errorf("rank 2 must resume at reset end")
	}
}

func TestBuildAvatarIntroFixedDuration(t *testing.T) {
	prof := DefaultProfile()
	m := Build(Inputs{ScriptText: fiveSegmentScript()}, prof)
	if got := m.AvatarIntro.Duration(); got != prof.AvatarIntroSeconds {
		t.Fatalf("avatar intro duration = %v, want fixed %v", got, prof.AvatarIntroSeconds)
	}
}

func TestBuildSegmentOverlays(t *testing.T) {
	m := buildFull(t)
	for _, seg := range m.Segments {
		var badges, thirds int
		for _, o := range seg.Overlays {
			switch o.Type {
			case OverlayRankBadge:
				badges++
				if want := fmt.Sprintf("#%d", seg.Rank); o.Text != want {
					t.Errorf("rank %d badge text = %q, want %q", seg.Rank, o.Text, want)
				}
			case OverlayLowerThird:
				thirds++
			}
			if o.TimeS+o.DurationS > seg.EndS+1e-9 {
				t.Errorf("rank %d overlay outlives segment: %+v", seg.Rank, o)
			}
		}
		if badges != 1 || thirds != 1 {
			t.Errorf("rank %d: badges=%d lower_thirds=%d, want 1/1", seg.Rank, badges, thirds)
		}
	}
}

func TestBuildMusicBedSpansManifest(t *testing.T) {
	m := buildFull(t)
	if m.Music == nil {
		t.Fatal("music bed should be attached when discovered")
	}
	if m.Music.StartS != 0 || m.Music.EndS != m.TotalDurationS {
		t.Errorf("music bed must span the full manifest: %+v", m.Music)
	}
	if !m.Music.DuckUnderVoice {
		t.Error("ducking must be enabled")
	}
	if m.Music.TargetLUFS != -26 {
		t.Errorf("music target = %v, want -26", m.Music.TargetLUFS)
	}
}

func TestBuildDisclosurePlacement(t *testing.T) {
	m := buildFull(t)
	var disclosure *Overlay
	for i := range m.GlobalOverlays {
		if m.GlobalOverlays[i].Type == OverlayDisclosure {
			disclosure = &m.GlobalOverlays[i]
		}
	}
	if disclosure == nil {
		t.Fatal("disclosure overlay must always be present")
	}
	if disclosure.Text != DisclosureText {
		t.Errorf("disclosure text = %q", disclosure.Text)
	}
	if got := m.Outro.EndS - disclosure.TimeS; math.Abs(got-8) > 1e-9 {
		t.Errorf("disclosure lead = %v, want 8", got)
	}
}

func TestBuildSignaturePlacement(t *testing.T) {
	m := buildFull(t)
	var sig *Overlay
	for i := range m.GlobalOverlays {
		if m.GlobalOverlays[i].Type == OverlaySignature {
			sig = &m.GlobalOverlays[i]
		}
	}
	if sig == nil {
		t.Fatal("signature overlay expected when a signature line is supplied")
	}
	third := m.Segments[2]
	want := third.StartS + 0.6*third.DurationS
	if sig.TimeS != want {
		t.Errorf("signature at %v, want %v (60%% through the rank-3 segment)", sig.TimeS, want)
	}

	noSig := Build(Inputs{ScriptText: fiveSegmentScript()}, DefaultProfile())
	for _, o := range noSig.GlobalOverlays {
		if o.Type == OverlaySignature {
			t.Error("signature must be omitted without a signature line")
		}
	}
}

func TestBuildProductNameFallbacks(t *testing.T) {
	m := Build(Inputs{
		ScriptText:   fiveSegmentScript(),
		ProductNames: map[int]string{5: "Override Name"},
	}, DefaultProfile())

	if m.Segments[0].Name != "Override Name" {
		t.Errorf("rank 5 name = %q, want override", m.Segments[0].Name)
	}
	if m.Segments[1].Name != "The Gadget 4" {
		t.Errorf("rank 4 name = %q, want first script line", m.Segments[1].Name)
	}
}

func TestBuildProductNameTruncated(t *testing.T) {
	long := strings.Repeat("VeryLongName ", 10)
	text := "[PRODUCT_5]\n" + long + "\nmore copy here"
	m := Build(Inputs{ScriptText: text}, DefaultProfile())
	if got := len(m.Segments[0].Name); got > 60 {
		t.Fatalf("name length = %d, want <= 60", got)
	}
}

func TestBuildEmptyScriptIsTotal(t *testing.T) {
	m := Build(Inputs{}, DefaultProfile())
	if len(m.Segments) != 5 {
		t.Fatalf("even an empty script yields 5 segments, got %d", len(m.Segments))
	}
	if m.Hook.Duration() != 0 || m.Outro.Duration() != 0 {
		t.Error("absent sections must default to zero duration")
	}
	// The avatar intro is the only non-zero window.
	if m.TotalDurationS != DefaultProfile().AvatarIntroSeconds {
		t.Errorf("total = %v, want avatar intro only", m.TotalDurationS)
	}
	for _, seg := range m.Segments {
		if len(seg.Visuals) != 0 {
			t.Errorf("rank %d: no assets means no visuals", seg.Rank)
		}
	}
}

func TestBuildCursorMonotonic(t *testing.T) {
	m := buildFull(t)
	marks := []float64{
		m.Hook.StartS, m.Hook.EndS,
		m.AvatarIntro.StartS, m.AvatarIntro.EndS,
	}
	for _, seg := range m.Segments {
		marks = append(marks, seg.StartS, seg.EndS)
	}
	marks = append(marks, m.Outro.StartS, m.Outro.EndS)
	prev := -1.0
	for i, mark := range marks {
		if mark < prev {
			t.Fatalf("timeline cursor went backwards at mark %d: %v < %v", i, mark, prev)
		}
		prev = mark
	}
}
