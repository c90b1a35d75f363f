package manifest

import (
	"strings"

	"slate/internal/assets"
	"slate/internal/script"
)

// Inputs carries everything one build consumes. A build is a pure function of
// this value plus the Profile; missing sections, assets, and overrides all
// degrade to empty defaults, never errors.
type Inputs struct {
	ID            string
	Title         string
	ScriptText    string
	Library       assets.Library
	ProductNames  map[int]string
	Benefits      map[int][]string
	SignatureLine string
}

// segmentRankOrder is the fixed countdown: rank 5 first, rank 1 last.
var segmentRankOrder = [5]int{5, 4, 3, 2, 1}

// builder walks the fixed narrative structure with a monotonic timeline
// cursor. Each stage consumes the cursor and advances it; the stage list in
// Build is the single description of the video's shape.
type builder struct {
	prof     Profile
	in       Inputs
	sections map[string]string
	cursor   float64
	m        EditManifest
}

// Build assembles the complete edit manifest for one script and asset
// library. The narrative shape is fixed: hook, avatar intro, ranked segments
// 5 through 1 with a retention reset after rank 3, then the outro. An empty
// script still produces a manifest with zero-duration windows.
func Build(in Inputs, prof Profile) EditManifest {
	b := &builder{
		prof:     prof,
		in:       in,
		sections: script.ParseSections(in.ScriptText),
	}
	b.m.ID = in.ID
	b.m.Title = in.Title
	b.m.Profile = prof

	for _, stage := range []func(){
		b.stageHook,
		b.stageAvatarIntro,
		b.stageSegments,
		b.stageOutro,
		b.stageAudio,
		b.stageDisclosure,
		b.stageSignature,
	} {
		stage()
	}

	return b.m
}

func (b *builder) sectionSeconds(key string) float64 {
	return script.WordsToSeconds(script.CountWords(b.sections[key]), b.prof.WordsPerMinute)
}

func (b *builder) stageHook() {
	duration := b.sectionSeconds(script.SectionHook)
	b.m.Hook = Window{StartS: b.cursor, EndS: b.cursor + duration, Text: b.sections[script.SectionHook]}
	b.cursor = b.m.Hook.EndS
}

// stageAvatarIntro reserves a fixed-length window for the avatar clip. The
// section's prose is illustrative; the clip length is what the external
// avatar generator delivers, so this window is never word-timed.
func (b *builder) stageAvatarIntro() {
	b.m.AvatarIntro = Window{
		StartS: b.cursor,
		EndS:   b.cursor + b.prof.AvatarIntroSeconds,
		Text:   b.sections[script.SectionAvatarIntro],
	}
	b.cursor = b.m.AvatarIntro.EndS
}

func (b *builder) stageSegments() {
	for _, rank := range segmentRankOrder {
		b.m.Segments = append(b.m.Segments, b.buildSegment(rank))
		b.cursor = b.m.Segments[len(b.m.Segments)-1].EndS

		// Mid-point pattern interrupt: the reset always lands between
		// rank 3 and rank 2.
		if rank == 3 {
			b.stageRetentionReset()
		}
	}
}

func (b *builder) stageRetentionReset() {
	duration := b.sectionSeconds(script.SectionRetentionReset)
	b.m.RetentionReset = Window{
		StartS: b.cursor,
		EndS:   b.cursor + duration,
		Text:   b.sections[script.SectionRetentionReset],
	}
	b.cursor = b.m.RetentionReset.EndS
}

func (b *builder) buildSegment(rank int) ProductSegment {
	text := b.sections[script.ProductSection(rank)]
	words := script.CountWords(text)
	duration := script.WordsToSeconds(words, b.prof.WordsPerMinute)

	seg := ProductSegment{
		Rank:      rank,
		Name:      b.productName(rank, text),
		StartS:    b.cursor,
		EndS:      b.cursor + duration,
		DurationS: duration,
		WordCount: words,
		Script:    text,
	}

	seg.Visuals = AssignVisuals(seg.StartS, duration, b.in.Library.Products[rank], b.in.Library.Backgrounds, b.prof)
	seg.Overlays, seg.Sfx = AssignOverlays(seg.StartS, duration, rank, seg.Name, b.in.Benefits[rank], b.in.Library.SFX, b.prof)

	return seg
}

// productName resolves a segment's display name: caller override first, then
// the first line of the segment's own script (truncated), then empty.
func (b *builder) productName(rank int, text string) string {
	if name, ok := b.in.ProductNames[rank]; ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > nameTruncateLen {
			return line[:nameTruncateLen]
		}
		return line
	}
	return ""
}

func (b *builder) stageOutro() {
	duration := b.sectionSeconds(script.SectionConclusion)
	b.m.Outro = Window{StartS: b.cursor, EndS: b.cursor + duration, Text: b.sections[script.SectionConclusion]}
	b.cursor = b.m.Outro.EndS
	b.m.TotalDurationS = b.cursor
}

func (b *builder) stageAudio() {
	lib := b.in.Library
	b.m.Voice = VoiceTrack{
		File:       lib.Voiceover,
		Chunks:     lib.VoiceChunks,
		TargetLUFS: b.prof.VoiceTargetLUFS,
		PeakDB:     b.prof.VoicePeakDB,
	}
	b.m.Thumbnail = lib.Thumbnail
	b.m.AvatarVideo = lib.AvatarIntroVideo
	b.m.AvatarAudio = lib.AvatarIntroAudio

	if lib.MusicBed != "" {
		b.m.Music = &MusicBed{
			File:           lib.MusicBed,
			StartS:         0,
			EndS:           b.m.TotalDurationS,
			TargetLUFS:     b.prof.MusicTargetLUFS,
			DuckUnderVoice: true,
		}
	}
}

func (b *builder) stageDisclosure() {
	at := b.m.Outro.EndS - disclosureLeadSeconds
	if at < 0 {
		at = 0
	}
	b.m.GlobalOverlays = append(b.m.GlobalOverlays, Overlay{
		TimeS:     at,
		DurationS: b.m.Outro.EndS - at,
		Text:      DisclosureText,
		Type:      OverlayDisclosure,
		Position:  "bottom",
		Style:     "fine_print",
	})
}

func (b *builder) stageSignature() {
	if strings.TrimSpace(b.in.SignatureLine) == "" || len(b.m.Segments) < 3 {
		return
	}
	third := b.m.Segments[2]
	at := third.StartS + signaturePlacement*third.DurationS
	b.m.GlobalOverlays = append(b.m.GlobalOverlays, Overlay{
		TimeS:     at,
		DurationS: clampSpan(at, b.prof.BadgeSeconds, b.m.TotalDurationS),
		Text:      strings.TrimSpace(b.in.SignatureLine),
		Type:      OverlaySignature,
		Position:  "bottom_right",
		Style:     "handwritten",
	})
}
