package render

import (
	"encoding/json"

	"slate/internal/manifest"
)

const scriptExcerptLen = 120

// WindowDoc projects a named timeline window.
type WindowDoc struct {
	StartS float64 `json:"start_s"`
	EndS   float64 `json:"end_s"`
	Text   string  `json:"text,omitempty"`
}

// IntroDoc groups the two opening windows.
type IntroDoc struct {
	Hook   WindowDoc `json:"hook"`
	Avatar WindowDoc `json:"avatar"`
}

// SegmentDoc projects one ranked segment. Script text is reduced to an
// excerpt; the manifest document is a working plan, not a script archive.
type SegmentDoc struct {
	Rank          int                `json:"rank"`
	Name          string             `json:"name"`
	StartS        float64            `json:"start_s"`
	EndS          float64            `json:"end_s"`
	DurationS     float64            `json:"duration_s"`
	WordCount     int                `json:"word_count"`
	ScriptExcerpt string             `json:"script_excerpt,omitempty"`
	Visuals       []manifest.Visual  `json:"visuals"`
	Overlays      []manifest.Overlay `json:"overlays"`
	Sfx           []manifest.SfxCue  `json:"sfx"`
}

// VoiceoverDoc carries the narration track with its loudness contract.
type VoiceoverDoc struct {
	File       string   `json:"file"`
	Chunks     []string `json:"chunks,omitempty"`
	TargetLUFS float64  `json:"target_lufs"`
	PeakDB     float64  `json:"peak_db"`
}

// RenderDoc carries the export geometry for the editor project template.
type RenderDoc struct {
	FrameRate      int `json:"frame_rate"`
	Width          int `json:"width"`
	Height         int `json:"height"`
	BitrateMinMbps int `json:"bitrate_min_mbps"`
	BitrateMaxMbps int `json:"bitrate_max_mbps"`
}

// Doc is the structured projection of an EditManifest. It round-trips
// through JSON without loss of its own fields.
type Doc struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Intro          IntroDoc           `json:"intro"`
	Segments       []SegmentDoc       `json:"segments"`
	RetentionReset WindowDoc          `json:"retention_reset"`
	Outro          WindowDoc          `json:"outro"`
	Voiceover      VoiceoverDoc       `json:"voiceover"`
	Music          *manifest.MusicBed `json:"music,omitempty"`
	GlobalOverlays []manifest.Overlay `json:"global_overlays"`
	Signature      *manifest.Overlay  `json:"signature,omitempty"`
	TotalDurationS float64            `json:"total_duration_s"`
	Render         RenderDoc          `json:"render"`
}

// Document projects a completed manifest into its serializable form.
func Document(m manifest.EditManifest) Doc {
	doc := Doc{
		ID:    m.ID,
		Title: m.Title,
		Intro: IntroDoc{
			Hook:   windowDoc(m.Hook),
			Avatar: windowDoc(m.AvatarIntro),
		},
		RetentionReset: windowDoc(m.RetentionReset),
		Outro:          windowDoc(m.Outro),
		Voiceover: VoiceoverDoc{
			File:       m.Voice.File,
			Chunks:     m.Voice.Chunks,
			TargetLUFS: m.Voice.TargetLUFS,
			PeakDB:     m.Voice.PeakDB,
		},
		Music:          m.Music,
		GlobalOverlays: m.GlobalOverlays,
		TotalDurationS: m.TotalDurationS,
		Render: RenderDoc{
			FrameRate:      m.Profile.FrameRate,
			Width:          m.Profile.Width,
			Height:         m.Profile.Height,
			BitrateMinMbps: m.Profile.BitrateMinMbps,
			BitrateMaxMbps: m.Profile.BitrateMaxMbps,
		},
	}

	for _, seg := range m.Segments {
		doc.Segments = append(doc.Segments, SegmentDoc{
			Rank:          seg.Rank,
			Name:          seg.Name,
			StartS:        seg.StartS,
			EndS:          seg.EndS,
			DurationS:     seg.DurationS,
			WordCount:     seg.WordCount,
			ScriptExcerpt: excerpt(seg.Script),
			Visuals:       seg.Visuals,
			Overlays:      seg.Overlays,
			Sfx:           seg.Sfx,
		})
	}

	for i := range m.GlobalOverlays {
		if m.GlobalOverlays[i].Type == manifest.OverlaySignature {
			sig := m.GlobalOverlays[i]
			doc.Signature = &sig
			break
		}
	}

	return doc
}

// JSON renders the manifest document as indented JSON. The output is a pure
// function of the manifest: serializing the same value twice is
// byte-identical.
func JSON(m manifest.EditManifest) ([]byte, error) {
	data, err := json.MarshalIndent(Document(m), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func windowDoc(w manifest.Window) WindowDoc {
	return WindowDoc{StartS: w.StartS, EndS: w.EndS, Text: w.Text}
}

func excerpt(text string) string {
	if len(text) <= scriptExcerptLen {
		return text
	}
	return text[:scriptExcerptLen]
}
