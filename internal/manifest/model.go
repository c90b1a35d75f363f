package manifest

// Overlay types understood by the editor template.
const (
	OverlayRankBadge  = "rank_badge"
	OverlayBenefit    = "benefit"
	OverlayLowerThird = "lower_third"
	OverlayCTA        = "cta"
	OverlayDisclosure = "disclosure"
	OverlaySignature  = "signature"
)

// Visual types.
const (
	VisualImage      = "image"
	VisualClip       = "clip"
	VisualBackground = "background"
)

// Motion treatments. Clips are always static; stills rotate through the
// zoom/ken-burns treatments.
const (
	MotionKenBurns = "ken_burns"
	MotionStatic   = "static"
	MotionZoomIn   = "zoom_in"
	MotionZoomOut  = "zoom_out"
	MotionPanLeft  = "pan_left"
)

// Overlay is one on-screen text element. TimeS is seconds from manifest
// start; TimeS+DurationS never exceeds the owning segment's (or the
// manifest's) end.
type Overlay struct {
	TimeS     float64 `json:"time_s"`
	DurationS float64 `json:"duration_s"`
	Text      string  `json:"text"`
	Type      string  `json:"type"`
	Position  string  `json:"position"`
	Style     string  `json:"style"`
}

// SfxCue is a timed sound-effect trigger. File is relative to the project
// directory; Label identifies the cue in tests and edit notes.
type SfxCue struct {
	TimeS float64 `json:"time_s"`
	File  string  `json:"file"`
	Label string  `json:"label"`
}

// Visual is one on-screen media slice.
type Visual struct {
	StartS    float64 `json:"start_s"`
	DurationS float64 `json:"duration_s"`
	File      string  `json:"file"`
	Type      string  `json:"type"`
	Motion    string  `json:"motion"`
}

// Window is a named span of the timeline with its narration prose.
type Window struct {
	StartS float64 `json:"start_s"`
	EndS   float64 `json:"end_s"`
	Text   string  `json:"text"`
}

// Duration returns the window length in seconds.
func (w Window) Duration() float64 { return w.EndS - w.StartS }

// ProductSegment is the portion of the video dedicated to one ranked
// product. Its visuals, overlays, and SFX are generated purely from its own
// duration and asset bucket.
type ProductSegment struct {
	Rank      int       `json:"rank"`
	Name      string    `json:"name"`
	StartS    float64   `json:"start_s"`
	EndS      float64   `json:"end_s"`
	DurationS float64   `json:"duration_s"`
	WordCount int       `json:"word_count"`
	Script    string    `json:"script"`
	Visuals   []Visual  `json:"visuals"`
	Overlays  []Overlay `json:"overlays"`
	Sfx       []SfxCue  `json:"sfx"`
}

// MusicBed is the single background track spanning the whole manifest.
// DuckUnderVoice is always true when a bed is present.
type MusicBed struct {
	File           string  `json:"file"`
	StartS         float64 `json:"start_s"`
	EndS           float64 `json:"end_s"`
	TargetLUFS     float64 `json:"target_lufs"`
	DuckUnderVoice bool    `json:"duck_under_voice"`
}

// VoiceTrack records the narration audio and its loudness contract.
type VoiceTrack struct {
	File       string   `json:"file"`
	Chunks     []string `json:"chunks,omitempty"`
	TargetLUFS float64  `json:"target_lufs"`
	PeakDB     float64  `json:"peak_db"`
}

// EditManifest is the aggregate root: the complete, time-resolved edit plan
// for one video. Built once by Build and immutable afterwards; serializers
// only read.
type EditManifest struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Hook           Window           `json:"hook"`
	AvatarIntro    Window           `json:"avatar_intro"`
	RetentionReset Window           `json:"retention_reset"`
	Outro          Window           `json:"outro"`
	Segments       []ProductSegment `json:"segments"`
	GlobalOverlays []Overlay        `json:"global_overlays"`
	GlobalSfx      []SfxCue         `json:"global_sfx,omitempty"`
	Voice          VoiceTrack       `json:"voice"`
	Music          *MusicBed        `json:"music,omitempty"`
	Thumbnail      string           `json:"thumbnail,omitempty"`
	AvatarVideo    string           `json:"avatar_video,omitempty"`
	AvatarAudio    string           `json:"avatar_audio,omitempty"`
	TotalDurationS float64          `json:"total_duration_s"`
	Profile        Profile          `json:"profile"`
}
