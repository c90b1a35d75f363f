package manifest

// Fixed structural constants. These are part of the narrative template, not
// tunable pacing: the disclosure always lands eight seconds before the outro
// ends, benefits start five seconds into a segment, the lower third follows
// the rank badge by one second, and the signature sits at 60% of the third
// segment.
const (
	disclosureLeadSeconds  = 8.0
	benefitStartOffset     = 5.0
	lowerThirdDelaySeconds = 1.0
	signaturePlacement     = 0.6
	nameTruncateLen        = 60

	// DisclosureText is the exact affiliate disclosure wording; editor
	// compliance checks match on it verbatim.
	DisclosureText = "This video contains affiliate links. As an Amazon Associate I earn from qualifying purchases."
)

// Profile is the immutable parameter set a build consumes. Values mirror the
// [timing], [audio], [overlays], and [export] config sections and form the
// output contract with downstream editor tooling.
type Profile struct {
	WordsPerMinute        int     `json:"words_per_minute"`
	FrameRate             int     `json:"frame_rate"`
	AvatarIntroSeconds    float64 `json:"avatar_intro_seconds"`
	VisualSliceSeconds    float64 `json:"visual_slice_seconds"`
	MinVisualSeconds      float64 `json:"min_visual_seconds"`
	VoiceTargetLUFS       float64 `json:"voice_target_lufs"`
	VoicePeakDB           float64 `json:"voice_peak_db"`
	MusicTargetLUFS       float64 `json:"music_target_lufs"`
	SfxTargetLUFS         float64 `json:"sfx_target_lufs"`
	BenefitWordCap        int     `json:"benefit_word_cap"`
	MaxBenefitsPerSegment int     `json:"max_benefits_per_segment"`
	BadgeSeconds          float64 `json:"badge_seconds"`
	BenefitSeconds        float64 `json:"benefit_seconds"`
	Width                 int     `json:"width"`
	Height                int     `json:"height"`
	ZoomMinPercent        float64 `json:"zoom_min_percent"`
	ZoomMaxPercent        float64 `json:"zoom_max_percent"`
	BitrateMinMbps        int     `json:"bitrate_min_mbps"`
	BitrateMaxMbps        int     `json:"bitrate_max_mbps"`
}

// DefaultProfile returns the repository default parameter set. It matches
// config.Default().Profile(); tests and library callers use it directly.
func DefaultProfile() Profile {
	return Profile{
		WordsPerMinute:        155,
		FrameRate:             30,
		AvatarIntroSeconds:    4.0,
		VisualSliceSeconds:    4.0,
		MinVisualSeconds:      1.0,
		VoiceTargetLUFS:       -16,
		VoicePeakDB:           -1,
		MusicTargetLUFS:       -26,
		SfxTargetLUFS:         -18,
		BenefitWordCap:        6,
		MaxBenefitsPerSegment: 2,
		BadgeSeconds:          4.0,
		BenefitSeconds:        3.0,
		Width:                 1920,
		Height:                1080,
		ZoomMinPercent:        3,
		ZoomMaxPercent:        7,
		BitrateMinMbps:        20,
		BitrateMaxMbps:        40,
	}
}
