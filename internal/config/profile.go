package config

import "slate/internal/manifest"

// Profile projects the configured timing, audio, overlay, and export values
// into the immutable parameter set the manifest builder consumes. The builder
// never reads configuration directly; everything it needs travels in this
// value so a generation call stays a pure function of its inputs.
func (c *Config) Profile() manifest.Profile {
	return manifest.Profile{
		WordsPerMinute:        c.Timing.WordsPerMinute,
		FrameRate:             c.Timing.FrameRate,
		AvatarIntroSeconds:    c.Timing.AvatarIntroSeconds,
		VisualSliceSeconds:    c.Timing.VisualSliceSeconds,
		MinVisualSeconds:      c.Timing.MinVisualSeconds,
		VoiceTargetLUFS:       c.Audio.VoiceTargetLUFS,
		VoicePeakDB:           c.Audio.VoicePeakDB,
		MusicTargetLUFS:       c.Audio.MusicTargetLUFS,
		SfxTargetLUFS:         c.Audio.SfxTargetLUFS,
		BenefitWordCap:        c.Overlays.BenefitWordCap,
		MaxBenefitsPerSegment: c.Overlays.MaxBenefitsPerSegment,
		BadgeSeconds:          c.Overlays.BadgeSeconds,
		BenefitSeconds:        c.Overlays.BenefitSeconds,
		Width:                 c.Export.Width,
		Height:                c.Export.Height,
		ZoomMinPercent:        c.Export.ZoomMinPercent,
		ZoomMaxPercent:        c.Export.ZoomMaxPercent,
		BitrateMinMbps:        c.Export.BitrateMinMbps,
		BitrateMaxMbps:        c.Export.BitrateMaxMbps,
	}
}
