package config

const (
	defaultLogDir             = "~/.local/share/slate/logs"
	defaultWordsPerMinute     = 155
	defaultFrameRate          = 30
	defaultAvatarIntroSecs    = 4.0
	defaultVisualSliceSecs    = 4.0
	defaultMinVisualSecs      = 1.0
	defaultVoiceTargetLUFS    = -16.0
	defaultVoicePeakDB        = -1.0
	defaultMusicTargetLUFS    = -26.0
	defaultSfxTargetLUFS      = -18.0
	defaultBenefitWordCap     = 6
	defaultMaxBenefits        = 2
	defaultBadgeSeconds       = 4.0
	defaultBenefitSeconds     = 3.0
	defaultWidth              = 1920
	defaultHeight             = 1080
	defaultZoomMinPercent     = 3.0
	defaultZoomMaxPercent     = 7.0
	defaultBitrateMinMbps     = 20
	defaultBitrateMaxMbps     = 40
	defaultImageSource        = "amazon"
	defaultTrendsRegion       = "US"
	defaultTrendsTimeoutSecs  = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Timing: Timing{
			WordsPerMinute:     defaultWordsPerMinute,
			FrameRate:          defaultFrameRate,
			AvatarIntroSeconds: defaultAvatarIntroSecs,
			VisualSliceSeconds: defaultVisualSliceSecs,
			MinVisualSeconds:   defaultMinVisualSecs,
		},
		Audio: Audio{
			VoiceTargetLUFS: defaultVoiceTargetLUFS,
			VoicePeakDB:     defaultVoicePeakDB,
			MusicTargetLUFS: defaultMusicTargetLUFS,
			SfxTargetLUFS:   defaultSfxTargetLUFS,
		},
		Overlays: Overlays{
			BenefitWordCap:        defaultBenefitWordCap,
			MaxBenefitsPerSegment: defaultMaxBenefits,
			BadgeSeconds:          defaultBadgeSeconds,
			BenefitSeconds:        defaultBenefitSeconds,
		},
		Export: Export{
			Width:          defaultWidth,
			Height:         defaultHeight,
			ZoomMinPercent: defaultZoomMinPercent,
			ZoomMaxPercent: defaultZoomMaxPercent,
			BitrateMinMbps: defaultBitrateMinMbps,
			BitrateMaxMbps: defaultBitrateMaxMbps,
		},
		Assets: Assets{
			DefaultImageSource: defaultImageSource,
		},
		Trends: Trends{
			Region:         defaultTrendsRegion,
			TimeoutSeconds: defaultTrendsTimeoutSecs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
