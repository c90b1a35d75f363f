package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTiming(); err != nil {
		return err
	}
	if err := c.validateOverlays(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateAssets(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTiming() error {
	if c.Timing.WordsPerMinute <= 0 {
		return errors.New("timing.words_per_minute must be positive")
	}
	if c.Timing.FrameRate <= 0 {
		return errors.New("timing.frame_rate must be positive")
	}
	if c.Timing.AvatarIntroSeconds < 3 || c.Timing.AvatarIntroSeconds > 5 {
		return errors.New("timing.avatar_intro_seconds must be between 3 and 5")
	}
	if c.Timing.MinVisualSeconds > c.Timing.VisualSliceSeconds {
		return errors.New("timing.min_visual_seconds must not exceed timing.visual_slice_seconds")
	}
	return nil
}

func (c *Config) validateOverlays() error {
	if c.Overlays.BenefitWordCap <= 0 {
		return errors.New("overlays.benefit_word_cap must be positive")
	}
	if c.Overlays.MaxBenefitsPerSegment < 0 {
		return errors.New("overlays.max_benefits_per_segment must not be negative")
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return errors.New("export.width and export.height must be positive")
	}
	if c.Export.ZoomMinPercent > c.Export.ZoomMaxPercent {
		return errors.New("export.zoom_min_percent must not exceed export.zoom_max_percent")
	}
	if c.Export.BitrateMinMbps > c.Export.BitrateMaxMbps {
		return errors.New("export.bitrate_min_mbps must not exceed export.bitrate_max_mbps")
	}
	return nil
}

func (c *Config) validateAssets() error {
	switch c.Assets.DefaultImageSource {
	case "amazon", "dzine":
		return nil
	default:
		return fmt.Errorf("assets.default_image_source must be %q or %q", "amazon", "dzine")
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q", "console", "json")
	}
	return nil
}
