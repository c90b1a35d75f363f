package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTiming()
	c.normalizeOverlays()
	c.normalizeAssets()
	c.normalizeTrends()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTiming() {
	if c.Timing.WordsPerMinute <= 0 {
		c.Timing.WordsPerMinute = defaultWordsPerMinute
	}
	if c.Timing.FrameRate <= 0 {
		c.Timing.FrameRate = defaultFrameRate
	}
	if c.Timing.VisualSliceSeconds <= 0 {
		c.Timing.VisualSliceSeconds = defaultVisualSliceSecs
	}
	if c.Timing.MinVisualSeconds <= 0 {
		c.Timing.MinVisualSeconds = defaultMinVisualSecs
	}
}

func (c *Config) normalizeOverlays() {
	if c.Overlays.BenefitWordCap <= 0 {
		c.Overlays.BenefitWordCap = defaultBenefitWordCap
	}
	if c.Overlays.BadgeSeconds <= 0 {
		c.Overlays.BadgeSeconds = defaultBadgeSeconds
	}
	if c.Overlays.BenefitSeconds <= 0 {
		c.Overlays.BenefitSeconds = defaultBenefitSeconds
	}
}

func (c *Config) normalizeAssets() {
	c.Assets.DefaultImageSource = strings.ToLower(strings.TrimSpace(c.Assets.DefaultImageSource))
	if c.Assets.DefaultImageSource == "" {
		c.Assets.DefaultImageSource = defaultImageSource
	}
}

func (c *Config) normalizeTrends() {
	c.Trends.BaseURL = strings.TrimSpace(c.Trends.BaseURL)
	if c.Trends.APIKey == "" {
		if value, ok := os.LookupEnv("SLATE_TRENDS_API_KEY"); ok {
			c.Trends.APIKey = value
		}
	}
	if c.Trends.TimeoutSeconds <= 0 {
		c.Trends.TimeoutSeconds = defaultTrendsTimeoutSecs
	}
	if strings.TrimSpace(c.Trends.Region) == "" {
		c.Trends.Region = defaultTrendsRegion
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
