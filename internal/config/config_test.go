package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestProfileCarriesContractValues(t *testing.T) {
	cfg := Default()
	prof := cfg.Profile()
	if prof.WordsPerMinute != 155 {
		t.Errorf("WordsPerMinute = %d, want 155", prof.WordsPerMinute)
	}
	if prof.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30", prof.FrameRate)
	}
	if prof.VoiceTargetLUFS != -16 || prof.VoicePeakDB != -1 {
		t.Errorf("voice targets = %v/%v, want -16/-1", prof.VoiceTargetLUFS, prof.VoicePeakDB)
	}
	if prof.MusicTargetLUFS != -26 || prof.SfxTargetLUFS != -18 {
		t.Errorf("music/sfx targets = %v/%v, want -26/-18", prof.MusicTargetLUFS, prof.SfxTargetLUFS)
	}
	if prof.BenefitWordCap != 6 || prof.MaxBenefitsPerSegment != 2 {
		t.Errorf("benefit caps = %d/%d, want 6/2", prof.BenefitWordCap, prof.MaxBenefitsPerSegment)
	}
	if prof.Width != 1920 || prof.Height != 1080 {
		t.Errorf("resolution = %dx%d, want 1920x1080", prof.Width, prof.Height)
	}
	if prof.ZoomMinPercent != 3 || prof.ZoomMaxPercent != 7 {
		t.Errorf("zoom range = %v-%v, want 3-7", prof.ZoomMinPercent, prof.ZoomMaxPercent)
	}
	if prof.BitrateMinMbps != 20 || prof.BitrateMaxMbps != 40 {
		t.Errorf("bitrate range = %d-%d, want 20-40", prof.BitrateMinMbps, prof.BitrateMaxMbps)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Timing.WordsPerMinute != 155 {
		t.Fatalf("expected default words_per_minute, got %d", cfg.Timing.WordsPerMinute)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[timing]\navatar_intro_seconds = 5.0\n\n[logging]\nformat = \"json\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected config to resolve, got exists=%v path=%q", exists, resolved)
	}
	if cfg.Timing.AvatarIntroSeconds != 5.0 {
		t.Errorf("avatar_intro_seconds = %v, want 5.0", cfg.Timing.AvatarIntroSeconds)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging.format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Timing.FrameRate != 30 {
		t.Errorf("unset field lost default: frame_rate = %d", cfg.Timing.FrameRate)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"avatar intro out of range", func(c *Config) { c.Timing.AvatarIntroSeconds = 9 }},
		{"zoom range inverted", func(c *Config) { c.Export.ZoomMinPercent = 8 }},
		{"bitrate range inverted", func(c *Config) { c.Export.BitrateMinMbps = 50 }},
		{"unknown image source", func(c *Config) { c.Assets.DefaultImageSource = "etsy" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
