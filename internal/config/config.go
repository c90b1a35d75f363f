package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Timing contains the speech and pacing constants used when resolving the
// timeline. WordsPerMinute and FrameRate are part of the output contract with
// downstream editor tooling and should not normally be changed.
type Timing struct {
	WordsPerMinute     int     `toml:"words_per_minute"`
	FrameRate          int     `toml:"frame_rate"`
	AvatarIntroSeconds float64 `toml:"avatar_intro_seconds"`
	VisualSliceSeconds float64 `toml:"visual_slice_seconds"`
	MinVisualSeconds   float64 `toml:"min_visual_seconds"`
}

// Audio contains the loudness normalization targets written into the manifest.
type Audio struct {
	VoiceTargetLUFS float64 `toml:"voice_target_lufs"`
	VoicePeakDB     float64 `toml:"voice_peak_db"`
	MusicTargetLUFS float64 `toml:"music_target_lufs"`
	SfxTargetLUFS   float64 `toml:"sfx_target_lufs"`
}

// Overlays contains text overlay pacing and caps.
type Overlays struct {
	BenefitWordCap        int     `toml:"benefit_word_cap"`
	MaxBenefitsPerSegment int     `toml:"max_benefits_per_segment"`
	BadgeSeconds          float64 `toml:"badge_seconds"`
	BenefitSeconds        float64 `toml:"benefit_seconds"`
}

// Export contains the render geometry and delivery settings recorded in the
// edit notes for the editor.
type Export struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	ZoomMinPercent float64 `toml:"zoom_min_percent"`
	ZoomMaxPercent float64 `toml:"zoom_max_percent"`
	BitrateMinMbps int     `toml:"bitrate_min_mbps"`
	BitrateMaxMbps int     `toml:"bitrate_max_mbps"`
}

// Assets contains asset discovery behaviour.
type Assets struct {
	// DefaultImageSource is the bucket unclassified legacy product images
	// fall into: "amazon" or "dzine".
	DefaultImageSource string `toml:"default_image_source"`
}

// Trends contains configuration for the trending-products API client.
type Trends struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	Region         string `toml:"region"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for slate.
//
// Configuration sections by subsystem:
//   - Paths: log directory
//   - Timing: speaking rate, frame rate, and pacing constants
//   - Audio: loudness normalization targets
//   - Overlays: text overlay caps and durations
//   - Export: render geometry and delivery bitrate
//   - Assets: discovery behaviour knobs
//   - Trends: trending-products API client settings
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Timing   Timing   `toml:"timing"`
	Audio    Audio    `toml:"audio"`
	Overlays Overlays `toml:"overlays"`
	Export   Export   `toml:"export"`
	Assets   Assets   `toml:"assets"`
	Trends   Trends   `toml:"trends"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/slate/config.toml")
}

// Load locates, parses, and validates a configuration file. A .env file in
// the working directory is honoured before environment fallbacks are applied.
// The returned config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	_ = godotenv.Load()

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("slate.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates the directories slate writes into.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
		}
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
