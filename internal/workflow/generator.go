package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"slate/internal/assets"
	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/manifest"
	"slate/internal/render"
)

const (
	scriptFile   = "script.txt"
	manifestFile = "manifest.json"
	markersFile  = "markers.csv"
	notesFile    = "edit_notes.md"
	lockFile     = ".slate.lock"
)

// ErrProjectBusy reports that another generation run holds the project lock.
var ErrProjectBusy = errors.New("project is locked by another slate process")

// Options adjusts a single generation run.
type Options struct {
	// ScriptPath overrides the conventional script.txt location. Relative
	// paths resolve against the project directory.
	ScriptPath string
	// Title overrides the video title. When empty the overrides sidecar is
	// consulted, then the project directory name.
	Title string
}

// Result summarizes one completed generation run.
type Result struct {
	ManifestID     string
	Title          string
	ManifestPath   string
	MarkersPath    string
	NotesPath      string
	Segments       int
	TotalDurationS float64
}

// Generator turns a project directory into the three edit-plan artifacts.
type Generator struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewGenerator wires a generator with its configuration and logger.
func NewGenerator(cfg *config.Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate reads the project script, discovers assets, builds the manifest,
// and writes manifest.json, markers.csv and edit_notes.md into the project
// directory. The project is locked for the duration of the run so concurrent
// invocations cannot interleave writes.
func (g *Generator) Generate(ctx context.Context, projectDir string, opts Options) (Result, error) {
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return Result{}, fmt.Errorf("resolve project dir: %w", err)
	}
	info, err := os.Stat(projectDir)
	if err != nil {
		return Result{}, fmt.Errorf("stat project dir: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%s is not a directory", projectDir)
	}

	lock := flock.New(filepath.Join(projectDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return Result{}, fmt.Errorf("lock project: %w", err)
	}
	if !locked {
		return Result{}, ErrProjectBusy
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	scriptText, err := g.readScript(projectDir, opts.ScriptPath)
	if err != nil {
		return Result{}, err
	}

	overrides, err := LoadOverrides(projectDir)
	if err != nil {
		return Result{}, err
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = strings.TrimSpace(overrides.Title)
	}
	if title == "" {
		title = filepath.Base(projectDir)
	}

	library := assets.DiscoverWithOptions(projectDir, assets.Options{
		DefaultImageSource: g.cfg.Assets.DefaultImageSource,
	})
	g.logger.Info("assets discovered",
		logging.String("project", projectDir),
		logging.Bool("voiceover", library.Voiceover != ""),
		logging.Bool("music", library.MusicBed != ""),
		logging.Int("sfx", len(library.SFX)))

	m := manifest.Build(manifest.Inputs{
		ID:            uuid.NewString(),
		Title:         title,
		ScriptText:    scriptText,
		Library:       library,
		ProductNames:  overrides.productNames(),
		Benefits:      overrides.benefits(),
		SignatureLine: overrides.Signature,
	}, g.cfg.Profile())

	res := Result{
		ManifestID:     m.ID,
		Title:          m.Title,
		ManifestPath:   filepath.Join(projectDir, manifestFile),
		MarkersPath:    filepath.Join(projectDir, markersFile),
		NotesPath:      filepath.Join(projectDir, notesFile),
		Segments:       len(m.Segments),
		TotalDurationS: m.TotalDurationS,
	}

	jsonBytes, err := render.JSON(m)
	if err != nil {
		return Result{}, fmt.Errorf("render manifest: %w", err)
	}
	csvText, err := render.MarkersCSV(m)
	if err != nil {
		return Result{}, fmt.Errorf("render markers: %w", err)
	}
	notesText := render.Notes(m)

	if err := writeArtifact(res.ManifestPath, jsonBytes); err != nil {
		return Result{}, err
	}
	if err := writeArtifact(res.MarkersPath, []byte(csvText)); err != nil {
		return Result{}, err
	}
	if err := writeArtifact(res.NotesPath, []byte(notesText)); err != nil {
		return Result{}, err
	}

	g.logger.Info("edit plan generated",
		logging.String("manifest_id", m.ID),
		logging.String("title", m.Title),
		logging.Int("segments", res.Segments),
		logging.Float64("total_duration_s", res.TotalDurationS))

	return res, nil
}

func (g *Generator) readScript(projectDir, override string) (string, error) {
	path := strings.TrimSpace(override)
	if path == "" {
		path = scriptFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}

func writeArtifact(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("finalize %s: %w", filepath.Base(path), err)
	}
	return nil
}
