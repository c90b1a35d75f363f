package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const microChunkPrefix = "micro_"

// Discover scans projectDir with default options.
func Discover(projectDir string) Library {
	return DiscoverWithOptions(projectDir, Options{})
}

// DiscoverWithOptions scans a project directory and classifies everything it
// finds. Discovery is read-only existence probing; file contents are never
// opened. Each asset class is resolved through an ordered list of layout
// probes (current convention first, then the legacy layout), and a probe that
// finds nothing simply yields the zero value.
func DiscoverWithOptions(projectDir string, opts Options) Library {
	if strings.TrimSpace(opts.DefaultImageSource) == "" {
		opts.DefaultImageSource = "amazon"
	}

	lib := Library{
		ProjectDir: projectDir,
		Products:   make(map[int]Bucket, 5),
	}

	lib.Voiceover = firstExisting(projectDir,
		"audio/voiceover.wav",
		"audio/voiceover.mp3",
		"audio/voiceover.aac",
	)
	lib.VoiceChunks = discoverVoiceChunks(projectDir)
	lib.AvatarIntroAudio = firstExisting(projectDir,
		"audio/avatar_intro.wav",
		"audio/avatar_intro.mp3",
		"audio/avatar.wav",
		"audio/avatar.mp3",
	)
	lib.AvatarIntroVideo = firstExisting(projectDir,
		"assets/dzine/avatar_intro.mp4",
		"visuals/avatar_intro.mp4",
	)
	lib.MusicBed = firstExisting(projectDir,
		"audio/music_bed.wav",
		"audio/music_bed.mp3",
		"audio/music.wav",
		"audio/music.mp3",
	)
	lib.Thumbnail = firstExisting(projectDir,
		"assets/dzine/thumbnail.png",
		"visuals/thumbnail.png",
	)
	lib.Backgrounds = firstDirListing(projectDir, imageExts,
		"assets/backgrounds",
		"visuals/backgrounds",
	)
	lib.SFX = firstDirListing(projectDir, audioExts,
		"audio/sfx",
		"sfx",
	)

	for rank := 1; rank <= 5; rank++ {
		lib.Products[rank] = discoverBucket(projectDir, rank, opts)
	}

	return lib
}

var (
	imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
	audioExts = map[string]bool{".wav": true, ".mp3": true, ".aac": true, ".ogg": true}
	clipExts  = map[string]bool{".mp4": true, ".mov": true}
)

func discoverVoiceChunks(projectDir string) []string {
	for _, dir := range []string{"audio/voice/chunks", "audio/chunks"} {
		if !dirExists(projectDir, dir) {
			continue
		}
		var chunks []string
		for _, rel := range listFiles(projectDir, dir, audioExts) {
			if strings.HasPrefix(filepath.Base(rel), microChunkPrefix) {
				continue
			}
			chunks = append(chunks, rel)
		}
		return chunks
	}
	return nil
}

// discoverBucket resolves one rank's product media. Current-layout probes run
// first: the dzine per-rank flat file, then rank-prefixed scans of the shared
// amazon, dzine products, and clips folders. When none of those produce
// anything the legacy per-rank subdirectory is classified by filename.
func discoverBucket(projectDir string, rank int, opts Options) Bucket {
	prefix := fmt.Sprintf("%02d", rank)
	var bucket Bucket

	for _, rel := range listFiles(projectDir, "assets/amazon", imageExts) {
		if matchesRank(rel, prefix) {
			bucket.Amazon = append(bucket.Amazon, rel)
		}
	}
	for _, rel := range listFiles(projectDir, "assets/dzine/products", imageExts) {
		if matchesRank(rel, prefix) {
			bucket.Dzine = append(bucket.Dzine, rel)
		}
	}
	for _, rel := range listFiles(projectDir, "assets/clips", clipExts) {
		if matchesRank(rel, prefix) {
			bucket.Clips = append(bucket.Clips, rel)
		}
	}
	if !bucket.Empty() {
		return bucket
	}

	return legacyBucket(projectDir, prefix, opts)
}

func legacyBucket(projectDir, prefix string, opts Options) Bucket {
	var bucket Bucket
	dir := filepath.Join("visuals", "products", prefix)

	for _, rel := range listFiles(projectDir, dir, imageExts) {
		stem := fileStem(rel)
		switch {
		case strings.Contains(stem, "amazon"):
			bucket.Amazon = append(bucket.Amazon, rel)
		case strings.Contains(stem, "dzine"):
			bucket.Dzine = append(bucket.Dzine, rel)
		case opts.DefaultImageSource == "dzine":
			bucket.Dzine = append(bucket.Dzine, rel)
		default:
			bucket.Amazon = append(bucket.Amazon, rel)
		}
	}
	bucket.Clips = listFiles(projectDir, filepath.Join(dir, "clips"), clipExts)

	return bucket
}

// matchesRank reports whether the file belongs to the rank with the given
// two-digit prefix. Only an exact stem match or a "<prefix>_" lead-in counts,
// so 05_hero.png never bleeds into rank 4 and 05.png stays distinct from
// 05_hero.png ownership checks.
func matchesRank(rel, prefix string) bool {
	stem := fileStem(rel)
	return stem == prefix || strings.HasPrefix(stem, prefix+"_")
}

func fileStem(rel string) string {
	base := filepath.Base(rel)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// firstExisting returns the first candidate (relative path) that exists as a
// regular file, or an empty string.
func firstExisting(projectDir string, candidates ...string) string {
	for _, rel := range candidates {
		info, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(rel)))
		if err == nil && !info.IsDir() {
			return filepath.FromSlash(rel)
		}
	}
	return ""
}

// firstDirListing returns the sorted contents of the first candidate
// directory that exists, filtered by extension.
func firstDirListing(projectDir string, exts map[string]bool, candidates ...string) []string {
	for _, dir := range candidates {
		if dirExists(projectDir, dir) {
			return listFiles(projectDir, dir, exts)
		}
	}
	return nil
}

func dirExists(projectDir, rel string) bool {
	info, err := os.Stat(filepath.Join(projectDir, filepath.FromSlash(rel)))
	return err == nil && info.IsDir()
}

// listFiles returns relative paths of the regular files directly inside dir
// whose extension is in exts, sorted by name. A missing directory yields nil.
func listFiles(projectDir, dir string, exts map[string]bool) []string {
	entries, err := os.ReadDir(filepath.Join(projectDir, filepath.FromSlash(dir)))
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !exts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		files = append(files, filepath.Join(filepath.FromSlash(dir), entry.Name()))
	}
	sort.Strings(files)
	return files
}
