package assets

// Bucket holds the classified product media for one ranked item. Paths are
// relative to the project directory.
type Bucket struct {
	Amazon []string `json:"amazon,omitempty"`
	Dzine  []string `json:"dzine,omitempty"`
	Clips  []string `json:"clips,omitempty"`
}

// Empty reports whether the bucket holds no media at all.
func (b Bucket) Empty() bool {
	return len(b.Amazon) == 0 && len(b.Dzine) == 0 && len(b.Clips) == 0
}

// Library is the result of one discovery pass over a project directory.
// Every path is relative to ProjectDir; absent assets are empty strings or
// empty slices, never errors.
type Library struct {
	ProjectDir       string         `json:"project_dir"`
	Voiceover        string         `json:"voiceover,omitempty"`
	VoiceChunks      []string       `json:"voice_chunks,omitempty"`
	AvatarIntroAudio string         `json:"avatar_intro_audio,omitempty"`
	AvatarIntroVideo string         `json:"avatar_intro_video,omitempty"`
	MusicBed         string         `json:"music_bed,omitempty"`
	Thumbnail        string         `json:"thumbnail,omitempty"`
	Backgrounds      []string       `json:"backgrounds,omitempty"`
	SFX              []string       `json:"sfx,omitempty"`
	Products         map[int]Bucket `json:"products"`
}

// Options adjusts discovery behaviour.
type Options struct {
	// DefaultImageSource is the bucket ("amazon" or "dzine") that legacy
	// product images without a classifying filename fall into.
	DefaultImageSource string
}
