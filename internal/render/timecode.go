package render

import (
	"fmt"
	"math"
)

// Timecode renders seconds as an editor timecode (HH:MM:SS:FF) at the given
// frame rate. Negative input clamps to zero.
func Timecode(seconds float64, fps int) string {
	if seconds < 0 {
		seconds = 0
	}
	if fps <= 0 {
		fps = 30
	}
	totalFrames := int(math.Round(seconds * float64(fps)))
	frames := totalFrames % fps
	totalSeconds := totalFrames / fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d",
		totalSeconds/3600,
		(totalSeconds%3600)/60,
		totalSeconds%60,
		frames,
	)
}

// oneFrame is the duration placeholder used for marker rows.
func oneFrame(fps int) string {
	if fps <= 0 {
		fps = 30
	}
	return Timecode(1/float64(fps), fps)
}
