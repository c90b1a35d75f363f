package manifest

import "slate/internal/assets"

type visualSource struct {
	file string
	kind string
}

// visualSources flattens a bucket into the candidate rotation: amazon images
// first, then AI-generated stills, then clips. An otherwise empty bucket
// falls back to a single shared background so the segment is never blank.
func visualSources(bucket assets.Bucket, backgrounds []string) []visualSource {
	var sources []visualSource
	for _, file := range bucket.Amazon {
		sources = append(sources, visualSource{file: file, kind: VisualImage})
	}
	for _, file := range bucket.Dzine {
		sources = append(sources, visualSource{file: file, kind: VisualImage})
	}
	for _, file := range bucket.Clips {
		sources = append(sources, visualSource{file: file, kind: VisualClip})
	}
	if len(sources) == 0 && len(backgrounds) > 0 {
		sources = append(sources, visualSource{file: backgrounds[0], kind: VisualBackground})
	}
	return sources
}

// AssignVisuals walks a segment's duration in fixed slices, cycling through
// the candidate sources round-robin. Stills rotate through the zoom-in /
// zoom-out / ken-burns treatments; clips stay static. The final slice is
// clipped to the segment end and dropped entirely when it would fall under
// the minimum visual length.
func AssignVisuals(startS, durationS float64, bucket assets.Bucket, backgrounds []string, prof Profile) []Visual {
	sources := visualSources(bucket, backgrounds)
	if len(sources) == 0 || durationS <= 0 {
		return nil
	}

	motions := []string{MotionZoomIn, MotionZoomOut, MotionKenBurns}
	var visuals []Visual
	sourceIdx := 0
	motionIdx := 0

	for offset := 0.0; offset < durationS; offset += prof.VisualSliceSeconds {
		sliceLen := prof.VisualSliceSeconds
		if remaining := durationS - offset; remaining < sliceLen {
			sliceLen = remaining
		}
		if sliceLen < prof.MinVisualSeconds {
			break
		}

		src := sources[sourceIdx%len(sources)]
		sourceIdx++

		motion := MotionStatic
		if src.kind != VisualClip {
			motion = motions[motionIdx%len(motions)]
			motionIdx++
		}

		visuals = append(visuals, Visual{
			StartS:    startS + offset,
			DurationS: sliceLen,
			File:      src.file,
			Type:      src.kind,
			Motion:    motion,
		})
	}

	return visuals
}
