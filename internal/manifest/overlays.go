package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AssignOverlays produces the text overlays and sound cues for one ranked
// segment: a whoosh transition at the segment start, exactly one rank badge
// and one lower third, then up to the configured number of benefit callouts,
// each paired with a click cue. Benefit text is silently truncated to the
// word cap. Overlay durations are clamped so nothing outlives the segment.
func AssignOverlays(startS, durationS float64, rank int, name string, benefits []string, sfxFiles []string, prof Profile) ([]Overlay, []SfxCue) {
	endS := startS + durationS
	var overlays []Overlay
	var cues []SfxCue

	if whoosh := pickSfx(sfxFiles, "whoosh"); whoosh != "" {
		cues = append(cues, SfxCue{
			TimeS: startS,
			File:  whoosh,
			Label: fmt.Sprintf("whoosh_segment_%d", rank),
		})
	}

	overlays = append(overlays, Overlay{
		TimeS:     startS,
		DurationS: clampSpan(startS, prof.BadgeSeconds, endS),
		Text:      fmt.Sprintf("#%d", rank),
		Type:      OverlayRankBadge,
		Position:  "top_left",
		Style:     "badge",
	})

	lowerThirdAt := startS + lowerThirdDelaySeconds
	if lowerThirdAt > endS {
		lowerThirdAt = endS
	}
	overlays = append(overlays, Overlay{
		TimeS:     lowerThirdAt,
		DurationS: clampSpan(lowerThirdAt, prof.BadgeSeconds, endS),
		Text:      name,
		Type:      OverlayLowerThird,
		Position:  "bottom",
		Style:     "lower_third",
	})

	click := pickSfx(sfxFiles, "click")
	at := startS + benefitStartOffset
	for i, benefit := range benefits {
		if i >= prof.MaxBenefitsPerSegment {
			break
		}
		if at >= endS {
			break
		}
		overlays = append(overlays, Overlay{
			TimeS:     at,
			DurationS: clampSpan(at, prof.BenefitSeconds, endS),
			Text:      truncateWords(benefit, prof.BenefitWordCap),
			Type:      OverlayBenefit,
			Position:  "right",
			Style:     "callout",
		})
		if click != "" {
			cues = append(cues, SfxCue{
				TimeS: at,
				File:  click,
				Label: fmt.Sprintf("click_benefit_%d_%d", rank, i+1),
			})
		}
		at += prof.BenefitSeconds
	}

	return overlays, cues
}

// pickSfx prefers a file whose name contains keyword, then the first file
// available, then nothing.
func pickSfx(files []string, keyword string) string {
	for _, file := range files {
		if strings.Contains(strings.ToLower(filepath.Base(file)), keyword) {
			return file
		}
	}
	if len(files) > 0 {
		return files[0]
	}
	return ""
}

// truncateWords caps text at limit words. Truncation is silent.
func truncateWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:limit], " ")
}

// clampSpan returns the longest duration starting at timeS that stays within
// endS, never negative.
func clampSpan(timeS, want, endS float64) float64 {
	if timeS >= endS {
		return 0
	}
	if timeS+want > endS {
		return endS - timeS
	}
	return want
}
