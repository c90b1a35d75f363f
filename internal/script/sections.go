package script

import (
	"fmt"
	"regexp"
	"strings"
)

// Canonical section keys produced by ParseSections.
const (
	SectionHook           = "hook"
	SectionAvatarIntro    = "avatar_intro"
	SectionRetentionReset = "retention_reset"
	SectionConclusion     = "conclusion"
)

// ProductSection returns the canonical key for the ranked product section,
// e.g. ProductSection(5) == "product_5".
func ProductSection(rank int) string {
	return fmt.Sprintf("product_%d", rank)
}

var sectionMarkers = map[string]string{
	"HOOK":            SectionHook,
	"AVATAR_INTRO":    SectionAvatarIntro,
	"PRODUCT_5":       "product_5",
	"PRODUCT_4":       "product_4",
	"PRODUCT_3":       "product_3",
	"PRODUCT_2":       "product_2",
	"PRODUCT_1":       "product_1",
	"RETENTION_RESET": SectionRetentionReset,
	"CONCLUSION":      SectionConclusion,
}

var markerLine = regexp.MustCompile(`^\[([A-Za-z0-9_]+)\]$`)

// ParseSections splits a marker-delimited narration script into named prose
// blocks. Markers are bracketed, case-insensitive, and must sit alone on
// their line. Text before the first marker and sections under unrecognized
// markers are dropped. Empty input yields an empty map.
func ParseSections(text string) map[string]string {
	sections := make(map[string]string)
	current := ""
	var body []string

	flush := func() {
		if current == "" {
			return
		}
		sections[current] = strings.TrimSpace(strings.Join(body, "\n"))
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if match := markerLine.FindStringSubmatch(trimmed); match != nil {
			if key, ok := sectionMarkers[strings.ToUpper(match[1])]; ok {
				flush()
				current = key
				body = body[:0]
				continue
			}
			// Unrecognized markers start an ignored region.
			flush()
			current = ""
			body = body[:0]
			continue
		}
		if current != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}
