package script

import (
	"math"
	"regexp"
	"strings"
)

var (
	bracketDirections = regexp.MustCompile(`\[[^\]]*\]`)
	parenDirections   = regexp.MustCompile(`\([^)]*\)`)
)

// CountWords counts the spoken words in text. Stage directions written in
// square brackets or parentheses are stripped before counting; they are read
// by the editor, not the narrator.
func CountWords(text string) int {
	cleaned := bracketDirections.ReplaceAllString(text, " ")
	cleaned = parenDirections.ReplaceAllString(cleaned, " ")
	return len(strings.Fields(cleaned))
}

// WordsToSeconds estimates how long wordCount words take to narrate at the
// given speaking rate, rounded to one decimal place. Zero words is zero
// seconds. Callers must pass a positive rate.
func WordsToSeconds(wordCount, wordsPerMinute int) float64 {
	if wordCount <= 0 {
		return 0.0
	}
	seconds := float64(wordCount) / float64(wordsPerMinute) * 60.0
	return math.Round(seconds*10) / 10
}
