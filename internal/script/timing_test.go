package script

import "testing"

func TestWordsToSeconds(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{155, 60.0},
		{0, 0.0},
		{15, 5.8},
		{310, 120.0},
		{1, 0.4},
	}
	for _, tt := range tests {
		if got := WordsToSeconds(tt.words, 155); got != tt.want {
			t.Errorf("WordsToSeconds(%d, 155) = %v, want %v", tt.words, got, tt.want)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain", "five words are spoken here", 5},
		{"bracket direction", "hello [pause] world", 2},
		{"paren direction", "hello (beat) world", 2},
		{"empty", "", 0},
		{"only directions", "[pause] (beat)", 0},
		{"mixed whitespace", "  one\ttwo\nthree  ", 3},
		{"adjacent directions", "start [long pause](whisper) end", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
