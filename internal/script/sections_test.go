package script

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseSectionsEmptyInput(t *testing.T) {
	sections := ParseSections("")
	if len(sections) != 0 {
		t.Fatalf("expected empty map, got %v", sections)
	}
}

func TestParseSectionsCaseInsensitive(t *testing.T) {
	upper := ParseSections("[HOOK]\nStop scrolling.")
	lower := ParseSections("[hook]\nStop scrolling.")
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("case sensitivity mismatch: %v vs %v", upper, lower)
	}
	if upper[SectionHook] != "Stop scrolling." {
		t.Fatalf("unexpected hook prose: %q", upper[SectionHook])
	}
}

func TestParseSectionsFullScript(t *testing.T) {
	text := strings.Join([]string{
		"intro chatter that precedes any marker",
		"[HOOK]",
		"These five gadgets blew up this year.",
		"",
		"[PRODUCT_5]",
		"Number five is the SonicBrush Pro.",
		"It cleans in half the time.",
		"[RETENTION_RESET]",
		"Wait for number one.",
		"[SPONSOR]",
		"this section is not recognized",
		"[CONCLUSION]",
		"Links below.",
	}, "\n")

	sections := ParseSections(text)
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d: %v", len(sections), sections)
	}
	if got := sections["product_5"]; got != "Number five is the SonicBrush Pro.\nIt cleans in half the time." {
		t.Errorf("product_5 prose = %q", got)
	}
	if _, ok := sections["sponsor"]; ok {
		t.Error("unrecognized marker should be dropped")
	}
	if sections[SectionConclusion] != "Links below." {
		t.Errorf("conclusion prose = %q", sections[SectionConclusion])
	}
}

func TestParseSectionsIdempotent(t *testing.T) {
	original := ParseSections(strings.Join([]string{
		"[HOOK]",
		"Hook line.",
		"[PRODUCT_5]",
		"Product five copy.",
		"[PRODUCT_4]",
		"Product four copy.",
		"[CONCLUSION]",
		"Outro copy.",
	}, "\n"))

	var rebuilt strings.Builder
	for _, key := range []string{SectionHook, "product_5", "product_4", SectionConclusion} {
		fmt.Fprintf(&rebuilt, "[%s]\n%s\n", strings.ToUpper(key), original[key])
	}

	reparsed := ParseSections(rebuilt.String())
	if !reflect.DeepEqual(original, reparsed) {
		t.Fatalf("re-parse mismatch:\noriginal: %v\nreparsed: %v", original, reparsed)
	}
}

func TestProductSection(t *testing.T) {
	if got := ProductSection(3); got != "product_3" {
		t.Fatalf("ProductSection(3) = %q", got)
	}
}
