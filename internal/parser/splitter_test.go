package parser

import (
	"strings"
	"testing"
)

func TestSplitSlides_Basic(t *testing.T) {
	input := "# Slide 1\n---\n# Slide 2\n---\n# Slide 3"
	segs := SplitSlides(input, "---")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d: %q", len(segs), segs)
	}
	if !strings.Contains(segs[1], "Slide 2") {
		t.Errorf("expected second segment to contain Slide 2, got %q", segs[1])
	}
}

func TestSplitSlides_TableSeparatorRowDoesNotSplit(t *testing.T) {
	input := "# Data\n| A | B |\n|---|---|\n| 1 | 2 |\n---\n# Next"
	segs := SplitSlides(input, "---")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %q", len(segs), segs)
	}
	if !strings.Contains(segs[0], "|---|---|") {
		t.Errorf("table separator row should stay inside the first segment, got %q", segs[0])
	}
}

func TestSplitSlides_SeparatorWithSurroundingWhitespace(t *testing.T) {
	input := "a\n  ---\t\nb"
	segs := SplitSlides(input, "---")
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d: %q", len(segs), segs)
	}
}

func TestSplitSlides_InlineDashesDoNotSplit(t *testing.T) {
	input := "pre --- post\nnext line"
	segs := SplitSlides(input, "---")
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d: %q", len(segs), segs)
	}
}

func TestSplitSlides_EdgeSeparatorsPreserveEmptySegments(t *testing.T) {
	segs := SplitSlides("---\nX\n---", "---")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d: %q", len(segs), segs)
	}
	if segs[0] != "" || strings.TrimSpace(segs[2]) != "" {
		t.Errorf("expected empty edge segments, got %q and %q", segs[0], segs[2])
	}
}

func TestSplitSlides_RejoinReconstructs(t *testing.T) {
	input := "# A\nbody a\n---\n# B\nbody b\n---\n# C"
	segs := SplitSlides(input, "---")
	if got := strings.Join(segs, "---"); got != input {
		t.Errorf("rejoined document differs:\ngot  %q\nwant %q", got, input)
	}
}

func TestSplitSlides_CustomSeparator(t *testing.T) {
	input := "a\n***\nb"
	if segs := SplitSlides(input, "***"); len(segs) != 2 {
		t.Fatalf("expected 2 segments with *** separator, got %d", len(segs))
	}
	if segs := SplitSlides(input, "---"); len(segs) != 1 {
		t.Fatalf("expected 1 segment with --- separator, got %d", len(segs))
	}
}

func TestCleanSegments(t *testing.T) {
	segs := CleanSegments([]string{"", "  \n ", " a ", "b"})
	if len(segs) != 2 || segs[0] != "a" || segs[1] != "b" {
		t.Errorf("unexpected cleaned segments: %q", segs)
	}
}
