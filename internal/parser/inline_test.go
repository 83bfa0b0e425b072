package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/deckgen/internal/slide"
)

func TestParseRuns_Bold(t *testing.T) {
	runs := ParseRuns("**bold** text")
	want := []slide.StyledRun{
		{Text: "bold", Bold: true},
		{Text: " text"},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("got %+v, want %+v", runs, want)
	}
}

// Doubled asterisks must never be reinterpreted as italics.
func TestParseRuns_BoldIsNotItalic(t *testing.T) {
	for _, run := range ParseRuns("**bold**") {
		if run.Italic {
			t.Errorf("bold text produced an italic run: %+v", run)
		}
	}
}

func TestParseRuns_ItalicFormsAreEquivalent(t *testing.T) {
	star := ParseRuns("before *x* after")
	under := ParseRuns("before _x_ after")
	if !reflect.DeepEqual(star, under) {
		t.Errorf("asterisk and underscore italics differ:\n%+v\n%+v", star, under)
	}
	if len(star) != 3 || !star[1].Italic || star[1].Text != "x" {
		t.Errorf("unexpected runs %+v", star)
	}
}

func TestParseRuns_InlineCode(t *testing.T) {
	runs := ParseRuns("run `go build` now")
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %+v", runs)
	}
	if !runs[1].Code || runs[1].Text != "go build" {
		t.Errorf("unexpected code run %+v", runs[1])
	}
}

func TestParseRuns_UnclosedDelimitersAreLiteral(t *testing.T) {
	tests := []string{"**open", "*open", "_open", "`open", "a ** b"}
	for _, input := range tests {
		runs := ParseRuns(input)
		var got strings.Builder
		for _, r := range runs {
			if r.Bold || r.Italic || r.Code {
				t.Errorf("input %q: unexpected styled run %+v", input, r)
			}
			got.WriteString(r.Text)
		}
		if got.String() != input {
			t.Errorf("input %q: text mangled to %q", input, got.String())
		}
	}
}

func TestParseRuns_DoubledUnderscoreIsLiteral(t *testing.T) {
	runs := ParseRuns("__x__")
	var got strings.Builder
	for _, r := range runs {
		if r.Italic {
			t.Errorf("doubled underscore parsed as italic: %+v", r)
		}
		got.WriteString(r.Text)
	}
	if got.String() != "__x__" {
		t.Errorf("text mangled to %q", got.String())
	}
}

func TestParseRuns_NoNesting(t *testing.T) {
	runs := ParseRuns("**a *b* c**")
	if len(runs) != 1 {
		t.Fatalf("expected a single bold run, got %+v", runs)
	}
	if !runs[0].Bold || runs[0].Text != "a *b* c" {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

// Concatenating run texts reconstructs the input minus delimiters.
func TestParseRuns_Reconstruction(t *testing.T) {
	runs := ParseRuns("**b** and _i_ and `c` end")
	var got strings.Builder
	for _, r := range runs {
		got.WriteString(r.Text)
	}
	if got.String() != "b and i and c end" {
		t.Errorf("reconstructed %q", got.String())
	}
}

func TestParseRuns_PlainAndEmpty(t *testing.T) {
	runs := ParseRuns("no formatting")
	if len(runs) != 1 || runs[0].Text != "no formatting" || runs[0].Bold {
		t.Errorf("unexpected runs %+v", runs)
	}
	runs = ParseRuns("")
	if len(runs) != 1 || runs[0].Text != "" {
		t.Errorf("expected single empty run, got %+v", runs)
	}
}

func TestParseRuns_CloserMustBeOnSameLine(t *testing.T) {
	runs := ParseRuns("*a\nb*")
	for _, r := range runs {
		if r.Italic {
			t.Errorf("delimiter closed across a newline: %+v", r)
		}
	}
}
