package parser

import (
	"strings"

	"github.com/dgallion1/deckgen/internal/slide"
)

// ParseRuns splits raw text into styled runs for bold (**x**), inline code
// (`x`) and italic (*x* or _x_). Concatenating the run texts reconstructs the
// input with delimiters removed. Matching is first-wins per scan position in
// the order bold, code, italic, so the asterisks of a doubled delimiter are
// never reinterpreted as single-asterisk italics. Unclosed delimiters stay
// literal, and formatting does not nest.
func ParseRuns(text string) []slide.StyledRun {
	var runs []slide.StyledRun
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			runs = append(runs, slide.StyledRun{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if strings.HasPrefix(text[i:], "**") {
			if end := closingIndex(text, i+2, "**"); end >= 0 {
				flushPlain()
				runs = append(runs, slide.StyledRun{Text: text[i+2 : end], Bold: true})
				i = end + 2
				continue
			}
			// No closer: both asterisks are literal, and neither may
			// later open an italic span.
			plain.WriteString("**")
			i += 2
			continue
		}
		if text[i] == '`' {
			if end := closingIndex(text, i+1, "`"); end >= 0 {
				flushPlain()
				runs = append(runs, slide.StyledRun{Text: text[i+1 : end], Code: true})
				i = end + 1
				continue
			}
		}
		if text[i] == '*' || text[i] == '_' {
			d := text[i : i+1]
			// A delimiter adjacent to its twin is part of a doubled
			// delimiter, never an italic opener.
			doubled := strings.HasPrefix(text[i+1:], d) || (i > 0 && text[i-1] == text[i])
			if !doubled {
				if end := closingIndex(text, i+1, d); end >= 0 {
					flushPlain()
					runs = append(runs, slide.StyledRun{Text: text[i+1 : end], Italic: true})
					i = end + 1
					continue
				}
			}
		}
		plain.WriteByte(text[i])
		i++
	}
	flushPlain()

	if len(runs) == 0 {
		runs = append(runs, slide.StyledRun{Text: text})
	}
	return runs
}

// closingIndex finds the closing delimiter at or after from, on the same
// line. Returns -1 when the delimiter is unclosed.
func closingIndex(text string, from int, delim string) int {
	rest := text[from:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	idx := strings.Index(rest, delim)
	if idx < 0 {
		return -1
	}
	return from + idx
}
