package parser

import (
	"regexp"
	"strings"

	"github.com/dgallion1/deckgen/internal/slide"
)

// Patterns used by the block scanner.
var (
	commentPattern = regexp.MustCompile(`(?s)<!--\s*(.*?)\s*-->`)
	headingPattern = regexp.MustCompile(`^(#{1,6}) +(.*)$`)
	imagePattern   = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)`)
	orderedPattern = regexp.MustCompile(`^\d+\. +(.*)$`)
)

// parseState is the active block kind of the scanner. Exactly one state is
// active at a time; entering a new block flushes the previous accumulator.
type parseState int

const (
	stateIdle parseState = iota
	stateParagraph
	stateList
	stateTable
	stateCode
)

// slideParser accumulates one slide. All state is local to a single
// ParseSlide call.
type slideParser struct {
	s        *slide.Slide
	warnings []string

	state     parseState
	paragraph []string
	list      slide.List
	tableRaw  []string
	codeLang  string
	codeLines []string

	sawContent bool // a non-blank line has been processed
}

// ParseSlide parses one slide segment into a slide model. It is total: any
// input text yields a slide, with structural problems downgraded to warnings
// (returned alongside the slide) rather than errors.
func ParseSlide(segment string) (*slide.Slide, []string) {
	p := &slideParser{s: &slide.Slide{}}

	// Comment pre-pass: every HTML comment becomes speaker notes and is
	// removed from the visible text before block scanning.
	var notes []string
	for _, m := range commentPattern.FindAllStringSubmatch(segment, -1) {
		if note := strings.TrimSpace(m[1]); note != "" {
			notes = append(notes, note)
		}
	}
	p.s.Notes = strings.Join(notes, "\n\n")
	clean := commentPattern.ReplaceAllString(segment, "")

	lines := strings.Split(clean, "\n")
	for i, line := range lines {
		p.scanLine(line, lines[i+1:])
	}
	p.finish()

	return p.s, p.warnings
}

// scanLine dispatches one input line. rest is the remainder of the segment,
// used only for the blank-line lookahead that keeps lists open.
func (p *slideParser) scanLine(line string, rest []string) {
	trimmed := strings.TrimSpace(line)

	// Inside a code block every line is verbatim until the closing fence.
	if p.state == stateCode {
		if strings.HasPrefix(trimmed, "```") {
			p.flushCode()
			return
		}
		p.codeLines = append(p.codeLines, line)
		return
	}

	if trimmed == "" {
		p.flushParagraph()
		p.flushTable()
		// A blank line closes an open list only when the next non-blank
		// line is not itself a list item. Comment removal leaves blank
		// lines behind; this keeps such lists in one piece.
		if p.state == stateList && !nextNonBlankIsListItem(rest) {
			p.flushList()
		}
		return
	}

	first := !p.sawContent
	p.sawContent = true

	// Opening fence: flush everything and start capturing code.
	if strings.HasPrefix(trimmed, "```") {
		p.flushAll()
		p.state = stateCode
		p.codeLang = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		p.codeLines = nil
		return
	}

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		p.flushAll()
		level := len(m[1])
		text := strings.TrimSpace(m[2])
		if level <= 2 {
			if first {
				p.s.Title = text
				return
			}
			// A title heading past the start of the segment cannot be
			// the slide title anymore; keep it visible as a top-level
			// content heading instead of dropping it.
			level = 3
		}
		p.s.Body = append(p.s.Body, &slide.Heading{Level: level, Text: text})
		return
	}

	if m := imagePattern.FindStringSubmatch(trimmed); m != nil {
		p.flushAll()
		p.s.Body = append(p.s.Body, &slide.Image{Alt: m[1], Path: m[2]})
		return
	}

	if isTableRow(trimmed) || isTableSeparator(trimmed) {
		p.flushParagraph()
		p.flushList()
		p.state = stateTable
		p.tableRaw = append(p.tableRaw, line)
		return
	}
	// Any other line ends an open table.
	p.flushTable()

	if item, ordered, ok := listItem(trimmed); ok {
		p.flushParagraph()
		if p.state != stateList {
			p.state = stateList
			p.list = slide.List{Ordered: ordered}
		}
		p.list.Items = append(p.list.Items, item)
		return
	}

	// An indented line while in a list continues the previous item.
	if p.state == stateList && (line[0] == ' ' || line[0] == '\t') {
		if n := len(p.list.Items); n > 0 {
			p.list.Items[n-1] += " " + trimmed
			return
		}
	}
	p.flushList()

	p.state = stateParagraph
	p.paragraph = append(p.paragraph, trimmed)
}

// listItem strips a list marker, reporting the item text, whether the marker
// was ordered, and whether the line was a list item at all.
func listItem(trimmed string) (string, bool, bool) {
	if m := orderedPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1], true, true
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return strings.TrimSpace(trimmed[2:]), false, true
	}
	return "", false, false
}

func nextNonBlankIsListItem(rest []string) bool {
	for _, line := range rest {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		_, _, ok := listItem(trimmed)
		return ok
	}
	return false
}

func (p *slideParser) flushParagraph() {
	if len(p.paragraph) > 0 {
		p.s.Body = append(p.s.Body, &slide.Paragraph{Text: strings.Join(p.paragraph, " ")})
		p.paragraph = nil
	}
	if p.state == stateParagraph {
		p.state = stateIdle
	}
}

func (p *slideParser) flushList() {
	if len(p.list.Items) > 0 {
		l := p.list
		p.s.Body = append(p.s.Body, &l)
	}
	p.list = slide.List{}
	if p.state == stateList {
		p.state = stateIdle
	}
}

// flushTable hands the accumulated lines to the table builder. If the table
// cannot be parsed, each line is kept as a plain paragraph so the user's text
// is never dropped.
func (p *slideParser) flushTable() {
	if len(p.tableRaw) == 0 {
		if p.state == stateTable {
			p.state = stateIdle
		}
		return
	}
	t, err := ParseTable(p.tableRaw)
	if err != nil {
		p.warnings = append(p.warnings, "table fallback: "+err.Error())
		for _, line := range p.tableRaw {
			if s := strings.TrimSpace(line); s != "" {
				p.s.Body = append(p.s.Body, &slide.Paragraph{Text: s})
			}
		}
	} else {
		p.s.Body = append(p.s.Body, t)
	}
	p.tableRaw = nil
	if p.state == stateTable {
		p.state = stateIdle
	}
}

func (p *slideParser) flushCode() {
	p.s.Body = append(p.s.Body, &slide.CodeBlock{
		Language: p.codeLang,
		Code:     strings.Join(p.codeLines, "\n"),
	})
	p.codeLang = ""
	p.codeLines = nil
	p.state = stateIdle
}

func (p *slideParser) flushAll() {
	p.flushParagraph()
	p.flushList()
	p.flushTable()
}

// finish flushes whatever block is still open at the end of the segment. An
// unterminated code block is closed rather than discarded; a missing fence is
// an authoring mistake, not a reason to lose the code.
func (p *slideParser) finish() {
	if p.state == stateCode {
		p.warnings = append(p.warnings, "unclosed code block at end of slide")
		p.flushCode()
		return
	}
	p.flushAll()
}
