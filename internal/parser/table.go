package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dgallion1/deckgen/internal/slide"
)

// ErrEmptyTable is reported when ParseTable is given no lines. It is the only
// table error; callers fall back to plain paragraphs rather than failing.
var ErrEmptyTable = errors.New("table: no rows")

var (
	separatorCell = regexp.MustCompile(`^:?-{3,}:?$`)
	dashColonOnly = regexp.MustCompile(`^[:\- ]+$`)
)

// isTableRow reports whether a stripped line is a markdown table content row:
// it contains a pipe, splits into at least two cells, and at least one cell
// holds content that is not just dashes and colons.
func isTableRow(line string) bool {
	if line == "" || !strings.Contains(line, "|") {
		return false
	}
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	// Outer pipes produce empty edge cells.
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if len(cells) < 2 {
		return false
	}
	for _, c := range cells {
		if c != "" && !dashColonOnly.MatchString(c) {
			return true
		}
	}
	return false
}

// isTableSeparator reports whether a stripped line is an alignment row such
// as "|---|---|" or ":---|:---:|---:".
func isTableSeparator(line string) bool {
	if line == "" {
		return false
	}
	tmp := strings.TrimPrefix(line, "|")
	tmp = strings.TrimSuffix(tmp, "|")
	parts := strings.Split(tmp, "|")
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if !separatorCell.MatchString(strings.TrimSpace(p)) {
			return false
		}
	}
	return true
}

// splitTableRow splits a row into trimmed cells, dropping one leading and one
// trailing pipe if present.
func splitTableRow(line string) []string {
	row := strings.TrimSpace(line)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// parseAlignments reads column alignments from a separator row: ":x:" is
// center, "x:" is right, everything else left.
func parseAlignments(separator string) []slide.Alignment {
	cells := splitTableRow(separator)
	out := make([]slide.Alignment, len(cells))
	for i, c := range cells {
		switch {
		case strings.HasPrefix(c, ":") && strings.HasSuffix(c, ":"):
			out[i] = slide.AlignCenter
		case strings.HasSuffix(c, ":"):
			out[i] = slide.AlignRight
		default:
			out[i] = slide.AlignLeft
		}
	}
	return out
}

// ParseTable builds a table model from accumulated raw table lines. A
// separator row preceded by at least one row marks that row as the header;
// without a separator every line is data with no header and left alignment.
// Headers, alignments and rows are padded to a common column count; cell
// content is never truncated or dropped.
func ParseTable(lines []string) (*slide.Table, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyTable
	}

	sepIdx := -1
	for i, line := range lines {
		if isTableSeparator(strings.TrimSpace(line)) {
			sepIdx = i
			break
		}
	}

	t := &slide.Table{}
	var dataLines []string
	switch {
	case sepIdx < 0:
		dataLines = lines
	case sepIdx == 0:
		// Separator first: no header row to take.
		t.Alignments = parseAlignments(lines[0])
		dataLines = lines[1:]
	default:
		t.HasHeader = true
		t.Headers = splitTableRow(lines[sepIdx-1])
		t.Alignments = parseAlignments(lines[sepIdx])
		// Rows before the header (unusual) are kept as leading data.
		dataLines = append(append([]string{}, lines[:sepIdx-1]...), lines[sepIdx+1:]...)
	}

	for _, line := range dataLines {
		s := strings.TrimSpace(line)
		if s == "" || isTableSeparator(s) {
			continue
		}
		t.Rows = append(t.Rows, splitTableRow(line))
	}

	// Normalize column counts: pad, never drop.
	cols := len(t.Headers)
	if len(t.Alignments) > cols {
		cols = len(t.Alignments)
	}
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		cols = 1
	}
	if t.HasHeader {
		for len(t.Headers) < cols {
			t.Headers = append(t.Headers, "")
		}
	}
	for len(t.Alignments) < cols {
		t.Alignments = append(t.Alignments, slide.AlignLeft)
	}
	for i, row := range t.Rows {
		for len(row) < cols {
			row = append(row, "")
		}
		t.Rows[i] = row
	}

	return t, nil
}
