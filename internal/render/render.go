// Package render is a terminal preview backend for compiled decks. It
// consumes the positioned slide model and draws styled runs, native table
// grids and colored code tokens with ANSI attributes.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/dgallion1/deckgen/internal/colors"
	"github.com/dgallion1/deckgen/internal/parser"
	"github.com/dgallion1/deckgen/internal/slide"
)

// Renderer writes a text preview of a deck.
type Renderer struct {
	Theme colors.Theme
}

// New returns a renderer with the default syntax theme.
func New() *Renderer {
	return &Renderer{Theme: colors.DefaultTheme()}
}

// RenderDeck writes every slide of the deck to w.
func (r *Renderer) RenderDeck(w io.Writer, deck *slide.Deck) error {
	for i, s := range deck.Slides {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.RenderSlide(w, i+1, s); err != nil {
			return fmt.Errorf("render slide %d: %w", i+1, err)
		}
	}
	return nil
}

// RenderSlide writes one slide. Items are drawn in flow order; when the
// slide has not been laid out, the raw body order is used instead.
func (r *Renderer) RenderSlide(w io.Writer, num int, s *slide.Slide) error {
	header := fmt.Sprintf("[%d] %s", num, s.Title)
	if s.Title == "" {
		header = fmt.Sprintf("[%d]", num)
	}
	color.New(color.Bold).Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("=", runewidth.StringWidth(header)))

	items := s.Body
	if len(s.Flow) > 0 {
		items = make([]slide.BodyItem, len(s.Flow))
		for i, p := range s.Flow {
			items[i] = p.Item
		}
	}

	for _, item := range items {
		switch it := item.(type) {
		case *slide.Heading:
			color.New(color.Bold, color.Underline).Fprintln(w, it.Text)
		case *slide.Paragraph:
			r.writeRuns(w, it.Text)
			fmt.Fprintln(w)
		case *slide.List:
			for i, entry := range it.Items {
				if it.Ordered {
					fmt.Fprintf(w, "%d. ", i+1)
				} else {
					fmt.Fprint(w, "- ")
				}
				r.writeRuns(w, entry)
				fmt.Fprintln(w)
			}
		case *slide.Table:
			r.writeTable(w, it)
		case *slide.CodeBlock:
			r.writeCode(w, it)
		case *slide.Image:
			fmt.Fprintf(w, "[image: %s (%s)]\n", it.Alt, it.Path)
		}
	}

	if s.Notes != "" {
		color.New(color.Faint).Fprintf(w, "notes: %s\n", strings.ReplaceAll(s.Notes, "\n\n", " | "))
	}
	return nil
}

// writeRuns resolves inline formatting on demand and draws each run with its
// attributes.
func (r *Renderer) writeRuns(w io.Writer, raw string) {
	for _, run := range parser.ParseRuns(raw) {
		switch {
		case run.Code:
			color.New(color.FgCyan).Fprint(w, run.Text)
		case run.Bold:
			color.New(color.Bold).Fprint(w, run.Text)
		case run.Italic:
			color.New(color.Italic).Fprint(w, run.Text)
		default:
			fmt.Fprint(w, run.Text)
		}
	}
}

func (r *Renderer) writeTable(w io.Writer, t *slide.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	cfgs := make([]table.ColumnConfig, len(t.Alignments))
	for i, a := range t.Alignments {
		align := text.AlignLeft
		switch a {
		case slide.AlignCenter:
			align = text.AlignCenter
		case slide.AlignRight:
			align = text.AlignRight
		}
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: align}
	}
	tw.SetColumnConfigs(cfgs)

	if t.HasHeader {
		tw.AppendHeader(toRow(t.Headers))
	}
	for _, row := range t.Rows {
		tw.AppendRow(toRow(row))
	}
	tw.Render()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

// writeCode draws the token stream with the per-kind theme colors.
func (r *Renderer) writeCode(w io.Writer, cb *slide.CodeBlock) {
	lang := cb.Language
	if lang == "" {
		lang = "text"
	}
	color.New(color.Faint).Fprintf(w, "--- %s ---\n", lang)
	for _, tok := range parser.Tokenize(cb.Code, cb.Language) {
		if c, ok := r.Theme[tok.Kind]; ok && tok.Kind != slide.TokenDefault {
			color.RGB(int(c.R), int(c.G), int(c.B)).Fprint(w, tok.Text)
		} else {
			fmt.Fprint(w, tok.Text)
		}
	}
	fmt.Fprintln(w)
	color.New(color.Faint).Fprintln(w, "---")
}
