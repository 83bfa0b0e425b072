package api

import (
	"github.com/dgallion1/deckgen/internal/slide"
)

// Wire representation of a compiled deck. Body items carry a type tag only
// at this boundary; inside the compiler they stay a closed sum type.
type deckJSON struct {
	Title    string      `json:"title,omitempty"`
	Slides   []slideJSON `json:"slides"`
	Warnings []string    `json:"warnings,omitempty"`
}

type slideJSON struct {
	Title string     `json:"title,omitempty"`
	Notes string     `json:"notes,omitempty"`
	Items []itemJSON `json:"items"`
}

type itemJSON struct {
	Type   string  `json:"type"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`

	Level      int        `json:"level,omitempty"`
	Text       string     `json:"text,omitempty"`
	Ordered    bool       `json:"ordered,omitempty"`
	Items      []string   `json:"items,omitempty"`
	HasHeader  bool       `json:"has_header,omitempty"`
	Headers    []string   `json:"headers,omitempty"`
	Rows       [][]string `json:"rows,omitempty"`
	Alignments []string   `json:"alignments,omitempty"`
	Language   string     `json:"language,omitempty"`
	Code       string     `json:"code,omitempty"`
	Path       string     `json:"path,omitempty"`
	Alt        string     `json:"alt,omitempty"`
}

func encodeDeck(d *slide.Deck) deckJSON {
	out := deckJSON{Title: d.Title, Warnings: d.Warnings, Slides: make([]slideJSON, 0, len(d.Slides))}
	for _, s := range d.Slides {
		sj := slideJSON{Title: s.Title, Notes: s.Notes, Items: make([]itemJSON, 0, len(s.Flow))}
		for _, p := range s.Flow {
			sj.Items = append(sj.Items, encodeItem(p))
		}
		out.Slides = append(out.Slides, sj)
	}
	return out
}

func encodeItem(p slide.Positioned) itemJSON {
	out := itemJSON{Top: p.Top, Height: p.Height}
	switch it := p.Item.(type) {
	case *slide.Heading:
		out.Type = "heading"
		out.Level = it.Level
		out.Text = it.Text
	case *slide.Paragraph:
		out.Type = "paragraph"
		out.Text = it.Text
	case *slide.List:
		out.Type = "list"
		out.Ordered = it.Ordered
		out.Items = it.Items
	case *slide.Table:
		out.Type = "table"
		out.HasHeader = it.HasHeader
		out.Headers = it.Headers
		out.Rows = it.Rows
		out.Alignments = make([]string, len(it.Alignments))
		for i, a := range it.Alignments {
			out.Alignments[i] = a.String()
		}
	case *slide.CodeBlock:
		out.Type = "code"
		out.Language = it.Language
		out.Code = it.Code
	case *slide.Image:
		out.Type = "image"
		out.Path = it.Path
		out.Alt = it.Alt
	}
	return out
}
