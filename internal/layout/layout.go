// Package layout assigns vertical geometry to slide body items. There is no
// real text measurement available, so heights come from character-count
// estimates; the estimators only ever need to be pessimistic enough that
// stacked items never overlap.
package layout

import (
	"math"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"

	"github.com/dgallion1/deckgen/internal/slide"
)

// Geometry is the immutable layout configuration threaded into Flow. All
// distances are inches on a 10 x 7.5 slide.
type Geometry struct {
	SlideWidth   float64
	SlideHeight  float64
	ContentLeft  float64
	ContentTop   float64
	ContentWidth float64
	TitleHeight  float64 // space reserved when the slide has a title

	TextLineHeight   float64
	TextMinHeight    float64
	TextCharsPerLine int

	ListLineHeight   float64
	ListCharsPerLine int

	TableHeaderHeight float64
	TableRowHeight    float64

	CodeLineHeight float64
	CodeMinHeight  float64
	CodeMaxHeight  float64

	ImageHeight float64

	Gap     float64 // between items of different kinds
	GapSame float64 // between consecutive items of the same kind
}

// DefaultGeometry returns the standard 10x7.5in slide geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		SlideWidth:   10.0,
		SlideHeight:  7.5,
		ContentLeft:  0.5,
		ContentTop:   0.5,
		ContentWidth: 9.0,
		TitleHeight:  1.2,

		TextLineHeight:   0.3,
		TextMinHeight:    0.3,
		TextCharsPerLine: 85,

		ListLineHeight:   0.3,
		ListCharsPerLine: 80,

		TableHeaderHeight: 0.4,
		TableRowHeight:    0.35,

		CodeLineHeight: 0.25,
		CodeMinHeight:  1.0,
		CodeMaxHeight:  4.0,

		ImageHeight: 3.0,

		Gap:     0.3,
		GapSame: 0.15,
	}
}

// imageDPI converts probed pixel dimensions to inches. Images wider than the
// content area are scaled down proportionally; unknown dimensions fall back
// to Geometry.ImageHeight.
const imageDPI = 96.0

// headingMetrics returns wrap width and line height for a content heading
// level. Larger headings fit fewer characters per line and use taller lines.
func headingMetrics(level int) (charsPerLine int, lineHeight float64) {
	switch level {
	case 3:
		return 55, 0.5
	case 4:
		return 62, 0.45
	case 5:
		return 70, 0.4
	default:
		return 76, 0.35
	}
}

// Flow stacks the slide body top to bottom, assigning each item a top offset
// and an estimated height. For any i < j in the result,
// top_i + height_i <= top_j.
func Flow(s *slide.Slide, geom Geometry) []slide.Positioned {
	top := geom.ContentTop
	if s.Title != "" {
		top += geom.TitleHeight
	}

	out := make([]slide.Positioned, 0, len(s.Body))
	for i, item := range s.Body {
		if i > 0 {
			if sameKind(s.Body[i-1], item) {
				top += geom.GapSame
			} else {
				top += geom.Gap
			}
		}
		h := itemHeight(item, geom)
		out = append(out, slide.Positioned{Item: item, Top: top, Height: h})
		top += h
	}
	return out
}

// Overflows reports whether a laid-out body extends past the bottom of the
// slide. Overflow is reported, never silently clipped.
func Overflows(flow []slide.Positioned, geom Geometry) bool {
	if len(flow) == 0 {
		return false
	}
	last := flow[len(flow)-1]
	return last.Top+last.Height > geom.SlideHeight-geom.ContentTop
}

func itemHeight(item slide.BodyItem, geom Geometry) float64 {
	switch it := item.(type) {
	case *slide.Heading:
		chars, lineH := headingMetrics(it.Level)
		h := float64(wrapLines(it.Text, chars)) * lineH
		return math.Max(h, lineH)
	case *slide.Paragraph:
		h := float64(wrapLines(it.Text, geom.TextCharsPerLine)) * geom.TextLineHeight
		return math.Max(h, geom.TextMinHeight)
	case *slide.List:
		var lines int
		for _, item := range it.Items {
			lines += wrapLines(item, geom.ListCharsPerLine)
		}
		return math.Max(float64(lines)*geom.ListLineHeight, geom.ListLineHeight)
	case *slide.Table:
		h := float64(len(it.Rows)) * geom.TableRowHeight
		if it.HasHeader {
			h += geom.TableHeaderHeight
		}
		return math.Max(h, geom.TableRowHeight)
	case *slide.CodeBlock:
		lines := 1
		for _, c := range it.Code {
			if c == '\n' {
				lines++
			}
		}
		h := float64(lines) * geom.CodeLineHeight
		return math.Min(math.Max(h, geom.CodeMinHeight), geom.CodeMaxHeight)
	case *slide.Image:
		if it.Width > 0 && it.Height > 0 {
			w := float64(it.Width) / imageDPI
			h := float64(it.Height) / imageDPI
			if w > geom.ContentWidth {
				h *= geom.ContentWidth / w
			}
			return h
		}
		return geom.ImageHeight
	}
	return geom.TextMinHeight
}

// sameKind reports whether two body items are the same block kind; the gap
// between homogeneous neighbors is smaller.
func sameKind(a, b slide.BodyItem) bool {
	switch a.(type) {
	case *slide.Heading:
		_, ok := b.(*slide.Heading)
		return ok
	case *slide.Paragraph:
		_, ok := b.(*slide.Paragraph)
		return ok
	case *slide.List:
		_, ok := b.(*slide.List)
		return ok
	case *slide.Table:
		_, ok := b.(*slide.Table)
		return ok
	case *slide.CodeBlock:
		_, ok := b.(*slide.CodeBlock)
		return ok
	case *slide.Image:
		_, ok := b.(*slide.Image)
		return ok
	}
	return false
}

// wrapLines estimates how many lines text occupies when greedily wrapped at
// width display columns. Word boundaries follow UAX #29; widths are display
// widths, so CJK text wraps earlier than its byte length suggests.
func wrapLines(text string, width int) int {
	if width <= 0 {
		width = 1
	}
	lines := 1
	cur := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		w := runewidth.StringWidth(tokens.Value())
		if w == 0 {
			continue
		}
		if cur > 0 && cur+w > width {
			lines++
			cur = 0
		}
		for w > width {
			// A single token wider than the line hard-wraps.
			lines++
			w -= width
		}
		cur += w
	}
	return lines
}
