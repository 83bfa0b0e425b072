package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/dgallion1/deckgen/internal/slide"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// For all i < j on a slide, top_i + height_i <= top_j.
func TestFlow_NoOverlap(t *testing.T) {
	s := &slide.Slide{
		Title: "T",
		Body: []slide.BodyItem{
			&slide.Heading{Level: 3, Text: "Section"},
			&slide.Paragraph{Text: strings.Repeat("word ", 60)},
			&slide.List{Items: []string{"one", "two", strings.Repeat("long item ", 20)}},
			&slide.Table{HasHeader: true, Headers: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}, Alignments: []slide.Alignment{slide.AlignLeft}},
			&slide.CodeBlock{Language: "go", Code: "a\nb\nc"},
			&slide.Image{Path: "x.png"},
		},
	}
	geom := DefaultGeometry()
	flow := Flow(s, geom)
	if len(flow) != len(s.Body) {
		t.Fatalf("expected %d positioned items, got %d", len(s.Body), len(flow))
	}
	for i := 1; i < len(flow); i++ {
		prev, cur := flow[i-1], flow[i]
		if prev.Top+prev.Height > cur.Top+1e-9 {
			t.Errorf("items %d and %d overlap: %f+%f > %f", i-1, i, prev.Top, prev.Height, cur.Top)
		}
	}
}

func TestFlow_TitleReservesSpace(t *testing.T) {
	geom := DefaultGeometry()
	body := []slide.BodyItem{&slide.Paragraph{Text: "x"}}

	withTitle := Flow(&slide.Slide{Title: "T", Body: body}, geom)
	without := Flow(&slide.Slide{Body: body}, geom)

	if !almostEqual(without[0].Top, geom.ContentTop) {
		t.Errorf("untitled slide starts at %f, want %f", without[0].Top, geom.ContentTop)
	}
	if !almostEqual(withTitle[0].Top, geom.ContentTop+geom.TitleHeight) {
		t.Errorf("titled slide starts at %f, want %f", withTitle[0].Top, geom.ContentTop+geom.TitleHeight)
	}
}

func TestFlow_CodeHeightIsCapped(t *testing.T) {
	geom := DefaultGeometry()
	long := strings.Repeat("line\n", 49) + "line" // 50 lines
	flow := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.CodeBlock{Code: long}}}, geom)
	if !almostEqual(flow[0].Height, geom.CodeMaxHeight) {
		t.Errorf("50-line code block height %f, want cap %f", flow[0].Height, geom.CodeMaxHeight)
	}
}

func TestFlow_CodeHeightBounds(t *testing.T) {
	geom := DefaultGeometry()
	for lines := 1; lines <= 60; lines += 7 {
		code := strings.TrimSuffix(strings.Repeat("x\n", lines), "\n")
		flow := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.CodeBlock{Code: code}}}, geom)
		h := flow[0].Height
		if h < geom.CodeMinHeight-1e-9 || h > geom.CodeMaxHeight+1e-9 {
			t.Errorf("%d lines: height %f outside [%f, %f]", lines, h, geom.CodeMinHeight, geom.CodeMaxHeight)
		}
	}
}

func TestFlow_TableHeight(t *testing.T) {
	geom := DefaultGeometry()
	tbl := &slide.Table{
		HasHeader:  true,
		Headers:    []string{"a", "b"},
		Rows:       [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
		Alignments: []slide.Alignment{slide.AlignLeft, slide.AlignLeft},
	}
	flow := Flow(&slide.Slide{Body: []slide.BodyItem{tbl}}, geom)
	want := geom.TableHeaderHeight + 3*geom.TableRowHeight
	if !almostEqual(flow[0].Height, want) {
		t.Errorf("table height %f, want %f", flow[0].Height, want)
	}
}

func TestFlow_HomogeneousGapIsSmaller(t *testing.T) {
	geom := DefaultGeometry()
	a := &slide.List{Items: []string{"x"}}
	b := &slide.List{Items: []string{"y"}}
	p := &slide.Paragraph{Text: "z"}

	same := Flow(&slide.Slide{Body: []slide.BodyItem{a, b}}, geom)
	mixed := Flow(&slide.Slide{Body: []slide.BodyItem{a, p}}, geom)

	sameGap := same[1].Top - (same[0].Top + same[0].Height)
	mixedGap := mixed[1].Top - (mixed[0].Top + mixed[0].Height)
	if !almostEqual(sameGap, geom.GapSame) || !almostEqual(mixedGap, geom.Gap) {
		t.Errorf("gaps %f / %f, want %f / %f", sameGap, mixedGap, geom.GapSame, geom.Gap)
	}
	if sameGap >= mixedGap {
		t.Errorf("homogeneous gap %f should be smaller than heterogeneous %f", sameGap, mixedGap)
	}
}

func TestFlow_ListHeightGrowsWithItems(t *testing.T) {
	geom := DefaultGeometry()
	short := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.List{Items: []string{"a"}}}}, geom)
	long := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.List{Items: []string{"a", "b", "c", "d"}}}}, geom)
	if long[0].Height <= short[0].Height {
		t.Errorf("4-item list height %f not greater than 1-item %f", long[0].Height, short[0].Height)
	}
}

func TestFlow_ParagraphWraps(t *testing.T) {
	geom := DefaultGeometry()
	short := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.Paragraph{Text: "short"}}}, geom)
	long := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.Paragraph{Text: strings.Repeat("wrap me please ", 40)}}}, geom)
	if !almostEqual(short[0].Height, geom.TextMinHeight) {
		t.Errorf("short paragraph height %f, want min %f", short[0].Height, geom.TextMinHeight)
	}
	if long[0].Height <= short[0].Height {
		t.Errorf("long paragraph %f should be taller than short %f", long[0].Height, short[0].Height)
	}
}

func TestFlow_ImageHeightFromDimensions(t *testing.T) {
	geom := DefaultGeometry()

	// 1920x960px is 20x10in at 96 DPI; scaled to the 9in content width the
	// height becomes 10 * 9/20.
	wide := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.Image{Path: "w.png", Width: 1920, Height: 960}}}, geom)
	if !almostEqual(wide[0].Height, 4.5) {
		t.Errorf("wide image height %f, want 4.5", wide[0].Height)
	}

	// 192x96px is 2x1in; it fits the content width and keeps its size.
	small := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.Image{Path: "s.png", Width: 192, Height: 96}}}, geom)
	if !almostEqual(small[0].Height, 1.0) {
		t.Errorf("small image height %f, want 1.0", small[0].Height)
	}

	unknown := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.Image{Path: "u.png"}}}, geom)
	if !almostEqual(unknown[0].Height, geom.ImageHeight) {
		t.Errorf("unknown-size image height %f, want fallback %f", unknown[0].Height, geom.ImageHeight)
	}
}

func TestOverflows(t *testing.T) {
	geom := DefaultGeometry()
	var body []slide.BodyItem
	for i := 0; i < 12; i++ {
		body = append(body, &slide.CodeBlock{Code: strings.Repeat("x\n", 30)})
	}
	flow := Flow(&slide.Slide{Body: body}, geom)
	if !Overflows(flow, geom) {
		t.Error("12 capped code blocks should overflow a 7.5in slide")
	}
	small := Flow(&slide.Slide{Body: []slide.BodyItem{&slide.Paragraph{Text: "x"}}}, geom)
	if Overflows(small, geom) {
		t.Error("single paragraph should not overflow")
	}
	if Overflows(nil, geom) {
		t.Error("empty flow should not overflow")
	}
}

func TestWrapLines(t *testing.T) {
	if got := wrapLines("", 10); got != 1 {
		t.Errorf("empty text: %d lines, want 1", got)
	}
	if got := wrapLines("one two", 80); got != 1 {
		t.Errorf("short text: %d lines, want 1", got)
	}
	if got := wrapLines(strings.Repeat("abcd ", 50), 20); got < 10 {
		t.Errorf("250 chars at width 20: %d lines, want >= 10", got)
	}
}
