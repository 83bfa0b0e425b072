package importer

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownImporter restructures a plain markdown document into slides: every
// level-1 or level-2 heading starts a new slide, and everything below it
// rides along verbatim (code fences, tables and lists survive because slide
// bodies are sliced from the raw source, not re-rendered from the AST).
// Headings themselves are re-emitted in ATX form so a setext underline never
// reaches the compiler, where its dashes would read as a slide separator.
type MarkdownImporter struct{}

// slideMark locates one slide-starting heading: where its first source line
// begins, where the body after it (and after a setext underline) begins, and
// the heading reassembled as an ATX line.
type slideMark struct {
	start  int
	body   int
	header string
}

func (p *MarkdownImporter) Import(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var marks []slideMark
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > 2 || h.Lines().Len() == 0 {
			continue
		}
		first := h.Lines().At(0)
		start := bytes.LastIndexByte(src[:first.Start], '\n') + 1
		last := h.Lines().At(h.Lines().Len() - 1)
		body := lineEnd(src, last.Start)
		if src[start] != '#' {
			// Setext heading: the body starts after the underline.
			body = lineEnd(src, body)
		}

		var raw strings.Builder
		for i := 0; i < h.Lines().Len(); i++ {
			seg := h.Lines().At(i)
			raw.Write(seg.Value(src))
			raw.WriteByte(' ')
		}
		title := strings.Join(strings.Fields(raw.String()), " ")
		marks = append(marks, slideMark{
			start:  start,
			body:   body,
			header: strings.Repeat("#", h.Level) + " " + title,
		})
	}

	if len(marks) == 0 {
		return strings.TrimSpace(string(src)), nil
	}

	var slides []string
	if pre := strings.TrimSpace(string(src[:marks[0].start])); pre != "" {
		slides = append(slides, pre)
	}
	for i, m := range marks {
		end := len(src)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		s := m.header
		if body := strings.TrimSpace(string(src[m.body:end])); body != "" {
			s += "\n\n" + body
		}
		slides = append(slides, s)
	}

	return joinSlides(slides), nil
}

// lineEnd returns the index just past the newline terminating the line that
// contains from.
func lineEnd(src []byte, from int) int {
	if i := bytes.IndexByte(src[from:], '\n'); i >= 0 {
		return from + i + 1
	}
	return len(src)
}
