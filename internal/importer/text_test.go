package importer

import (
	"strings"
	"testing"
)

func TestTextImporter_OneSlidePerParagraph(t *testing.T) {
	src := "first block\nsecond line\n\n\nnext block\n"
	out, err := (&TextImporter{}).Import(strings.NewReader(src), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slides := strings.Split(out, "\n\n---\n\n")
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d:\n%s", len(slides), out)
	}
	if slides[0] != "first block\nsecond line" {
		t.Errorf("unexpected first slide %q", slides[0])
	}
	if slides[1] != "next block" {
		t.Errorf("unexpected second slide %q", slides[1])
	}
}

func TestTextImporter_Empty(t *testing.T) {
	out, err := (&TextImporter{}).Import(strings.NewReader("  \n\n \n"), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestHTMLImporter_HeadingsStartSlides(t *testing.T) {
	src := `<html><body>
<h1>Welcome</h1>
<p>Intro paragraph.</p>
<h2>Details</h2>
<h3>Sub point</h3>
<ul><li>one</li><li>two</li></ul>
<pre>code here</pre>
<script>ignored()</script>
</body></html>`
	out, err := (&HTMLImporter{}).Import(strings.NewReader(src), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slides := strings.Split(out, "\n\n---\n\n")
	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d:\n%s", len(slides), out)
	}
	if !strings.HasPrefix(slides[0], "## Welcome") || !strings.Contains(slides[0], "Intro paragraph.") {
		t.Errorf("unexpected first slide:\n%s", slides[0])
	}
	second := slides[1]
	for _, want := range []string{"## Details", "### Sub point", "- one", "- two", "```\ncode here\n```"} {
		if !strings.Contains(second, want) {
			t.Errorf("second slide missing %q:\n%s", want, second)
		}
	}
	if strings.Contains(out, "ignored()") {
		t.Errorf("script content leaked:\n%s", out)
	}
}

func TestHTMLImporter_TitleFallback(t *testing.T) {
	src := `<html><head><title>Fallback Title</title></head><body>
<p>No headings anywhere.</p>
</body></html>`
	out, err := (&HTMLImporter{}).Import(strings.NewReader(src), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "## Fallback Title") {
		t.Errorf("expected title fallback heading:\n%s", out)
	}
	if !strings.Contains(out, "No headings anywhere.") {
		t.Errorf("body text lost:\n%s", out)
	}
}
