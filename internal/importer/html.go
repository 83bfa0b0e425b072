package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLImporter converts an HTML page into slides: h1/h2 start a slide,
// deeper headings become content headings, list items become bullets and
// <pre> blocks become fenced code.
type HTMLImporter struct{}

func (p *HTMLImporter) Import(r io.Reader, filename string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var slides []string
	var cur strings.Builder
	sawHeading := false

	flushSlide := func() {
		if strings.TrimSpace(cur.String()) != "" {
			slides = append(slides, cur.String())
		}
		cur.Reset()
	}
	addLine := func(line string) {
		if line != "" {
			cur.WriteString(line)
			cur.WriteString("\n\n")
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				title := textContent(n)
				if title != "" {
					if level <= 2 {
						sawHeading = true
						flushSlide()
						cur.WriteString("## " + title + "\n\n")
					} else {
						addLine(strings.Repeat("#", level) + " " + title)
					}
				}
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "li":
				if t := textContent(n); t != "" {
					cur.WriteString("- " + t + "\n")
				}
				return
			case "ul", "ol":
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					walk(c)
				}
				cur.WriteString("\n")
				return
			case "pre":
				if t := strings.TrimRight(textContent(n), "\n"); t != "" {
					cur.WriteString("```\n" + t + "\n```\n\n")
				}
				return
			case "p", "td", "blockquote":
				addLine(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	flushSlide()

	// A page with no h1/h2 still deserves a title: fall back to <title>.
	if !sawHeading && len(slides) > 0 {
		if title := findTitle(doc); title != "" {
			slides[0] = "## " + title + "\n\n" + slides[0]
		}
	}

	return joinSlides(slides), nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
