package parser

import (
	"regexp"
	"strings"
)

// DefaultSeparator is the slide separator token, a three-character rule.
const DefaultSeparator = "---"

// SplitSlides splits markdown content into per-slide segments. The separator
// must occupy a whole line (optionally surrounded by horizontal whitespace),
// so a table alignment row like "|---|---|" never splits a slide. Empty
// segments from separators at the very start or end of the input are
// preserved; callers decide whether to drop them.
func SplitSlides(content, separator string) []string {
	if separator == "" {
		separator = DefaultSeparator
	}
	pattern := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(separator) + `[ \t]*$`)
	return pattern.Split(content, -1)
}

// CleanSegments trims segments and removes the blank ones, preserving order.
func CleanSegments(segments []string) []string {
	var out []string
	for _, seg := range segments {
		if s := strings.TrimSpace(seg); s != "" {
			out = append(out, s)
		}
	}
	return out
}
