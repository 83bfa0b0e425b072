package importer

import (
	"bufio"
	"io"
	"strings"
)

// TextImporter converts plain text into slides, one per blank-line-separated
// paragraph block.
type TextImporter struct{}

func (p *TextImporter) Import(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var slides []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				slides = append(slides, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		slides = append(slides, current.String())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return joinSlides(slides), nil
}
