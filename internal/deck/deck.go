// Package deck drives the document-to-deck compilation: split the source into
// slide segments, parse each segment into a slide model, and assign layout
// geometry.
package deck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/deckgen/internal/images"
	"github.com/dgallion1/deckgen/internal/layout"
	"github.com/dgallion1/deckgen/internal/parser"
	"github.com/dgallion1/deckgen/internal/slide"
)

// Options configures one compilation. The zero value is usable; Compile
// fills in defaults. Styling configuration travels here as an immutable
// value, never as ambient state.
type Options struct {
	Separator  string          // slide separator token, default "---"
	Workers    int             // max slides parsed concurrently, default 4
	Geometry   layout.Geometry // zero value replaced by DefaultGeometry
	BaseDir    string          // directory for resolving relative image paths
	Background string          // background image path passed through to backends
	Log        *slog.Logger    // nil disables logging
}

// Compile turns a slide-separated markdown document into a laid-out deck.
// Structural problems inside slides (bad tables, unclosed fences, missing
// images) become deck warnings; the only error is a document with no content.
func Compile(ctx context.Context, source string, opts Options) (*slide.Deck, error) {
	if opts.Separator == "" {
		opts.Separator = parser.DefaultSeparator
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Geometry == (layout.Geometry{}) {
		opts.Geometry = layout.DefaultGeometry()
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	segments := parser.CleanSegments(parser.SplitSlides(source, opts.Separator))
	if len(segments) == 0 {
		return nil, fmt.Errorf("no slides found in document")
	}
	log.Debug("split document", "slides", len(segments))

	resolver := &images.Resolver{BaseDir: opts.BaseDir}

	// Slides share no state; parse and lay out concurrently, bounded by a
	// semaphore, and keep source order by index.
	type result struct {
		idx      int
		slide    *slide.Slide
		warnings []string
	}
	results := make(chan result, len(segments))
	sem := make(chan struct{}, opts.Workers)

	for i, seg := range segments {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		go func(i int, seg string) {
			defer func() { <-sem }()
			s, warnings := parser.ParseSlide(seg)
			warnings = append(warnings, resolveImages(s, resolver)...)
			s.Flow = layout.Flow(s, opts.Geometry)
			if layout.Overflows(s.Flow, opts.Geometry) {
				warnings = append(warnings, "content overflows the slide")
			}
			results <- result{idx: i, slide: s, warnings: warnings}
		}(i, seg)
	}

	deck := &slide.Deck{Slides: make([]*slide.Slide, len(segments))}
	slideWarnings := make([][]string, len(segments))
	for range segments {
		select {
		case r := <-results:
			deck.Slides[r.idx] = r.slide
			slideWarnings[r.idx] = r.warnings
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// Warnings in slide order, independent of goroutine completion order.
	for i, ws := range slideWarnings {
		for _, warn := range ws {
			deck.Warnings = append(deck.Warnings, fmt.Sprintf("slide %d: %s", i+1, warn))
			log.Warn("slide warning", "slide", i+1, "warning", warn)
		}
	}

	if deck.Slides[0].Title != "" {
		deck.Title = deck.Slides[0].Title
	}

	if strings.TrimSpace(opts.Background) != "" && resolver.Resolve(opts.Background).NotFound {
		deck.Warnings = append(deck.Warnings, fmt.Sprintf("background image not found: %s", opts.Background))
		log.Warn("image not found", "path", opts.Background)
	}
	return deck, nil
}

// resolveImages fills pixel dimensions on a slide's images so layout can size
// them. A missing file becomes a warning and the image keeps zero dimensions.
func resolveImages(s *slide.Slide, resolver *images.Resolver) []string {
	var warnings []string
	for _, item := range s.Body {
		img, ok := item.(*slide.Image)
		if !ok {
			continue
		}
		info := resolver.Resolve(img.Path)
		if info.NotFound {
			warnings = append(warnings, fmt.Sprintf("image not found: %s", img.Path))
			continue
		}
		img.Width = info.Width
		img.Height = info.Height
	}
	return warnings
}
