// Command deckgen converts a slide-separated markdown document (or an
// imported .html/.docx/.pdf/.txt document) into a rendered deck preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/deckgen/internal/deck"
	"github.com/dgallion1/deckgen/internal/importer"
	"github.com/dgallion1/deckgen/internal/render"
)

func main() {
	separator := flag.String("separator", "---", "slide separator token")
	background := flag.String("background", "", "background image path for all slides")
	output := flag.String("o", "", "output file (default stdout)")
	doImport := flag.Bool("import", false, "restructure a plain document into slides by heading")
	verbose := flag.Bool("v", false, "enable verbose output")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	source, err := readSource(input, *doImport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := deck.Compile(context.Background(), source, deck.Options{
		Separator:  *separator,
		BaseDir:    filepath.Dir(input),
		Background: *background,
		Log:        log,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := render.New().RenderDeck(out, d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, warn := range d.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warn)
	}
}

// readSource loads the input file, running it through an importer when the
// format requires one or when -import was requested.
func readSource(input string, doImport bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(input))
	if (ext == ".md" || ext == ".markdown") && !doImport {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	imp, err := importer.ForFile(input)
	if err != nil {
		return "", err
	}
	if pdfImp, ok := imp.(*importer.PDFImporter); ok {
		pdfImp.FallbackPdftotext = true
	}
	f, err := os.Open(input)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return imp.Import(f, filepath.Base(input))
}
