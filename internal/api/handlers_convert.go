package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/deckgen/internal/deck"
	"github.com/dgallion1/deckgen/internal/importer"
	"github.com/dgallion1/deckgen/internal/render"
	"github.com/dgallion1/deckgen/internal/slide"
)

// readSource extracts slide markdown source from the request: either a raw
// "text" form value, or an uploaded "file" which is run through the matching
// importer unless it is already deck markdown.
func (s *Server) readSource(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	defer r.MultipartForm.RemoveAll()

	if text := r.FormValue("text"); text != "" {
		return text, true
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "text or file is required: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !importer.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return "", false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return "", false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return "", false
	}

	ext := strings.ToLower(filepath.Ext(filename))
	restructure := r.FormValue("import") == "true"
	if (ext == ".md" || ext == ".markdown") && !restructure {
		// Deck-authored markdown goes straight to the compiler.
		return string(data), true
	}

	imp, err := importer.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	if pdfImp, ok := imp.(*importer.PDFImporter); ok {
		pdfImp.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}
	source, err := imp.Import(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, fmt.Sprintf("import %s: %s", filename, err), http.StatusUnprocessableEntity)
		return "", false
	}
	return source, true
}

func (s *Server) compile(w http.ResponseWriter, r *http.Request) (*slide.Deck, bool) {
	source, ok := s.readSource(w, r)
	if !ok {
		return nil, false
	}

	separator := r.FormValue("separator")
	if separator == "" {
		separator = s.cfg.SlideSeparator
	}

	d, err := deck.Compile(r.Context(), source, deck.Options{
		Separator:  separator,
		Workers:    s.cfg.WorkerCount,
		Background: r.FormValue("background"),
		Log:        s.log,
	})
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, false
	}
	return d, true
}

// handleConvert compiles the document and returns the positioned deck model
// as JSON.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	d, ok := s.compile(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(encodeDeck(d))
}

// handlePreview compiles the document and returns a rendered text preview.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	d, ok := s.compile(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := render.New().RenderDeck(w, d); err != nil {
		s.log.Error("render failed", "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." {
		name = "upload"
	}
	return name
}
