// Package images resolves image references from slide sources. The compiler
// only carries paths and alt text; this collaborator turns them into absolute
// paths and pixel dimensions for a rendering backend.
package images

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/imgsz"
)

// Info describes a resolved image. When the file is missing or unreadable,
// NotFound is set and the zero dimensions stand; backends warn and skip
// instead of aborting the conversion.
type Info struct {
	Path     string // path as written in the source
	AbsPath  string // resolved absolute path
	Width    int64  // pixels, 0 when unknown
	Height   int64
	NotFound bool
}

// Resolver resolves image paths relative to the source document directory.
type Resolver struct {
	BaseDir string
}

// Resolve locates an image and probes its dimensions without decoding pixel
// data.
func (r *Resolver) Resolve(path string) Info {
	info := Info{Path: path}

	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.BaseDir, strings.TrimPrefix(abs, "./"))
	}
	info.AbsPath = abs

	f, err := os.Open(abs)
	if err != nil {
		info.NotFound = true
		return info
	}
	defer f.Close()

	sz, _, err := imgsz.DecodeSize(f)
	if err != nil {
		// Present but undecodable: keep the path, leave dimensions zero.
		return info
	}
	info.Width = int64(sz.Width)
	info.Height = int64(sz.Height)
	return info
}
