// Package colors converts hex color strings into RGB values and hosts the
// syntax color theme used by rendering backends.
package colors

import (
	"strconv"
	"strings"

	"github.com/dgallion1/deckgen/internal/slide"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Parse converts "RRGGBB" or "#RRGGBB" to an RGB value. Invalid input
// reports ok=false; colors are configuration, never a reason to fail a
// conversion.
func Parse(s string) (RGB, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Theme maps token kinds to colors for code rendering.
type Theme map[slide.TokenKind]RGB

// DefaultTheme is a VSCode-dark-like palette.
func DefaultTheme() Theme {
	return Theme{
		slide.TokenKeyword: {197, 134, 192},
		slide.TokenString:  {206, 145, 120},
		slide.TokenComment: {106, 153, 85},
		slide.TokenNumber:  {181, 206, 168},
		slide.TokenDefault: {212, 212, 212},
	}
}
