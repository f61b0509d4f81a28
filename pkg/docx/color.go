package docx

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color as stored in w:color attributes.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from an (r, g, b) triple.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses a 6-hex-digit string such as "FF0000". A leading '#' is
// tolerated. ParseColor and RGB round-trip through Hex.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex returns the color as an upper-case 6-hex-digit string without '#'.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
