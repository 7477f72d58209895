package display

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB value.
type Color struct {
	R, G, B uint8
}

var (
	Black  = Color{}
	White  = Color{R: 255, G: 255, B: 255}
	Red    = Color{R: 255}
	Green  = Color{G: 255}
	Yellow = Color{R: 255, G: 255}
)

// ParseHex decodes "#RRGGBB" (the leading '#' is optional).
func ParseHex(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("display: invalid color %q", value)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("display: invalid color %q: %w", value, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// HexOr parses value and returns fallback when it is empty or malformed.
func HexOr(value string, fallback Color) Color {
	c, err := ParseHex(value)
	if err != nil {
		return fallback
	}
	return c
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
