// Package display decides what a matchup looks like on the 64x32 panel and hands the result to a
// Surface. Pixel addressing and glyph rasterization belong to the Surface implementation.
package display

// Panel dimensions.
const (
	Width  = 64
	Height = 32
)

// Font names a BDF font by its file stem.
type Font string

const (
	FontLarge Font = "5x7"
	FontSmall Font = "4x6"
)

// Rect is a half-open pixel region.
type Rect struct {
	X, Y, W, H int
}

// Surface is the drawing target. Drawing goes to a back buffer that Swap makes visible.
type Surface interface {
	Fill(r Rect, c Color)
	DrawText(font Font, x, y int, c Color, text string)
	Clear()
	Swap() error
	Close() error
}
