package display

import "sync"

// TextOp is one DrawText call. Y is the text baseline.
type TextOp struct {
	Font  Font
	X, Y  int
	Color Color
	Text  string
}

// Canvas is an in-memory Surface. It keeps a pixel grid for fills and a list of text operations,
// and remembers the last swapped frame.
type Canvas struct {
	mu      sync.Mutex
	pixels  [Height][Width]Color
	texts   []TextOp
	shown   Frame
	pending Frame
	swaps   int
	closed  bool
}

// NewCanvas returns a black canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Fill paints r clipped to the panel.
func (c *Canvas) Fill(r Rect, col Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for y := max(r.Y, 0); y < min(r.Y+r.H, Height); y++ {
		for x := max(r.X, 0); x < min(r.X+r.W, Width); x++ {
			c.pixels[y][x] = col
		}
	}
	c.pending.Fills = append(c.pending.Fills, FillOp{Rect: r, Color: col})
}

// DrawText records a text operation.
func (c *Canvas) DrawText(font Font, x, y int, col Color, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	op := TextOp{Font: font, X: x, Y: y, Color: col, Text: text}
	c.texts = append(c.texts, op)
	c.pending.Texts = append(c.pending.Texts, op)
}

// Clear blanks the back buffer.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pixels = [Height][Width]Color{}
	c.texts = nil
	c.pending = Frame{}
}

// Swap publishes the back buffer.
func (c *Canvas) Swap() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shown = c.pending
	c.swaps++
	return nil
}

// Close marks the canvas released.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Pixel returns the color at (x, y); out-of-range coordinates read as black.
func (c *Canvas) Pixel(x, y int) Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Black
	}
	return c.pixels[y][x]
}

// Texts returns the text operations drawn since the last Clear.
func (c *Canvas) Texts() []TextOp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]TextOp(nil), c.texts...)
}

// Shown returns the last swapped frame.
func (c *Canvas) Shown() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown
}

// Swaps reports how many frames were published.
func (c *Canvas) Swaps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.swaps
}

// Closed reports whether Close was called.
func (c *Canvas) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
