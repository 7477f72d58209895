package display

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

const (
	ansiHome      = "\x1b[H"
	ansiClear     = "\x1b[2J"
	ansiReset     = "\x1b[0m"
	upperHalfCell = "▀"
)

// Terminal renders the panel with 24-bit ANSI colors, two pixel rows per character cell, followed
// by the frame's text operations. It stands in for the LED matrix on development machines.
type Terminal struct {
	*Canvas
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{Canvas: NewCanvas(), out: out}
}

// Swap draws the back buffer to the terminal.
func (t *Terminal) Swap() error {
	if err := t.Canvas.Swap(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	w := bufio.NewWriter(t.out)
	fmt.Fprint(w, ansiHome, ansiClear)
	for y := 0; y < Height; y += 2 {
		for x := 0; x < Width; x++ {
			top, bottom := t.Pixel(x, y), t.Pixel(x, y+1)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, upperHalfCell)
		}
		fmt.Fprintln(w, ansiReset)
	}
	for _, op := range t.Texts() {
		fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm%2d,%2d %-3s %s%s\n",
			op.Color.R, op.Color.G, op.Color.B, op.X, op.Y, op.Font, op.Text, ansiReset)
	}
	return w.Flush()
}

// Close resets terminal colors.
func (t *Terminal) Close() error {
	t.mu.Lock()
	_, err := fmt.Fprint(t.out, ansiReset)
	t.mu.Unlock()
	if cerr := t.Canvas.Close(); err == nil {
		err = cerr
	}
	return err
}
