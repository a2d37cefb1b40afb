package render

import (
	"fmt"
	"io"
)

// onGlyph and offGlyph are the characters Console prints for set and
// unset pixels.
const (
	onGlyph  = '#'
	offGlyph = '.'
)

// Console composes a Framebuffer and presents it as an ASCII grid, for
// headless runs and for tests that want a deterministic, comparable
// snapshot of Present() output without a graphics library.
type Console struct {
	*Framebuffer
	w io.Writer
}

// NewConsole returns a Console that writes each Present to w.
func NewConsole(w io.Writer) *Console {
	return &Console{
		Framebuffer: NewFramebuffer(),
		w:           w,
	}
}

// Present writes the current framebuffer to the console as one line per
// row of '#'/'.' glyphs.
func (c *Console) Present() error {
	snapshot := c.Snapshot()
	for y := 0; y < Height; y++ {
		row := make([]byte, Width)
		for x := 0; x < Width; x++ {
			if snapshot[y][x] != 0 {
				row[x] = onGlyph
			} else {
				row[x] = offGlyph
			}
		}
		if _, err := fmt.Fprintln(c.w, string(row)); err != nil {
			return err
		}
	}
	return nil
}
