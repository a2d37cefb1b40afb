package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsolePresentRendersGlyphGrid(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.SetPixel(0, 0, 1)
	c.SetPixel(Width-1, Height-1, 1)

	if err := c.Present(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != Height {
		t.Fatalf("got %d lines, want %d", len(lines), Height)
	}
	if lines[0][0] != onGlyph {
		t.Errorf("top-left glyph = %q, want %q", lines[0][0], onGlyph)
	}
	if lines[Height-1][Width-1] != onGlyph {
		t.Errorf("bottom-right glyph = %q, want %q", lines[Height-1][Width-1], onGlyph)
	}
	if lines[1][1] != offGlyph {
		t.Errorf("untouched glyph = %q, want %q", lines[1][1], offGlyph)
	}
}
