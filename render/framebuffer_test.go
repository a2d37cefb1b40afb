package render

import "testing"

func TestSetPixelXORAndCollision(t *testing.T) {
	fb := NewFramebuffer()

	if collision := fb.SetPixel(5, 5, 1); collision != 0 {
		t.Errorf("first SetPixel collision = %d, want 0", collision)
	}
	if fb.Pixel(5, 5) != 1 {
		t.Fatalf("pixel not set")
	}

	if collision := fb.SetPixel(5, 5, 1); collision != 1 {
		t.Errorf("second SetPixel (clearing) collision = %d, want 1", collision)
	}
	if fb.Pixel(5, 5) != 0 {
		t.Errorf("pixel = %d after XOR-clear, want 0", fb.Pixel(5, 5))
	}
}

func TestSetPixelWraps(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetPixel(Width, Height, 1)
	if fb.Pixel(0, 0) != 1 {
		t.Errorf("SetPixel(Width, Height) did not wrap to (0,0)")
	}

	fb.Clear()
	fb.SetPixel(-1, -1, 1)
	if fb.Pixel(Width-1, Height-1) != 1 {
		t.Errorf("SetPixel(-1,-1) did not wrap to (%d,%d)", Width-1, Height-1)
	}
}

func TestClearResetsAllPixels(t *testing.T) {
	fb := NewFramebuffer()
	for x := 0; x < Width; x++ {
		fb.SetPixel(x, 0, 1)
	}
	fb.Clear()
	snapshot := fb.Snapshot()
	for x := 0; x < Width; x++ {
		if snapshot[0][x] != 0 {
			t.Fatalf("pixel (%d,0) = %d after Clear, want 0", x, snapshot[0][x])
		}
	}
}

func TestPixelValuesAreBinary(t *testing.T) {
	fb := NewFramebuffer()
	fb.SetPixel(1, 1, 0xFF)
	v := fb.Pixel(1, 1)
	if v != 1 {
		t.Errorf("Pixel(1,1) = %d, want 1 (masked to a single bit)", v)
	}
}
