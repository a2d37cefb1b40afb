package render

import "testing"

func TestFanOutBroadcastsToAllSinks(t *testing.T) {
	a, b := NewFramebuffer(), NewFramebuffer()
	fo := NewFanOut(a, b)

	fo.SetPixel(2, 2, 1)

	if a.Pixel(2, 2) != 1 || b.Pixel(2, 2) != 1 {
		t.Fatalf("SetPixel not broadcast: a=%d b=%d", a.Pixel(2, 2), b.Pixel(2, 2))
	}

	fo.Clear()
	if a.Pixel(2, 2) != 0 || b.Pixel(2, 2) != 0 {
		t.Fatalf("Clear not broadcast: a=%d b=%d", a.Pixel(2, 2), b.Pixel(2, 2))
	}
}

func TestFanOutSetPixelORsCollisionFlags(t *testing.T) {
	a, b := NewFramebuffer(), NewFramebuffer()
	// Pre-set a's pixel so a reports a collision on the next write, b does
	// not.
	a.SetPixel(3, 3, 1)

	fo := NewFanOut(a, b)
	collision := fo.SetPixel(3, 3, 1)
	if collision != 1 {
		t.Errorf("collision = %d, want 1 (OR of a's collision and b's non-collision)", collision)
	}
}

func TestFanOutAdd(t *testing.T) {
	fo := NewFanOut()
	fb := NewFramebuffer()
	fo.Add(fb)

	fo.SetPixel(0, 0, 1)
	if fb.Pixel(0, 0) != 1 {
		t.Fatalf("sink added via Add was not driven")
	}
}
