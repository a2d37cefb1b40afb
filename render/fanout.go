package render

// FanOut broadcasts Clear/SetPixel/Present to an ordered list of
// renderers, so a VM can drive an SDL window and a console snapshot (or
// several SDL windows, for split-screen debugging) without knowing it.
// SetPixel returns the bitwise OR of every sink's collision flag.
type FanOut struct {
	sinks []Renderer
}

// NewFanOut returns a FanOut broadcasting to sinks, in order.
func NewFanOut(sinks ...Renderer) *FanOut {
	return &FanOut{sinks: sinks}
}

// Add appends another sink to the broadcast list.
func (f *FanOut) Add(sink Renderer) {
	f.sinks = append(f.sinks, sink)
}

// Clear clears every sink.
func (f *FanOut) Clear() {
	for _, sink := range f.sinks {
		sink.Clear()
	}
}

// SetPixel writes to every sink and returns the bitwise OR of their
// collision flags.
func (f *FanOut) SetPixel(x, y int, value byte) byte {
	var collision byte
	for _, sink := range f.sinks {
		collision |= sink.SetPixel(x, y, value)
	}
	return collision
}

// Present presents every sink, returning the first error encountered (if
// any) after every sink has had a chance to present.
func (f *FanOut) Present() error {
	var firstErr error
	for _, sink := range f.sinks {
		if err := sink.Present(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
