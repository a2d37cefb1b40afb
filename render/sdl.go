package render

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// windowTitle is the SDL window title.
const windowTitle = "CHIP-8"

// on and off are the ARGB8888 pixel values SDL blits set/unset CHIP-8
// pixels as.
const (
	off uint32 = 0x00000000
	on  uint32 = 0xFFFFFFFF
)

// SDL composes a Framebuffer and presents it in a scaled SDL2 window.
type SDL struct {
	*Framebuffer

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	rect     *sdl.Rect

	argb [Height][Width]uint32
}

// NewSDL creates an SDL window scale times larger than the logical 64x32
// framebuffer and returns an SDL renderer bound to it. Call Close when
// done.
func NewSDL(scale int32) (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	winWidth, winHeight := int32(Width)*scale, int32(Height)*scale

	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl create renderer: %w", err)
	}
	renderer.Clear()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, Width, Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl create texture: %w", err)
	}

	return &SDL{
		Framebuffer: NewFramebuffer(),
		window:      window,
		renderer:    renderer,
		texture:     texture,
		rect:        &sdl.Rect{X: 0, Y: 0, W: winWidth, H: winHeight},
	}, nil
}

// Present blits the current framebuffer to the SDL window, scaled to fill
// it.
func (s *SDL) Present() error {
	snapshot := s.Snapshot()
	for y := range snapshot {
		for x := range snapshot[y] {
			if snapshot[y][x] != 0 {
				s.argb[y][x] = on
			} else {
				s.argb[y][x] = off
			}
		}
	}

	pitch := Width * int(unsafe.Sizeof(uint32(0)))
	if err := s.texture.Update(nil, unsafe.Pointer(&s.argb), pitch); err != nil {
		return fmt.Errorf("sdl texture update: %w", err)
	}

	s.renderer.Clear()
	if err := s.renderer.Copy(s.texture, nil, s.rect); err != nil {
		return fmt.Errorf("sdl renderer copy: %w", err)
	}
	s.renderer.Present()
	return nil
}

// Close tears down the SDL texture, renderer, window and subsystem, in
// reverse order of creation.
func (s *SDL) Close() {
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}
