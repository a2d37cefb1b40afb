// Package platform translates SDL2 key codes to the CHIP-8 hex
// keypad and drives a chip8.VM's KeyDown/KeyUp from SDL events. The chip8
// package never touches SDL directly; this package is the only place that
// does.
package platform

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

// Keymapper is the subset of chip8.VM the Keyboard translator drives.
type Keymapper interface {
	KeyDown(nibble byte) error
	KeyUp()
}

// keymap lays the 4x4 CHIP-8 keypad over the left-hand portion of a QWERTY
// keyboard:
//
//	Keypad       Keyboard
//	+-+-+-+-+    +-+-+-+-+
//	|1|2|3|C|    |1|2|3|4|
//	+-+-+-+-+    +-+-+-+-+
//	|4|5|6|D|    |Q|W|E|R|
//	+-+-+-+-+ => +-+-+-+-+
//	|7|8|9|E|    |A|S|D|F|
//	+-+-+-+-+    +-+-+-+-+
//	|A|0|B|F|    |Z|X|C|V|
//	+-+-+-+-+    +-+-+-+-+
var keymap = map[sdl.Keycode]byte{
	sdl.K_x: 0x0,
	sdl.K_1: 0x1,
	sdl.K_2: 0x2,
	sdl.K_3: 0x3,
	sdl.K_q: 0x4,
	sdl.K_w: 0x5,
	sdl.K_e: 0x6,
	sdl.K_a: 0x7,
	sdl.K_s: 0x8,
	sdl.K_d: 0x9,
	sdl.K_z: 0xA,
	sdl.K_c: 0xB,
	sdl.K_4: 0xC,
	sdl.K_r: 0xD,
	sdl.K_f: 0xE,
	sdl.K_v: 0xF,
}

// Keyboard polls the SDL event queue and drives a Keymapper accordingly,
// logging keys that don't map to the CHIP-8 keypad and any fault raised
// while recording a keypress.
type Keyboard struct {
	vm     Keymapper
	logger *slog.Logger
}

// NewKeyboard returns a Keyboard that drives vm's key state from SDL
// events, reporting diagnostics through logger.
func NewKeyboard(logger *slog.Logger, vm Keymapper) *Keyboard {
	return &Keyboard{vm: vm, logger: logger}
}

// PollEvents drains the SDL event queue, updating the keypad and
// reporting whether a quit was requested (window close or Escape).
func (k *Keyboard) PollEvents() (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if k.handleKey(t) {
				quit = true
			}
		}
	}
	return quit
}

func (k *Keyboard) handleKey(t *sdl.KeyboardEvent) (quit bool) {
	pressed := t.Type == sdl.KEYDOWN

	if t.Keysym.Sym == sdl.K_ESCAPE {
		return pressed
	}

	nibble, ok := keymap[t.Keysym.Sym]
	if !ok {
		k.logger.Debug("key not mapped to chip-8 keypad", "key", t.Keysym.Sym)
		return false
	}

	if pressed {
		// nibble came from keymap above, so it is always in 0..0xF and
		// KeyDown cannot fault here; log rather than ignore in case that
		// invariant is ever broken by a future keymap edit.
		if err := k.vm.KeyDown(nibble); err != nil {
			k.logger.Warn("key down rejected", "nibble", nibble, "error", err)
		}
	} else {
		k.vm.KeyUp()
	}
	return false
}
