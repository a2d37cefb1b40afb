// Command chip8 loads a CHIP-8 ROM and runs it, driving the interpreter
// core, the delay/sound timers, and frame presentation at three
// independently configurable rates.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/psygate/chip8vm/chip8"
	"github.com/psygate/chip8vm/chip8rom"
	"github.com/psygate/chip8vm/platform"
	"github.com/psygate/chip8vm/render"
)

func main() {
	if err := run(); err != nil {
		slog.Error("chip8 exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cpuHz    = flag.Float64("cpu-hz", 500, "CPU step rate in Hz")
		timerHz  = flag.Float64("timer-hz", 60, "delay/sound timer tick rate in Hz")
		frameHz  = flag.Float64("frame-hz", 60, "frame presentation rate in Hz")
		scale    = flag.Int("scale", 10, "SDL window scale factor over the 64x32 framebuffer")
		seed     = flag.Uint64("seed", 0, "PRNG seed for CXNN; 0 means time-seeded")
		headless = flag.Bool("headless", false, "use the console renderer instead of an SDL window")
		verbose  = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: chip8 [flags] <rom path>")
	}
	romPath := flag.Arg(0)

	data, err := chip8rom.Load(logger, romPath)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	renderer, cleanup, err := newRenderer(*headless, *scale)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer cleanup()

	effectiveSeed := *seed
	if effectiveSeed == 0 {
		effectiveSeed = uint64(time.Now().UnixNano())
	}
	vm := chip8.NewVM(renderer, effectiveSeed)

	if err := vm.LoadProgram(data); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	keyboard, drivesInput := newKeyboard(logger, vm, *headless)

	cpuPeriod := time.Duration(float64(time.Second) / *cpuHz)
	timerPeriod := time.Duration(float64(time.Second) / *timerHz)
	framePeriod := time.Duration(float64(time.Second) / *frameHz)

	var lastCPU, lastTimer, lastFrame time.Time
	now := time.Now()
	lastCPU, lastTimer, lastFrame = now, now, now

	for {
		if drivesInput && keyboard.PollEvents() {
			return nil
		}

		now = time.Now()

		if now.Sub(lastCPU) >= cpuPeriod {
			lastCPU = now
			if err := vm.Step(); err != nil {
				return fmt.Errorf("step: %w", err)
			}
		}

		if now.Sub(lastTimer) >= timerPeriod {
			lastTimer = now
			vm.TickTimers()
		}

		if now.Sub(lastFrame) >= framePeriod {
			lastFrame = now
			if err := renderer.Present(); err != nil {
				return fmt.Errorf("present: %w", err)
			}
		}
	}
}

func newRenderer(headless bool, scale int) (render.Renderer, func(), error) {
	if headless {
		return render.NewConsole(os.Stdout), func() {}, nil
	}

	sink, err := render.NewSDL(int32(scale))
	if err != nil {
		return nil, nil, err
	}
	return sink, sink.Close, nil
}

func newKeyboard(logger *slog.Logger, vm *chip8.VM, headless bool) (*platform.Keyboard, bool) {
	if headless {
		return nil, false
	}
	return platform.NewKeyboard(logger, vm), true
}
