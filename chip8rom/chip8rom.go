// Package chip8rom loads raw CHIP-8 ROM files from disk and validates that
// they fit in the machine's program memory. The chip8 package itself never
// touches the filesystem.
package chip8rom

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/psygate/chip8vm/chip8"
)

// Load reads the ROM at path and validates it fits in memory starting at
// chip8.ProgramLoadOffset, logging the outcome through logger. It does not
// load the ROM into a VM; call VM.LoadProgram with the returned bytes.
func Load(logger *slog.Logger, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read rom", "path", path, "error", err)
		return nil, fmt.Errorf("read rom %q: %w", path, err)
	}
	if len(data) > chip8.MaxProgramSize {
		logger.Error("rom too large", "path", path, "bytes", len(data), "available", chip8.MaxProgramSize)
		return nil, &chip8.ProgramTooLargeError{Size: len(data), Available: chip8.MaxProgramSize}
	}
	logger.Info("rom loaded", "path", path, "bytes", len(data))
	return data, nil
}
