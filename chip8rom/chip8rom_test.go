package chip8rom_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/psygate/chip8vm/chip8"
	"github.com/psygate/chip8vm/chip8rom"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadReadsFileVerbatim(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ch8")
	want := []byte{0x12, 0x34, 0x56}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := chip8rom.Load(discardLogger, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d bytes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = 0x%02X, want 0x%02X", i, got[i], want[i])
		}
	}
}

func TestLoadRejectsOversizedROM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "huge.ch8")
	data := make([]byte, chip8.MaxProgramSize+1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := chip8rom.Load(discardLogger, path); err == nil {
		t.Fatal("Load succeeded on oversized ROM, want error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := chip8rom.Load(discardLogger, "/nonexistent/path/rom.ch8"); err == nil {
		t.Fatal("Load succeeded on missing file, want error")
	}
}
