package chip8

import "testing"

func TestInstructionPrefixNibbleByteTriplet(t *testing.T) {
	i := Instruction(0xD1A3)

	if got, want := i.Prefix(), byte(0xD); got != want {
		t.Errorf("Prefix() = 0x%X, want 0x%X", got, want)
	}
	if got, want := i.X(), byte(0x1); got != want {
		t.Errorf("X() = 0x%X, want 0x%X", got, want)
	}
	if got, want := i.Y(), byte(0xA); got != want {
		t.Errorf("Y() = 0x%X, want 0x%X", got, want)
	}
	if got, want := i.Nibble(0), byte(0x3); got != want {
		t.Errorf("Nibble(0) = 0x%X, want 0x%X", got, want)
	}
	if got, want := i.LowerByte(), byte(0xA3); got != want {
		t.Errorf("LowerByte() = 0x%X, want 0x%X", got, want)
	}
	if got, want := i.LowerTriplet(), uint16(0x1A3); got != want {
		t.Errorf("LowerTriplet() = 0x%X, want 0x%X", got, want)
	}
}

func TestInstructionAllNibbles(t *testing.T) {
	i := Instruction(0x1234)
	want := []byte{0x4, 0x3, 0x2, 0x1}
	for idx, w := range want {
		if got := i.Nibble(idx); got != w {
			t.Errorf("Nibble(%d) = 0x%X, want 0x%X", idx, got, w)
		}
	}
}
