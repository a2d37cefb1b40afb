package chip8

// execE handles EX9E/EXA1: skip on key pressed-and-matches, or
// pressed-and-mismatches. Neither skips while no key at all is held down —
// EXA1 in particular does not skip on "nothing pressed", diverging from
// the textbook CHIP-8 table where a held-nothing state counts as a
// mismatch against Vx.
func (vm *VM) execE(c *cycle) error {
	x, err := vm.state.Reg(int(c.instruction.X()))
	if err != nil {
		return err
	}

	switch c.instruction.LowerByte() {
	case 0x9E:
		if vm.keyPressed() && byte(vm.keyValue) == x {
			c.skip()
		}
	case 0xA1:
		if vm.keyPressed() && byte(vm.keyValue) != x {
			c.skip()
		}
	default:
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "unrecognized EXNN suffix"}
	}
	return nil
}
