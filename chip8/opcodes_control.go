package chip8

// exec0 handles the 0NNN family: 0000 NOP, 00E0 CLS, 00EE RET.
func (vm *VM) exec0(c *cycle) error {
	switch c.instruction.LowerTriplet() {
	case 0x000:
		// NOP: extension beyond the classic instruction set, no fault.
	case 0x0E0:
		vm.renderer.Clear()
	case 0x0EE:
		addr, err := vm.state.PopCallStack()
		if err != nil {
			return err
		}
		c.nextPC = addr
	default:
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "unrecognized 0NNN opcode"}
	}
	return nil
}

// exec1 handles 1NNN: unconditional jump.
func (vm *VM) exec1(c *cycle) error {
	c.nextPC = c.instruction.LowerTriplet()
	return nil
}

// exec2 handles 2NNN: call subroutine, pushing the return address first.
func (vm *VM) exec2(c *cycle) error {
	returnAddr := vm.state.PC + InstructionSize
	if err := vm.state.PushCallStack(returnAddr); err != nil {
		return err
	}
	c.nextPC = c.instruction.LowerTriplet()
	return nil
}
