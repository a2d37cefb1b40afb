package chip8

// skip advances c.nextPC by another InstructionSize, on top of the
// default advance already set for this cycle.
func (c *cycle) skip() {
	c.nextPC += InstructionSize
}

// exec3 handles 3XNN: skip next instruction if Vx == NN.
func (vm *VM) exec3(c *cycle) error {
	x, err := vm.state.Reg(int(c.instruction.X()))
	if err != nil {
		return err
	}
	if x == c.instruction.LowerByte() {
		c.skip()
	}
	return nil
}

// exec4 handles 4XNN: skip next instruction if Vx != NN.
func (vm *VM) exec4(c *cycle) error {
	x, err := vm.state.Reg(int(c.instruction.X()))
	if err != nil {
		return err
	}
	if x != c.instruction.LowerByte() {
		c.skip()
	}
	return nil
}

// exec5 handles 5XY0: skip next instruction if Vx == Vy. N != 0 is illegal.
func (vm *VM) exec5(c *cycle) error {
	if c.instruction.Nibble(0) != 0 {
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "5XYN with N != 0"}
	}
	x, err := vm.state.Reg(int(c.instruction.X()))
	if err != nil {
		return err
	}
	y, err := vm.state.Reg(int(c.instruction.Y()))
	if err != nil {
		return err
	}
	if x == y {
		c.skip()
	}
	return nil
}

// exec9 handles 9XY0: skip next instruction if Vx != Vy. N != 0 is illegal.
func (vm *VM) exec9(c *cycle) error {
	if c.instruction.Nibble(0) != 0 {
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "9XYN with N != 0"}
	}
	x, err := vm.state.Reg(int(c.instruction.X()))
	if err != nil {
		return err
	}
	y, err := vm.state.Reg(int(c.instruction.Y()))
	if err != nil {
		return err
	}
	if x != y {
		c.skip()
	}
	return nil
}
