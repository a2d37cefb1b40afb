package chip8

// execA handles ANNN: I := NNN.
func (vm *VM) execA(c *cycle) error {
	vm.state.I = c.instruction.LowerTriplet()
	return nil
}

// execB handles BNNN: PC := NNN + V0, an absolute jump not advanced by the
// default InstructionSize.
func (vm *VM) execB(c *cycle) error {
	v0, err := vm.state.Reg(0)
	if err != nil {
		return err
	}
	c.nextPC = c.instruction.LowerTriplet() + uint16(v0)
	return nil
}

// execC handles CXNN: Vx := (random byte) AND NN.
func (vm *VM) execC(c *cycle) error {
	random := byte(vm.rng.IntN(256))
	return vm.state.SetReg(int(c.instruction.X()), random&c.instruction.LowerByte())
}
