package chip8

// exec6 handles 6XNN: Vx := NN.
func (vm *VM) exec6(c *cycle) error {
	return vm.state.SetReg(int(c.instruction.X()), c.instruction.LowerByte())
}

// exec7 handles 7XNN: Vx := (Vx + NN) mod 256. VF is not modified.
func (vm *VM) exec7(c *cycle) error {
	x, err := vm.state.Reg(int(c.instruction.X()))
	if err != nil {
		return err
	}
	return vm.state.SetReg(int(c.instruction.X()), x+c.instruction.LowerByte())
}

// exec8 handles the 8XYN family: register-to-register bitwise/arithmetic
// ops, plus shifts. Vy is the shift count for 8XY6/8XYE (COSMAC-VIP
// convention), not a fixed shift of 1.
func (vm *VM) exec8(c *cycle) error {
	xi, yi := int(c.instruction.X()), int(c.instruction.Y())

	vx, err := vm.state.Reg(xi)
	if err != nil {
		return err
	}
	vy, err := vm.state.Reg(yi)
	if err != nil {
		return err
	}

	switch c.instruction.Nibble(0) {
	case 0x0:
		return vm.state.SetReg(xi, vy)
	case 0x1:
		return vm.state.SetReg(xi, vx|vy)
	case 0x2:
		return vm.state.SetReg(xi, vx&vy)
	case 0x3:
		return vm.state.SetReg(xi, vx^vy)
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		if sum > 0xFF {
			vm.state.SetFlag(1)
		} else {
			vm.state.SetFlag(0)
		}
		return vm.state.SetReg(xi, byte(sum))
	case 0x5:
		if vx >= vy {
			vm.state.SetFlag(1)
		} else {
			vm.state.SetFlag(0)
		}
		return vm.state.SetReg(xi, vx-vy)
	case 0x6:
		vm.state.SetFlag(vx & 1)
		return vm.state.SetReg(xi, vx>>vy)
	case 0x7:
		if vy >= vx {
			vm.state.SetFlag(1)
		} else {
			vm.state.SetFlag(0)
		}
		return vm.state.SetReg(xi, vy-vx)
	case 0xE:
		vm.state.SetFlag(vx >> 7 & 1)
		return vm.state.SetReg(xi, vx<<vy)
	default:
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "unrecognized 8XYN suffix"}
	}
}
