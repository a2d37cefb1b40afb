package chip8

// execF handles the FXNN family: timers, the I register address
// opcodes, BCD encoding, the key-wait park, and register-file
// save/restore.
func (vm *VM) execF(c *cycle) error {
	x := int(c.instruction.X())
	vx, err := vm.state.Reg(x)
	if err != nil {
		return err
	}

	switch c.instruction.LowerByte() {
	case 0x07:
		return vm.state.SetReg(x, vm.state.DelayTimer)
	case 0x0A:
		c.mode = ModeWaitForKey
		c.keyTarget = byte(x)
		c.nextPC = vm.state.PC // do not advance while parking
		return nil
	case 0x15:
		vm.state.DelayTimer = vx
	case 0x18:
		vm.state.SoundTimer = vx
	case 0x1E:
		vm.state.I += uint16(vx)
	case 0x29:
		if vx > 0xF {
			return &IllegalInstructionError{Opcode: c.instruction, Reason: "FX29 with Vx outside 0..15"}
		}
		vm.state.I = FontOffset + SpriteCharBytes*uint16(vx)
	case 0x33:
		return vm.execBCD(vx)
	case 0x55:
		return vm.execStoreRegisters(x)
	case 0x65:
		return vm.execLoadRegisters(x)
	default:
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "unrecognized FXNN suffix"}
	}
	return nil
}

// execBCD handles FX33: store the hundreds, tens and ones digits of vx at
// memory I, I+1, I+2.
func (vm *VM) execBCD(vx byte) error {
	if int(vm.state.I)+2 >= MemorySize {
		return &MemoryAccessError{Address: int(vm.state.I) + 2, Reason: "BCD write out of bounds"}
	}
	value := vx
	ones := value % 10
	value /= 10
	tens := value % 10
	value /= 10
	hundreds := value % 10

	base := int(vm.state.I)
	vm.state.Memory[base] = hundreds
	vm.state.Memory[base+1] = tens
	vm.state.Memory[base+2] = ones
	return nil
}

// execStoreRegisters handles FX55: store V0..Vx to memory starting at I,
// then I += x + 1.
func (vm *VM) execStoreRegisters(x int) error {
	if int(vm.state.I)+x >= MemorySize {
		return &MemoryAccessError{Address: int(vm.state.I) + x, Reason: "register save out of bounds"}
	}
	for i := 0; i <= x; i++ {
		vm.state.Memory[int(vm.state.I)+i] = vm.state.V[i]
	}
	vm.state.I += uint16(x) + 1
	return nil
}

// execLoadRegisters handles FX65: load V0..Vx from memory starting at I,
// then I += x + 1.
func (vm *VM) execLoadRegisters(x int) error {
	if int(vm.state.I)+x >= MemorySize {
		return &MemoryAccessError{Address: int(vm.state.I) + x, Reason: "register load out of bounds"}
	}
	for i := 0; i <= x; i++ {
		vm.state.V[i] = vm.state.Memory[int(vm.state.I)+i]
	}
	vm.state.I += uint16(x) + 1
	return nil
}
