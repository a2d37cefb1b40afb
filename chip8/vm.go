package chip8

import (
	"math/rand/v2"

	"github.com/psygate/chip8vm/render"
)

// noKey marks the absence of a pressed key.
const noKey = -1

// cycle threads "what the PC WILL be" separately from "what it currently
// is" through the opcode handlers, so skip-instruction opcodes and the
// FX0A park can be expressed as a value each handler proposes and Step
// commits atomically once the handler returns without error.
type cycle struct {
	instruction Instruction
	nextPC      uint16
	mode        ExecutionMode
	keyTarget   byte
}

// VM fetches, decodes and executes CHIP-8 instructions against a
// MachineState, driving a render.Renderer for draw/clear opcodes. It owns
// a single-slot key state and a seedable PRNG for CXNN.
type VM struct {
	state    *MachineState
	renderer render.Renderer
	rng      *rand.Rand

	keyValue int // noKey, or the currently pressed nibble 0..0xF
}

// NewVM returns a VM over a fresh MachineState, presenting to renderer and
// seeding CXNN's PRNG from seed. A seed of 0 is a valid, reproducible seed;
// callers wanting time-based randomness should derive seed from a time
// source themselves, since VM keeps no process-global state of its own.
func NewVM(renderer render.Renderer, seed uint64) *VM {
	return &VM{
		state:    NewMachineState(),
		renderer: renderer,
		rng:      rand.New(rand.NewPCG(seed, seed)),
		keyValue: noKey,
	}
}

// State returns the machine state for read-only introspection.
func (vm *VM) State() *MachineState {
	return vm.state
}

// StateMut returns the machine state for mutation, exposed for tests and
// host introspection that need to poke registers or memory directly.
func (vm *VM) StateMut() *MachineState {
	return vm.state
}

// Reset zeroes the machine state and returns it to ModeInit.
func (vm *VM) Reset() {
	vm.state.Reset()
	vm.keyValue = noKey
}

// String renders a compact debug summary of the VM, delegating to the
// underlying machine state.
func (vm *VM) String() string {
	return vm.state.String()
}

// LoadProgram resets the machine state, copies data starting at
// ProgramLoadOffset, and sets PC to ProgramLoadOffset. It faults if data
// is larger than MaxProgramSize.
func (vm *VM) LoadProgram(data []byte) error {
	if len(data) > MaxProgramSize {
		return &ProgramTooLargeError{Size: len(data), Available: MaxProgramSize}
	}

	vm.state.Reset()
	copy(vm.state.Memory[ProgramLoadOffset:], data)
	vm.state.PC = ProgramLoadOffset
	vm.state.Mode = ModeRunning
	return nil
}

// KeyDown records nibble as the currently pressed key. nibble must be in
// 0..0xF.
func (vm *VM) KeyDown(nibble byte) error {
	if nibble > 0xF {
		return &RegisterAccessError{Index: int(nibble)}
	}
	vm.keyValue = int(nibble)
	return nil
}

// KeyUp clears the currently pressed key.
func (vm *VM) KeyUp() {
	vm.keyValue = noKey
}

func (vm *VM) keyPressed() bool {
	return vm.keyValue >= 0
}

// TickTimers decrements DelayTimer and SoundTimer by 1 each, if nonzero.
// Timers never underflow.
func (vm *VM) TickTimers() {
	if vm.state.DelayTimer > 0 {
		vm.state.DelayTimer--
	}
	if vm.state.SoundTimer > 0 {
		vm.state.SoundTimer--
	}
}

// Step advances the VM by one instruction in ModeRunning, or services a
// ModeWaitForKey park. On the step a key first becomes available while
// parked, Step writes the key into the target register, transitions to
// ModeRunning, and completes the parked FX0A in the same call by advancing
// PC past it, so the program visibly resumes past FX0A.
func (vm *VM) Step() error {
	switch vm.state.Mode {
	case ModeInit:
		return nil
	case ModeRunning:
		return vm.stepRunning()
	case ModeWaitForKey:
		if !vm.keyPressed() {
			return nil
		}
		vm.state.Mode = ModeRunning
		if err := vm.state.SetReg(int(vm.state.KeyTargetRegister), byte(vm.keyValue)); err != nil {
			return err
		}
		// PC still points at the parked FX0A; re-executing it would park
		// again, so finish it by moving to the next instruction.
		vm.state.PC = (vm.state.PC + InstructionSize) % MemorySize
		return nil
	default:
		return &UnimplementedStateError{Mode: vm.state.Mode}
	}
}

func (vm *VM) stepRunning() error {
	instruction, err := vm.fetch(vm.state.PC)
	if err != nil {
		return err
	}

	c := &cycle{
		instruction: instruction,
		nextPC:      vm.state.PC + InstructionSize,
		mode:        ModeRunning,
	}

	if err := vm.execute(c); err != nil {
		return err
	}

	vm.state.PC = c.nextPC % MemorySize
	vm.state.Mode = c.mode
	if c.mode == ModeWaitForKey {
		vm.state.KeyTargetRegister = c.keyTarget
	}

	return nil
}

func (vm *VM) fetch(pc uint16) (Instruction, error) {
	hi, err := vm.state.ReadByte(int(pc))
	if err != nil {
		return 0, err
	}
	lo, err := vm.state.ReadByte(int(pc) + 1)
	if err != nil {
		return 0, err
	}
	return Instruction(uint16(hi)<<8 | uint16(lo)), nil
}

func (vm *VM) execute(c *cycle) error {
	switch c.instruction.Prefix() {
	case 0x0:
		return vm.exec0(c)
	case 0x1:
		return vm.exec1(c)
	case 0x2:
		return vm.exec2(c)
	case 0x3:
		return vm.exec3(c)
	case 0x4:
		return vm.exec4(c)
	case 0x5:
		return vm.exec5(c)
	case 0x6:
		return vm.exec6(c)
	case 0x7:
		return vm.exec7(c)
	case 0x8:
		return vm.exec8(c)
	case 0x9:
		return vm.exec9(c)
	case 0xA:
		return vm.execA(c)
	case 0xB:
		return vm.execB(c)
	case 0xC:
		return vm.execC(c)
	case 0xD:
		return vm.execD(c)
	case 0xE:
		return vm.execE(c)
	case 0xF:
		return vm.execF(c)
	default:
		// Unreachable: Prefix() is masked to 4 bits.
		return &IllegalInstructionError{Opcode: c.instruction, Reason: "unknown prefix"}
	}
}
