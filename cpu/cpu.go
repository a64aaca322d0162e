package cpu

import (
	"github.com/nandgate/hack16/arithmetic"
	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/gates"
	"github.com/nandgate/hack16/memory"
)

// Chip is the Hack CPU: the A and D registers plus the program counter.
// The ALU itself is stateless and lives in package arithmetic; Chip only
// owns the sequential state that persists across ticks (spec.md §4.4).
type Chip struct {
	A  memory.Register16
	D  memory.Register16
	PC memory.PC
}

// New constructs a Chip with A, D and PC all zeroed, matching the
// cold-start state of spec.md §4.6.
func New() Chip {
	return Chip{A: memory.NewRegister16(), D: memory.NewRegister16(), PC: memory.NewPC()}
}

// Result bundles the CPU's observable outputs for a single tick, alongside
// the Chip's successor state.
type Result struct {
	Next     Chip
	OutM     bitvec.Word
	WriteM   bool
	AddressM bitvec.Addr15
	PCOut    bitvec.Addr15
}

// Tick advances the CPU by one clock edge given the fetched instruction,
// the current memory output inM, and the external reset line. It returns
// an InvalidInstructionError if instruction is a malformed C-instruction.
func (c Chip) Tick(instruction bitvec.Word, inM bitvec.Word, reset bool) (Result, error) {
	if !instruction[0] {
		return c.tickAInstruction(instruction, reset), nil
	}
	return c.tickCInstruction(instruction, inM, reset)
}

func (c Chip) tickAInstruction(instruction bitvec.Word, reset bool) Result {
	nextA := c.A.Tick(instruction, true)
	nextPC := c.PC.Tick(c.A.Out(), false, true, reset)
	return Result{
		Next:     Chip{A: nextA, D: c.D, PC: nextPC},
		OutM:     bitvec.Zero,
		WriteM:   false,
		AddressM: nextA.Out().Low15(),
		PCOut:    nextPC.Out().Low15(),
	}
}

func (c Chip) tickCInstruction(instruction bitvec.Word, inM bitvec.Word, reset bool) (Result, error) {
	if !instruction[1] || !instruction[2] {
		return Result{}, InvalidInstructionError{Instruction: instruction, Reason: "C-instruction opcode bits must be 111"}
	}

	a := instruction[3]
	var key [7]bool
	key[0] = a
	copy(key[1:], instruction[4:10])
	comp, ok := compLookup[key]
	if !ok {
		return Result{}, InvalidInstructionError{Instruction: instruction, Reason: "comp field does not match any canonical function"}
	}
	ctl := control[comp]

	destA, destD, destM := instruction[10], instruction[11], instruction[12]
	jump := decodeJump(instruction[13], instruction[14], instruction[15])

	y := gates.MUX16(c.A.Out(), inM, a)
	outM, zr, ng := arithmetic.ALU(c.D.Out(), y, ctl)

	nextA := c.A.Tick(outM, destA)
	nextD := c.D.Tick(outM, destD)

	shouldJump := jump.shouldJump(zr, ng)
	nextPC := c.PC.Tick(c.A.Out(), shouldJump, true, reset)

	return Result{
		Next:     Chip{A: nextA, D: nextD, PC: nextPC},
		OutM:     outM,
		WriteM:   destM,
		AddressM: c.A.Out().Low15(),
		PCOut:    nextPC.Out().Low15(),
	}, nil
}
