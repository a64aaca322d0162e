// Package computer assembles the ROM, CPU and memory-mapped unit into the
// top-level Hack machine and defines its single tick operation (spec.md
// §4.6).
package computer

import (
	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/cpu"
	"github.com/nandgate/hack16/memory"
	"github.com/nandgate/hack16/mmu"
)

// Computer is the assembled Hack machine: a ROM holding the loaded
// program, the CPU, and the memory-mapped unit.
type Computer struct {
	ROM *memory.ROM32K
	CPU cpu.Chip
	Mem *mmu.Unit

	// Last tick's observable outputs, kept for inspection by a monitor or
	// renderer between ticks.
	OutM     bitvec.Word
	WriteM   bool
	AddressM bitvec.Addr15
}

// New constructs a cold-start Computer: CPU and memory zeroed, running rom.
func New(rom *memory.ROM32K) *Computer {
	return &Computer{ROM: rom, CPU: cpu.New(), Mem: mmu.New()}
}

// Tick advances the whole machine by one clock edge: fetch the instruction
// addressed by the CPU's program counter, advance the CPU, then advance
// memory with the new CPU's outputs (spec.md §4.6 steps 1-4). It returns an
// error if the fetched instruction is malformed or addressM falls outside
// the memory map.
func (c *Computer) Tick(reset bool) error {
	instruction := c.ROM.Read(c.CPU.PC.Out().Low15())

	result, err := c.CPU.Tick(instruction, c.Mem.Out(), reset)
	if err != nil {
		return err
	}

	if _, err := c.Mem.Tick(result.OutM, result.WriteM, result.AddressM); err != nil {
		return err
	}

	c.CPU = result.Next
	c.OutM = result.OutM
	c.WriteM = result.WriteM
	c.AddressM = result.AddressM
	return nil
}
