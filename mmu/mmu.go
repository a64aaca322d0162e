// Package mmu implements the Hack memory-mapped unit: the 16K-word main
// RAM, the 8K-word screen RAM, and the one-word keyboard register, all
// addressed through a single 15-bit bus (spec.md §4.5).
package mmu

import (
	"fmt"

	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/gates"
	"github.com/nandgate/hack16/memory"
)

const (
	screenBase   = 1 << 14
	keyboardAddr = 1<<14 + 1<<13
)

// InvalidAddressError reports an address beyond the keyboard register, the
// top of the Hack memory map (spec.md §4.5, §6, §7).
type InvalidAddressError struct {
	Addr int
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("mmu: address %#x exceeds the keyboard register at %#x", e.Addr, keyboardAddr)
}

// Unit is the memory-mapped unit: main RAM, screen RAM and the keyboard
// register behind one 15-bit address bus.
type Unit struct {
	ram      *memory.RAM16K
	screen   *memory.RAM8K
	keyboard bitvec.Word
	out      bitvec.Word
}

// New constructs a Unit with every region zeroed.
func New() *Unit {
	return &Unit{ram: memory.NewRAM16K(), screen: memory.NewRAM8K()}
}

// Out returns the word most recently addressed.
func (u *Unit) Out() bitvec.Word {
	return u.out
}

// Tick decodes addr into a region (main RAM, screen or keyboard) using a
// demux on the address's top bits, forwards load and the region-local
// sub-address, and selects the new output by the same decoding (spec.md
// §4.5, steps 1-4). It returns an InvalidAddressError if addr exceeds the
// keyboard register.
func (u *Unit) Tick(value bitvec.Word, load bool, addr bitvec.Addr15) (bitvec.Word, error) {
	idx := bitvec.ToInt(addr[:])
	if idx > keyboardAddr {
		return bitvec.Zero, InvalidAddressError{Addr: idx}
	}

	highBit := addr[0]
	loadRAM, loadIO := gates.DMUX(load, highBit)

	var ramAddr bitvec.Addr14
	copy(ramAddr[:], addr[1:])
	u.ram.Tick(value, loadRAM, ramAddr)

	secondBit := addr[1]
	loadScreen, loadKeyboard := gates.DMUX(loadIO, secondBit)

	var screenAddr bitvec.Addr13
	copy(screenAddr[:], addr[2:])
	u.screen.Tick(value, loadScreen, screenAddr)

	// The keyboard register is read-only from the CPU's perspective: a
	// load into this region never changes it (spec.md §4.5 step 3). Only
	// an external keyboard source (SetKey) may write it.
	_ = loadKeyboard

	ioOut := gates.MUX16(u.screen.Out(), u.keyboard, secondBit)
	u.out = gates.MUX16(u.ram.Out(), ioOut, highBit)
	return u.out, nil
}

// Peek reads the word at addr without advancing state, for use by a
// renderer reading the screen region between ticks (spec.md §5's external
// collaborators allowance).
func (u *Unit) Peek(addr bitvec.Addr15) (bitvec.Word, error) {
	idx := bitvec.ToInt(addr[:])
	if idx > keyboardAddr {
		return bitvec.Zero, InvalidAddressError{Addr: idx}
	}
	switch {
	case idx < screenBase:
		var ramAddr bitvec.Addr14
		copy(ramAddr[:], addr[1:])
		return u.ram.Peek(ramAddr), nil
	case idx < keyboardAddr:
		var screenAddr bitvec.Addr13
		copy(screenAddr[:], addr[2:])
		return u.screen.Peek(screenAddr), nil
	default:
		return u.keyboard, nil
	}
}

// Screen returns the 8,192 words of the screen region in address order,
// for a renderer to consume between ticks (spec.md §6).
func (u *Unit) Screen() [1 << 13]bitvec.Word {
	var words [1 << 13]bitvec.Word
	for i := range words {
		var addr bitvec.Addr13
		copy(addr[:], bitsOf(i, 13))
		words[i] = u.screen.Peek(addr)
	}
	return words
}

// SetKey writes a scan code into the keyboard register, simulating the
// external keyboard source between ticks (spec.md §5, §6).
func (u *Unit) SetKey(scanCode bitvec.Word) {
	u.keyboard = scanCode
}

func bitsOf(n, width int) []bool {
	bits := make([]bool, width)
	for i := width - 1; i >= 0; i-- {
		bits[i] = n&1 == 1
		n >>= 1
	}
	return bits
}
