package memory

import "github.com/nandgate/hack16/bitvec"

// RAM8K and RAM16K back the screen and main-RAM regions of the Hack
// memory map. Structurally they are still "two/four RAM4Ks selected by
// the top address bits" per spec.md §4.3, but at this scale the
// immutable-tree style of RAM8..RAM4K would reallocate 8K or 16K words
// on every single tick. Per spec.md §9's own optimization note, these two
// levels are instead backed by a flat mutable array behind a pointer
// receiver: the externally observed contract (Tick returns the
// successor state, no caller ever sees a half-written word) is
// unchanged, only the representation is denser.

// RAM8K is an 8,192-word memory addressed by a 13-bit address, used for
// the screen region of the memory map.
type RAM8K struct {
	words [1 << 13]bitvec.Word
	out   bitvec.Word
}

// NewRAM8K constructs a RAM8K with every word zeroed.
func NewRAM8K() *RAM8K {
	return &RAM8K{}
}

// Out returns the word most recently addressed.
func (r *RAM8K) Out() bitvec.Word {
	return r.out
}

// Peek reads the word at addr without going through the clocked Tick
// interface, for use by external readers such as a screen renderer
// between ticks (spec.md §5's "external collaborators" allowance).
func (r *RAM8K) Peek(addr bitvec.Addr13) bitvec.Word {
	return r.words[bitvec.ToInt(addr[:])]
}

// Tick stores value at addr when load is true, and in all cases sets
// Out() to the word now stored at addr.
func (r *RAM8K) Tick(value bitvec.Word, load bool, addr bitvec.Addr13) *RAM8K {
	idx := bitvec.ToInt(addr[:])
	if load {
		r.words[idx] = value
	}
	r.out = r.words[idx]
	return r
}

// RAM16K is a 16,384-word memory addressed by a 14-bit address, the main
// RAM region of the memory map.
type RAM16K struct {
	words [1 << 14]bitvec.Word
	out   bitvec.Word
}

// NewRAM16K constructs a RAM16K with every word zeroed.
func NewRAM16K() *RAM16K {
	return &RAM16K{}
}

// Out returns the word most recently addressed.
func (r *RAM16K) Out() bitvec.Word {
	return r.out
}

// Peek reads the word at addr without going through the clocked Tick
// interface.
func (r *RAM16K) Peek(addr bitvec.Addr14) bitvec.Word {
	return r.words[bitvec.ToInt(addr[:])]
}

// Tick stores value at addr when load is true, and in all cases sets
// Out() to the word now stored at addr.
func (r *RAM16K) Tick(value bitvec.Word, load bool, addr bitvec.Addr14) *RAM16K {
	idx := bitvec.ToInt(addr[:])
	if load {
		r.words[idx] = value
	}
	r.out = r.words[idx]
	return r
}
