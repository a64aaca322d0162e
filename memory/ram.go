package memory

import (
	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/gates"
)

// RAM8 is eight Register16s addressed by a 3-bit selector: the leaf of
// the RAM hierarchy (spec.md §4.3).
type RAM8 struct {
	registers [8]Register16
	out       bitvec.Word
}

// NewRAM8 constructs a RAM8 with every register zeroed.
func NewRAM8() RAM8 {
	var r RAM8
	for i := range r.registers {
		r.registers[i] = NewRegister16()
	}
	return r
}

// Out returns the word most recently addressed.
func (r RAM8) Out() bitvec.Word {
	return r.out
}

// State returns the current contents of all eight registers, in address
// order, for tests and higher levels of the hierarchy.
func (r RAM8) State() [8]bitvec.Word {
	var s [8]bitvec.Word
	for i, reg := range r.registers {
		s[i] = reg.Out()
	}
	return s
}

// Tick decodes addr through an 8-way demux on load to produce one
// per-register load-enable, ticks every register, and selects the
// addressed word as the new output (write-then-read semantics: when
// load is true, Out() after Tick equals value).
func (r RAM8) Tick(value bitvec.Word, load bool, addr bitvec.Addr3) RAM8 {
	sel := bitvec.Sel3(addr)
	l0, l1, l2, l3, l4, l5, l6, l7 := gates.DMUX8Way(load, sel)
	loads := [8]bool{l0, l1, l2, l3, l4, l5, l6, l7}

	var next RAM8
	for i := range r.registers {
		next.registers[i] = r.registers[i].Tick(value, loads[i])
	}
	outs := next.State()
	next.out = gates.MUX8Way16(outs[0], outs[1], outs[2], outs[3], outs[4], outs[5], outs[6], outs[7], sel)
	return next
}

// RAM64 is eight RAM8s addressed by a 6-bit address, the top 3 bits
// selecting the RAM8 and the bottom 3 forwarded as its own address.
type RAM64 struct {
	banks [8]RAM8
	out   bitvec.Word
}

// NewRAM64 constructs a RAM64 with every word zeroed.
func NewRAM64() RAM64 {
	var r RAM64
	for i := range r.banks {
		r.banks[i] = NewRAM8()
	}
	return r
}

// Out returns the word most recently addressed.
func (r RAM64) Out() bitvec.Word {
	return r.out
}

// State returns the current contents of all 64 words, in address order.
func (r RAM64) State() [64]bitvec.Word {
	var s [64]bitvec.Word
	for i, bank := range r.banks {
		bankState := bank.State()
		copy(s[i*8:(i+1)*8], bankState[:])
	}
	return s
}

// Tick decodes the top 3 bits of addr through an 8-way demux on load,
// forwards the low 3 bits to each RAM8 as its address, and selects the
// addressed bank's output as the new output.
func (r RAM64) Tick(value bitvec.Word, load bool, addr bitvec.Addr6) RAM64 {
	high := bitvec.Sel3{addr[0], addr[1], addr[2]}
	var low bitvec.Addr3
	copy(low[:], addr[3:])

	l0, l1, l2, l3, l4, l5, l6, l7 := gates.DMUX8Way(load, high)
	loads := [8]bool{l0, l1, l2, l3, l4, l5, l6, l7}

	var next RAM64
	for i := range r.banks {
		next.banks[i] = r.banks[i].Tick(value, loads[i], low)
	}
	next.out = gates.MUX8Way16(
		next.banks[0].Out(), next.banks[1].Out(), next.banks[2].Out(), next.banks[3].Out(),
		next.banks[4].Out(), next.banks[5].Out(), next.banks[6].Out(), next.banks[7].Out(),
		high,
	)
	return next
}

// RAM512 is eight RAM64s addressed by a 9-bit address.
type RAM512 struct {
	banks [8]RAM64
	out   bitvec.Word
}

// NewRAM512 constructs a RAM512 with every word zeroed.
func NewRAM512() RAM512 {
	var r RAM512
	for i := range r.banks {
		r.banks[i] = NewRAM64()
	}
	return r
}

// Out returns the word most recently addressed.
func (r RAM512) Out() bitvec.Word {
	return r.out
}

// Tick decodes the top 3 bits of addr through an 8-way demux on load,
// forwards the low 6 bits to each RAM64 as its address.
func (r RAM512) Tick(value bitvec.Word, load bool, addr bitvec.Addr9) RAM512 {
	high := bitvec.Sel3{addr[0], addr[1], addr[2]}
	var low bitvec.Addr6
	copy(low[:], addr[3:])

	l0, l1, l2, l3, l4, l5, l6, l7 := gates.DMUX8Way(load, high)
	loads := [8]bool{l0, l1, l2, l3, l4, l5, l6, l7}

	var next RAM512
	for i := range r.banks {
		next.banks[i] = r.banks[i].Tick(value, loads[i], low)
	}
	next.out = gates.MUX8Way16(
		next.banks[0].Out(), next.banks[1].Out(), next.banks[2].Out(), next.banks[3].Out(),
		next.banks[4].Out(), next.banks[5].Out(), next.banks[6].Out(), next.banks[7].Out(),
		high,
	)
	return next
}

// RAM4K is eight RAM512s addressed by a 12-bit address.
type RAM4K struct {
	banks [8]RAM512
	out   bitvec.Word
}

// NewRAM4K constructs a RAM4K with every word zeroed.
func NewRAM4K() RAM4K {
	var r RAM4K
	for i := range r.banks {
		r.banks[i] = NewRAM512()
	}
	return r
}

// Out returns the word most recently addressed.
func (r RAM4K) Out() bitvec.Word {
	return r.out
}

// Tick decodes the top 3 bits of addr through an 8-way demux on load,
// forwards the low 9 bits to each RAM512 as its address.
func (r RAM4K) Tick(value bitvec.Word, load bool, addr bitvec.Addr12) RAM4K {
	high := bitvec.Sel3{addr[0], addr[1], addr[2]}
	var low bitvec.Addr9
	copy(low[:], addr[3:])

	l0, l1, l2, l3, l4, l5, l6, l7 := gates.DMUX8Way(load, high)
	loads := [8]bool{l0, l1, l2, l3, l4, l5, l6, l7}

	var next RAM4K
	for i := range r.banks {
		next.banks[i] = r.banks[i].Tick(value, loads[i], low)
	}
	next.out = gates.MUX8Way16(
		next.banks[0].Out(), next.banks[1].Out(), next.banks[2].Out(), next.banks[3].Out(),
		next.banks[4].Out(), next.banks[5].Out(), next.banks[6].Out(), next.banks[7].Out(),
		high,
	)
	return next
}
