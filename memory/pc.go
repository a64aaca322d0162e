package memory

import (
	"github.com/nandgate/hack16/arithmetic"
	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/gates"
)

// PC is a 16-bit register augmented with reset/load/inc control, with
// fixed priority reset > load > inc (spec.md §4.3).
type PC struct {
	register Register16
}

// NewPC constructs a PC initialized to zero.
func NewPC() PC {
	return PC{register: NewRegister16()}
}

// Out returns the counter's current 16-bit value.
func (p PC) Out() bitvec.Word {
	return p.register.Out()
}

// Tick advances the counter by one clock edge. reset takes priority over
// load, which takes priority over inc; if none apply, the counter holds
// its current value.
func (p PC) Tick(xs bitvec.Word, load, inc, reset bool) PC {
	incremented := gates.MUX16(p.Out(), arithmetic.INC16(p.Out()), inc)
	loaded := gates.MUX16(incremented, xs, load)
	next := gates.MUX16(loaded, bitvec.Zero, reset)
	return PC{register: p.register.Tick(next, true)}
}
