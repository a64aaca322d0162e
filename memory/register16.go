package memory

import "github.com/nandgate/hack16/bitvec"

// Register16 is sixteen Bits sharing a single load-enable, the basic unit
// of storage the rest of the RAM hierarchy and the CPU's A/D registers
// are built from.
type Register16 struct {
	bits [16]Bit
}

// NewRegister16 constructs a Register16 initialized to zero.
func NewRegister16() Register16 {
	var r Register16
	for i := range r.bits {
		r.bits[i] = NewBit()
	}
	return r
}

// Out returns the 16-bit value currently stored.
func (r Register16) Out() bitvec.Word {
	var w bitvec.Word
	for i, b := range r.bits {
		w[i] = b.Out()
	}
	return w
}

// Tick returns the register's state after this clock edge: xs is stored
// when load is true, otherwise the current value is retained.
func (r Register16) Tick(xs bitvec.Word, load bool) Register16 {
	var next Register16
	for i := range r.bits {
		next.bits[i] = r.bits[i].Tick(xs[i], load)
	}
	return next
}
