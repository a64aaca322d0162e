package memory

import "github.com/nandgate/hack16/gates"

// Bit is a 1-bit register: a DFF wrapped with a load-enable. On a tick
// with load=true, the next output equals x; with load=false, the
// previous output is retained.
type Bit struct {
	dff DFF
}

// NewBit constructs a Bit initialized to false.
func NewBit() Bit {
	return Bit{dff: NewDFF(false)}
}

// Out returns the bit currently stored.
func (b Bit) Out() bool {
	return b.dff.Out()
}

// Tick returns the Bit's state after this clock edge: x is stored when
// load is true, otherwise the current value is retained.
func (b Bit) Tick(x, load bool) Bit {
	next := gates.MUX(b.dff.Out(), x, load)
	return Bit{dff: b.dff.Tick(next)}
}
