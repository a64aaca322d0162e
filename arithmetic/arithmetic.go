// Package arithmetic builds the Hack ALU up from half/full adders through
// the 16-bit ripple-carry adder and the full 18-function ALU. Like
// package gates, every function here is pure: two's-complement overflow
// wraps silently modulo 2^16, per spec.md's Non-goals.
package arithmetic

import (
	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/gates"
)

// HalfAdder adds two bits, returning their sum and carry.
func HalfAdder(x, y bool) (sum, carry bool) {
	return gates.XOR(x, y), gates.AND(x, y)
}

// FullAdder adds two bits plus an incoming carry.
func FullAdder(x, y, c bool) (sum, carry bool) {
	s1, c1 := HalfAdder(x, y)
	s2, c2 := HalfAdder(s1, c)
	return s2, gates.OR(c1, c2)
}

// ADD16 ripple-carry adds x and y, discarding the final carry-out so that
// overflow wraps modulo 2^16.
func ADD16(x, y bitvec.Word) bitvec.Word {
	var out bitvec.Word
	carry := false
	for i := 15; i >= 0; i-- {
		out[i], carry = FullAdder(x[i], y[i], carry)
	}
	return out
}

// INC16 adds one to x.
func INC16(x bitvec.Word) bitvec.Word {
	return ADD16(x, bitvec.One)
}

// NEG16 returns the two's-complement negation of x: bitwise-not then +1.
func NEG16(x bitvec.Word) bitvec.Word {
	return INC16(gates.NOT16(x))
}
