// Package gates implements the combinational logic layer of the Hack
// emulator: NAND and its derived gates, their 16-bit bitwise forms, and
// the multi-way mux/demux building blocks the RAM hierarchy decodes
// addresses with. Every function here is a total, side-effect-free
// function of its inputs — nothing in this package is stateful.
package gates

import "github.com/nandgate/hack16/bitvec"

// NAND is the primitive gate the rest of combinational logic is
// conceptually built from; the remaining elementary gates are expressed
// directly in terms of Go's native boolean operators.
func NAND(x, y bool) bool {
	return !(x && y)
}

// AND is the two-input AND gate.
func AND(x, y bool) bool {
	return x && y
}

// OR is the two-input OR gate.
func OR(x, y bool) bool {
	return x || y
}

// NOT is the single-input inverter.
func NOT(x bool) bool {
	return !x
}

// XOR is the two-input exclusive-or gate.
func XOR(x, y bool) bool {
	return x != y
}

// MUX selects y when sel is true, else x.
func MUX(x, y, sel bool) bool {
	if sel {
		return y
	}
	return x
}

// DMUX routes x to its first return value when sel is false, to its
// second when sel is true; the unselected output is always false.
func DMUX(x, sel bool) (a, b bool) {
	if sel {
		return false, x
	}
	return x, false
}

// NOT16 inverts every bit of x.
func NOT16(x bitvec.Word) bitvec.Word {
	var out bitvec.Word
	for i, b := range x {
		out[i] = !b
	}
	return out
}

// AND16 ANDs x and y bitwise.
func AND16(x, y bitvec.Word) bitvec.Word {
	var out bitvec.Word
	for i := range x {
		out[i] = x[i] && y[i]
	}
	return out
}

// OR16 ORs x and y bitwise.
func OR16(x, y bitvec.Word) bitvec.Word {
	var out bitvec.Word
	for i := range x {
		out[i] = x[i] || y[i]
	}
	return out
}

// MUX16 selects y when sel is true, else x, applied bitwise.
func MUX16(x, y bitvec.Word, sel bool) bitvec.Word {
	if sel {
		return y
	}
	return x
}

// OR8Way reduces an 8-bit vector to a single bit by OR.
func OR8Way(xs [8]bool) bool {
	out := false
	for _, b := range xs {
		out = out || b
	}
	return out
}

// OR16Way reduces a 16-bit word to a single bit by OR.
func OR16Way(xs bitvec.Word) bool {
	var a, b [8]bool
	copy(a[:], xs[:8])
	copy(b[:], xs[8:])
	return OR(OR8Way(a), OR8Way(b))
}

// MUX4Way16 selects one of four 16-bit inputs: 00 -> a, 01 -> b, 10 -> c,
// 11 -> d, sel[0] being the most significant selector bit. Implemented as
// the nested MUX16-of-MUX16 decomposition used by the gate-level original.
func MUX4Way16(a, b, c, d bitvec.Word, sel bitvec.Sel2) bitvec.Word {
	lowPair := MUX16(a, b, sel[1])
	highPair := MUX16(c, d, sel[1])
	return MUX16(lowPair, highPair, sel[0])
}

// MUX8Way16 selects one of eight 16-bit inputs using a 3-bit selector,
// sel[0] the most significant bit, by nesting two MUX4Way16 calls on the
// low two selector bits and one MUX16 on the high bit.
func MUX8Way16(a, b, c, d, e, f, g, h bitvec.Word, sel bitvec.Sel3) bitvec.Word {
	low := MUX4Way16(a, b, c, d, bitvec.Sel2{sel[1], sel[2]})
	high := MUX4Way16(e, f, g, h, bitvec.Sel2{sel[1], sel[2]})
	return MUX16(low, high, sel[0])
}

// DMUX4Way routes x to exactly one of four outputs selected by sel,
// sel[0] the most significant bit; the other three outputs are false.
func DMUX4Way(x bool, sel bitvec.Sel2) (a, b, c, d bool) {
	lo1, lo2 := DMUX(x, sel[1])
	hi1, hi2 := DMUX(x, sel[1])
	return AND(NOT(sel[0]), lo1), AND(NOT(sel[0]), lo2), AND(sel[0], hi1), AND(sel[0], hi2)
}

// DMUX8Way routes x to exactly one of eight outputs selected by sel,
// sel[0] the most significant bit; the other seven outputs are false.
func DMUX8Way(x bool, sel bitvec.Sel3) (a, b, c, d, e, f, g, h bool) {
	lo := bitvec.Sel2{sel[1], sel[2]}
	l1, l2, l3, l4 := DMUX4Way(x, lo)
	h1, h2, h3, h4 := DMUX4Way(x, lo)
	return AND(NOT(sel[0]), l1), AND(NOT(sel[0]), l2), AND(NOT(sel[0]), l3), AND(NOT(sel[0]), l4),
		AND(sel[0], h1), AND(sel[0], h2), AND(sel[0], h3), AND(sel[0], h4)
}
