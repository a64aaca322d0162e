// Package cpu implements the Hack CPU: instruction decode, the exhaustive
// comp/dest/jump tables, and the Chip control path that ties the A/D
// registers and the ALU together each tick.
package cpu

import (
	"fmt"

	"github.com/nandgate/hack16/arithmetic"
)

// Comp is one of the eighteen canonical ALU functions reachable from a
// C-instruction's comp field, independent of whether the y-input is A or
// M (that choice is the instruction's separate "a" bit).
type Comp int

const (
	CompZero Comp = iota
	CompOne
	CompNegOne
	CompD
	CompAorM
	CompNotD
	CompNotAorM
	CompNegD
	CompNegAorM
	CompDPlus1
	CompAorMPlus1
	CompDMinus1
	CompAorMMinus1
	CompDPlusAorM
	CompDMinusAorM
	CompAorMMinusD
	CompDAndAorM
	CompDOrAorM
)

// compLookup maps the full 7-bit (a, c1..c6) field to its Comp tag. Only
// the 28 combinations spec.md's §6 COMP table actually lists are present:
// the eight D-only functions (0, 1, -1, D, !D, -D, D+1, D-1) have no a=1
// entry, since there is no "D with M" variant of them to select. A
// c1..c6 pattern paired with any other a is not a canonical instruction
// (matches original_source/computer.py's is_supported_instruction, which
// checks the same 7-bit field as one unit rather than c1..c6 alone).
var compLookup = map[[7]bool]Comp{
	{false, true, false, true, false, true, false}: CompZero,
	{false, true, true, true, true, true, true}:    CompOne,
	{false, true, true, true, false, true, false}:  CompNegOne,
	{false, false, false, true, true, false, false}: CompD,
	{false, true, true, false, false, false, false}: CompAorM,
	{true, true, true, false, false, false, false}:  CompAorM,
	{false, false, false, true, true, false, true}:  CompNotD,
	{false, true, true, false, false, false, true}:  CompNotAorM,
	{true, true, true, false, false, false, true}:   CompNotAorM,
	{false, false, false, true, true, true, true}:   CompNegD,
	{false, true, true, false, false, true, true}:   CompNegAorM,
	{true, true, true, false, false, true, true}:    CompNegAorM,
	{false, false, true, true, true, true, true}:    CompDPlus1,
	{false, true, true, false, true, true, true}:    CompAorMPlus1,
	{true, true, true, false, true, true, true}:     CompAorMPlus1,
	{false, false, false, true, true, true, false}:  CompDMinus1,
	{false, true, true, false, false, true, false}:  CompAorMMinus1,
	{true, true, true, false, false, true, false}:   CompAorMMinus1,
	{false, false, false, false, false, true, false}: CompDPlusAorM,
	{true, false, false, false, false, true, false}:  CompDPlusAorM,
	{false, false, true, false, false, true, true}:   CompDMinusAorM,
	{true, false, true, false, false, true, true}:    CompDMinusAorM,
	{false, false, false, false, true, true, true}:   CompAorMMinusD,
	{true, false, false, false, true, true, true}:    CompAorMMinusD,
	{false, false, false, false, false, false, false}: CompDAndAorM,
	{true, false, false, false, false, false, false}:  CompDAndAorM,
	{false, false, true, false, true, false, true}:    CompDOrAorM,
	{true, false, true, false, true, false, true}:     CompDOrAorM,
}

// control translates a Comp tag into the ALU control line settings, reusing
// the same canonical Control values package arithmetic already exposes.
var control = map[Comp]arithmetic.Control{
	CompZero:       arithmetic.CompZero,
	CompOne:        arithmetic.CompOne,
	CompNegOne:     arithmetic.CompNegOne,
	CompD:          arithmetic.CompD,
	CompAorM:       arithmetic.CompA,
	CompNotD:       arithmetic.CompNotD,
	CompNotAorM:    arithmetic.CompNotA,
	CompNegD:       arithmetic.CompNegD,
	CompNegAorM:    arithmetic.CompNegA,
	CompDPlus1:     arithmetic.CompDPlus1,
	CompAorMPlus1:  arithmetic.CompAPlus1,
	CompDMinus1:    arithmetic.CompDMinus1,
	CompAorMMinus1: arithmetic.CompAMinus1,
	CompDPlusAorM:  arithmetic.CompDPlusA,
	CompDMinusAorM: arithmetic.CompDMinusA,
	CompAorMMinusD: arithmetic.CompAMinusD,
	CompDAndAorM:   arithmetic.CompDAndA,
	CompDOrAorM:    arithmetic.CompDOrA,
}

// Jump is one of the eight canonical jump conditions reachable from a
// C-instruction's jump field.
type Jump int

const (
	JumpNull Jump = iota
	JGT
	JEQ
	JGE
	JLT
	JNE
	JLE
	JMP
)

var jumpTable = [8]Jump{JumpNull, JGT, JEQ, JGE, JLT, JNE, JLE, JMP}

// decodeJump maps a j1j2j3 bit triple to its Jump tag.
func decodeJump(j1, j2, j3 bool) Jump {
	idx := 0
	if j1 {
		idx |= 4
	}
	if j2 {
		idx |= 2
	}
	if j3 {
		idx |= 1
	}
	return jumpTable[idx]
}

// shouldJump reports whether j's condition holds given the ALU flags of the
// instruction's own comp computation (spec.md §4.4's "important ordering"
// requirement: these must be the just-computed flags, never stale ones).
func (j Jump) shouldJump(zr, ng bool) bool {
	switch j {
	case JumpNull:
		return false
	case JGT:
		return !ng && !zr
	case JEQ:
		return zr
	case JGE:
		return !ng
	case JLT:
		return ng
	case JNE:
		return !zr
	case JLE:
		return ng || zr
	case JMP:
		return true
	default:
		return false
	}
}

// Dest is the d1d2d3 destination mask of a C-instruction: which of A, D, M
// receive the comp result.
type Dest struct {
	A bool
	D bool
	M bool
}

// InvalidInstructionError reports that a C-instruction's comp, dest or
// jump field triple does not match any canonical table entry.
type InvalidInstructionError struct {
	Instruction [16]bool
	Reason      string
}

func (e InvalidInstructionError) Error() string {
	return fmt.Sprintf("cpu: invalid instruction %v: %s", e.Instruction, e.Reason)
}
