package arithmetic

import (
	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/gates"
)

// Control holds the six control bits that select one of the Hack ALU's
// eighteen canonical functions (spec.md §4.2, §6 COMP table). ZX/NX zero
// and negate x before the main operation; ZY/NY do the same to y; F
// selects add (true) vs bitwise-and (false); NO negates the result.
type Control struct {
	ZX, NX, ZY, NY, F, NO bool
}

// ALU computes the Hack arithmetic-logic unit's output for x, y under the
// given control settings, along with the zero (zr) and negative (ng)
// flags of that output.
func ALU(x, y bitvec.Word, ctl Control) (out bitvec.Word, zr, ng bool) {
	xp := applyZN(x, ctl.ZX, ctl.NX)
	yp := applyZN(y, ctl.ZY, ctl.NY)

	var result bitvec.Word
	if ctl.F {
		result = ADD16(xp, yp)
	} else {
		result = gates.AND16(xp, yp)
	}

	if ctl.NO {
		result = gates.NOT16(result)
	}

	return result, result.IsZero(), result.IsNegative()
}

// applyZN zeroes v when zero is set, then inverts the (possibly zeroed)
// result when negate is set.
func applyZN(v bitvec.Word, zero, negate bool) bitvec.Word {
	if zero {
		v = bitvec.Zero
	}
	if negate {
		v = gates.NOT16(v)
	}
	return v
}

// Canonical control settings for the eighteen named ALU functions
// (spec.md §6 COMP table). a=0 selects the A register as y; a=1 selects
// M (the currently addressed memory word) instead — both share the same
// Control value, since the CPU is responsible for choosing which 16-bit
// value is fed in as y.
var (
	CompZero    = Control{ZX: true, NX: false, ZY: true, NY: false, F: true, NO: false}  // 0
	CompOne     = Control{ZX: true, NX: true, ZY: true, NY: true, F: true, NO: true}     // 1
	CompNegOne  = Control{ZX: true, NX: true, ZY: true, NY: false, F: true, NO: false}   // -1
	CompD       = Control{ZX: false, NX: false, ZY: true, NY: true, F: false, NO: false} // D
	CompA       = Control{ZX: true, NX: true, ZY: false, NY: false, F: false, NO: false} // A (or M)
	CompNotD    = Control{ZX: false, NX: false, ZY: true, NY: true, F: false, NO: true}  // !D
	CompNotA    = Control{ZX: true, NX: true, ZY: false, NY: false, F: false, NO: true}  // !A (or !M)
	CompNegD    = Control{ZX: false, NX: false, ZY: true, NY: true, F: true, NO: true}   // -D
	CompNegA    = Control{ZX: true, NX: true, ZY: false, NY: false, F: true, NO: true}   // -A (or -M)
	CompDPlus1  = Control{ZX: false, NX: true, ZY: true, NY: true, F: true, NO: true}    // D+1
	CompAPlus1  = Control{ZX: true, NX: true, ZY: false, NY: true, F: true, NO: true}    // A+1 (or M+1)
	CompDMinus1 = Control{ZX: false, NX: false, ZY: true, NY: true, F: true, NO: false}  // D-1
	CompAMinus1 = Control{ZX: true, NX: true, ZY: false, NY: false, F: true, NO: false}  // A-1 (or M-1)
	CompDPlusA  = Control{ZX: false, NX: false, ZY: false, NY: false, F: true, NO: false}// D+A (or D+M)
	CompDMinusA = Control{ZX: false, NX: true, ZY: false, NY: false, F: true, NO: true}  // D-A (or D-M)
	CompAMinusD = Control{ZX: false, NX: false, ZY: false, NY: true, F: true, NO: true}  // A-D (or M-D)
	CompDAndA   = Control{ZX: false, NX: false, ZY: false, NY: false, F: false, NO: false} // D&A (or D&M)
	CompDOrA    = Control{ZX: false, NX: true, ZY: false, NY: true, F: false, NO: true}  // D|A (or D|M)
)
