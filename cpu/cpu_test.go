package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/nandgate/hack16/bitvec"
	"github.com/stretchr/testify/assert"
)

// encode builds a 16-bit instruction word from a bit string, MSB first.
func encode(t *testing.T, bits string) bitvec.Word {
	t.Helper()
	if len(bits) != 16 {
		t.Fatalf("instruction string %q must be 16 characters", bits)
	}
	var w bitvec.Word
	for i, c := range bits {
		switch c {
		case '1':
			w[i] = true
		case '0':
			w[i] = false
		default:
			t.Fatalf("invalid character %q in instruction string", c)
		}
	}
	return w
}

func aInstruction(t *testing.T, value uint16) bitvec.Word {
	t.Helper()
	w := bitvec.FromUint16(value)
	w[0] = false
	return w
}

func TestAInstructionLoadsAAndIncrementsPC(t *testing.T) {
	// Invariant #8 in spec.md §8.
	c := New()
	res, err := c.Tick(aInstruction(t, 5), bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.FromUint16(5), res.Next.A.Out())
	assert.Equal(t, bitvec.Zero, res.Next.D.Out())
	assert.False(t, res.WriteM)
	assert.Equal(t, bitvec.FromUint16(1), res.Next.PC.Out())
}

func TestCInstructionEndToEnd(t *testing.T) {
	// S6 in spec.md §8: @5 then D=A.
	c := New()
	first, err := c.Tick(aInstruction(t, 5), bitvec.Zero, false)
	assert.NoError(t, err)
	if diff := deep.Equal(bitvec.FromUint16(5), first.Next.A.Out()); diff != nil {
		t.Fatalf("after @5: %v\nstate: %s", diff, spew.Sdump(first))
	}
	assert.Equal(t, bitvec.FromUint16(1), first.Next.PC.Out())

	// D=A: comp=A (110000), dest=D (010), jump=null.
	dEqualsA := encode(t, "1110110000010000")
	second, err := first.Next.Tick(dEqualsA, bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.FromUint16(5), second.Next.D.Out())
	assert.Equal(t, bitvec.FromUint16(5), second.Next.A.Out())
	assert.Equal(t, bitvec.FromUint16(2), second.Next.PC.Out())
	assert.False(t, second.WriteM)
}

func TestCInstructionDestMask(t *testing.T) {
	// Invariant #9: A rewritten iff d1, D iff d2, writeM iff d3.
	cases := []struct {
		name          string
		dest          string
		wantA, wantD  bool
		wantWriteM    bool
	}{
		{"none", "000", false, false, false},
		{"A only", "100", true, false, false},
		{"D only", "010", false, true, false},
		{"M only", "001", false, false, true},
		{"all", "111", true, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Chip{A: New().A, D: New().D, PC: New().PC}
			instr := encode(t, "111"+"0"+"011111"+tc.dest+"000") // comp=D+1
			res, err := c.Tick(instr, bitvec.Zero, false)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantA, res.Next.A.Out() != c.A.Out())
			assert.Equal(t, tc.wantD, res.Next.D.Out() != c.D.Out())
			assert.Equal(t, tc.wantWriteM, res.WriteM)
		})
	}
}

func TestJumpTakenWhenConditionHolds(t *testing.T) {
	// Invariant #10.
	c := New()
	loaded, err := c.Tick(aInstruction(t, 10), bitvec.Zero, false)
	assert.NoError(t, err)

	// comp=0 (zr=true), jump=JEQ (010) must jump to A=10.
	jeq := encode(t, "1110101010000010")
	jumped, err := loaded.Next.Tick(jeq, bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.FromUint16(10), jumped.Next.PC.Out())

	// comp=0, jump=JGT (001) must not jump; PC increments instead.
	jgt := encode(t, "1110101010000001")
	notJumped, err := loaded.Next.Tick(jgt, bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.FromUint16(2), notJumped.Next.PC.Out())
}

func TestResetSupremacy(t *testing.T) {
	// Invariant #11: reset forces PC to 0 regardless of instruction.
	c := New()
	jmp := encode(t, "1110101010000111")
	res, err := c.Tick(jmp, bitvec.Zero, true)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.Zero, res.Next.PC.Out())
}

func TestInvalidCompFieldRejected(t *testing.T) {
	bad := encode(t, "1110000001000000") // 000001 is not a canonical comp pattern
	c := New()
	_, err := c.Tick(bad, bitvec.Zero, false)
	assert.Error(t, err)
	var invalid InvalidInstructionError
	assert.ErrorAs(t, err, &invalid)
}

func TestInvalidCompFieldRejectsMismatchedABit(t *testing.T) {
	// comp=001100 is the canonical "D" function, but only with a=0; D never
	// reads A or M, so a=1 paired with this pattern has no meaning (spec.md
	// §6 COMP table lists no "D" row with a=1). This must be rejected even
	// though the bare 6-bit c1..c6 pattern is otherwise in the table.
	bad := encode(t, "1111001100000000") // a=1, c1..c6=001100, dest=000, jump=000
	c := New()
	_, err := c.Tick(bad, bitvec.Zero, false)
	assert.Error(t, err)
	var invalid InvalidInstructionError
	assert.ErrorAs(t, err, &invalid)
}

func TestInvalidOpcodeBitsRejected(t *testing.T) {
	bad := encode(t, "1010101010000000") // bit 1 is 0, not a well-formed C-instruction
	c := New()
	_, err := c.Tick(bad, bitvec.Zero, false)
	assert.Error(t, err)
}

func TestAddressMAndPCOutAreFifteenBits(t *testing.T) {
	c := New()
	res, err := c.Tick(aInstruction(t, 0x4000), bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Len(t, res.AddressM, 15)
	assert.Equal(t, bitvec.FromUint16(0x4000).Low15(), res.AddressM)
	assert.Len(t, res.PCOut, 15)
	assert.Equal(t, bitvec.FromUint16(1).Low15(), res.PCOut)
}

func TestARegisterUsesCurrentTickALUOutput(t *testing.T) {
	// Pins down the resolved Open Question from spec.md §9: the new A value
	// on a C-instruction with dest=A must be this tick's ALU output, not
	// whatever out_m happened to be before the tick (@3; D=D+A; A=D+A).
	c := New()
	loadedX, err := c.Tick(aInstruction(t, 3), bitvec.Zero, false)
	assert.NoError(t, err)

	// D = D+A, dest=D only (010), so A must be untouched by this tick...
	dPlusA := encode(t, "1110000010010000")
	afterAdd, err := loadedX.Next.Tick(dPlusA, bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.FromUint16(3), afterAdd.Next.A.Out())
	assert.Equal(t, bitvec.FromUint16(3), afterAdd.Next.D.Out())

	// ...now A=D+A with dest=A must load this tick's freshly computed sum,
	// not the A value standing before the tick.
	dPlusAToA := encode(t, "1110000010100000")
	afterLoadA, err := afterAdd.Next.Tick(dPlusAToA, bitvec.Zero, false)
	assert.NoError(t, err)
	assert.Equal(t, bitvec.FromUint16(6), afterLoadA.Next.A.Out())
}
