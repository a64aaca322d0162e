package memory

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/nandgate/hack16/bitvec"
	"github.com/stretchr/testify/assert"
)

func TestDFFLatchesPreviousEdge(t *testing.T) {
	d := NewDFF(false)
	assert.False(t, d.Out())
	d = d.Tick(true)
	assert.True(t, d.Out())
	d2 := d.Tick(false)
	assert.False(t, d2.Out())
	// d itself must be unaffected by ticking d2 from it (no aliasing).
	assert.True(t, d.Out())
}

func TestBitLoadContract(t *testing.T) {
	b := NewBit()
	next := b.Tick(true, true)
	assert.True(t, next.Out(), "new value must be stored when load=1")

	b2 := next.Tick(false, false)
	assert.True(t, b2.Out(), "old value must be kept when load=0")
}

func TestRegister16LoadContract(t *testing.T) {
	r := NewRegister16()
	x := bitvec.FromUint16(0x1234)

	loaded := r.Tick(x, true)
	assert.Equal(t, x, loaded.Out())

	held := loaded.Tick(bitvec.FromUint16(0xFFFF), false)
	assert.Equal(t, x, held.Out())
}

func TestRAM8RoundTrip(t *testing.T) {
	// S4 in spec.md §8.
	r := NewRAM8()
	value := bitvec.FromUint16(0x8000)
	addr := bitvec.Addr3{false, true, false} // slot 2

	written := r.Tick(value, true, addr)
	assert.Equal(t, value, written.Out())

	readBack := written.Tick(bitvec.Zero, false, addr)
	if diff := deep.Equal(value, readBack.Out()); diff != nil {
		t.Fatalf("read-back mismatch: %v\nstate: %s", diff, spew.Sdump(written.State()))
	}

	state := written.State()
	for i, word := range state {
		if i == 2 {
			assert.Equal(t, value, word)
			continue
		}
		assert.Equal(t, bitvec.Zero, word, "slot %d must remain zero", i)
	}
}

func TestRAM8NoLoadLeavesStateUnchanged(t *testing.T) {
	r := NewRAM8()
	written := r.Tick(bitvec.FromUint16(99), true, bitvec.Addr3{false, false, true})
	untouched := written.Tick(bitvec.FromUint16(42), false, bitvec.Addr3{false, false, true})
	if diff := deep.Equal(written.State(), untouched.State()); diff != nil {
		t.Fatalf("state changed on a load=0 tick: %v", diff)
	}
}

func addrFromInt(n, width int) []bool {
	bits := make([]bool, width)
	for i := width - 1; i >= 0; i-- {
		bits[i] = n&1 == 1
		n >>= 1
	}
	return bits
}

func TestRAM64RoundTripAcrossBanks(t *testing.T) {
	r := NewRAM64()
	for _, idx := range []int{0, 7, 8, 33, 63} {
		var addr bitvec.Addr6
		copy(addr[:], addrFromInt(idx, 6))
		value := bitvec.FromUint16(uint16(idx + 1))
		r = r.Tick(value, true, addr)
		readBack := r.Tick(bitvec.Zero, false, addr)
		assert.Equal(t, value, readBack.Out(), "index %d", idx)
		r = readBack
	}
}

func TestRAM4KAddressing(t *testing.T) {
	r := NewRAM4K()
	var addr bitvec.Addr12
	copy(addr[:], addrFromInt(4095, 12))
	value := bitvec.FromUint16(0x5555)
	r = r.Tick(value, true, addr)
	readBack := r.Tick(bitvec.Zero, false, addr)
	assert.Equal(t, value, readBack.Out())

	var other bitvec.Addr12
	copy(other[:], addrFromInt(0, 12))
	assert.Equal(t, bitvec.Zero, r.Tick(bitvec.Zero, false, other).Out())
}

func TestRAM8KRoundTrip(t *testing.T) {
	r := NewRAM8K()
	var addr bitvec.Addr13
	copy(addr[:], addrFromInt(8191, 13))
	value := bitvec.FromUint16(0xABCD)

	r.Tick(value, true, addr)
	assert.Equal(t, value, r.Out())
	assert.Equal(t, value, r.Peek(addr))

	var other bitvec.Addr13
	copy(other[:], addrFromInt(0, 13))
	assert.Equal(t, bitvec.Zero, r.Peek(other))
}

func TestRAM16KRoundTrip(t *testing.T) {
	r := NewRAM16K()
	var addr bitvec.Addr14
	copy(addr[:], addrFromInt(12345, 14))
	value := bitvec.FromUint16(42)

	r.Tick(value, true, addr)
	assert.Equal(t, value, r.Out())

	r.Tick(bitvec.Zero, false, addr)
	assert.Equal(t, value, r.Out(), "read-during-write: value must persist on a subsequent read tick")
}

func TestPCPriority(t *testing.T) {
	// S5 and invariant #7 in spec.md §8.
	pc := NewPC()
	pc = pc.Tick(bitvec.FromUint16(42), true, false, false)
	assert.Equal(t, bitvec.FromUint16(42), pc.Out())

	loaded := pc.Tick(bitvec.FromUint16(100), true, true, false)
	assert.Equal(t, bitvec.FromUint16(100), loaded.Out())

	reset := pc.Tick(bitvec.FromUint16(100), true, true, true)
	assert.Equal(t, bitvec.Zero, reset.Out())

	incremented := pc.Tick(bitvec.Zero, false, true, false)
	assert.Equal(t, bitvec.FromUint16(43), incremented.Out())

	held := pc.Tick(bitvec.Zero, false, false, false)
	assert.Equal(t, pc.Out(), held.Out())
}

func TestROM32KReadAndPad(t *testing.T) {
	program := []bitvec.Word{bitvec.FromUint16(1), bitvec.FromUint16(2)}
	rom, err := NewROM32K(program)
	assert.NoError(t, err)

	var addr0, addr1, addrLast bitvec.Addr15
	copy(addr0[:], addrFromInt(0, 15))
	copy(addr1[:], addrFromInt(1, 15))
	copy(addrLast[:], addrFromInt(1<<15-1, 15))

	assert.Equal(t, bitvec.FromUint16(1), rom.Read(addr0))
	assert.Equal(t, bitvec.FromUint16(2), rom.Read(addr1))
	assert.Equal(t, bitvec.Zero, rom.Read(addrLast))
}

func TestROM32KRejectsOversizedProgram(t *testing.T) {
	program := make([]bitvec.Word, 1<<15+1)
	_, err := NewROM32K(program)
	assert.Error(t, err)
	var sizeErr InvalidSizeError
	assert.ErrorAs(t, err, &sizeErr)
}
