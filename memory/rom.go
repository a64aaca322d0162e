package memory

import (
	"fmt"

	"github.com/nandgate/hack16/bitvec"
)

// ROM32K is an immutable, read-only sequence of 2^15 16-bit words: the
// loaded program. It has no write path and is logically immutable after
// construction (spec.md §3, §4.3).
type ROM32K struct {
	words [1 << 15]bitvec.Word
}

// InvalidSizeError reports that more than 2^15 words were supplied to
// NewROM32K (spec.md §7).
type InvalidSizeError struct {
	Got int
	Max int
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("memory: ROM32K given %d words, maximum is %d", e.Got, e.Max)
}

// NewROM32K builds a ROM32K from program, zero-padding up to 2^15 words.
// It returns an InvalidSizeError if program has more than 2^15 words.
func NewROM32K(program []bitvec.Word) (*ROM32K, error) {
	if len(program) > 1<<15 {
		return nil, InvalidSizeError{Got: len(program), Max: 1 << 15}
	}
	rom := &ROM32K{}
	copy(rom.words[:], program)
	return rom, nil
}

// Read returns the word stored at addr. ROM32K has no Tick: it is a pure
// combinational read with no state transition.
func (r *ROM32K) Read(addr bitvec.Addr15) bitvec.Word {
	return r.words[bitvec.ToInt(addr[:])]
}
