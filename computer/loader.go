package computer

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/nandgate/hack16/bitvec"
	"github.com/nandgate/hack16/memory"
)

// LoadROM reads a Hack program from r and returns a ROM32K holding it,
// zero-padded to 2^15 words (spec.md §6's assembler collaborator). Two
// on-disk formats are accepted, auto-detected from the first non-empty
// line of content: a plain-text file with one 16-character '0'/'1' string
// per line (the textbook .hack format), or a raw stream of big-endian
// uint16 words. Grounded on the teacher's cartridge loaders
// (convertprg.go, hand_asm.go), which sniff and decode a binary program
// stream the same way.
func LoadROM(r io.Reader) (*memory.ROM32K, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("computer: reading program: %w", err)
	}

	if looksLikeText(data) {
		words, err := parseTextProgram(data)
		if err != nil {
			return nil, err
		}
		return memory.NewROM32K(words)
	}

	words, err := parseBinaryProgram(data)
	if err != nil {
		return nil, err
	}
	return memory.NewROM32K(words)
}

// looksLikeText reports whether data's first non-empty line is a
// 16-character run of '0'/'1' characters, the signature of the textbook
// .hack format.
func looksLikeText(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if len(line) != 16 {
			return false
		}
		for _, b := range line {
			if b != '0' && b != '1' {
				return false
			}
		}
		return true
	}
	return false
}

func parseTextProgram(data []byte) ([]bitvec.Word, error) {
	var words []bitvec.Word
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if len(line) != 16 {
			return nil, fmt.Errorf("computer: line %d: want 16 bits, got %d", lineNo, len(line))
		}
		var w bitvec.Word
		for i, b := range line {
			switch b {
			case '1':
				w[i] = true
			case '0':
				w[i] = false
			default:
				return nil, fmt.Errorf("computer: line %d: invalid character %q", lineNo, b)
			}
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("computer: scanning program: %w", err)
	}
	return words, nil
}

func parseBinaryProgram(data []byte) ([]bitvec.Word, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("computer: binary program length %d is not a multiple of 2", len(data))
	}
	words := make([]bitvec.Word, len(data)/2)
	for i := range words {
		v := binary.BigEndian.Uint16(data[i*2 : i*2+2])
		words[i] = bitvec.FromUint16(v)
	}
	return words, nil
}
