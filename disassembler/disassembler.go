// Package disassembler turns an encoded Hack instruction back into
// assembler mnemonic text, the inverse of the textbook Hack assembler
// (spec.md §6 lists the assembler as an out-of-scope collaborator; nothing
// forbids the reverse direction, and it is invaluable for inspecting a
// from-the-gates CPU's behaviour). Grounded on the teacher's
// disassemble.Step (one instruction in, one mnemonic string out) and on
// the Hack assembler's own comp/dest/jump symbol tables.
package disassembler

import (
	"fmt"
	"strconv"

	"github.com/nandgate/hack16/bitvec"
)

// compMnemonic maps the comp bit pattern (a, c1..c6) to its textbook
// mnemonic, using M in place of A wherever a=1.
var compMnemonic = map[[7]bool]string{
	{false, true, false, true, false, true, false}: "0",
	{false, true, true, true, true, true, true}:    "1",
	{false, true, true, true, false, true, false}:  "-1",
	{false, false, false, true, true, false, false}: "D",
	{false, true, true, false, false, false, false}: "A",
	{true, true, true, false, false, false, false}:  "M",
	{false, false, false, true, true, false, true}:  "!D",
	{false, true, true, false, false, false, true}:  "!A",
	{true, true, true, false, false, false, true}:   "!M",
	{false, false, false, true, true, true, true}:   "-D",
	{false, true, true, false, false, true, true}:   "-A",
	{true, true, true, false, false, true, true}:    "-M",
	{false, false, true, true, true, true, true}:    "D+1",
	{false, true, true, false, true, true, true}:    "A+1",
	{true, true, true, false, true, true, true}:     "M+1",
	{false, false, false, true, true, true, false}:  "D-1",
	{false, true, true, false, false, true, false}:  "A-1",
	{true, true, true, false, false, true, false}:   "M-1",
	{false, false, false, false, false, true, false}: "D+A",
	{true, false, false, false, false, true, false}:  "D+M",
	{false, false, true, false, false, true, true}:   "D-A",
	{true, false, true, false, false, true, true}:    "D-M",
	{false, false, false, false, true, true, true}:   "A-D",
	{true, false, false, false, true, true, true}:    "M-D",
	{false, false, false, false, false, false, false}: "D&A",
	{true, false, false, false, false, false, false}:  "D&M",
	{false, false, true, false, true, false, true}:    "D|A",
	{true, false, true, false, true, false, true}:     "D|M",
}

var destMnemonic = [8]string{"", "M", "D", "MD", "A", "AM", "AD", "AMD"}

var jumpMnemonic = [8]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

// Step disassembles one 16-bit instruction into its mnemonic text: "@5" for
// an A-instruction, "comp", "comp;jump", "dest=comp" or "dest=comp;jump"
// for a C-instruction. Unlike the 6502 disassembler this ports from, every Hack
// instruction is exactly one word, so there is no variable-length step
// count to report.
func Step(instruction bitvec.Word) string {
	if !instruction[0] {
		low15 := instruction.Low15()
		return "@" + strconv.Itoa(bitvec.ToInt(low15[:]))
	}

	key := [7]bool{instruction[3], instruction[4], instruction[5], instruction[6], instruction[7], instruction[8], instruction[9]}
	comp, ok := compMnemonic[key]
	if !ok {
		return fmt.Sprintf("<invalid comp %s>", instruction.String())
	}

	destIdx := bitvec.ToInt(instruction[10:13])
	jumpIdx := bitvec.ToInt(instruction[13:16])
	dest := destMnemonic[destIdx]
	jump := jumpMnemonic[jumpIdx]

	switch {
	case dest != "" && jump != "":
		return fmt.Sprintf("%s=%s;%s", dest, comp, jump)
	case dest != "":
		return fmt.Sprintf("%s=%s", dest, comp)
	case jump != "":
		return fmt.Sprintf("%s;%s", comp, jump)
	default:
		return comp
	}
}
