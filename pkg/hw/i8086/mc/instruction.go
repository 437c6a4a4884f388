package mc

import (
	"fmt"

	"github.com/Manu343726/ocho86/pkg/utils"
)

// A fully decoded instruction. Immutable after creation, instructions never
// reference each other and each decode step produces an independent value.
type Instruction struct {
	// Instruction mnemonic, always "mov" for the supported forms
	Mnemonic string

	// Destination operand
	Destination Operand

	// Source operand
	Source Operand

	// Byte offset of the instruction within the decoded program
	Offset int

	// Exact bytes the instruction was decoded from. The instruction length
	// always equals the bytes consumed while decoding it.
	Bytes []byte
}

// Returns the instruction length in bytes
func (i *Instruction) Length() int {
	return len(i.Bytes)
}

// Renders the instruction as one line of assembly text
func (i *Instruction) String() string {
	return fmt.Sprintf("%v %v, %v", i.Mnemonic, i.Destination, i.Source)
}

// Returns the raw encoding as space separated hex bytes, for annotated
// listings and debugging output
func (i *Instruction) EncodingText() string {
	return utils.FormatSlice(utils.Map(i.Bytes, func(b byte) string {
		return fmt.Sprintf("%02x", b)
	}), " ")
}
