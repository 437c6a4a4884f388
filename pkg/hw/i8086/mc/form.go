package mc

import (
	"github.com/Manu343726/ocho86/pkg/utils"
)

// Form identifies one of the supported MOV encoding forms. Each form
// determines which bit fields are present in the leading bytes and how many
// displacement/immediate bytes follow.
type Form uint

const (
	// 100010dw with MOD=11, both operands are registers
	Form_RegisterToRegister Form = iota
	// 100010dw with MOD=00/01/10, one operand is a memory expression
	Form_EffectiveAddress
	// 10110reg, 8 bit immediate into a byte register
	Form_ImmediateToRegister8
	// 10111reg, 16 bit immediate into a word register
	Form_ImmediateToRegister16
	// 10100000, byte at a direct address into AL
	Form_MemoryToAccumulator8
	// 10100001, word at a direct address into AX
	Form_MemoryToAccumulator16
	// 10100010, AL into a byte at a direct address
	Form_AccumulatorToMemory8
	// 10100011, AX into a word at a direct address
	Form_AccumulatorToMemory16
)

func (f Form) String() string {
	switch f {
	case Form_RegisterToRegister:
		return "RegisterToRegister"
	case Form_EffectiveAddress:
		return "EffectiveAddress"
	case Form_ImmediateToRegister8:
		return "ImmediateToRegister8"
	case Form_ImmediateToRegister16:
		return "ImmediateToRegister16"
	case Form_MemoryToAccumulator8:
		return "MemoryToAccumulator8"
	case Form_MemoryToAccumulator16:
		return "MemoryToAccumulator16"
	case Form_AccumulatorToMemory8:
		return "AccumulatorToMemory8"
	case Form_AccumulatorToMemory16:
		return "AccumulatorToMemory16"
	}

	panic("unreachable")
}

// Fixed high order opcode bit patterns of the supported forms
const (
	// 1010000w, memory to accumulator (7 bit prefix)
	opcodePrefix_MemoryToAccumulator = 0b1010000
	// 1010001w, accumulator to memory (7 bit prefix)
	opcodePrefix_AccumulatorToMemory = 0b1010001
	// 100010dw, register to/from register or memory (6 bit prefix)
	opcodePrefix_RegisterMemory = 0b100010
	// 1011wreg, immediate to register (4 bit prefix)
	opcodePrefix_ImmediateToRegister = 0b1011
)

// Classify inspects the opcode byte at the cursor (read only, the cursor
// does not advance) and selects the encoding form. Patterns are matched most
// specific first, since the shorter prefixes overlap the longer ones.
//
// The 100010dw prefix alone does not distinguish register to register moves
// from effective address moves, that is decided by the MOD field of the
// following byte, so classification peeks one byte further for that prefix.
func Classify(c *Cursor) (Form, error) {
	bytes, err := c.Peek(1)
	if err != nil {
		return 0, err
	}

	opcode := utils.CreateBitView(bytes[0])

	switch {
	case opcode.Read(1, 7) == opcodePrefix_MemoryToAccumulator:
		if opcode.Flag(0) {
			return Form_MemoryToAccumulator16, nil
		}
		return Form_MemoryToAccumulator8, nil

	case opcode.Read(1, 7) == opcodePrefix_AccumulatorToMemory:
		if opcode.Flag(0) {
			return Form_AccumulatorToMemory16, nil
		}
		return Form_AccumulatorToMemory8, nil

	case opcode.Read(2, 6) == opcodePrefix_RegisterMemory:
		header, err := c.Peek(2)
		if err != nil {
			return 0, err
		}

		if utils.CreateBitView(header[1]).Read(6, 2) == Mod_Register {
			return Form_RegisterToRegister, nil
		}
		return Form_EffectiveAddress, nil

	case opcode.Read(4, 4) == opcodePrefix_ImmediateToRegister:
		if opcode.Flag(3) {
			return Form_ImmediateToRegister16, nil
		}
		return Form_ImmediateToRegister8, nil
	}

	return 0, utils.MakeError(ErrUnsupportedOpcode, "byte 0b%v", utils.FormatUintBinary(uint64(bytes[0]), utils.BitsPerByte))
}
