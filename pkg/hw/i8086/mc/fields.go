package mc

import (
	"github.com/Manu343726/ocho86/pkg/utils"
)

// MOD field values (bits 7-6 of the MOD/REG/RM byte)
const (
	// Memory operand, no displacement (except RM=110, direct address)
	Mod_MemoryNoDisplacement byte = 0b00
	// Memory operand with a signed 8 bit displacement
	Mod_Memory8BitDisplacement byte = 0b01
	// Memory operand with a signed 16 bit displacement
	Mod_Memory16BitDisplacement byte = 0b10
	// Register operand
	Mod_Register byte = 0b11
)

// RM value selecting a direct 16 bit address when MOD=00. This is the only
// MOD=00 case with displacement bytes and no base register.
const RM_DirectAddress byte = 0b110

// Bit fields of a 100010dw opcode byte plus its MOD/REG/RM byte
type RegMemFields struct {
	// Direction: true when REG is the destination
	D bool
	// Operand size: true for word operands
	W bool
	// Addressing mode, bits 7-6 of the second byte
	Mod byte
	// Register field, bits 5-3 of the second byte
	Reg byte
	// Register/memory field, bits 2-0 of the second byte
	RM byte
}

// Bit fields of a 1011wreg immediate to register opcode byte. This form has
// no MOD/REG/RM byte, REG and W live in the opcode byte itself.
type ImmediateFields struct {
	W   bool
	Reg byte
}

// Splits a 100010dw opcode byte and its MOD/REG/RM byte into bit fields.
// Pure bit masking, never fails on bytes already consumed from the cursor.
func ExtractRegMemFields(opcode byte, modRegRM byte) RegMemFields {
	opcodeView := utils.CreateBitView(opcode)
	fieldsView := utils.CreateBitView(modRegRM)

	return RegMemFields{
		D:   opcodeView.Flag(1),
		W:   opcodeView.Flag(0),
		Mod: fieldsView.Read(6, 2),
		Reg: fieldsView.Read(3, 3),
		RM:  fieldsView.Read(0, 3),
	}
}

// Splits a 1011wreg opcode byte into bit fields
func ExtractImmediateFields(opcode byte) ImmediateFields {
	view := utils.CreateBitView(opcode)

	return ImmediateFields{
		W:   view.Flag(3),
		Reg: view.Read(0, 3),
	}
}
