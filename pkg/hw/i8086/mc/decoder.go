package mc

import (
	"encoding/binary"

	"github.com/Manu343726/ocho86/pkg/utils"
)

// Mnemonic of every instruction in the supported subset
const Mnemonic_Mov = "mov"

// Decoder drives the decode loop over a machine code buffer. It yields one
// decoded instruction per call to Next until the buffer is exhausted.
//
// A decoder holds no shared mutable state besides its cursor offset, so
// independent decoders over the same buffer never interfere, and Reset
// makes the produced sequence restartable.
type Decoder struct {
	cursor *Cursor
}

// Creates a decoder over a machine code buffer. The buffer is borrowed, not
// copied, and must not be mutated while the decoder is in use.
func NewDecoder(program []byte) *Decoder {
	return &Decoder{
		cursor: NewCursor(program),
	}
}

// Returns true while undecoded bytes remain
func (d *Decoder) More() bool {
	return !d.cursor.AtEnd()
}

// Moves the decoder back to the start of the buffer, regenerating the same
// instruction sequence on the next decode run
func (d *Decoder) Reset() {
	d.cursor.Reset()
}

// Decodes the next instruction and advances past its bytes. Any failure is
// fatal for the run: the error reports the offset of the failed instruction
// and the cursor is not advanced past a partially decoded instruction in a
// recoverable way, callers must not keep decoding after an error.
func (d *Decoder) Next() (*Instruction, error) {
	start := d.cursor.Offset()

	form, err := Classify(d.cursor)
	if err != nil {
		return nil, makeDecodeError(start, err)
	}

	var instruction *Instruction

	switch form {
	case Form_RegisterToRegister:
		instruction, err = d.decodeRegisterToRegister()
	case Form_EffectiveAddress:
		instruction, err = d.decodeEffectiveAddress()
	case Form_ImmediateToRegister8, Form_ImmediateToRegister16:
		instruction, err = d.decodeImmediateToRegister()
	case Form_MemoryToAccumulator8, Form_MemoryToAccumulator16,
		Form_AccumulatorToMemory8, Form_AccumulatorToMemory16:
		instruction, err = d.decodeAccumulator(form)
	default:
		panic("unreachable")
	}

	if err != nil {
		return nil, makeDecodeError(start, err)
	}

	instruction.Offset = start
	instruction.Bytes = d.cursor.Since(start)

	return instruction, nil
}

// 100010dw | mod reg r/m, with MOD=11. Both operands come from the register
// table, the D bit picks which one REG names.
func (d *Decoder) decodeRegisterToRegister() (*Instruction, error) {
	header, err := d.cursor.Take(2)
	if err != nil {
		return nil, err
	}

	fields := ExtractRegMemFields(header[0], header[1])

	regOperand := RegisterOperand{Name: RegisterName(fields.Reg, fields.W)}
	rmOperand := RegisterOperand{Name: RegisterName(fields.RM, fields.W)}

	destination, source := Operand(rmOperand), Operand(regOperand)
	if fields.D {
		destination, source = regOperand, rmOperand
	}

	return &Instruction{
		Mnemonic:    Mnemonic_Mov,
		Destination: destination,
		Source:      source,
	}, nil
}

// 100010dw | mod reg r/m | disp-lo | disp-hi, with MOD=00/01/10. The RM
// field selects a base register expression, MOD the displacement width.
// MOD=00 RM=110 is the direct address exception: no base register, a 16 bit
// address instead.
func (d *Decoder) decodeEffectiveAddress() (*Instruction, error) {
	header, err := d.cursor.Take(2)
	if err != nil {
		return nil, err
	}

	fields := ExtractRegMemFields(header[0], header[1])

	memoryOperand, err := d.resolveMemoryOperand(fields)
	if err != nil {
		return nil, err
	}

	regOperand := RegisterOperand{Name: RegisterName(fields.Reg, fields.W)}

	destination, source := memoryOperand, Operand(regOperand)
	if fields.D {
		destination, source = regOperand, memoryOperand
	}

	return &Instruction{
		Mnemonic:    Mnemonic_Mov,
		Destination: destination,
		Source:      source,
	}, nil
}

// Resolves the memory operand of an effective address form, consuming the
// displacement bytes its MOD value requires
func (d *Decoder) resolveMemoryOperand(fields RegMemFields) (Operand, error) {
	switch fields.Mod {
	case Mod_MemoryNoDisplacement:
		if fields.RM == RM_DirectAddress {
			address, err := d.cursor.Take(2)
			if err != nil {
				return nil, err
			}

			return DirectAddress{Address: binary.LittleEndian.Uint16(address)}, nil
		}

		return EffectiveAddress{Base: EffectiveAddressBase(fields.RM)}, nil

	case Mod_Memory8BitDisplacement:
		displacement, err := d.cursor.Take(1)
		if err != nil {
			return nil, err
		}

		return EffectiveAddress{
			Base: EffectiveAddressBase(fields.RM),
			// sign extended before formatting, 0xFF is -1 not 255
			Displacement: int16(int8(displacement[0])),
		}, nil

	case Mod_Memory16BitDisplacement:
		displacement, err := d.cursor.Take(2)
		if err != nil {
			return nil, err
		}

		return EffectiveAddress{
			Base:         EffectiveAddressBase(fields.RM),
			Displacement: int16(binary.LittleEndian.Uint16(displacement)),
		}, nil
	}

	return nil, utils.MakeError(ErrUnsupportedOpcode, "MOD=%v is not a memory addressing mode", fields.Mod)
}

// 1011w reg | data | data-if-w. REG and W are packed in the opcode byte, no
// MOD/REG/RM byte exists for this form.
func (d *Decoder) decodeImmediateToRegister() (*Instruction, error) {
	opcode, err := d.cursor.Take(1)
	if err != nil {
		return nil, err
	}

	fields := ExtractImmediateFields(opcode[0])

	var value int16
	if fields.W {
		data, err := d.cursor.Take(2)
		if err != nil {
			return nil, err
		}

		value = int16(binary.LittleEndian.Uint16(data))
	} else {
		data, err := d.cursor.Take(1)
		if err != nil {
			return nil, err
		}

		value = int16(int8(data[0]))
	}

	return &Instruction{
		Mnemonic:    Mnemonic_Mov,
		Destination: RegisterOperand{Name: RegisterName(fields.Reg, fields.W)},
		Source:      Immediate{Value: value, Wide: fields.W},
	}, nil
}

// 101000xw | addr-lo | addr-hi. The accumulator register (AL or AX per the
// W bit) moves to or from a direct 16 bit address.
func (d *Decoder) decodeAccumulator(form Form) (*Instruction, error) {
	if err := d.cursor.Advance(1); err != nil {
		return nil, err
	}

	address, err := d.cursor.Take(2)
	if err != nil {
		return nil, err
	}

	wide := form == Form_MemoryToAccumulator16 || form == Form_AccumulatorToMemory16

	accumulator := RegisterOperand{Name: RegisterName(0, wide)}
	memory := DirectAddress{Address: binary.LittleEndian.Uint16(address)}

	destination, source := Operand(accumulator), Operand(memory)
	if form == Form_AccumulatorToMemory8 || form == Form_AccumulatorToMemory16 {
		destination, source = memory, accumulator
	}

	return &Instruction{
		Mnemonic:    Mnemonic_Mov,
		Destination: destination,
		Source:      source,
	}, nil
}

// Eagerly decodes a whole program. Returns the decoded instructions, or the
// first decode failure with no partial result.
func DecodeProgram(program []byte) ([]*Instruction, error) {
	decoder := NewDecoder(program)

	var instructions []*Instruction
	for decoder.More() {
		instruction, err := decoder.Next()
		if err != nil {
			return nil, err
		}

		instructions = append(instructions, instruction)
	}

	return instructions, nil
}
