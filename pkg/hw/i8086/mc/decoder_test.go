package mc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeSingle(t *testing.T, program []byte) *Instruction {
	t.Helper()

	instructions, err := DecodeProgram(program)

	require.NoError(t, err)
	require.Len(t, instructions, 1)
	assert.Equal(t, len(program), instructions[0].Length(), "instruction length must equal the bytes consumed")

	return instructions[0]
}

func TestDecodeRegisterToRegister(t *testing.T) {
	cases := []struct {
		name     string
		program  []byte
		expected string
	}{
		// D=0, W=1, MOD=11, REG=011 (bx), RM=001 (cx)
		{"word registers, reg is source", []byte{0x89, 0xD9}, "mov cx, bx"},
		// D=1 swaps destination and source
		{"word registers, reg is destination", []byte{0x8B, 0xD9}, "mov bx, cx"},
		// W=0 selects the byte register table
		{"byte registers", []byte{0x88, 0xC8}, "mov al, cl"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, decodeSingle(t, testCase.program).String())
		})
	}
}

func TestDecodeEffectiveAddress(t *testing.T) {
	cases := []struct {
		name     string
		program  []byte
		expected string
	}{
		// MOD=00, no displacement bytes
		{"no displacement", []byte{0x8B, 0x18}, "mov bx, [bx + si]"},
		// D=0 makes the memory expression the destination
		{"memory destination", []byte{0x89, 0x09}, "mov [bx + di], cx"},
		// MOD=01, one sign extended displacement byte
		{"positive 8 bit displacement", []byte{0x8A, 0x60, 0x04}, "mov ah, [bx + si + 4]"},
		{"negative 8 bit displacement", []byte{0x8A, 0x60, 0xFF}, "mov ah, [bx + si - 1]"},
		{"zero 8 bit displacement is omitted", []byte{0x8B, 0x46, 0x00}, "mov ax, [bp]"},
		// MOD=10, 16 bit little endian displacement
		{"16 bit displacement", []byte{0x8B, 0x84, 0x87, 0x13}, "mov ax, [si + 4999]"},
		{"negative 16 bit displacement", []byte{0x8B, 0x82, 0x00, 0xFF}, "mov ax, [bp + si - 256]"},
		// MOD=00, RM=110: direct address instead of a base register
		{"direct address", []byte{0x8B, 0x2E, 0x05, 0x00}, "mov bp, [5]"},
		{"direct address, memory destination", []byte{0x89, 0x0E, 0xE8, 0x03}, "mov [1000], cx"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, decodeSingle(t, testCase.program).String())
		})
	}
}

func TestDecodeImmediateToRegister(t *testing.T) {
	cases := []struct {
		name     string
		program  []byte
		expected string
	}{
		// W=0, REG=001 (cl)
		{"8 bit immediate", []byte{0xB1, 0x0C}, "mov cl, 12"},
		// 0x80 renders sign extended, not as 128
		{"negative 8 bit immediate", []byte{0xB0, 0x80}, "mov al, -128"},
		// W=1, two data bytes little endian
		{"16 bit immediate", []byte{0xB9, 0x0C, 0x00}, "mov cx, 12"},
		{"negative 16 bit immediate", []byte{0xB9, 0xF4, 0xFF}, "mov cx, -12"},
		{"large 16 bit immediate", []byte{0xBA, 0x6C, 0x0F}, "mov dx, 3948"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, decodeSingle(t, testCase.program).String())
		})
	}
}

func TestDecodeAccumulator(t *testing.T) {
	cases := []struct {
		name     string
		program  []byte
		expected string
	}{
		{"memory to AX", []byte{0xA1, 0xFB, 0x09}, "mov ax, [2555]"},
		{"memory to AL", []byte{0xA0, 0x10, 0x00}, "mov al, [16]"},
		{"AX to memory", []byte{0xA3, 0xFA, 0x09}, "mov [2554], ax"},
		{"AL to memory", []byte{0xA2, 0x05, 0x00}, "mov [5], al"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, decodeSingle(t, testCase.program).String())
		})
	}
}

func TestDecodeProgramManyInstructions(t *testing.T) {
	program := []byte{
		0x89, 0xD9, // mov cx, bx
		0xB1, 0x0C, // mov cl, 12
		0x8B, 0x2E, 0x05, 0x00, // mov bp, [5]
		0xA1, 0xFB, 0x09, // mov ax, [2555]
	}

	instructions, err := DecodeProgram(program)

	require.NoError(t, err)
	require.Len(t, instructions, 4)

	expected := []string{
		"mov cx, bx",
		"mov cl, 12",
		"mov bp, [5]",
		"mov ax, [2555]",
	}
	expectedOffsets := []int{0, 2, 4, 8}

	consumed := 0
	for i, instruction := range instructions {
		assert.Equal(t, expected[i], instruction.String())
		assert.Equal(t, expectedOffsets[i], instruction.Offset)
		assert.Equal(t, program[instruction.Offset:instruction.Offset+instruction.Length()], instruction.Bytes)
		consumed += instruction.Length()
	}

	// every input byte belongs to exactly one instruction
	assert.Equal(t, len(program), consumed)
}

func TestDecodeTruncatedInstructionFails(t *testing.T) {
	cases := []struct {
		name    string
		program []byte
	}{
		{"reg to reg opcode with no MOD/REG/RM byte", []byte{0x89}},
		{"immediate form with no data byte", []byte{0xB1}},
		{"16 bit immediate with one data byte", []byte{0xB9, 0x0C}},
		{"missing 8 bit displacement", []byte{0x8B, 0x46}},
		{"missing second displacement byte", []byte{0x8B, 0x84, 0x87}},
		{"missing direct address bytes", []byte{0x8B, 0x2E, 0x05}},
		{"accumulator form with no address", []byte{0xA1}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			instructions, err := DecodeProgram(testCase.program)

			assert.ErrorIs(t, err, ErrOutOfBytes)
			assert.Nil(t, instructions, "no partial output on decode failure")
		})
	}
}

func TestDecodeUnsupportedOpcodeReportsOffset(t *testing.T) {
	_, err := DecodeProgram([]byte{0x00})

	require.ErrorIs(t, err, ErrUnsupportedOpcode)

	decodeError := &DecodeError{}
	require.True(t, errors.As(err, &decodeError))
	assert.Equal(t, 0, decodeError.Offset)
}

func TestDecodeFailureAfterValidInstructionsReportsOffset(t *testing.T) {
	_, err := DecodeProgram([]byte{0x89, 0xD9, 0x00})

	require.ErrorIs(t, err, ErrUnsupportedOpcode)

	decodeError := &DecodeError{}
	require.True(t, errors.As(err, &decodeError))
	assert.Equal(t, 2, decodeError.Offset)
}

func TestDecoderResetRegeneratesSameSequence(t *testing.T) {
	program := []byte{0x89, 0xD9, 0xB1, 0x0C}
	decoder := NewDecoder(program)

	decodeAll := func() []string {
		var lines []string
		for decoder.More() {
			instruction, err := decoder.Next()
			require.NoError(t, err)
			lines = append(lines, instruction.String())
		}
		return lines
	}

	first := decodeAll()
	decoder.Reset()
	second := decodeAll()

	assert.Equal(t, first, second)
}

func TestDecodeEmptyProgram(t *testing.T) {
	instructions, err := DecodeProgram(nil)

	assert.NoError(t, err)
	assert.Empty(t, instructions)
}

func TestInstructionEncodingText(t *testing.T) {
	instruction := decodeSingle(t, []byte{0x8B, 0x2E, 0x05, 0x00})

	assert.Equal(t, "8b 2e 05 00", instruction.EncodingText())
}
