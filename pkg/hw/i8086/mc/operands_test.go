package mc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperandFormatting(t *testing.T) {
	cases := []struct {
		name     string
		operand  Operand
		expected string
	}{
		{"register", RegisterOperand{Name: "cx"}, "cx"},
		{"direct address", DirectAddress{Address: 3458}, "[3458]"},
		{"direct address is unsigned", DirectAddress{Address: 0xFFFF}, "[65535]"},
		{"effective address without displacement", EffectiveAddress{Base: "bx + si"}, "[bx + si]"},
		{"effective address with positive displacement", EffectiveAddress{Base: "bx + si", Displacement: 4}, "[bx + si + 4]"},
		{"effective address with negative displacement", EffectiveAddress{Base: "bp", Displacement: -1}, "[bp - 1]"},
		{"zero displacement is omitted", EffectiveAddress{Base: "bp", Displacement: 0}, "[bp]"},
		{"most negative displacement", EffectiveAddress{Base: "si", Displacement: -32768}, "[si - 32768]"},
		{"positive immediate", Immediate{Value: 12}, "12"},
		{"negative immediate", Immediate{Value: -128}, "-128"},
		{"explicit byte immediate", Immediate{Value: 7, Explicit: true}, "byte 7"},
		{"explicit word immediate", Immediate{Value: 300, Wide: true, Explicit: true}, "word 300"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.operand.String())
		})
	}
}
