package mc

import (
	"fmt"
	"strings"

	"github.com/Manu343726/ocho86/pkg/utils"
)

// Describes one encoding form for the documentation tooling
type formDocumentation struct {
	form    Form
	summary string
	// bit layout of each leading byte
	frames [][]utils.BitFrameField
	// human description of the trailing displacement/immediate bytes
	trailing string
}

var formDocs = []formDocumentation{
	{
		form:    Form_RegisterToRegister,
		summary: "Moves the value of one register into another. The D bit selects whether REG names the destination or the source, the W bit selects byte or word registers.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "100010", Begin: 2, Width: 6},
				{Name: "d", Begin: 1, Width: 1},
				{Name: "w", Begin: 0, Width: 1},
			},
			{
				{Name: "11", Begin: 6, Width: 2},
				{Name: "reg", Begin: 3, Width: 3},
				{Name: "r/m", Begin: 0, Width: 3},
			},
		},
	},
	{
		form:    Form_EffectiveAddress,
		summary: "Moves a value between a register and a memory location addressed by base register(s) plus an optional displacement. MOD selects the displacement width (none, 8 bit sign extended, 16 bit). MOD=00 with R/M=110 carries a direct 16 bit address instead of a base register.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "100010", Begin: 2, Width: 6},
				{Name: "d", Begin: 1, Width: 1},
				{Name: "w", Begin: 0, Width: 1},
			},
			{
				{Name: "mod", Begin: 6, Width: 2},
				{Name: "reg", Begin: 3, Width: 3},
				{Name: "r/m", Begin: 0, Width: 3},
			},
		},
		trailing: "followed by disp-lo [disp-hi] as selected by MOD",
	},
	{
		form:    Form_ImmediateToRegister8,
		summary: "Moves an 8 bit immediate into a byte register. REG and W are packed into the opcode byte, there is no MOD/REG/RM byte.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "1011", Begin: 4, Width: 4},
				{Name: "w", Begin: 3, Width: 1},
				{Name: "reg", Begin: 0, Width: 3},
			},
		},
		trailing: "followed by one data byte",
	},
	{
		form:    Form_ImmediateToRegister16,
		summary: "Moves a 16 bit immediate into a word register, low byte first.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "1011", Begin: 4, Width: 4},
				{Name: "w", Begin: 3, Width: 1},
				{Name: "reg", Begin: 0, Width: 3},
			},
		},
		trailing: "followed by data-lo data-hi",
	},
	{
		form:    Form_MemoryToAccumulator8,
		summary: "Moves the byte at a direct address into AL.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "1010000", Begin: 1, Width: 7},
				{Name: "w", Begin: 0, Width: 1},
			},
		},
		trailing: "followed by addr-lo addr-hi",
	},
	{
		form:    Form_MemoryToAccumulator16,
		summary: "Moves the word at a direct address into AX.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "1010000", Begin: 1, Width: 7},
				{Name: "w", Begin: 0, Width: 1},
			},
		},
		trailing: "followed by addr-lo addr-hi",
	},
	{
		form:    Form_AccumulatorToMemory8,
		summary: "Moves AL into the byte at a direct address.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "1010001", Begin: 1, Width: 7},
				{Name: "w", Begin: 0, Width: 1},
			},
		},
		trailing: "followed by addr-lo addr-hi",
	},
	{
		form:    Form_AccumulatorToMemory16,
		summary: "Moves AX into the word at a direct address.",
		frames: [][]utils.BitFrameField{
			{
				{Name: "1010001", Begin: 1, Width: 7},
				{Name: "w", Begin: 0, Width: 1},
			},
		},
		trailing: "followed by addr-lo addr-hi",
	},
}

// Returns full documentation for all supported encoding forms, with the bit
// layout of every leading byte
func DocString() string {
	var builder strings.Builder

	builder.WriteString("Supported MOV encoding forms\n")
	builder.WriteString("============================\n\n")

	for _, doc := range formDocs {
		builder.WriteString(fmt.Sprintf("%v\n\n", doc.form))
		builder.WriteString(fmt.Sprintf("  %v\n\n", doc.summary))

		for _, frame := range doc.frames {
			builder.WriteString(utils.BitFrame(frame, 2))
			builder.WriteString("\n")
		}

		if doc.trailing != "" {
			builder.WriteString(fmt.Sprintf("  (%v)\n\n", doc.trailing))
		}
	}

	return builder.String()
}
