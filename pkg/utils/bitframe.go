package utils

import (
	"fmt"
	"sort"
	"strings"
)

// A named range of bits inside a bit-packed frame
type BitFrameField struct {
	// Name of the field
	Name string

	// Lowest bit used by the field
	Begin int

	// Field width in bits
	Width int
}

// The highest bit used by this field
func (f *BitFrameField) TopBit() int {
	return f.Begin + f.Width - 1
}

// Draws an ascii diagram of a bit-packed frame, with bits numbered right to
// left as in the hardware datasheets. Fields can be passed in any order, the
// diagram always shows the most significant field on the left:
//
//	 7      2   1   0
//	+------+---+---+
//	| 100010 | d | w |
//	+------+---+---+
func BitFrame(fields []BitFrameField, leftpad int) string {
	sorted := make([]BitFrameField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Begin > sorted[j].Begin
	})

	type cell struct {
		indices string
		body    string
		width   int
	}

	cells := make([]cell, len(sorted))

	for i := range sorted {
		field := &sorted[i]

		var indices string
		if field.Width > 1 {
			indices = fmt.Sprintf("%v %v", field.TopBit(), field.Begin)
		} else {
			indices = fmt.Sprint(field.Begin)
		}

		body := fmt.Sprintf(" %v ", field.Name)

		width := len(body)
		if len(indices)+2 > width {
			width = len(indices) + 2
		}

		cells[i] = cell{indices: indices, body: body, width: width}
	}

	pad := strings.Repeat(" ", leftpad)

	var indicesRow, borderRow, bodyRow strings.Builder

	indicesRow.WriteString(pad + " ")
	borderRow.WriteString(pad + "+")
	bodyRow.WriteString(pad + "|")

	for _, c := range cells {
		top := ""
		begin := ""
		if parts := strings.SplitN(c.indices, " ", 2); len(parts) == 2 {
			top, begin = parts[0], parts[1]
		} else {
			top = c.indices
		}

		gap := c.width - len(top) - len(begin)
		if gap < 0 {
			gap = 0
		}
		indicesRow.WriteString(top + strings.Repeat(" ", gap) + begin + " ")

		borderRow.WriteString(strings.Repeat("-", c.width) + "+")

		filler := c.width - len(c.body)
		left := filler / 2
		bodyRow.WriteString(strings.Repeat(" ", left) + c.body + strings.Repeat(" ", filler-left) + "|")
	}

	var builder strings.Builder
	builder.WriteString(indicesRow.String() + "\n")
	builder.WriteString(borderRow.String() + "\n")
	builder.WriteString(bodyRow.String() + "\n")
	builder.WriteString(borderRow.String() + "\n")

	return builder.String()
}
