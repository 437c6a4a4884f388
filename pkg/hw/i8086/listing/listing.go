// Package listing turns decoded 8086 instructions into assembly listings.
//
// A Listing pairs the decoded instruction sequence with the fixed assembler
// header that must precede it (the target architecture directive), and knows
// how to render itself as plain reassemblable text, as an annotated dump
// with offsets and raw bytes, or as a structured YAML document.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/mc"
	"github.com/Manu343726/ocho86/pkg/utils"
)

// Header directive emitted before the first instruction line. The decoded
// programs are 16 bit 8086 code.
const DefaultHeader = "bits 16"

// An ordered sequence of decoded instructions plus the assembler header that
// precedes them
type Listing struct {
	Header       string
	Instructions []*mc.Instruction
}

// Disassembles a whole machine code buffer into a listing with the default
// header. Fails with the decoder's error (offset included) on the first
// byte sequence that is not a supported MOV encoding, producing no partial
// listing.
func Disassemble(program []byte) (*Listing, error) {
	instructions, err := mc.DecodeProgram(program)
	if err != nil {
		return nil, fmt.Errorf("disassembling program: %w", err)
	}

	return &Listing{
		Header:       DefaultHeader,
		Instructions: instructions,
	}, nil
}

// Returns one line of assembly text per instruction, in program order
func (l *Listing) Lines() []string {
	return utils.Map(l.Instructions, func(instruction *mc.Instruction) string {
		return instruction.String()
	})
}

// Writes the listing as reassemblable assembly text: the header directive,
// a blank line, then one instruction per line, each with a trailing newline
func (l *Listing) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%v\n\n", l.Header); err != nil {
		return err
	}

	for _, line := range l.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Returns the listing as reassemblable assembly text
func (l *Listing) Text() string {
	var builder strings.Builder

	// strings.Builder never fails to write
	_ = l.Write(&builder)

	return builder.String()
}
