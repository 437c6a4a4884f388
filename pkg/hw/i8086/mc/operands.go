package mc

import "fmt"

// Operand is one of the closed set of operand variants a decoded MOV can
// carry: RegisterOperand, DirectAddress, EffectiveAddress or Immediate.
// Every variant knows how to render itself as assembly text.
type Operand interface {
	fmt.Stringer

	// marker, keeps the variant set closed
	operand()
}

// A register operand, rendered as its bare lowercase name
type RegisterOperand struct {
	Name string
}

func (o RegisterOperand) operand() {}

func (o RegisterOperand) String() string {
	return o.Name
}

// A memory operand addressed by a bare 16 bit address, no base register.
// Rendered as the address in unsigned decimal between brackets.
type DirectAddress struct {
	Address uint16
}

func (o DirectAddress) operand() {}

func (o DirectAddress) String() string {
	return fmt.Sprintf("[%v]", o.Address)
}

// A memory operand computed from base register(s) plus an optional signed
// displacement. A zero displacement is omitted from the text, `[bx]` and
// `[bx + 0]` reassemble to the same bytes and the shorter spelling matches
// the listings the decoder is verified against.
type EffectiveAddress struct {
	// Base register expression, e.g. "bx + si"
	Base string
	// Sign extended displacement, 0 when the encoding carries none
	Displacement int16
}

func (o EffectiveAddress) operand() {}

func (o EffectiveAddress) String() string {
	displacement := int(o.Displacement)

	switch {
	case displacement > 0:
		return fmt.Sprintf("[%v + %v]", o.Base, displacement)
	case displacement < 0:
		return fmt.Sprintf("[%v - %v]", o.Base, -displacement)
	default:
		return fmt.Sprintf("[%v]", o.Base)
	}
}

// An immediate operand, rendered as a signed decimal literal. Sign extension
// is applied during decoding, before formatting, so negative immediates
// render with a leading minus sign.
type Immediate struct {
	Value int16
	// Word sized value
	Wide bool
	// Render the byte/word size qualifier. Needed when the destination
	// operand does not imply a size, i.e. memory destinations.
	Explicit bool
}

func (o Immediate) operand() {}

func (o Immediate) String() string {
	if o.Explicit {
		qualifier := "byte"
		if o.Wide {
			qualifier = "word"
		}

		return fmt.Sprintf("%v %v", qualifier, o.Value)
	}

	return fmt.Sprint(o.Value)
}
