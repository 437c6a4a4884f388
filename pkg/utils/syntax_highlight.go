// Package utils provides utility functions for the ocho86 project.
package utils

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// 8086 assembly highlighting colors
var (
	// Mnemonics
	asmMnemonicColor = color.New(color.FgYellow, color.Bold)
	// Register names
	asmRegisterColor = color.New(color.FgGreen)
	// Numeric literals (immediates, displacements, addresses)
	asmNumberColor = color.New(color.FgCyan)
	// Size qualifiers (byte/word)
	asmQualifierColor = color.New(color.FgMagenta)
	// Assembler directives
	asmDirectiveColor = color.New(color.FgBlue)
	// Comments
	asmCommentColor = color.New(color.FgHiBlack)
)

// 8086 register names, byte and word
var asmRegisters = map[string]bool{
	"al": true, "cl": true, "dl": true, "bl": true,
	"ah": true, "ch": true, "dh": true, "bh": true,
	"ax": true, "cx": true, "dx": true, "bx": true,
	"sp": true, "bp": true, "si": true, "di": true,
}

// Size qualifiers allowed before memory operands
var asmQualifiers = map[string]bool{
	"byte": true, "word": true,
}

// Patterns for syntax elements
var (
	// Matches a mnemonic at the start of a line
	asmMnemonicPattern = regexp.MustCompile(`^[a-z]+`)
	// Matches assembler directives such as "bits 16"
	asmDirectivePattern = regexp.MustCompile(`^(bits|org|section)\b`)
	// Matches signed decimal literals
	asmNumberPattern = regexp.MustCompile(`-?\b[0-9]+\b`)
	// Matches identifiers (for register/qualifier matching)
	asmIdentifierPattern = regexp.MustCompile(`\b[a-z]+\b`)
	// Matches comments to end of line
	asmCommentPattern = regexp.MustCompile(`;.*$`)
)

// Highlights one line of 8086 assembly for terminal output. Returns the line
// unchanged when color output is disabled globally (color.NoColor).
func HighlightAsmLine(line string) string {
	if color.NoColor {
		return line
	}

	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	if comment := asmCommentPattern.FindStringIndex(trimmed); comment != nil && comment[0] == 0 {
		return indent + asmCommentColor.Sprint(trimmed)
	}

	if asmDirectivePattern.MatchString(trimmed) {
		return indent + asmDirectiveColor.Sprint(trimmed)
	}

	rest := trimmed
	var builder strings.Builder
	builder.WriteString(indent)

	if mnemonic := asmMnemonicPattern.FindString(rest); mnemonic != "" {
		builder.WriteString(asmMnemonicColor.Sprint(mnemonic))
		rest = rest[len(mnemonic):]
	}

	// numbers first, the color escape sequences introduced by later passes
	// contain digits themselves
	rest = asmNumberPattern.ReplaceAllStringFunc(rest, func(number string) string {
		return asmNumberColor.Sprint(number)
	})

	rest = asmIdentifierPattern.ReplaceAllStringFunc(rest, func(word string) string {
		switch {
		case asmRegisters[word]:
			return asmRegisterColor.Sprint(word)
		case asmQualifiers[word]:
			return asmQualifierColor.Sprint(word)
		default:
			return word
		}
	})

	builder.WriteString(rest)

	return builder.String()
}
