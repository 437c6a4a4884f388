package listing

import (
	"fmt"
	"io"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/mc"
	"github.com/Manu343726/ocho86/pkg/utils"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// DumpFormat selects the output format of Dump
type DumpFormat string

const (
	DumpFormat_Text DumpFormat = "text"
	DumpFormat_YAML DumpFormat = "yaml"
)

// Colors of the annotated text dump columns
var (
	colorOffset = color.New(color.FgCyan)
	colorBytes  = color.New(color.FgMagenta)
	colorHeader = color.New(color.FgHiBlack)
)

// Writes a detailed representation of a listing to the given writer. The
// text format shows offset, raw bytes and highlighted assembly per line and
// is intended for humans; the yaml format is stable and intended for
// tooling.
func Dump(w io.Writer, l *Listing, format DumpFormat) error {
	switch format {
	case DumpFormat_Text:
		return dumpText(w, l)
	case DumpFormat_YAML:
		return dumpYAML(w, l)
	}

	return fmt.Errorf("unsupported dump format '%v' (supported: %v, %v)", format, DumpFormat_Text, DumpFormat_YAML)
}

func dumpText(w io.Writer, l *Listing) error {
	if _, err := fmt.Fprintf(w, "%v\n", colorHeader.Sprintf("; %v, %v instructions", l.Header, len(l.Instructions))); err != nil {
		return err
	}

	for _, instruction := range l.Instructions {
		_, err := fmt.Fprintf(w, "%v  %v  %v\n",
			colorOffset.Sprintf("0x%04x", instruction.Offset),
			colorBytes.Sprintf("%-17s", instruction.EncodingText()),
			utils.HighlightAsmLine(instruction.String()))

		if err != nil {
			return err
		}
	}

	return nil
}

// YAML document shape of a dumped listing
type yamlListing struct {
	Header       string            `yaml:"header"`
	Instructions []yamlInstruction `yaml:"instructions"`
}

type yamlInstruction struct {
	Offset      int    `yaml:"offset"`
	Bytes       string `yaml:"bytes"`
	Text        string `yaml:"text"`
	Destination string `yaml:"destination"`
	Source      string `yaml:"source"`
}

func dumpYAML(w io.Writer, l *Listing) error {
	document := yamlListing{
		Header: l.Header,
		Instructions: utils.Map(l.Instructions, func(instruction *mc.Instruction) yamlInstruction {
			return yamlInstruction{
				Offset:      instruction.Offset,
				Bytes:       instruction.EncodingText(),
				Text:        instruction.String(),
				Destination: instruction.Destination.String(),
				Source:      instruction.Source.String(),
			}
		}),
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	return encoder.Encode(&document)
}
