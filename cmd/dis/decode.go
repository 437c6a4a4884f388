package dis

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/listing"
	"github.com/Manu343726/ocho86/pkg/hw/i8086/loader"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	decodeOutput string
	decodeStdout bool
	decodeHeader string
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Disassemble a raw 8086 MOV binary into an .asm listing",
	Long: `Reads a raw machine code binary, decodes every MOV instruction in it and
writes the equivalent assembly listing, ready to be fed back to an assembler.

The listing starts with the target architecture directive (bits 16 by
default) followed by one instruction per line. By default the listing is
written next to the input file with an .asm suffix.

Decoding stops at the first unsupported opcode or truncated instruction,
reporting the byte offset it failed at; no partial listing is written.

Example:
  ocho86 dis decode listing_0037_single_register_mov
  ocho86 dis decode listing_0038_many_register_mov -o many_movs.asm`,
	Args: cobra.ExactArgs(1),
	Run:  runDecode,
}

func init() {
	DisCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "Output file. Defaults to the input path plus the configured suffix.")
	decodeCmd.Flags().BoolVar(&decodeStdout, "stdout", false, "Write the listing to stdout instead of a file")
	decodeCmd.Flags().StringVar(&decodeHeader, "header", "", "Override the listing header directive")
}

func runDecode(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	program, err := loader.LoadBinary(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading binary: %v\n", err)
		os.Exit(1)
	}

	slog.Debug("binary loaded", "path", inputPath, "bytes", len(program))

	l, err := listing.Disassemble(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding program: %v\n", err)
		os.Exit(2)
	}

	header := decodeHeader
	if header == "" {
		header = viper.GetString("listing.header")
	}
	l.Header = header

	slog.Debug("program decoded", "instructions", len(l.Instructions))

	if decodeStdout {
		if err := l.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
			os.Exit(3)
		}
		return
	}

	outputPath := decodeOutput
	if outputPath == "" {
		outputPath = loader.DefaultOutputPath(inputPath, viper.GetString("listing.output_suffix"))
	}

	if err := loader.WriteListing(outputPath, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
		os.Exit(3)
	}

	slog.Info("listing written", "path", outputPath, "instructions", len(l.Instructions))
}
