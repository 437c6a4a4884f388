package dis

import (
	"fmt"
	"os"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/listing"
	"github.com/Manu343726/ocho86/pkg/hw/i8086/loader"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	dumpFormat  string
	dumpNoColor bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump an annotated disassembly listing",
	Long: `Decodes a raw machine code binary and dumps an annotated listing to stdout.

The text format shows the byte offset, the raw encoding bytes and the
highlighted assembly text of every instruction. The yaml format emits a
stable structured document for other tooling to consume.

Example:
  ocho86 dis dump listing_0038_many_register_mov
  ocho86 dis dump listing_0038_many_register_mov --format yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runDump,
}

func init() {
	DisCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", string(listing.DumpFormat_Text), "Output format: text or yaml")
	dumpCmd.Flags().BoolVar(&dumpNoColor, "no-color", false, "Disable colorized output")
}

func runDump(cmd *cobra.Command, args []string) {
	if dumpNoColor {
		color.NoColor = true
	}

	program, err := loader.LoadBinary(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading binary: %v\n", err)
		os.Exit(1)
	}

	l, err := listing.Disassemble(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding program: %v\n", err)
		os.Exit(2)
	}

	if err := listing.Dump(os.Stdout, l, listing.DumpFormat(dumpFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Error dumping listing: %v\n", err)
		os.Exit(3)
	}
}
