package dis

import (
	"fmt"
	"os"

	"github.com/Manu343726/ocho86/pkg/hw/i8086/listing"
	"github.com/Manu343726/ocho86/pkg/hw/i8086/loader"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a disassembly listing interactively",
	Long: `Decodes a raw machine code binary and opens an interactive terminal browser
over the listing, one row per instruction with its offset, raw encoding bytes
and assembly text.

Navigate with the arrow keys or PgUp/PgDown, quit with q or Escape.`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	DisCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	program, err := loader.LoadBinary(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading binary: %v\n", err)
		os.Exit(1)
	}

	l, err := listing.Disassemble(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding program: %v\n", err)
		os.Exit(2)
	}

	app := tview.NewApplication()
	table := buildListingTable(l)

	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	frame := tview.NewFrame(table).
		AddText(fmt.Sprintf("%v — %v instructions, %v bytes", inputPath, len(l.Instructions), len(program)), true, tview.AlignCenter, tcell.ColorYellow).
		AddText("q/Esc: quit", false, tview.AlignCenter, tcell.ColorGray)

	if err := app.SetRoot(frame, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running listing browser: %v\n", err)
		os.Exit(3)
	}
}

// buildListingTable renders one selectable row per decoded instruction, plus
// a fixed header row
func buildListingTable(l *listing.Listing) *tview.Table {
	table := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)

	headers := []string{"OFFSET", "BYTES", "ASSEMBLY"}
	for column, header := range headers {
		table.SetCell(0, column, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, instruction := range l.Instructions {
		row := i + 1

		table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("0x%04x", instruction.Offset)).
			SetTextColor(tcell.ColorAqua))
		table.SetCell(row, 1, tview.NewTableCell(instruction.EncodingText()).
			SetTextColor(tcell.ColorFuchsia))
		table.SetCell(row, 2, tview.NewTableCell(instruction.String()).
			SetTextColor(tcell.ColorWhite).
			SetExpansion(1))
	}

	return table
}
