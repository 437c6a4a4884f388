package dis

import (
	"github.com/spf13/cobra"
)

// disCmd groups the disassembly commands
var DisCmd = &cobra.Command{
	Use:   "dis",
	Short: "8086 disassembly commands",
}

func init() {
}
