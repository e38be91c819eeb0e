package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags.
var Version = "dev"

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vouchergen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vouchergen %s (%s)\n", Version, runtime.Version())
	},
}
