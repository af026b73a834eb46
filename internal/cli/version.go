package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags "-X meshmark/internal/cli.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the meshmark version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("meshmark", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
