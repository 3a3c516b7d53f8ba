package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zenrename/zenrename/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zenrename %s\n", version.String())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
