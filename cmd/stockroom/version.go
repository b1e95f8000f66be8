// Version command for the stockroom CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stockroom v%s\n", stockroom.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
