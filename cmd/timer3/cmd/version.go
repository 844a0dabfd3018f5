package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the timer3 version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("timer3", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
