package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/offbook/offbook"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of offbook",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("offbook version %s\n", strings.TrimSpace(offbook.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
