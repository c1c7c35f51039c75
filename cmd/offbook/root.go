package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "offbook",
	Short: "Offbook performs scripted chat conversations on camera",
	Long: `Offbook plays a pre-written text conversation on a prop device: autonomous
lines are delivered on a simulated human cadence, and the performer's own
lines are revealed keystroke by keystroke, so any typing produces the
scripted text exactly.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
