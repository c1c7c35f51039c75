package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offbook/offbook/internal/adapters/scriptfile"
	"github.com/offbook/offbook/internal/timeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate <script>",
	Short: "Check a script for playback errors",
	Long:  `Parses and normalizes the script, reporting unknown speakers, a missing or ambiguous performer, and empty line lists.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Script is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	script, err := scriptfile.New().Load(path)
	if err != nil {
		return err
	}

	tl, err := timeline.Normalize(script)
	if err != nil {
		return err
	}

	fmt.Printf("%d lines, %d participants", tl.Len(), len(script.Participants))
	if actorID := tl.ActorID(); actorID != "" {
		fmt.Printf(", performer %q with %d lines", actorID, len(tl.ActorLineIndices()))
	} else {
		fmt.Print(", fully autonomous")
	}
	fmt.Println(".")
	return nil
}
