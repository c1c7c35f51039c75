package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offbook/offbook/internal/adapters/scriptfile"
	"github.com/offbook/offbook/internal/presentation/cuesheet"
)

// cuesheetCmd represents the cuesheet command
var cuesheetCmd = &cobra.Command{
	Use:   "cuesheet <script>",
	Short: "Render the script as a cue sheet",
	Long:  `Prints a formatted cue sheet with the cast and every line in order, annotated with its delivery timing. Use --plain for unstyled markdown.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		script, err := scriptfile.New().Load(args[0])
		if err != nil {
			fmt.Printf("Error loading script: %v\n", err)
			os.Exit(1)
		}

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Print(cuesheet.Markdown(script))
			return
		}

		out, err := cuesheet.Render(script)
		if err != nil {
			fmt.Printf("Error rendering cue sheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(cuesheetCmd)
	cuesheetCmd.Flags().Bool("plain", false, "Output raw markdown without terminal styling")
}
