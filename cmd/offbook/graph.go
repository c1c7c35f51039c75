package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offbook/offbook/internal/adapters/scriptfile"
	"github.com/offbook/offbook/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <script>",
	Short: "Export the scene as a Mermaid sequence diagram",
	Long:  `Reads the script and outputs a Mermaid sequence diagram of the conversation, with the performer's forced-typing lines drawn as dotted arrows.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		script, err := scriptfile.New().Load(args[0])
		if err != nil {
			fmt.Printf("Error loading script: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(script, nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
