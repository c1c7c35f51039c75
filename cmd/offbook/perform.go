package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offbook/offbook/internal/cli"
)

// performCmd represents the perform command
var performCmd = &cobra.Command{
	Use:   "perform [script]",
	Short: "Play a script on the performance screen",
	Long: `Starts a playback session for the given script file. In a terminal this
opens the chat surface; without one (or with --headless) lines are printed
to stdout and actor lines are read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{ScriptPath: "script.yaml"}
		if len(args) > 0 {
			opts.ScriptPath = args[0]
		}
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Seed, _ = cmd.Flags().GetUint64("seed")
		opts.Store, _ = cmd.Flags().GetString("store")
		opts.StorePath, _ = cmd.Flags().GetString("store-path")
		opts.RedisURL, _ = cmd.Flags().GetString("redis-url")
		opts.RunID, _ = cmd.Flags().GetString("run-id")

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(performCmd)

	performCmd.Flags().Bool("headless", false, "Print lines to stdout instead of the chat surface")
	performCmd.Flags().Uint64("seed", 0, "Fixed jitter seed for reproducible takes (0 = random)")
	performCmd.Flags().String("store", "file", "Run record store: file, memory, or redis")
	performCmd.Flags().String("store-path", "", "Directory for the file store (default .offbook/runs)")
	performCmd.Flags().String("redis-url", "redis://localhost:6379/0", "Redis URL for --store redis")
	performCmd.Flags().String("run-id", "", "Run record ID (default derived from the start time)")

	// Make 'perform' the default when no subcommand is given.
	rootCmd.Run = performCmd.Run
	rootCmd.Flags().AddFlagSet(performCmd.Flags())
}
