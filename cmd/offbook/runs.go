package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/offbook/offbook/internal/adapters/file"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage saved run records",
	Long:  `List, inspect, and remove run records stored in .offbook/runs.`,
}

var runsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all saved runs",
	Run: func(cmd *cobra.Command, args []string) {
		store := getRunStore(cmd)
		runs, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing runs: %v\n", err)
			os.Exit(1)
		}

		if len(runs) == 0 {
			fmt.Println("No saved runs found.")
			return
		}

		fmt.Println("Saved Runs:")
		for _, r := range runs {
			fmt.Println("- " + r)
		}
	},
}

var runsInspectCmd = &cobra.Command{
	Use:   "inspect <run-id>",
	Short: "Inspect a saved run record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runID := args[0]
		store := getRunStore(cmd)

		record, err := store.Load(cmd.Context(), runID)
		if err != nil {
			fmt.Printf("Error loading run '%s': %v\n", runID, err)
			os.Exit(1)
		}

		// Pretty print JSON
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling record: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var runsRmCmd = &cobra.Command{
	Use:   "rm <run-id>...",
	Short: "Remove one or more run records",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getRunStore(cmd)
		hasError := false

		for _, runID := range args {
			if err := store.Delete(cmd.Context(), runID); err != nil {
				fmt.Printf("Error removing '%s': %v\n", runID, err)
				hasError = true
			} else {
				fmt.Printf("Removed run '%s'\n", runID)
			}
		}

		if hasError {
			os.Exit(1)
		}
	},
}

func getRunStore(cmd *cobra.Command) *file.Store {
	path, _ := cmd.Flags().GetString("store-path")
	return file.NewStore(path)
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsLsCmd)
	runsCmd.AddCommand(runsInspectCmd)
	runsCmd.AddCommand(runsRmCmd)

	runsCmd.PersistentFlags().String("store-path", "", "Directory of the file store (default .offbook/runs)")
}
