package main

import (
	"fmt"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
	"github.com/spf13/cobra"
)

var infoJSON bool

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Shows the store location and entry count.",
	Long: `Show where the store file resolves to, whether it exists, and how
many entries it holds. A corrupt file is reported rather than failing.

Example:
  kv info --json`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	info := store.Open(config.StorePath()).Info()

	if infoJSON {
		return outputJSON(info)
	}

	fmt.Printf("Path:    %s\n", info.Path)
	if !info.Exists {
		fmt.Println("Exists:  no")
		return nil
	}
	fmt.Printf("Entries: %d\n", info.Entries)
	fmt.Printf("Size:    %s\n", formatBytes(info.Size))
	if info.Error != "" {
		fmt.Printf("Error:   %s\n", info.Error)
	}
	return nil
}
