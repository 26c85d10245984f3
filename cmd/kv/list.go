package main

import (
	"fmt"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all key:value pairs.",
	Long: `List every entry in the store, one "key -> value" line each.

An unreadable or corrupt store file lists as empty.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := store.Open(config.StorePath()).List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No keys found.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s -> %s\n", e.Key, e.Value)
	}
	return nil
}
