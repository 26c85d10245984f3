package main

import (
	"fmt"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Deletes key:value pairs.",
	Long: `Delete a key and its value from the store.

Example:
  kv delete editor`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	key := args[0]

	if err := store.Open(config.StorePath()).Delete(key); err != nil {
		return err
	}

	fmt.Printf("Deleted key %q.\n", key)
	return nil
}
