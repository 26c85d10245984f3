package main

import (
	"fmt"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Gets the value for a given key.",
	Long: `Get the value stored for a key.

Example:
  kv get editor`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	value, err := store.Open(config.StorePath()).Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}
