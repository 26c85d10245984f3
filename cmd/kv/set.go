package main

import (
	"fmt"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
	"github.com/spf13/cobra"
)

var setForce bool

func init() {
	setCmd.Flags().BoolVarP(&setForce, "force", "f", false, "Overwrite value if key already exists.")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Sets a value for a key.",
	Long: `Store a value for a key.

Setting an existing key fails unless --force is given. A corrupt store
file is treated as empty, so setting over corruption replaces the file.

Examples:
  kv set editor vim
  kv set editor emacs --force`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := store.Open(config.StorePath()).Set(key, value, setForce); err != nil {
		return err
	}

	fmt.Printf("Key %q set to value %q.\n", key, value)
	return nil
}
