package main

import (
	"fmt"

	"github.com/matsen/kv/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Gets or sets configuration values.",
	Long: `Get or set global configuration values.

Usage:
  kv config                         # Show all config
  kv config store-path              # Get the store path override
  kv config store-path ~/my-kv.json # Set the store path override

Keys:
  store-path   Path to the store file (overrides the default location)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	// No args: show all config
	if len(args) == 0 {
		fmt.Printf("store-path: %s\n", cfg.StorePath)
		return nil
	}

	key := args[0]
	if key != "store-path" {
		return fmt.Errorf("unknown config key: %s", key)
	}

	// One arg: get the value
	if len(args) == 1 {
		fmt.Println(cfg.StorePath)
		return nil
	}

	// Two args: set and persist
	cfg.StorePath = config.ExpandPath(args[1])
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("store-path set to %s\n", cfg.StorePath)
	return nil
}
