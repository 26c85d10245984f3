// Package main provides the kv CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// A .env in the working directory may supply KV_STORE_FILE or
	// XDG_DATA_HOME before path resolution runs.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kv",
	Short: "File-backed key-value store",
	Long: `kv stores string key-value pairs in a single JSON file.

The store lives at $XDG_DATA_HOME/kv.json when XDG_DATA_HOME is a
directory, otherwise at ~/.kv.json. Set KV_STORE_FILE or store_path in
~/.config/kv/config.yml to point somewhere else.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
