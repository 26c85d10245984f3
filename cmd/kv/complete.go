package main

import (
	"fmt"
	"strings"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completeCommandsCmd, completeKeysCmd)
}

var completeCommandsCmd = &cobra.Command{
	Use:    "complete-commands",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runCompleteCommands,
}

func runCompleteCommands(cmd *cobra.Command, args []string) error {
	for _, line := range commandCompletions(rootCmd.Commands()) {
		fmt.Println(line)
	}
	return nil
}

// commandCompletions produces one "name:description" line per discoverable
// subcommand. The completion helpers themselves (names with prefix
// "complete") and commands without a description are excluded.
func commandCompletions(cmds []*cobra.Command) []string {
	var lines []string
	for _, c := range cmds {
		if strings.HasPrefix(c.Name(), "complete") || c.Short == "" {
			continue
		}
		lines = append(lines, c.Name()+":"+c.Short)
	}
	return lines
}

var completeKeysCmd = &cobra.Command{
	Use:    "complete-keys",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runCompleteKeys,
}

func runCompleteKeys(cmd *cobra.Command, args []string) error {
	entries, err := store.Open(config.StorePath()).Entries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%s:%s\n", e.Key, e.Value)
	}
	return nil
}
