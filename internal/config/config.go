// Package config handles store-path resolution and global configuration.
package config

import (
	"os"
	"path/filepath"
)

const (
	// StoreFileName is the file name used under the data home.
	StoreFileName = "kv.json"
	// FallbackFileName is the dotfile name used under the home directory.
	FallbackFileName = ".kv.json"
	// StorePathEnv overrides resolution entirely when set.
	StorePathEnv = "KV_STORE_FILE"
)

// StorePath resolves the store file location. Order: $KV_STORE_FILE, then
// store_path from the global config, then $XDG_DATA_HOME/kv.json when
// XDG_DATA_HOME names an existing directory, then ~/.kv.json. Resolution
// never fails: a stat error on the data home takes the fallback branch.
func StorePath() string {
	if p := os.Getenv(StorePathEnv); p != "" {
		return ExpandPath(p)
	}

	if p := GetStorePath(); p != "" {
		return p
	}

	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		if info, err := os.Stat(dataHome); err == nil && info.IsDir() {
			return filepath.Join(dataHome, StoreFileName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory either; fall back to the working directory.
		return FallbackFileName
	}
	return filepath.Join(home, FallbackFileName)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
