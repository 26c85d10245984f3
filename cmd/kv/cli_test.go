package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matsen/kv/internal/config"
	"github.com/matsen/kv/internal/store"
)

// setupStoreFile points the CLI at a store file in a temp directory and
// isolates the global config. The file does not exist until a command
// writes it.
func setupStoreFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kv.json")
	t.Setenv(config.StorePathEnv, path)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.ResetGlobalConfigCache()
	t.Cleanup(config.ResetGlobalConfigCache)
	return path
}

// runKV executes the root command with given args and returns captured
// stdout. Command flags are reset so runs don't leak into each other.
func runKV(t *testing.T, args ...string) (string, error) {
	t.Helper()

	setForce = false
	infoJSON = false

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return buf.String(), execErr
}

func TestCLISetConfirmation(t *testing.T) {
	setupStoreFile(t)

	output, err := runKV(t, "set", "editor", "vim")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	want := "Key \"editor\" set to value \"vim\".\n"
	if output != want {
		t.Errorf("set output = %q, want %q", output, want)
	}
}

func TestCLIGetPrintsValue(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "editor", "vim"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := runKV(t, "get", "editor")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if output != "vim\n" {
		t.Errorf("get output = %q, want %q", output, "vim\n")
	}
}

func TestCLIGetMissingKey(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "other", "x"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	_, err := runKV(t, "get", "missing")
	if !store.IsNotFound(err) {
		t.Fatalf("get = %v, want NotFoundError", err)
	}
	if err.Error() != `Key "missing" not found.` {
		t.Errorf("error = %q, want the not-found message", err)
	}
}

func TestCLISetDuplicateRefused(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "editor", "vim"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	_, err := runKV(t, "set", "editor", "emacs")
	if !store.IsAlreadyExists(err) {
		t.Fatalf("duplicate set = %v, want AlreadyExistsError", err)
	}
	if err.Error() != `Key "editor" already present. (Use --force to overwrite.)` {
		t.Errorf("error = %q, want the already-present message", err)
	}

	// The stored value must be untouched.
	output, err := runKV(t, "get", "editor")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if output != "vim\n" {
		t.Errorf("get after refused overwrite = %q, want %q", output, "vim\n")
	}
}

func TestCLISetForceOverwrites(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "editor", "vim"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := runKV(t, "set", "editor", "emacs", "--force"); err != nil {
		t.Fatalf("set --force failed: %v", err)
	}

	output, err := runKV(t, "get", "editor")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if output != "emacs\n" {
		t.Errorf("get output = %q, want %q", output, "emacs\n")
	}
}

func TestCLIDeleteConfirmation(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "editor", "vim"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := runKV(t, "delete", "editor")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	want := "Deleted key \"editor\".\n"
	if output != want {
		t.Errorf("delete output = %q, want %q", output, want)
	}

	if _, err := runKV(t, "get", "editor"); !store.IsNotFound(err) {
		t.Errorf("get after delete = %v, want NotFoundError", err)
	}
}

func TestCLIListEmpty(t *testing.T) {
	setupStoreFile(t)

	// Never-created store file.
	output, err := runKV(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if output != "No keys found.\n" {
		t.Errorf("list output = %q, want %q", output, "No keys found.\n")
	}
}

func TestCLIListEntries(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "a", "1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := runKV(t, "set", "b", "2"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := runKV(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("list printed %d lines, want 2: %q", len(lines), output)
	}
	seen := map[string]bool{}
	for _, line := range lines {
		seen[line] = true
	}
	if !seen["a -> 1"] || !seen["b -> 2"] {
		t.Errorf("list output = %q, want lines %q and %q", output, "a -> 1", "b -> 2")
	}
}

func TestCLIListCorruptFile(t *testing.T) {
	path := setupStoreFile(t)
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("writing store file: %v", err)
	}

	// List swallows the load failure and reports an empty store.
	output, err := runKV(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if output != "No keys found.\n" {
		t.Errorf("list output = %q, want %q", output, "No keys found.\n")
	}
}

func TestCLICompleteKeys(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "set", "editor", "vim"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := runKV(t, "complete-keys")
	if err != nil {
		t.Fatalf("complete-keys failed: %v", err)
	}
	if output != "editor:vim\n" {
		t.Errorf("complete-keys output = %q, want %q", output, "editor:vim\n")
	}
}

func TestCLICompleteKeysCorruptFile(t *testing.T) {
	path := setupStoreFile(t)
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("writing store file: %v", err)
	}

	// Unlike list, the key completion helper propagates load failures.
	if _, err := runKV(t, "complete-keys"); err == nil {
		t.Fatal("complete-keys on corrupt file succeeded")
	}
}

func TestCLICompleteCommands(t *testing.T) {
	setupStoreFile(t)

	output, err := runKV(t, "complete-commands")
	if err != nil {
		t.Fatalf("complete-commands failed: %v", err)
	}

	seen := map[string]bool{}
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		seen[line] = true
	}
	for _, want := range []string{
		"get:Gets the value for a given key.",
		"set:Sets a value for a key.",
		"delete:Deletes key:value pairs.",
		"list:Lists all key:value pairs.",
	} {
		if !seen[want] {
			t.Errorf("complete-commands missing %q (got %q)", want, output)
		}
	}
	for line := range seen {
		if strings.HasPrefix(line, "complete") {
			t.Errorf("complete-commands lists a completion helper: %q", line)
		}
	}
}

func TestCLIInfo(t *testing.T) {
	path := setupStoreFile(t)

	if _, err := runKV(t, "set", "a", "1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	output, err := runKV(t, "info")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(output, "Path:    "+path) {
		t.Errorf("info output %q missing path %q", output, path)
	}
	if !strings.Contains(output, "Entries: 1") {
		t.Errorf("info output %q missing entry count", output)
	}
}

func TestCLIConfigRoundTrip(t *testing.T) {
	setupStoreFile(t)

	output, err := runKV(t, "config", "store-path", "/tmp/cli-test.json")
	if err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if output != "store-path set to /tmp/cli-test.json\n" {
		t.Errorf("config set output = %q", output)
	}

	output, err = runKV(t, "config", "store-path")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if output != "/tmp/cli-test.json\n" {
		t.Errorf("config get output = %q, want %q", output, "/tmp/cli-test.json\n")
	}

	output, err = runKV(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if output != "store-path: /tmp/cli-test.json\n" {
		t.Errorf("config output = %q", output)
	}
}

func TestCLIConfigUnknownKey(t *testing.T) {
	setupStoreFile(t)

	if _, err := runKV(t, "config", "bogus"); err == nil {
		t.Fatal("config with unknown key succeeded")
	}
}
