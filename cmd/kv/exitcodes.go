package main

// Exit codes for the CLI.
const (
	ExitSuccess = 0 // Success (message on stdout)
	ExitError   = 1 // Any failure (message on stderr)
)
