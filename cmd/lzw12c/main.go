// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (cmd/tk/main.go)

// Package main provides lzw12c, a command-line wrapper around the lzw12
// streaming codec and its archive format.
package main

import (
	"os"

	"github.com/nilsenlabs/lzw12/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}
