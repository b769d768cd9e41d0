// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/run.go)

package cli

import (
	"context"
	"io"
	"log/slog"
)

// Run is lzw12c's entry point. Returns a process exit code.
func Run(in io.Reader, out, errOut io.Writer, args []string) int {
	logger := slog.New(slog.NewTextHandler(errOut, nil))
	commands := allCommands(logger, in)

	if len(args) == 0 {
		printUsage(out, commands)
		return 0
	}

	cmdName, rest := resolveCommand(args, commands)
	if cmdName == "" {
		if args[0] == "-h" || args[0] == "--help" {
			printUsage(out, commands)
			return 0
		}
		cio := NewIO(out, errOut)
		cio.ErrPrintln("error: unknown command:", args[0])
		printUsage(errOut, commands)
		return 1
	}

	var cmd *Command
	for _, c := range commands {
		if c.Name == cmdName {
			cmd = c
			break
		}
	}

	cio := NewIO(out, errOut)
	return cmd.Run(context.Background(), cio, rest)
}

// resolveCommand matches the longest command name against the leading
// tokens of args, so that "archive pack x y" resolves to the two-word
// command "archive pack" rather than the one-word "archive".
func resolveCommand(args []string, commands []*Command) (name string, rest []string) {
	if len(args) >= 2 {
		twoWord := args[0] + " " + args[1]
		for _, c := range commands {
			if c.Name == twoWord {
				return twoWord, args[2:]
			}
		}
	}
	for _, c := range commands {
		if c.Name == args[0] {
			return args[0], args[1:]
		}
	}
	return "", nil
}

func allCommands(logger *slog.Logger, stdin io.Reader) []*Command {
	return []*Command{
		CompressCmd(logger, stdin),
		DecompressCmd(logger, stdin),
		RatioCmd(),
		ArchivePackCmd(logger),
		ArchiveUnpackCmd(logger, stdin),
	}
}

func printUsage(w io.Writer, commands []*Command) {
	cio := NewIO(w, w)
	cio.Println("lzw12c - streaming 12-bit LZW codec")
	cio.Println()
	cio.Println("Usage: lzw12c <command> [flags] [args]")
	cio.Println()
	cio.Println("Commands:")
	for _, cmd := range commands {
		cio.Println(cmd.HelpLine())
	}
	cio.Println()
	cio.Println("Run 'lzw12c <command> --help' for flags on a specific command.")
}
