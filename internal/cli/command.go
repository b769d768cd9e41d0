// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/command.go)

package cli

import (
	"context"
	"errors"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command defines a lzw12c subcommand with unified help generation. Name is
// explicit rather than derived from Usage so that multi-word subcommands
// ("archive pack", "archive unpack") can share the "archive" verb.
type Command struct {
	Name  string
	Flags *flag.FlagSet
	Usage string
	Short string
	Long  string
	Exec  func(ctx context.Context, o *IO, args []string) error
}

// HelpLine returns the short help line for the top-level usage listing.
func (c *Command) HelpLine() string {
	return "  " + padRight(c.Usage, 32) + c.Short
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

// PrintHelp prints the full help output for "lzw12c <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: lzw12c", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}
	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")
		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command, returning a process exit code.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)
			return 0
		}
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)
		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	return 0
}
