// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/ls.go dispatch shape)

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/nilsenlabs/lzw12"

	flag "github.com/spf13/pflag"
)

var errRatioArgs = errors.New("ratio requires exactly two arguments: <uncompressed-bytes> <compressed-bytes>")

// RatioCmd returns the ratio command.
func RatioCmd() *Command {
	fs := flag.NewFlagSet("ratio", flag.ContinueOnError)

	return &Command{
		Name:  "ratio",
		Flags: fs,
		Usage: "ratio <uncompressed-bytes> <compressed-bytes>",
		Short: "Print the compression ratio for a byte-count pair",
		Long:  "Prints compressed/uncompressed as a percentage, using the same arithmetic as lzw12.CompressionRatio.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) != 2 {
				return errRatioArgs
			}

			uncompressed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse uncompressed-bytes: %w", err)
			}
			compressed, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("parse compressed-bytes: %w", err)
			}

			o.Printf("%.2f%%\n", lzw12.CompressionRatio(uncompressed, compressed))
			return nil
		},
	}
}
