// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/ls.go dispatch shape)

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nilsenlabs/lzw12"

	flag "github.com/spf13/pflag"
)

// DecompressCmd returns the decompress command.
func DecompressCmd(logger *slog.Logger, stdin io.Reader) *Command {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)

	return &Command{
		Name:  "decompress",
		Flags: fs,
		Usage: "decompress [flags] [infile] [outfile]",
		Short: "Decompress an lzw12 stream (or stdin) to raw bytes",
		Long:  "Decompress reads infile (or stdin if omitted/\"-\") and writes decoded bytes to outfile (or stdout).",
		Exec: func(_ context.Context, o *IO, args []string) error {
			inPath, outPath := argOrDefault(args, 0), argOrDefault(args, 1)

			in, err := openInput(stdin, inPath)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			out, err := openOutput(o.Out, outPath)
			if err != nil {
				return fmt.Errorf("open output: %w", err)
			}
			defer out.Close()

			read, written, err := lzw12.Decompress(in, out)
			if err != nil && !errors.Is(err, lzw12.ErrTruncatedStream) {
				return fmt.Errorf("decompress: %w", err)
			}
			if errors.Is(err, lzw12.ErrTruncatedStream) {
				logger.Warn("stream truncated, partial output written",
					"bytes_read", read, "bytes_written", written)
			}

			logger.Info("decompress complete", "bytes_read", read, "bytes_written", written)
			return nil
		},
	}
}
