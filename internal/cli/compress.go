// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/ls.go dispatch shape)

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nilsenlabs/lzw12"

	flag "github.com/spf13/pflag"
)

// CompressCmd returns the compress command.
func CompressCmd(logger *slog.Logger, stdin io.Reader) *Command {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	sizeThreshold := fs.Int("flush-threshold-size", lzw12.DefaultFlushSizeThreshold,
		"dictionary entries above which a flush is considered")
	ratioThreshold := fs.Int("flush-threshold-ratio", lzw12.DefaultFlushRatioThreshold,
		"compression ratio percentage above which a flush triggers")

	return &Command{
		Name:  "compress",
		Flags: fs,
		Usage: "compress [flags] [infile] [outfile]",
		Short: "Compress a file (or stdin) to an lzw12 stream",
		Long:  "Compress reads infile (or stdin if omitted/\"-\") and writes the packed lzw12 stream to outfile (or stdout).",
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

			opts := &lzw12.EncoderOptions{
				FlushSizeThreshold:  *sizeThreshold,
				FlushRatioThreshold: *ratioThreshold,
			}

			read, written, err := lzw12.CompressOptions(in, out, opts)
			if err != nil {
				return fmt.Errorf("compress: %w", err)
			}

			logger.Info("compress complete",
				"bytes_read", read,
				"bytes_written", written,
				"ratio_percent", lzw12.CompressionRatio(read, written))

			return nil
		},
	}
}

// argOrDefault returns args[i] if present, else "" (meaning stdin/stdout).
func argOrDefault(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
