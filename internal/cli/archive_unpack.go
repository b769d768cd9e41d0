// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/ls.go dispatch shape)
// Source: github.com/jonjohnsonjr/targz (member-at-a-time archive framing)

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nilsenlabs/lzw12/internal/archive"

	flag "github.com/spf13/pflag"
)

var errUnpackArgs = errors.New("archive unpack requires an archive path and an output directory")

// ArchiveUnpackCmd returns the "archive unpack" command.
func ArchiveUnpackCmd(logger *slog.Logger, stdin io.Reader) *Command {
	fs := flag.NewFlagSet("archive unpack", flag.ContinueOnError)

	return &Command{
		Name:  "archive unpack",
		Flags: fs,
		Usage: "archive unpack <archive-file> <output-dir>",
		Short: "Unpack all members of an lzw12 archive into a directory",
		Long:  "Creates output-dir if needed and writes each member under its stored name.",
		Exec: func(_ context.Context, _ *IO, args []string) error {
			if len(args) != 2 {
				return errUnpackArgs
			}

			archivePath, outDir := args[0], args[1]

			in, err := openInput(stdin, archivePath)
			if err != nil {
				return fmt.Errorf("open archive: %w", err)
			}
			defer in.Close()

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			ar := archive.NewReader(in)
			for {
				if err := unpackOne(ar, outDir, logger); err != nil {
					if errors.Is(err, io.EOF) {
						return nil
					}
					return err
				}
			}
		},
	}
}

func unpackOne(ar *archive.Reader, outDir string, logger *slog.Logger) error {
	f, err := os.CreateTemp(outDir, "lzw12c-unpack-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := f.Name()

	member, err := ar.Next(f)
	closeErr := f.Close()
	if err != nil {
		os.Remove(tmpName)
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("unpack member: %w", err)
	}
	if closeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close member %q: %w", member.Name, closeErr)
	}

	dest := filepath.Join(outDir, member.Name)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("finalize member %q: %w", member.Name, err)
	}

	logger.Info("unpacked member", "name", member.Name, "uncompressed", member.UncompressedSize)
	return nil
}
