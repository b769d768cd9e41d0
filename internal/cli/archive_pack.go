// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/ls.go dispatch shape)
// Source: github.com/jonjohnsonjr/targz (member-at-a-time archive framing)

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nilsenlabs/lzw12/internal/archive"

	flag "github.com/spf13/pflag"
)

var errPackArgs = errors.New("archive pack requires an archive path followed by one or more member files")

// ArchivePackCmd returns the "archive pack" command.
func ArchivePackCmd(logger *slog.Logger) *Command {
	fs := flag.NewFlagSet("archive pack", flag.ContinueOnError)

	return &Command{
		Name:  "archive pack",
		Flags: fs,
		Usage: "archive pack <archive-file> <member-file>...",
		Short: "Pack one or more files into an lzw12 archive",
		Long:  "Each member file is compressed independently and stored under its base name.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) < 2 {
				return errPackArgs
			}

			archivePath, memberPaths := args[0], args[1:]

			out, err := os.Create(archivePath)
			if err != nil {
				return fmt.Errorf("create archive: %w", err)
			}
			defer out.Close()

			aw := archive.NewWriter(out)
			for _, memberPath := range memberPaths {
				if err := packMember(aw, memberPath, logger); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func packMember(aw *archive.Writer, memberPath string, logger *slog.Logger) error {
	f, err := os.Open(memberPath)
	if err != nil {
		return fmt.Errorf("open member %q: %w", memberPath, err)
	}
	defer f.Close()

	name := filepath.Base(memberPath)
	uncompressed, compressed, err := aw.WriteMember(name, f)
	if err != nil {
		return fmt.Errorf("pack member %q: %w", name, err)
	}

	logger.Info("packed member", "name", name, "uncompressed", uncompressed, "compressed", compressed)
	return nil
}
