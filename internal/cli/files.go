// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli conventions)

package cli

import (
	"io"
	"os"
)

// openInput opens path for reading, or returns stdin when path is "" or "-".
func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// openOutput opens path for writing (truncating it), or returns stdout when
// path is "" or "-".
func openOutput(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
