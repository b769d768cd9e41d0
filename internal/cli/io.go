// SPDX-License-Identifier: MIT
// Source: github.com/calvinalkan/agent-task (internal/cli/io.go)

package cli

import (
	"fmt"
	"io"
)

// IO bundles a command's standard streams.
type IO struct {
	Out    io.Writer
	ErrOut io.Writer
}

// NewIO returns an IO writing to out and errOut.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{Out: out, ErrOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.Out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.Out, format, a...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.ErrOut, a...)
}
