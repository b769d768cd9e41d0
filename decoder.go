// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import (
	"bufio"
	"io"
)

// Decoder implements the bit-unpacking transport and dictionary
// reconstruction described in the package doc comment. It is not safe for
// concurrent use.
type Decoder struct {
	r    *bufio.Reader
	w    io.Writer
	unp  unpacker
	dict *decoderDict
	key  []byte

	bytesRead    int64
	bytesWritten int64
}

// NewDecoder returns a Decoder that reads a packed code stream from r and
// writes reconstructed bytes to w.
func NewDecoder(r io.Reader, w io.Writer) *Decoder {
	return &Decoder{
		r:    bufio.NewReader(r),
		w:    w,
		dict: acquireDecoderDict(),
	}
}

// codeOutcome tags what handling a single code should do next.
type codeOutcome int

const (
	outcomeContinue codeOutcome = iota
	outcomeIgnored
	outcomeTerminate
)

// handleCode applies the control-code protocol and dictionary
// reconstruction rule to a single code.
func (d *Decoder) handleCode(c Code) (codeOutcome, error) {
	switch c {
	case NOOP:
		return outcomeIgnored, nil
	case EOF, EOS:
		return outcomeTerminate, nil
	case FlushDictionary:
		d.dict.reset()
		d.key = d.key[:0]
		return outcomeContinue, nil
	default:
		phrase, ok := d.dict.lookup(c)
		if !ok {
			return outcomeContinue, ErrCorruptStream
		}

		n, err := io.WriteString(d.w, phrase)
		d.bytesWritten += int64(n)
		if err != nil {
			return outcomeContinue, err
		}

		d.key = append(d.key, phrase...)
		if len(d.key) > 1 && c.isLiteral() {
			// Like the encoder, a full dictionary declines the insert and
			// decoding continues, keeping both tables in step.
			d.dict.insert(string(d.key))
			d.key = d.key[:0]
		}

		return outcomeContinue, nil
	}
}

// Run drives the decoder to exhaustion: it reads from the underlying reader
// until a terminal code (EOF/EOS) is seen or the input is exhausted, and
// returns the number of bytes read and written.
//
// A stream that ends mid-group or without a terminal code is not treated as
// fatal: any fully-formed groups already seen are decoded and Run returns
// ErrTruncatedStream alongside the partial byte counts.
func (d *Decoder) Run() (bytesRead, bytesWritten int64, err error) {
	defer func() {
		releaseDecoderDict(d.dict)
		d.dict = nil
	}()

	for {
		b, rerr := d.r.ReadByte()
		if rerr != nil {
			if rerr == io.EOF {
				// Input exhausted without a terminal code: any fully-formed
				// group already seen has been decoded, so this is a soft
				// condition rather than a fatal error.
				return d.bytesRead, d.bytesWritten, ErrTruncatedStream
			}
			return d.bytesRead, d.bytesWritten, rerr
		}
		d.bytesRead++

		a, bCode, ready := d.unp.feed(b)
		if !ready {
			continue
		}

		outcome, herr := d.handleCode(a)
		if herr != nil {
			return d.bytesRead, d.bytesWritten, herr
		}
		switch outcome {
		case outcomeTerminate:
			return d.bytesRead, d.bytesWritten, nil
		case outcomeIgnored:
			continue
		}

		outcome, herr = d.handleCode(bCode)
		if herr != nil {
			return d.bytesRead, d.bytesWritten, herr
		}
		if outcome == outcomeTerminate {
			return d.bytesRead, d.bytesWritten, nil
		}
	}
}
