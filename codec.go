// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import "io"

// countingWriter tallies bytes written through it without altering them.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Compress reads all of r, runs it through the match loop, and writes the
// packed code stream to w, always appending a terminal EOF frame. It
// returns the number of bytes read from r and written to w.
func Compress(r io.Reader, w io.Writer) (bytesRead, bytesWritten int64, err error) {
	return CompressOptions(r, w, nil)
}

// CompressOptions is like Compress but allows overriding the ratio-flush
// heuristic's thresholds.
func CompressOptions(r io.Reader, w io.Writer, opts *EncoderOptions) (bytesRead, bytesWritten int64, err error) {
	cw := &countingWriter{w: w}
	enc := NewEncoderOptions(cw, opts)

	buf := make([]byte, 32*1024)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			bytesRead += int64(n)
			if _, werr := enc.Write(buf[:n]); werr != nil {
				return bytesRead, cw.n, werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return bytesRead, cw.n, rerr
		}
	}

	if cerr := enc.Close(); cerr != nil {
		return bytesRead, cw.n, cerr
	}
	return bytesRead, cw.n, nil
}

// Decompress reads a packed code stream from r and writes the reconstructed
// bytes to w, stopping at the first EOF or EOS code (or when r is
// exhausted; see ErrTruncatedStream). It returns the number of bytes read
// from r and written to w.
func Decompress(r io.Reader, w io.Writer) (bytesRead, bytesWritten int64, err error) {
	return NewDecoder(r, w).Run()
}

// CompressionRatio returns (compressed/uncompressed)*100 as a percentage.
// Values above 100 indicate the output grew relative to the input.
func CompressionRatio(uncompressed, compressed int64) float64 {
	return (float64(compressed) / float64(uncompressed)) * 100
}
