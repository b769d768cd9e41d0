// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

/*
Package lzw12 implements a streaming 12-bit LZW variant with an adaptive
dictionary and an in-stream dictionary-flush escape.

The dictionary admits a new phrase by emitting its terminating byte as a
literal rather than emitting the new phrase's own code — this asymmetric
rule is what lets the decoder rebuild the dictionary one code behind the
encoder without ever needing the classic KwKwK special case. It is not
wire-compatible with textbook LZW.

# Compress

	r, w, err := lzw12.Compress(src, dst)

Compress always appends an EOF frame (two packed EOF codes), so the wire
form is self-delimiting.

# Decompress

	r, w, err := lzw12.Decompress(src, dst)

Decompress stops at the first EOF or EOS code; bytes after it are not
decoded or counted, though src is read through a buffer and some of them
may already have been consumed from it.
*/
package lzw12
