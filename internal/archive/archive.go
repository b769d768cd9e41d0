// SPDX-License-Identifier: MIT
// Source: github.com/jonjohnsonjr/targz (tarfs/ranger framing style)

// Package archive implements a small multi-file archive format with one
// independently-compressed lzw12 stream per member. It is the "multi-file
// archive framing" collaborator the core codec treats as external: it
// consumes lzw12.Compress/Decompress purely through io.Reader/io.Writer,
// never reaching into dictionary internals.
//
// Wire format: a sequence of members, each:
//
//	uint32le name length
//	name bytes (UTF-8)
//	uint64le uncompressed size
//	uint64le compressed size
//	compressed bytes (an lzw12 stream, including its own EOF frame)
package archive

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/nilsenlabs/lzw12"
)

// ErrMemberTooLarge is returned when a member name exceeds the format's
// uint32 length prefix.
var ErrMemberTooLarge = errors.New("archive: member name too large")

// Writer appends lzw12-compressed members to an underlying io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that appends members to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteMember compresses all of r under name and appends it as one archive
// member. It returns the member's uncompressed and compressed sizes.
func (aw *Writer) WriteMember(name string, r io.Reader) (uncompressed, compressed int64, err error) {
	if uint64(len(name)) > uint64(^uint32(0)) {
		return 0, 0, ErrMemberTooLarge
	}

	var body, header bytes.Buffer
	uncompressed, compressed, err = lzw12.Compress(r, &body)
	if err != nil {
		return 0, 0, fmt.Errorf("archive: compress member %q: %w", name, err)
	}

	nameLen := uint32(len(name))
	if err := binary.Write(&header, binary.LittleEndian, nameLen); err != nil {
		return 0, 0, err
	}
	header.WriteString(name)
	if err := binary.Write(&header, binary.LittleEndian, uint64(uncompressed)); err != nil {
		return 0, 0, err
	}
	if err := binary.Write(&header, binary.LittleEndian, uint64(compressed)); err != nil {
		return 0, 0, err
	}

	if _, err := aw.w.Write(header.Bytes()); err != nil {
		return 0, 0, fmt.Errorf("archive: write header for %q: %w", name, err)
	}
	if _, err := aw.w.Write(body.Bytes()); err != nil {
		return 0, 0, fmt.Errorf("archive: write body for %q: %w", name, err)
	}

	return uncompressed, compressed, nil
}

// Member describes one archive entry as returned by Reader.Next.
type Member struct {
	Name             string
	UncompressedSize int64
	CompressedSize   int64
}

// Reader walks archive members back out of an underlying io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next reads the next member's header and decompresses its body to w. It
// returns io.EOF when there are no more members.
func (ar *Reader) Next(w io.Writer) (Member, error) {
	var nameLen uint32
	if err := binary.Read(ar.r, binary.LittleEndian, &nameLen); err != nil {
		if err == io.EOF {
			return Member{}, io.EOF
		}
		return Member{}, fmt.Errorf("archive: read name length: %w", err)
	}

	nameBytes := make([]byte, nameLen)
	if _, err := io.ReadFull(ar.r, nameBytes); err != nil {
		return Member{}, fmt.Errorf("archive: read name: %w", err)
	}

	var uncompressedSize, compressedSize uint64
	if err := binary.Read(ar.r, binary.LittleEndian, &uncompressedSize); err != nil {
		return Member{}, fmt.Errorf("archive: read uncompressed size: %w", err)
	}
	if err := binary.Read(ar.r, binary.LittleEndian, &compressedSize); err != nil {
		return Member{}, fmt.Errorf("archive: read compressed size: %w", err)
	}

	body := io.LimitReader(ar.r, int64(compressedSize))
	if _, _, err := lzw12.Decompress(body, w); err != nil && !errors.Is(err, lzw12.ErrTruncatedStream) {
		return Member{}, fmt.Errorf("archive: decompress member %q: %w", string(nameBytes), err)
	}

	return Member{
		Name:             string(nameBytes),
		UncompressedSize: int64(uncompressedSize),
		CompressedSize:   int64(compressedSize),
	}, nil
}
