// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import (
	"bytes"
	"testing"
)

func TestPacker_EmptyFlushIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := newPacker(&buf)

	n, err := p.flush()
	if err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if n != 0 || buf.Len() != 0 {
		t.Fatalf("expected no-op flush, wrote %d bytes", buf.Len())
	}
}

func TestPacker_HalfFlushPadsWithNoop(t *testing.T) {
	var buf bytes.Buffer
	p := newPacker(&buf)

	if _, err := p.emit(32); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected buffered code to write nothing yet, got %d bytes", buf.Len())
	}

	n, err := p.flush()
	if err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 bytes written, got %d", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{32, 15, 191}) {
		t.Fatalf("unexpected padded group: % x", buf.Bytes())
	}
}

func TestPacker_PairEmitsImmediately(t *testing.T) {
	var buf bytes.Buffer
	p := newPacker(&buf)

	if _, err := p.emit(32); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	n, err := p.emit(32)
	if err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 bytes written, got %d", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{32, 2, 0}) {
		t.Fatalf("unexpected group: % x", buf.Bytes())
	}
}

func TestUnpacker_FeedReassemblesGroups(t *testing.T) {
	var u unpacker

	for _, b := range []byte{32, 2} {
		_, _, ready := u.feed(b)
		if ready {
			t.Fatalf("unexpected ready after byte %d", b)
		}
	}
	if !u.pending() {
		t.Fatal("expected pending group after 2 bytes")
	}

	a, b, ready := u.feed(0)
	if !ready {
		t.Fatal("expected ready after third byte")
	}
	if a != 32 || b != 32 {
		t.Fatalf("unexpected codes: (%d, %d)", a, b)
	}
	if u.pending() {
		t.Fatal("expected idle state after completing a group")
	}
}
