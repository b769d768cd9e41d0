// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nilsenlabs/lzw12/internal/corpus"
)

func loremIpsumSample() []byte {
	return corpus.LoremIpsum
}

func tenSpacesWire() []byte {
	return corpus.TenSpacesWire
}

// TestCompress_TenSpaces pins scenario S1 bit-exactly.
func TestCompress_TenSpaces(t *testing.T) {
	var out bytes.Buffer
	r, w, err := Compress(strings.NewReader(strings.Repeat(" ", 10)), &out)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if r != 10 {
		t.Fatalf("bytesRead = %d, want 10", r)
	}
	if w != int64(out.Len()) {
		t.Fatalf("bytesWritten = %d, want %d", w, out.Len())
	}
	if !bytes.Equal(out.Bytes(), corpus.TenSpacesWire) {
		t.Fatalf("wire mismatch:\n got  % x\n want % x", out.Bytes(), corpus.TenSpacesWire)
	}
}

// TestDecompress_TenSpaces pins scenario S2.
func TestDecompress_TenSpaces(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Decompress(bytes.NewReader(tenSpacesWire()), &out)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if out.String() != strings.Repeat(" ", 10) {
		t.Fatalf("got %q, want 10 spaces", out.String())
	}
}

// TestRoundTrip_LoremIpsum covers S3/S4.
func TestRoundTrip_LoremIpsum(t *testing.T) {
	sample := loremIpsumSample()

	var compressed bytes.Buffer
	_, _, err := Compress(bytes.NewReader(sample), &compressed)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if !bytes.HasPrefix(compressed.Bytes(), corpus.LoremIpsumWirePrefix) {
		t.Fatalf("wire prefix mismatch: got % x", compressed.Bytes()[:len(corpus.LoremIpsumWirePrefix)])
	}
	if !bytes.HasSuffix(compressed.Bytes(), corpus.LoremIpsumWireSuffix) {
		got := compressed.Bytes()
		t.Fatalf("wire suffix mismatch: got % x", got[len(got)-len(corpus.LoremIpsumWireSuffix):])
	}
	if compressed.Len() != corpus.LoremIpsumWireLen {
		t.Fatalf("compressed length = %d, want %d", compressed.Len(), corpus.LoremIpsumWireLen)
	}

	var decoded bytes.Buffer
	_, _, err = Decompress(bytes.NewReader(compressed.Bytes()), &decoded)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(decoded.Bytes(), sample) {
		t.Fatalf("round-trip mismatch: got %q", decoded.Bytes())
	}
}

// TestDecompress_EOFOnlyStream covers S5.
func TestDecompress_EOFOnlyStream(t *testing.T) {
	wire := corpus.EOFOnlyWire

	var out bytes.Buffer
	r, w, err := Decompress(bytes.NewReader(wire), &out)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected empty output, got %q", out.Bytes())
	}
	if r != int64(len(wire)) {
		t.Fatalf("bytesRead = %d, want %d", r, len(wire))
	}
	if w != 0 {
		t.Fatalf("bytesWritten = %d, want 0", w)
	}
}

// TestCompress_EmptyInput covers the empty-input boundary: only the EOF
// frame is produced.
func TestCompress_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	r, _, err := Compress(strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if r != 0 {
		t.Fatalf("bytesRead = %d, want 0", r)
	}
	if !bytes.Equal(out.Bytes(), []byte{254, 255, 239}) {
		t.Fatalf("expected bare EOF frame, got % x", out.Bytes())
	}
}

// TestCompress_SingleByte covers the single-byte boundary: one literal code
// followed by the EOF frame.
func TestCompress_SingleByte(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Compress(bytes.NewReader([]byte{0xAB}), &out)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	literalGroup, eofGroup := PackCodes(0xAB, NOOP), PackCodes(EOF, EOF)
	want := append(append([]byte{}, literalGroup[:]...), eofGroup[:]...)
	if !bytes.Equal(out.Bytes(), want) {
		t.Fatalf("got % x, want % x", out.Bytes(), want)
	}
}

func TestRoundTrip_Determinism(t *testing.T) {
	sample := bytes.Repeat([]byte("abc123"), 500)

	var first, second bytes.Buffer
	if _, _, err := Compress(bytes.NewReader(sample), &first); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if _, _, err := Compress(bytes.NewReader(sample), &second); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("compress output is not deterministic")
	}
}

func TestRoundTrip_StreamingIsChunkInsensitive(t *testing.T) {
	sample := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 100)

	var bulk bytes.Buffer
	enc := NewEncoder(&bulk)
	if _, err := enc.Write(sample); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var chunked bytes.Buffer
	enc2 := NewEncoder(&chunked)
	for i := 0; i < len(sample); i += 3 {
		end := min(i+3, len(sample))
		if _, err := enc2.Write(sample[i:end]); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := enc2.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !bytes.Equal(bulk.Bytes(), chunked.Bytes()) {
		t.Fatal("streaming output differs from bulk output")
	}
}

func TestFlushDictionary_ResetsBothSidesToLiterals(t *testing.T) {
	// A large input drives the dictionary past the size threshold. The
	// default 200% ratio threshold is never exceeded by this codec (each new
	// phrase costs 3 output bytes for at least 2 input bytes), so the ratio
	// threshold is lowered to 1% to force at least one FLUSH_DICTIONARY and
	// exercise S6.
	sample := bytes.Repeat([]byte("abcdefghijklmnopqrstuvwxyz0123456789"), 20000)

	var compressed bytes.Buffer
	_, _, err := CompressOptions(bytes.NewReader(sample), &compressed, &EncoderOptions{FlushRatioThreshold: 1})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if !containsCode(t, compressed.Bytes(), FlushDictionary) {
		t.Fatal("expected at least one FLUSH_DICTIONARY in the wire stream")
	}

	var decoded bytes.Buffer
	_, _, err = Decompress(bytes.NewReader(compressed.Bytes()), &decoded)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(decoded.Bytes(), sample) {
		t.Fatal("round-trip mismatch after dictionary flush")
	}
}

// containsCode scans a packed wire stream for any occurrence of want.
func containsCode(t *testing.T, wire []byte, want Code) bool {
	t.Helper()

	var u unpacker
	for _, b := range wire {
		a, bCode, ready := u.feed(b)
		if !ready {
			continue
		}
		if a == want || bCode == want {
			return true
		}
	}
	return false
}

func TestDecompress_CorruptCodeIsReported(t *testing.T) {
	// Code 4000 is never admitted by a 1-byte stream's dictionary.
	group := PackCodes(4000, EOF)
	var out bytes.Buffer
	_, _, err := Decompress(bytes.NewReader(group[:]), &out)
	if !errors.Is(err, ErrCorruptStream) {
		t.Fatalf("expected ErrCorruptStream, got %v", err)
	}
}

func TestDecompress_TruncatedMidGroupIsSoftError(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Decompress(bytes.NewReader([]byte{32, 15}), &out)
	if !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
}

func TestDecompress_NoTerminatorIsSoftError(t *testing.T) {
	group := PackCodes(65, 66)
	var out bytes.Buffer
	_, w, err := Decompress(bytes.NewReader(group[:]), &out)
	if !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
	if w != 2 {
		t.Fatalf("expected the fully-formed group to still decode, got %d bytes written", w)
	}
}

func TestCompressionRatio(t *testing.T) {
	if got := CompressionRatio(200, 100); got != 50 {
		t.Fatalf("got %v, want 50", got)
	}
	if got := CompressionRatio(100, 150); got != 150 {
		t.Fatalf("got %v, want 150 (expansion)", got)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add(loremIpsumSample())

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		var compressed bytes.Buffer
		if _, _, err := Compress(bytes.NewReader(data), &compressed); err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		var decoded bytes.Buffer
		if _, _, err := Decompress(bytes.NewReader(compressed.Bytes()), &decoded); err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(decoded.Bytes(), data) {
			t.Fatalf("round-trip mismatch: got %d bytes, want %d", decoded.Len(), len(data))
		}
	})
}
