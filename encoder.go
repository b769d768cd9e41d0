// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import "io"

// EncoderOptions overrides the ratio-flush heuristic's hard-coded
// thresholds. The zero value selects the reference thresholds (dictionary
// size > 4000, compression ratio > 200%).
type EncoderOptions struct {
	// FlushSizeThreshold is the dictionary entry count above which a flush
	// is considered. 0 selects the default (4000).
	FlushSizeThreshold int
	// FlushRatioThreshold is the compression ratio percentage above which
	// a flush is triggered. 0 selects the default (200).
	FlushRatioThreshold int
}

func (o *EncoderOptions) params() flushParams {
	if o == nil {
		return defaultFlushParams
	}

	p := defaultFlushParams
	if o.FlushSizeThreshold > 0 {
		p.sizeThreshold = o.FlushSizeThreshold
	}
	if o.FlushRatioThreshold > 0 {
		p.ratioThreshold = o.FlushRatioThreshold
	}
	return p
}

// Encoder implements the dictionary match loop and bit-packing transport
// described in the package doc comment. It is not safe for concurrent use.
//
// Encoder implements io.Writer: feeding input through one or many Write
// calls produces the same output, since match state (key, pending value,
// dictionary) persists across calls. Close must be called exactly once to
// flush pending state and append the terminal EOF frame.
type Encoder struct {
	pkr    *packer
	dict   *encoderDict
	params flushParams

	key      []byte
	value    Code
	hasValue bool

	bytesReadSinceFlush    int64
	bytesWrittenSinceFlush int64

	closed bool
}

// NewEncoder returns an Encoder that writes its packed code stream to w.
func NewEncoder(w io.Writer) *Encoder {
	return NewEncoderOptions(w, nil)
}

// NewEncoderOptions is like NewEncoder but allows overriding the flush
// heuristic's thresholds.
func NewEncoderOptions(w io.Writer, opts *EncoderOptions) *Encoder {
	return &Encoder{
		pkr:    newPacker(w),
		dict:   acquireEncoderDict(),
		params: opts.params(),
	}
}

// Write feeds p through the match loop one byte at a time. It never returns
// n < len(p) without a non-nil error.
func (e *Encoder) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := e.processByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// processByte runs one iteration of the match loop for a single input byte.
func (e *Encoder) processByte(b byte) error {
	e.bytesReadSinceFlush++

	e.key = append(e.key, b)
	if code, ok := e.dict.lookup(string(e.key)); ok {
		e.value = code
		e.hasValue = true
	} else {
		if e.hasValue {
			if err := e.emitCounted(e.value); err != nil {
				return err
			}
			e.hasValue = false
		}

		if err := e.emitCounted(Code(b)); err != nil {
			return err
		}

		e.dict.insert(string(e.key))
		e.key = e.key[:0]
	}

	return e.maybeFlushDictionary()
}

func (e *Encoder) emitCounted(c Code) error {
	n, err := e.pkr.emit(c)
	e.bytesWrittenSinceFlush += int64(n)
	return err
}

// maybeFlushDictionary evaluates the ratio-driven flush heuristic after
// every input byte: once the dictionary holds more than sizeThreshold
// entries and the truncated integer compression ratio since the last flush
// exceeds ratioThreshold percent, emit FLUSH_DICTIONARY, pad the packer, and
// reset the dictionary and counters.
func (e *Encoder) maybeFlushDictionary() error {
	r := e.bytesReadSinceFlush
	if r == 0 {
		return nil
	}

	size := e.dict.size()
	w := e.bytesWrittenSinceFlush
	ratio := (w * 100) / r

	if size <= e.params.sizeThreshold || ratio <= int64(e.params.ratioThreshold) {
		return nil
	}

	if err := e.emitCounted(FlushDictionary); err != nil {
		return err
	}
	if _, err := e.pkr.flush(); err != nil {
		return err
	}

	e.dict.reset()
	e.bytesReadSinceFlush = 0
	e.bytesWrittenSinceFlush = 0
	return nil
}

// finish flushes any pending matched value, pads the packer, emits the
// terminator code twice, and pads the packer again. This is the shared tail
// of Close and CloseStream.
func (e *Encoder) finish(terminator Code) error {
	if e.hasValue {
		if err := e.emitCounted(e.value); err != nil {
			return err
		}
		e.hasValue = false
	}

	if _, err := e.pkr.flush(); err != nil {
		return err
	}
	if err := e.emitCounted(terminator); err != nil {
		return err
	}
	if err := e.emitCounted(terminator); err != nil {
		return err
	}
	_, err := e.pkr.flush()
	return err
}

// Close finalizes the stream with an EOF frame: a caller that invoked
// Compress indirectly through this Encoder has now written a complete,
// self-delimiting payload. Close must be called exactly once.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	err := e.finish(EOF)
	releaseEncoderDict(e.dict)
	e.dict = nil
	return err
}

// CloseStream finalizes the stream with an EOS frame instead of EOF, for
// callers marking the end of a whole multi-payload stream rather than one
// logical payload.
func (e *Encoder) CloseStream() error {
	if e.closed {
		return nil
	}
	e.closed = true

	err := e.finish(EOS)
	releaseEncoderDict(e.dict)
	e.dict = nil
	return err
}
