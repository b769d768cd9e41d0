// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

// Code is a 12-bit code identifying a dictionary phrase or a control event.
type Code uint16

// Reserved control codes and the dictionary capacity bound. Values 0-255 are
// literal codes (the phrase is the single byte equal to the code); 256 up to
// MaxDictSize are dynamic dictionary entries.
const (
	// MaxDictSize is the highest code the encoder's admission test permits
	// assigning to a dynamic phrase; the dictionary is full once it holds
	// MaxDictSize+1 entries.
	MaxDictSize Code = 4090
	// NOOP pads the second slot of a 3-byte group when only one code is
	// pending at flush time.
	NOOP Code = 4091
	// reservedUnassigned (4092) is never produced or consumed.
	reservedUnassigned Code = 4092
	// FlushDictionary tells both sides to reset their dictionary to the
	// 256-literal initial state.
	FlushDictionary Code = 4093
	// EOF marks the end of one logical payload.
	EOF Code = 4094
	// EOS marks the end of the whole stream.
	EOS Code = 4095
)

// isLiteral reports whether c names a single-byte phrase.
func (c Code) isLiteral() bool {
	return c < 256
}

// DefaultFlushSizeThreshold and DefaultFlushRatioThreshold are the
// hard-coded ratio-flush constants: once the dictionary exceeds this many
// entries and the compression ratio since the last flush exceeds this many
// percent, the encoder resets the dictionary. Exported so callers (notably
// cmd/lzw12c) can present them as flag defaults without duplicating the
// numbers.
const (
	DefaultFlushSizeThreshold  = 4000
	DefaultFlushRatioThreshold = 200
)
