// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

// flushParams holds the thresholds that drive the encoder's ratio-based
// dictionary flush heuristic. All fields are unexported; EncoderOptions
// exposes overrides for cmd/lzw12c's diagnostics flags.
type flushParams struct {
	sizeThreshold  int // dictionary entries before a flush is considered
	ratioThreshold int // compression ratio percentage that triggers a flush
}

// defaultFlushParams reproduces the reference heuristic's hard-coded
// constants: size > 4000 and ratio > 200%.
var defaultFlushParams = flushParams{
	sizeThreshold:  DefaultFlushSizeThreshold,
	ratioThreshold: DefaultFlushRatioThreshold,
}
