// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import "errors"

// Sentinel errors returned by the core codec.
var (
	// ErrCorruptStream is returned when a decoded code names a dictionary
	// entry that does not exist. A full decoder dictionary is not an error:
	// like the encoder's, it stops admitting entries at MaxDictSize+1.
	ErrCorruptStream = errors.New("lzw12: corrupt code stream")

	// ErrTruncatedStream is returned when the input ends mid-group or
	// without a terminating EOF/EOS code. It is a soft condition: any
	// fully-formed groups already seen have been decoded and written, and
	// the returned byte counts reflect that partial progress.
	ErrTruncatedStream = errors.New("lzw12: truncated stream")
)
