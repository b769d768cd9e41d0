// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import "sync"

// encoderDictPool and decoderDictPool let back-to-back Compress/Decompress
// calls (e.g. one per archive member) reuse dictionary storage instead of
// reallocating the 256-entry table on every call.
var (
	encoderDictPool = sync.Pool{
		New: func() any { return &encoderDict{} },
	}
	decoderDictPool = sync.Pool{
		New: func() any { return &decoderDict{} },
	}
)

func acquireEncoderDict() *encoderDict {
	d := encoderDictPool.Get().(*encoderDict)
	d.reset()
	return d
}

func releaseEncoderDict(d *encoderDict) {
	if d == nil {
		return
	}
	encoderDictPool.Put(d)
}

func acquireDecoderDict() *decoderDict {
	d := decoderDictPool.Get().(*decoderDict)
	d.reset()
	return d
}

func releaseDecoderDict(d *decoderDict) {
	if d == nil {
		return
	}
	decoderDictPool.Put(d)
}
