// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

// Package corpus holds the golden byte vectors of the pinned scenarios,
// kept apart from the core codec's tests that consume them.
package corpus

import "strings"

// TenSpaces is the plaintext for scenario S1/S2: ten space characters.
var TenSpaces = []byte(strings.Repeat(" ", 10))

// TenSpacesWire is the expected wire form of TenSpaces.
var TenSpacesWire = []byte{32, 2, 0, 0, 18, 0, 1, 18, 0, 32, 15, 191, 254, 255, 239}

// LoremIpsum is the plaintext for scenario S3/S4.
var LoremIpsum = []byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n        Vestibulum ipsum nulla, pretium at leo sed, condimentum\n        consectetur nisi.")

// LoremIpsumWireLen is the expected wire length of LoremIpsum's compressed
// form (scenario S3).
const LoremIpsumWireLen = 192

// LoremIpsumWirePrefix and LoremIpsumWireSuffix pin the beginning and end of
// scenario S3's wire form without inlining the full 192-byte vector at every
// call site.
var (
	LoremIpsumWirePrefix = []byte{76, 6, 240, 114, 6, 80, 109, 2, 0, 105, 7, 0}
	LoremIpsumWireSuffix = []byte{115, 6, 144, 46, 15, 191, 254, 255, 239}
)

// EOFOnlyWire is scenario S5: a stream consisting solely of the EOF frame
// (the canonical PackCodes(EOF, EOF) packing).
var EOFOnlyWire = []byte{254, 255, 239}
