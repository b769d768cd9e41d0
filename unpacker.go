// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

// unpackerState tags the decoder's bit-unpacking state machine.
type unpackerState int

const (
	unpackerIdle unpackerState = iota
	unpackerHaveX
	unpackerHaveXY
)

// unpacker consumes bytes one at a time and reassembles 3-byte groups into
// code pairs.
type unpacker struct {
	state unpackerState
	x, y  byte
}

// feed processes one input byte. ready is true exactly when this byte
// completed a group; a and b are only meaningful when ready is true.
func (u *unpacker) feed(b byte) (a, bCode Code, ready bool) {
	switch u.state {
	case unpackerIdle:
		u.x = b
		u.state = unpackerHaveX
	case unpackerHaveX:
		u.y = b
		u.state = unpackerHaveXY
	case unpackerHaveXY:
		a, bCode = UnpackCodes([3]byte{u.x, u.y, b})
		u.state = unpackerIdle
		ready = true
	}

	return a, bCode, ready
}

// pending reports whether a partial group is buffered (1 or 2 bytes seen).
func (u *unpacker) pending() bool {
	return u.state != unpackerIdle
}
