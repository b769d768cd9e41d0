// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

import "io"

// packerState tags the encoder's bit-packing state machine.
type packerState int

const (
	packerEmpty packerState = iota
	packerHalf
)

// packer buffers 12-bit codes in pairs and writes each pair as a 3-byte
// group. It holds at most one pending code at a time.
type packer struct {
	w       io.Writer
	state   packerState
	pending Code
}

func newPacker(w io.Writer) *packer {
	return &packer{w: w}
}

// emit pushes one code into the packer. It writes a 3-byte group (and
// returns 3) when this code completes a pending pair; otherwise it buffers
// the code and returns 0.
func (p *packer) emit(c Code) (int, error) {
	if p.state == packerEmpty {
		p.pending = c
		p.state = packerHalf
		return 0, nil
	}

	group := PackCodes(p.pending, c)
	p.state = packerEmpty
	if _, err := p.w.Write(group[:]); err != nil {
		return 0, err
	}

	return len(group), nil
}

// flush pads a pending half-group with NOOP and writes it. It is a no-op
// when no code is pending.
func (p *packer) flush() (int, error) {
	if p.state != packerHalf {
		return 0, nil
	}

	return p.emit(NOOP)
}
