// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

// PackCodes packs two 12-bit codes into a 3-byte group. Let a0=a&0xFF,
// a1=(a>>8)&0x0F, b0=b&0xFF, b1=(b>>8)&0x0F: the group is
// [a0, (a1<<4)|(b0>>4), ((b0&0x0F)<<4)|b1].
func PackCodes(a, b Code) [3]byte {
	a0 := byte(a & 0xFF)
	a1 := byte((a >> 8) & 0x0F)
	b0 := byte(b & 0xFF)
	b1 := byte((b >> 8) & 0x0F)

	return [3]byte{
		a0,
		(a1 << 4) | (b0 >> 4),
		((b0 & 0x0F) << 4) | b1,
	}
}

// UnpackCodes reconstructs the two codes packed into group by PackCodes.
func UnpackCodes(group [3]byte) (a, b Code) {
	x, y, z := group[0], group[1], group[2]

	a = Code(x) | Code(y>>4)<<8

	b0 := ((y & 0x0F) << 4) | (z >> 4)
	b1 := z & 0x0F
	b = Code(b0) | Code(b1)<<8

	return a, b
}
