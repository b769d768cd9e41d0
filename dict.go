// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo

package lzw12

// encoderDict maps phrases to their dictionary code. Insertion order defines
// the code value, so the map is paired with the next code to assign.
type encoderDict struct {
	table map[string]Code
	next  Code
}

func (d *encoderDict) reset() {
	if d.table == nil {
		d.table = make(map[string]Code, 256)
	} else {
		clear(d.table)
	}

	for n := range 256 {
		d.table[string([]byte{byte(n)})] = Code(n)
	}
	d.next = 256
}

func (d *encoderDict) lookup(phrase string) (Code, bool) {
	c, ok := d.table[phrase]
	return c, ok
}

// insert admits phrase as the next dictionary entry, mirroring the
// reference admission test exactly: an entry is admitted as long as the
// dictionary held at most MaxDictSize entries beforehand.
func (d *encoderDict) insert(phrase string) bool {
	if Code(len(d.table)) > MaxDictSize {
		return false
	}

	d.table[phrase] = d.next
	d.next++
	return true
}

func (d *encoderDict) size() int {
	return len(d.table)
}

// decoderDict is the decoder-side mirror of encoderDict: an ordered list of
// phrases indexed by code.
type decoderDict struct {
	phrases []string
}

func (d *decoderDict) reset() {
	if cap(d.phrases) < 256 {
		d.phrases = make([]string, 256, MaxDictSize+1)
	} else {
		d.phrases = d.phrases[:256]
	}

	for n := range 256 {
		d.phrases[n] = string([]byte{byte(n)})
	}
}

func (d *decoderDict) lookup(c Code) (string, bool) {
	if int(c) >= len(d.phrases) {
		return "", false
	}

	return d.phrases[c], true
}

// insert mirrors encoderDict.insert's admission test so a malformed stream
// can never grow the decoder's dictionary past the encoder's own bound.
func (d *decoderDict) insert(phrase string) bool {
	if Code(len(d.phrases)) > MaxDictSize {
		return false
	}

	d.phrases = append(d.phrases, phrase)
	return true
}
