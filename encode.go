// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

// Encode emits a bit stream for data using the codec's canonical code,
// falling back to a raw copy if the Huffman encoding would expand the
// input beyond 8*len(data) bits. It requires the codec to be
// CodedBuilt or CodedLoaded (or the DNA singleton, dispatched
// separately). The returned bit count is exact; the returned byte
// slice is padded with zero bits past that count.
func (c *Codec) Encode(data []byte) ([]byte, int, error) {
	if c == dnaCodec {
		return encodeDNA(data)
	}
	if c.state != CodedBuilt && c.state != CodedLoaded {
		return nil, 0, newErr(StateViolation, "Encode", "codec is %s, not CodedBuilt or CodedLoaded", c.state)
	}

	limit := 8 * len(data)
	w := newBitWriter(c.isBig)
	for _, x := range data {
		if c.codeLen[x] > 0 {
			w.putBits(uint32(c.codeBits[x]), int(c.codeLen[x]))
		} else if c.escCode != -1 {
			w.putBits(uint32(c.codeBits[c.escCode]), int(c.codeLen[c.escCode]))
			w.putBits(uint32(x), 8)
		} else {
			return nil, 0, newErr(UnknownSymbol, "Encode", "byte %d has no code and no escape", x)
		}
		if w.tbits > limit {
			return rawFallback(data), 8 * (len(data) + 1), nil
		}
	}
	out, nbits := w.finish()
	return out, nbits, nil
}

// rawFallback builds the raw-fallback wire form: a single 0xFF byte
// followed by the input verbatim. The sentinel is unambiguous because
// a Huffman-produced stream's first byte is never 0xFF: the endian
// sentinel keeps its top two bits at 10 on a big-endian codec and its
// low two bits at 00 on a little-endian one.
func rawFallback(data []byte) []byte {
	out := make([]byte, 1+len(data))
	out[0] = 0xFF
	copy(out[1:], data)
	return out
}
