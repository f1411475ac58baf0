// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

// Decode reverses Encode: it consumes exactly inBits bits from in and
// returns the original bytes. It requires the codec to be CodedBuilt
// or CodedLoaded. The DNA singleton's bit stream is not self-delimiting
// on its own, but inBits (as returned by Encode) determines the base
// count exactly, so the same signature serves both codecs.
func (c *Codec) Decode(in []byte, inBits int) ([]byte, error) {
	if c == dnaCodec {
		return decodeDNA(in, inBits/2)
	}
	if c.state != CodedBuilt && c.state != CodedLoaded {
		return nil, newErr(StateViolation, "Decode", "codec is %s, not CodedBuilt or CodedLoaded", c.state)
	}
	if inBits == 0 {
		return nil, nil
	}
	if len(in) > 0 && in[0] == 0xFF {
		n := inBits/8 - 1
		if n < 0 || 1+n > len(in) {
			return nil, newErr(CorruptBlob, "Decode", "raw-fallback stream shorter than its declared bit count")
		}
		out := make([]byte, n)
		copy(out, in[1:1+n])
		return out, nil
	}

	r := newBitReader(c.isBig, in, inBits)
	r.consume(sentinelBits)

	var out []byte
	for r.remaining() > 0 {
		p := r.peek16()
		s := c.lookup[p]
		length := c.codeLen[s]
		if length == 0 {
			return nil, newErr(CorruptBlob, "Decode", "prefix %016b matches no code", p)
		}
		r.consume(int(length))
		if int32(s) == c.escCode {
			if r.remaining() < 8 {
				return nil, newErr(CorruptBlob, "Decode", "escape code truncated before its literal byte")
			}
			lit := byte(r.peekBits(8))
			r.consume(8)
			out = append(out, lit)
		} else {
			out = append(out, s)
		}
	}
	return out, nil
}
