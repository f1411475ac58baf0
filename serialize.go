// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import "encoding/binary"

// MaxSerialSize is the largest number of bytes Serialize can produce:
// 1 endian byte + 4 escape-code bytes + 256 length bytes + up to
// 256*2 code-word bytes.
const MaxSerialSize = 1 + 4 + numSymbols*(1+2)

// Serialize writes the codec's built code -- but not its histogram --
// to a portable blob that Deserialize can reconstruct a lookup table
// from. It returns an empty slice for the DNA singleton, which carries
// no per-symbol state to serialize and is recognized by identity
// instead.
func (c *Codec) Serialize() ([]byte, error) {
	if c == dnaCodec {
		return nil, nil
	}
	if c.state != CodedBuilt && c.state != CodedLoaded {
		return nil, newErr(StateViolation, "Serialize", "codec is %s, not CodedBuilt or CodedLoaded", c.state)
	}

	order := byteOrder(c.isBig)
	buf := make([]byte, 0, MaxSerialSize)
	if c.isBig {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	var escBuf [4]byte
	order.PutUint32(escBuf[:], uint32(c.escCode))
	buf = append(buf, escBuf[:]...)
	for s := 0; s < numSymbols; s++ {
		buf = append(buf, c.codeLen[s])
		if c.codeLen[s] > 0 {
			var codeBuf [2]byte
			order.PutUint16(codeBuf[:], c.codeBits[s])
			buf = append(buf, codeBuf[:]...)
		}
	}
	return buf, nil
}

// Deserialize reconstructs a CodedLoaded Codec from a blob written by
// Serialize. The codec's lookup table is rebuilt locally rather than
// transmitted; its histogram is absent, matching the CodedLoaded state.
func Deserialize(blob []byte) (*Codec, error) {
	if len(blob) < 1+4 {
		return nil, newErr(CorruptBlob, "Deserialize", "blob shorter than the fixed header")
	}
	isBig := blob[0] != 0
	order := byteOrder(isBig)
	c := &Codec{isBig: isBig, state: CodedLoaded, escCode: int32(order.Uint32(blob[1:5]))}

	off := 5
	for s := 0; s < numSymbols; s++ {
		if off >= len(blob) {
			return nil, newErr(CorruptBlob, "Deserialize", "blob truncated at symbol %d", s)
		}
		length := blob[off]
		off++
		if length > maxCodeLen {
			return nil, newErr(CorruptBlob, "Deserialize", "symbol %d has length %d exceeding the %d-bit bound", s, length, maxCodeLen)
		}
		c.codeLen[s] = length
		if length > 0 {
			if off+2 > len(blob) {
				return nil, newErr(CorruptBlob, "Deserialize", "blob truncated reading code word for symbol %d", s)
			}
			c.codeBits[s] = order.Uint16(blob[off : off+2])
			off += 2
		}
	}
	c.lookup = buildLookupTable(&c.codeLen, &c.codeBits)
	return c, nil
}

func byteOrder(isBig bool) binary.ByteOrder {
	if isBig {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
