// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

// buildLookupTable builds a flat 16-bit prefix -> symbol table: every
// 16-bit value whose high codeLen[s] bits equal codeBits[s] maps to s,
// so decoding is a single indexed lookup regardless of code length.
func buildLookupTable(codeLen *[numSymbols]uint8, codeBits *[numSymbols]uint16) []byte {
	lookup := make([]byte, 1<<16)
	for s := 0; s < numSymbols; s++ {
		length := codeLen[s]
		if length == 0 {
			continue
		}
		base := uint32(codeBits[s]) << (16 - length)
		span := uint32(1) << (16 - length)
		for j := uint32(0); j < span; j++ {
			lookup[base+j] = byte(s)
		}
	}
	return lookup
}
