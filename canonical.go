// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import "sort"

// lenSym pairs a symbol with its code length, for sorting by (length,
// symbol) ahead of canonical code assignment.
type lenSym struct {
	symbol uint16
	length uint8
}

// assignCanonicalCodes assigns canonical prefix codes from a sorted
// length vector: the first (shortest, lowest-symbol) code is an
// all-ones word of its own length, and each subsequent code is derived
// from the previous one by undoing trailing padding, decrementing, and
// re-padding up to the next symbol's length. This is the
// subtract-and-repad variant of canonical assignment rather than the
// RFC 1951 count-array approach, chosen because the lookup table and
// bit-stream layout depend on its exact all-ones-first code order.
func assignCanonicalCodes(codeLen *[numSymbols]uint8) (codeBits [numSymbols]uint16) {
	var syms []lenSym
	for s := 0; s < numSymbols; s++ {
		if codeLen[s] > 0 {
			syms = append(syms, lenSym{symbol: uint16(s), length: codeLen[s]})
		}
	}
	if len(syms) == 0 {
		return codeBits
	}
	sort.SliceStable(syms, func(i, j int) bool {
		if syms[i].length != syms[j].length {
			return syms[i].length < syms[j].length
		}
		return syms[i].symbol < syms[j].symbol
	})

	runLen := uint32(syms[0].length)
	runCode := (uint32(1) << runLen) - 1
	codeBits[syms[0].symbol] = uint16(runCode)

	for k := 1; k < len(syms); k++ {
		for runLen > 0 && runCode&1 == 0 {
			runCode >>= 1
			runLen--
		}
		runCode--
		nextLen := uint32(syms[k].length)
		for runLen < nextLen {
			runCode = runCode<<1 | 1
			runLen++
		}
		codeBits[syms[k].symbol] = uint16(runCode)
	}
	return codeBits
}
