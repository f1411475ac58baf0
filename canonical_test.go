// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignCanonicalCodesWorkedExample(t *testing.T) {
	var codeLen [numSymbols]uint8
	codeLen['X'] = 1
	codeLen['Y'] = 2
	codeLen['Z'] = 3
	codeLen['W'] = 3

	codeBits := assignCanonicalCodes(&codeLen)

	require.EqualValues(t, 0b1, codeBits['X'])
	require.EqualValues(t, 0b01, codeBits['Y'])
	require.EqualValues(t, 0b001, codeBits['W'])
	require.EqualValues(t, 0b000, codeBits['Z'])
}

func TestAssignCanonicalCodesPrefixFree(t *testing.T) {
	var codeLen [numSymbols]uint8
	lens := []uint8{2, 2, 4, 4, 4, 4, 5, 5, 5, 5, 5, 5}
	for i, l := range lens {
		codeLen[i] = l
	}
	codeBits := assignCanonicalCodes(&codeLen)

	type entry struct {
		sym    int
		length uint8
		bits   uint16
	}
	var entries []entry
	for s := 0; s < numSymbols; s++ {
		if codeLen[s] > 0 {
			entries = append(entries, entry{s, codeLen[s], codeBits[s]})
		}
	}
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			a, b := entries[i], entries[j]
			if a.length >= b.length {
				continue
			}
			// a's code, read as a prefix of b's length-a.length leading
			// bits, must not equal a's own code.
			shift := b.length - a.length
			prefix := b.bits >> shift
			require.NotEqual(t, a.bits, prefix, "code for symbol %d is a prefix of code for symbol %d", a.sym, b.sym)
		}
	}
}

func TestAssignCanonicalCodesEmpty(t *testing.T) {
	var codeLen [numSymbols]uint8
	codeBits := assignCanonicalCodes(&codeLen)
	for _, b := range codeBits {
		require.EqualValues(t, 0, b)
	}
}
