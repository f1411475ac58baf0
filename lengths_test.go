// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLengthsKraftAndBound(t *testing.T) {
	var hist [numSymbols]uint64
	weights := []uint64{1, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024}
	for i, w := range weights {
		hist['a'+byte(i)] = w
	}

	codeLen, escCode, err := buildLengths(&hist, true)
	require.NoError(t, err)
	require.EqualValues(t, 0, escCode, "partial build reserves the lowest-indexed zero-count byte")

	var kraft float64
	for s := 0; s < numSymbols; s++ {
		l := codeLen[s]
		if l == 0 {
			continue
		}
		require.LessOrEqual(t, int(l), maxCodeLen)
		require.Greater(t, int(l), 0)
		kraft += 1.0 / float64(uint64(1)<<l)
	}
	require.LessOrEqual(t, kraft, 1.0+1e-9, "Kraft sum must not exceed 1")
}

func TestBuildLengthsMonotonicity(t *testing.T) {
	var hist [numSymbols]uint64
	weights := map[byte]uint64{'a': 1, 'b': 1, 'c': 2, 'd': 4, 'e': 8, 'f': 16, 'g': 32, 'h': 64, 'i': 128, 'j': 256, 'k': 512, 'l': 1024}
	for s, w := range weights {
		hist[s] = w
	}

	codeLen, _, err := buildLengths(&hist, false)
	require.NoError(t, err)

	type sw struct {
		sym byte
		w   uint64
	}
	var syms []sw
	for s, w := range weights {
		syms = append(syms, sw{s, w})
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].w < syms[j].w })

	// A weakly-monotone builder never assigns a shorter code to a less
	// frequent symbol than to a strictly more frequent one.
	for i := 0; i < len(syms); i++ {
		for j := i + 1; j < len(syms); j++ {
			if syms[i].w < syms[j].w {
				require.GreaterOrEqual(t, codeLen[syms[i].sym], codeLen[syms[j].sym],
					"%c (w=%d) should not be shorter than %c (w=%d)", syms[i].sym, syms[i].w, syms[j].sym, syms[j].w)
			}
		}
	}
	require.EqualValues(t, 1, codeLen['l'], "the heaviest symbol gets the shortest code")
}

func TestBuildLengthsNoPositiveCounts(t *testing.T) {
	var hist [numSymbols]uint64
	_, _, err := buildLengths(&hist, false)
	require.Error(t, err)
	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, StateViolation, cerr.Kind)
}

func TestBuildLengthsNoEscapeWhenFull(t *testing.T) {
	var hist [numSymbols]uint64
	for s := 0; s < numSymbols; s++ {
		hist[s] = uint64(s + 1)
	}
	_, escCode, err := buildLengths(&hist, true)
	require.NoError(t, err)
	require.EqualValues(t, -1, escCode, "no zero-count byte exists, so escCode must be -1 even when partial")
}

func TestPackageMergeLengthsSingleton(t *testing.T) {
	lens := packageMergeLengths([]uint64{5}, maxCodeLen)
	require.Equal(t, []uint8{1}, lens)
}
