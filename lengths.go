// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import "sort"

// weightedSymbol pairs a byte with its training weight; it is the unit
// the package-merge builder sorts and merges.
type weightedSymbol struct {
	symbol uint16
	weight uint64
}

// buildLengths runs the Larmore-Hirschberg package-merge ("coin
// collector") construction over hist, producing a code length for every
// symbol with a positive count, bounded by maxCodeLen. When partial is
// true, the lowest-indexed zero-count byte is reserved as an escape
// symbol with weight 0 and included in the length computation; if no
// byte has a zero count, escCode is -1 and Encode will reject bytes
// absent from the training histogram.
func buildLengths(hist *[numSymbols]uint64, partial bool) (codeLen [numSymbols]uint8, escCode int32, err error) {
	escCode = -1

	var included []weightedSymbol
	for s := 0; s < numSymbols; s++ {
		if hist[s] > 0 {
			included = append(included, weightedSymbol{symbol: uint16(s), weight: hist[s]})
		}
	}
	if len(included) == 0 {
		return codeLen, -1, newErr(StateViolation, "Build", "histogram has no positive counts")
	}

	if partial {
		for s := 0; s < numSymbols; s++ {
			if hist[s] == 0 {
				escCode = int32(s)
				included = append(included, weightedSymbol{symbol: uint16(s), weight: 0})
				break
			}
		}
	}

	// Sort ascending by (weight, symbol). The escape entry's weight-0
	// naturally sorts it to the front; ties elsewhere break on symbol
	// index to keep the assignment deterministic.
	sort.SliceStable(included, func(i, j int) bool {
		if included[i].weight != included[j].weight {
			return included[i].weight < included[j].weight
		}
		return included[i].symbol < included[j].symbol
	})

	weights := make([]uint64, len(included))
	for i, ws := range included {
		weights[i] = ws.weight
	}
	lens := packageMergeLengths(weights, maxCodeLen)
	for i, ws := range included {
		codeLen[ws.symbol] = lens[i]
	}
	return codeLen, escCode, nil
}

// packageMergeLengths returns, for each position in the ascending-sorted
// weights, a code length in [1, limit] satisfying the Kraft inequality,
// via the Larmore-Hirschberg coin-collector row/back-trace procedure,
// capped to the standard 2n-2 boundary so the whole construction runs in
// O(limit*n).
func packageMergeLengths(weights []uint64, limit int) []uint8 {
	n := len(weights)
	lens := make([]uint8, n)
	if n == 1 {
		lens[0] = 1
		return lens
	}

	capLen := 2 * (n - 1)

	// choices[level] records, for each of the first capLen output
	// positions of that level's merged row, whether the entry was a
	// singleton (false) or a package -- the sum of two consecutive
	// entries from the row below (true).
	choices := make([][]bool, limit)
	row := weights // row L, the leaves, needs no choice bits
	for level := limit - 1; level >= 1; level-- {
		var choice []bool
		row, choice = mergeRow(weights, row, capLen)
		choices[level] = choice
	}

	// Back-trace: span starts at the full 2(n-1) entries of row 1 and,
	// for each level moving toward the leaves, shrinks to twice the
	// number of package choices seen -- those are exactly the entries
	// that still need expanding at the next level. Every singleton
	// choice encountered increments the length of the next unused
	// weight position in sorted order.
	span := capLen
	for level := 1; level <= limit-1; level++ {
		choice := choices[level]
		next := 0
		packages := 0
		for k := 0; k < span && k < len(choice); k++ {
			if !choice[k] {
				lens[next]++
				next++
			} else {
				packages++
			}
		}
		span = 2 * packages
	}
	// What remains maps directly onto the base leaves (row L), which
	// carry no further choice: each gets one final increment.
	for i := 0; i < span && i < n; i++ {
		lens[i]++
	}
	return lens
}

// mergeRow merges the full sorted weights list with consecutive-pair
// sums drawn from prior (the row one level closer to the leaves),
// taking the smaller candidate at each output position, up to capLen
// entries. This is the per-row merge step of the coin-collector
// construction.
func mergeRow(weights, prior []uint64, capLen int) ([]uint64, []bool) {
	n := len(weights)
	pairCount := len(prior) / 2
	row := make([]uint64, 0, capLen)
	choice := make([]bool, 0, capLen)
	i, j := 0, 0
	for len(row) < capLen && (i < n || j < pairCount) {
		useSingleton := i < n && (j >= pairCount || weights[i] <= prior[2*j]+prior[2*j+1])
		if useSingleton {
			row = append(row, weights[i])
			choice = append(choice, false)
			i++
		} else {
			row = append(row, prior[2*j]+prior[2*j+1])
			choice = append(choice, true)
			j++
		}
	}
	return row, choice
}
