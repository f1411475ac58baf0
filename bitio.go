// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

// The shape of this file -- an accumulator plus a fill counter, flushed
// in whole words with the final word padded and byte-aligned -- follows
// compress/flate's bit-writer style, widened from a 32-bit,
// single-endian accumulator writing straight to an io.Writer to a
// 64-bit word that is endian-aware and reserves its first two bits for
// the endian sentinel.

import "encoding/binary"

const wordBits = 64

// sentinelBits is the width of the leading endian marker every encoded
// stream carries.
const sentinelBits = 2

// bitWriter packs fixed-width codes into 64-bit words. A big-endian
// codec fills each word from its most significant bit downward and
// flushes with binary.BigEndian, so the earliest-written bits land in
// the first output byte's high bits -- the sentinel's "top two bits"
// layout in that case. A little-endian codec fills from the least
// significant bit upward and flushes with binary.LittleEndian, landing
// the earliest bits in the first output byte's low bits. Mirroring the
// fill direction to the flush convention keeps a partial final word's
// padding, and the end it is later stripped from, consistent with each
// convention.
type bitWriter struct {
	isBig  bool
	out    []byte
	acc    uint64
	filled int // meaningful bits currently held in acc
	tbits  int // total bits appended so far, including the sentinel
}

// newBitWriter returns a bitWriter that has already appended the 2-bit
// endian sentinel: 0b10 for big-endian, 0b00 for little-endian.
func newBitWriter(isBig bool) *bitWriter {
	w := &bitWriter{isBig: isBig}
	var sentinel uint32
	if isBig {
		sentinel = 0b10
	}
	w.putBits(sentinel, sentinelBits)
	return w
}

// putBits appends the low n bits of c, most-significant of those n
// bits first (n <= 16, comfortably above the maximum code length).
func (w *bitWriter) putBits(c uint32, n int) {
	w.tbits += n
	c &= mask32(n)
	for n > 0 {
		avail := wordBits - w.filled
		take := n
		if take > avail {
			take = avail
		}
		// Isolate the top `take` bits of the remaining n-bit field to
		// their own low end.
		chunk := (c >> uint(n-take)) & mask32(take)
		if w.isBig {
			w.acc |= uint64(chunk) << uint(avail-take)
		} else {
			// Least significant end first: the chunk's leading bit goes
			// to the lowest unfilled position.
			for b := 0; b < take; b++ {
				w.acc |= uint64((chunk>>uint(take-1-b))&1) << uint(w.filled+b)
			}
		}
		w.filled += take
		n -= take
		if w.filled == wordBits {
			w.flushWord()
		}
	}
}

func mask32(n int) uint32 {
	if n <= 0 {
		return 0
	}
	if n >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << uint(n)) - 1
}

func (w *bitWriter) flushWord() {
	var buf [8]byte
	if w.isBig {
		binary.BigEndian.PutUint64(buf[:], w.acc)
	} else {
		binary.LittleEndian.PutUint64(buf[:], w.acc)
	}
	w.out = append(w.out, buf[:]...)
	w.acc = 0
	w.filled = 0
}

// finish flushes any partial final word, byte-aligned, and returns the
// accumulated output together with its exact bit count.
func (w *bitWriter) finish() ([]byte, int) {
	if w.filled > 0 {
		nbytes := (w.filled + 7) / 8
		var buf [8]byte
		if w.isBig {
			binary.BigEndian.PutUint64(buf[:], w.acc)
		} else {
			binary.LittleEndian.PutUint64(buf[:], w.acc)
		}
		w.out = append(w.out, buf[:nbytes]...)
		w.filled = 0
	}
	return w.out, w.tbits
}

// bitReader extracts fixed-width fields from a byte slice written by a
// bitWriter with the same isBig, mirroring its fill direction bit for
// bit.
type bitReader struct {
	isBig  bool
	in     []byte
	inBits int
	pos    int // logical bits consumed so far
}

func newBitReader(isBig bool, in []byte, inBits int) *bitReader {
	return &bitReader{isBig: isBig, in: in, inBits: inBits}
}

func (r *bitReader) remaining() int { return r.inBits - r.pos }

func (r *bitReader) consume(n int) { r.pos += n }

// peek16 returns the next 16 logical bits, most-significant first and
// zero-padded past the end of the valid stream, for the decoder table
// lookup.
func (r *bitReader) peek16() uint16 {
	return uint16(r.peekBits(16))
}

// peekBits returns the next n bits (n <= 16), most-significant first,
// zero-padded past the end of the valid stream.
func (r *bitReader) peekBits(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v <<= 1
		if r.pos+i < r.inBits {
			v |= uint32(r.bitAt(r.pos + i))
		}
	}
	return v
}

// bitAt returns the logical bit at position i, as written by the
// matching bitWriter's fill-and-flush convention.
func (r *bitReader) bitAt(i int) byte {
	wordIdx := i / wordBits
	bitInWord := i % wordBits
	start := wordIdx * 8
	var buf [8]byte
	end := start + 8
	if end > len(r.in) {
		end = len(r.in)
	}
	if start < len(r.in) {
		copy(buf[:], r.in[start:end])
	}
	if r.isBig {
		word := binary.BigEndian.Uint64(buf[:])
		return byte((word >> uint(63-bitInWord)) & 1)
	}
	word := binary.LittleEndian.Uint64(buf[:])
	return byte((word >> uint(bitInWord)) & 1)
}
