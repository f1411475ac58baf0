// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package huffman implements a length-limited Huffman codec specialized
// for short byte streams, and a fixed 2-bit DNA codec selected by
// sentinel. It serves a bioinformatics file format in which per-record
// fields (quality strings, identifiers, CIGAR-like strings, and
// nucleotide sequences) are repeatedly encoded with pre-built or
// inline-built codecs.
//
// A Codec builds a prefix code whose maximum code length is bounded by
// maxCodeLen, encodes arbitrary byte streams with a guaranteed
// worst-case expansion bound (falling back to raw bytes when
// compression would inflate), and serializes to an endian-portable
// blob. [DNACodec] returns a process-wide singleton that packs the four
// DNA bases into 2 bits each without requiring a built codec.
package huffman
