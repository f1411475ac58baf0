// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"io"
)

// maxCodeLen is the compile-time bound L on Huffman code length.
const maxCodeLen = 12

const numSymbols = 256

// State is a Codec's position in its lifecycle: Empty and Filled accept
// histogram data, CodedBuilt and CodedLoaded accept Encode/Decode.
type State int

const (
	// Empty is the state of a freshly created Codec: no counts, no code.
	Empty State = iota
	// Filled has accumulated histogram counts but no code yet.
	Filled
	// CodedBuilt has a code built from its own (retained) histogram.
	CodedBuilt
	// CodedLoaded has a code loaded from a serialized blob; its
	// histogram is absent.
	CodedLoaded
)

func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Filled:
		return "Filled"
	case CodedBuilt:
		return "CodedBuilt"
	case CodedLoaded:
		return "CodedLoaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Codec is a length-limited Huffman code together with the tables needed
// to encode and decode a bit stream built from it. The zero value is not
// usable; construct one with [New].
type Codec struct {
	isBig    bool
	state    State
	hist     [numSymbols]uint64
	codeLen  [numSymbols]uint8
	codeBits [numSymbols]uint16
	lookup   []byte // length 1<<16 once built; prefix -> symbol
	escCode  int32  // -1 means no escape
}

// New creates an empty Codec for the given machine endianness. isBig
// should be true for a codec owned by a big-endian machine; it governs
// the wire layout Encode and Serialize produce.
func New(isBig bool) *Codec {
	return &Codec{isBig: isBig, state: Empty, escCode: -1}
}

// Destroy releases a Codec. It is a no-op: Go's garbage collector owns
// the codec's single allocation, and destroying the DNA singleton must
// never free shared state, so there is nothing for either case to do
// here beyond documenting the operation as part of the public surface.
func Destroy(*Codec) {}

// Add accumulates byte frequencies from data into the codec's
// histogram. It is legal to call Add any number of times while the
// codec is Empty or Filled; an empty slice is a legal no-op. Add
// returns a StateViolation error once the codec has been built or
// loaded, since the histogram is frozen at that point.
func (c *Codec) Add(data []byte) error {
	if c == dnaCodec {
		return newErr(StateViolation, "Add", "the DNA codec has no histogram")
	}
	if c.state != Empty && c.state != Filled {
		return newErr(StateViolation, "Add", "codec is %s, not Empty or Filled", c.state)
	}
	for _, b := range data {
		c.hist[b]++
	}
	if len(data) > 0 {
		c.state = Filled
	}
	return nil
}

// Build constructs a canonical, length-limited prefix code from the
// codec's accumulated histogram. When partial is true, a byte absent
// from the histogram is reserved as an escape code so that Encode can
// still emit symbols it never saw during training (see
// [Codec.Encode]). Build requires at least one positive count and
// transitions the codec to CodedBuilt.
func (c *Codec) Build(partial bool) error {
	if c == dnaCodec {
		return newErr(StateViolation, "Build", "the DNA codec is always built")
	}
	if c.state != Empty && c.state != Filled {
		return newErr(StateViolation, "Build", "codec is %s, not Empty or Filled", c.state)
	}
	codeLen, escCode, err := buildLengths(&c.hist, partial)
	if err != nil {
		return err
	}
	c.codeLen = codeLen
	c.escCode = escCode
	c.codeBits = assignCanonicalCodes(&c.codeLen)
	c.lookup = buildLookupTable(&c.codeLen, &c.codeBits)
	c.state = CodedBuilt
	return nil
}

// Print writes a diagnostic dump of the codec's lifecycle state, escape
// code, and per-symbol code lengths/bits to w, in the spirit of a
// debugging dump over a user-facing report.
func (c *Codec) Print(w io.Writer) (int64, error) {
	var written int64
	wr := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}
	if c == dnaCodec {
		if err := wr("Codec{DNA singleton}\n"); err != nil {
			return written, err
		}
		return written, nil
	}
	if err := wr("Codec{\n\tisBig: %v\n\tstate: %s\n\tescCode: %d\n", c.isBig, c.state, c.escCode); err != nil {
		return written, err
	}
	for s := 0; s < numSymbols; s++ {
		if c.codeLen[s] == 0 {
			continue
		}
		if err := wr("\t%3d: len=%-2d bits=%0*b\n", s, c.codeLen[s], c.codeLen[s], c.codeBits[s]); err != nil {
			return written, err
		}
	}
	if err := wr("}\n"); err != nil {
		return written, err
	}
	return written, nil
}
