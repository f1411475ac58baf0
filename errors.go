// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huffman

import "fmt"

// Kind classifies the ways a Codec operation can fail, per the error
// taxonomy in the codec's design: a request made against the wrong
// lifecycle state, a byte with no code and no escape, a failed
// allocation, or an inconsistent serialized blob.
type Kind int

const (
	// StateViolation means the operation is incompatible with the
	// codec's current lifecycle state (e.g. Add after Build, Build on
	// an empty histogram, Encode before Build).
	StateViolation Kind = iota + 1
	// UnknownSymbol means Encode saw a byte with no code and no escape.
	UnknownSymbol
	// AllocationFailure means the codec could not obtain memory, or the
	// caller supplied an undersized buffer where one was required.
	AllocationFailure
	// CorruptBlob means Deserialize saw a truncated input or a code
	// length exceeding maxCodeLen, or Decode was given a stream that is
	// shorter than its bit count or does not match the code table.
	CorruptBlob
)

func (k Kind) String() string {
	switch k {
	case StateViolation:
		return "StateViolation"
	case UnknownSymbol:
		return "UnknownSymbol"
	case AllocationFailure:
		return "AllocationFailure"
	case CorruptBlob:
		return "CorruptBlob"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CodecError is the error type returned by every Codec operation that can
// fail. Callers that care which kind of failure occurred should use
// errors.As to recover one and branch on its Kind.
type CodecError struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("huffman: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

func newErr(kind Kind, op, format string, args ...any) *CodecError {
	return &CodecError{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
