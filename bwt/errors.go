// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements a lossless text compressor built from a
// Burrows-Wheeler Transform, a run-length transform, canonical Huffman
// coding, and Elias gamma integer coding, packed into an MSB-first
// bitstream.
package bwt

import "runtime"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bwt: " + string(e) }

// The error taxonomy from the format specification. All of them abort the
// whole operation; none of them is recoverable mid-stream.
var (
	// ErrIllegalCharacter is returned when the encoder is given a byte
	// outside the supported alphabet (37..=126).
	ErrIllegalCharacter error = Error("illegal character outside 37..=126")

	// ErrIllegalSentinel is returned when the encoder's input contains the
	// reserved sentinel character '$'.
	ErrIllegalSentinel error = Error("input contains reserved sentinel '$'")

	// ErrMalformedGamma is returned when an Elias gamma component runs out
	// of bits before terminating.
	ErrMalformedGamma error = Error("truncated elias gamma code")

	// ErrMalformedTable is returned when the decoder finds fewer symbols in
	// the Huffman table than the header announced.
	ErrMalformedTable error = Error("truncated huffman code table")

	// ErrTruncatedBody is returned when the run-length body ends before or
	// after the BWT length is reached.
	ErrTruncatedBody error = Error("run-length body length mismatch")

	// ErrCodewordNotFound is returned when a Huffman trie walk dead-ends on
	// a bit with no corresponding child.
	ErrCodewordNotFound error = Error("huffman walk found no matching codeword")

	// ErrOutOfRange is returned when a BitStream index or slice falls
	// outside the buffer's length.
	ErrOutOfRange error = Error("bitstream index out of range")
)

// Recover converts a panic raised while producing the result behind err
// into an ordinary error assignment instead of a crash, the way
// dsnet-compress/bzip2/common.go's errRecover guards Reader/Writer calls.
// Exported so it can also be deferred at the CLI entry points in cmd/*,
// which sit outside this package.
//
// A runtime.Error (index out of range, nil dereference, ...) still
// propagates as a genuine crash: only a deliberate Error/error panic — an
// internal invariant this package judged unreachable but guards against
// anyway — is captured. This is the CLI/orchestrator boundary the
// package's internal algorithms never need for themselves, since they
// report expected failures with plain error returns.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
