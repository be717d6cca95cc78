// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// The supported input alphabet is the printable ASCII range 37..=126,
// augmented with the sentinel '$' reserved by the transform. This narrows
// Ukkonen's child table to a fixed 91-wide dense index instead of the full
// byte range.
const (
	minASCII = 37
	maxASCII = 126

	// sentinel is the character appended to the input before building the
	// suffix tree. It is never valid input on its own.
	sentinel = '$'

	// alphabetSize is the number of distinct alphabet indices: one for the
	// sentinel (index 0) plus one per byte in [minASCII, maxASCII].
	alphabetSize = maxASCII - minASCII + 2

	// sentinelTableASCII is the literal ASCII value used to serialize the
	// sentinel in the on-disk code table (see Open Question #1 in
	// DESIGN.md): '$' itself is ASCII 36, one below minASCII, which is
	// exactly the value the reference implementation hard-codes.
	sentinelTableASCII = 36
)

// alphabetIndex maps a byte to its dense alphabet index: 0 for the
// sentinel, 1..=90 for minASCII..=maxASCII. It returns ErrIllegalSentinel if
// c is '$' is not accepted here (callers that need the sentinel index use
// sentinelIndex directly), and ErrIllegalCharacter if c falls outside the
// supported range.
func alphabetIndex(c byte) (int, error) {
	if c == sentinel {
		return 0, ErrIllegalSentinel
	}
	if c < minASCII || c > maxASCII {
		return 0, ErrIllegalCharacter
	}
	return int(c) - minASCII + 1, nil
}

// sentinelIndex is the dense alphabet index reserved for '$'.
const sentinelIndex = 0

// alphabetChar maps a dense alphabet index back to its byte. idx must be in
// [0, alphabetSize).
func alphabetChar(idx int) byte {
	if idx == sentinelIndex {
		return sentinel
	}
	return byte(idx + minASCII - 1)
}

// tableASCII returns the 7-bit ASCII value used to serialize the alphabet
// index idx in the on-disk Huffman code table (§6). The sentinel is
// serialized using the literal value 36, one below minASCII, matching the
// reference implementation's hash_back_tochar(0) == chr(36).
func tableASCII(idx int) byte {
	if idx == sentinelIndex {
		return sentinelTableASCII
	}
	return alphabetChar(idx)
}

// indexFromTableASCII is the inverse of tableASCII.
func indexFromTableASCII(asciiVal byte) int {
	if asciiVal == sentinelTableASCII {
		return sentinelIndex
	}
	return int(asciiVal) - minASCII + 1
}

// validateText rejects any byte outside the supported alphabet, including
// the sentinel, which the encoder may never accept as input.
func validateText(text []byte) error {
	for _, c := range text {
		if _, err := alphabetIndex(c); err != nil {
			return err
		}
	}
	return nil
}
