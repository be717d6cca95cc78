// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// DecoderConfig holds decoder options; see EncoderConfig.
type DecoderConfig struct {
	_ struct{}
}

// Decode parses the wire format produced by Encode and inverts every
// stage (§4.8, C11): BWT length, unique-symbol count, code table,
// run-length body, run-length decode, then LF-mapping inverse BWT.
func Decode(data []byte, _ DecoderConfig) (out []byte, err error) {
	defer Recover(&err)

	bs := NewBitStreamFromBytes(data)

	bwtLen, rem, err := EliasDecode(bs)
	if err != nil {
		return nil, err
	}
	numUnique, rem, err := EliasDecode(rem)
	if err != nil {
		return nil, err
	}

	codes, rem, err := DecodeTable(rem, int(numUnique))
	if err != nil {
		return nil, err
	}

	l, err := DecodeBody(rem, codes, int(bwtLen))
	if err != nil {
		return nil, err
	}

	return Inverse(l)
}
