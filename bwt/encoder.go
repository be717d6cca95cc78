// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// EncoderConfig holds encoder options. It is currently empty; the blank
// field follows the teacher's pattern of a reserved placeholder field in a
// config struct so new fields can be added later without breaking
// callers who construct it with a literal.
type EncoderConfig struct {
	_ struct{}
}

// Encode runs the full forward pipeline (§4.8, C10) over text and returns
// the packed, byte-padded wire format described in §6:
//
//	γ(BWT_len) · γ(U) · Table(U) · Body · 0*
//
// text must contain only bytes in 37..=126; ErrIllegalCharacter or
// ErrIllegalSentinel is returned otherwise.
func Encode(text []byte, cfg EncoderConfig) ([]byte, error) {
	return EncodeWithProgress(text, cfg, nil)
}

// EncodeWithProgress is Encode with an optional callback invoked once per
// Ukkonen phase during BWT construction, for a CLI progress bar.
func EncodeWithProgress(text []byte, _ EncoderConfig, onPhase func(i int)) (out []byte, err error) {
	defer Recover(&err)

	l, err := ForwardWithProgress(text, onPhase)
	if err != nil {
		return nil, err
	}

	table, body, numUnique, err := RunLengthEncode(l)
	if err != nil {
		return nil, err
	}

	bs := NewBitStream()
	bs.Extend(EliasEncode(uint64(len(l))))
	bs.Extend(EliasEncode(uint64(numUnique)))
	bs.Extend(table)
	bs.Extend(body)

	return bs.ToBytes(), nil
}
