// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "math/big"

// BitStream is an MSB-first ordered sequence of bits, represented as a
// nonnegative integer payload together with a bit-length n. The bit at
// index i in [0,n) is bit (n-1-i) of the integer, counting from the least
// significant bit — so leading zeros are significant and are recorded in n
// rather than lost to the integer's own normalization.
//
// This mirrors the Python original's BitArray, which stores a bitstream as
// a Python int (unbounded precision) plus a separate bit count; math/big
// gives the same unbounded-width integer here. See DESIGN.md for why no
// third-party bit-stream library was substituted in.
type BitStream struct {
	payload big.Int
	n       int
}

// NewBitStream returns an empty BitStream (n=0, payload=0).
func NewBitStream() *BitStream {
	return &BitStream{}
}

// NewBitStreamFromBytes interprets data as a big-endian bit sequence of
// exactly len(data)*8 bits. Used to load an encoded file back into a
// BitStream before decoding.
func NewBitStreamFromBytes(data []byte) *BitStream {
	bs := &BitStream{n: len(data) * 8}
	bs.payload.SetBytes(data)
	return bs
}

// Len reports the number of bits in the stream.
func (bs *BitStream) Len() int { return bs.n }

// PushBit appends a single bit (0 or 1) to the right of the stream.
func (bs *BitStream) PushBit(b uint) {
	bs.payload.Lsh(&bs.payload, 1)
	if b != 0 {
		bs.payload.SetBit(&bs.payload, 0, 1)
	}
	bs.n++
}

// Extend appends other to the right of bs.
func (bs *BitStream) Extend(other *BitStream) {
	bs.payload.Lsh(&bs.payload, uint(other.n))
	bs.payload.Or(&bs.payload, &other.payload)
	bs.n += other.n
}

// Index returns the i-th bit from the MSB, where i is in [0,n).
func (bs *BitStream) Index(i int) (uint, error) {
	if i < 0 || i >= bs.n {
		return 0, ErrOutOfRange
	}
	return bs.payload.Bit(bs.n - 1 - i), nil
}

// Slice returns a new BitStream representing bits [a,b) of bs.
func (bs *BitStream) Slice(a, b int) (*BitStream, error) {
	if a < 0 || b > bs.n || a > b {
		return nil, ErrOutOfRange
	}
	length := b - a
	shift := bs.n - b

	out := &BitStream{n: length}
	out.payload.Rsh(&bs.payload, uint(shift))
	if length == 0 {
		out.payload.SetInt64(0)
		return out, nil
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(length))
	mask.Sub(mask, big.NewInt(1))
	out.payload.And(&out.payload, mask)
	return out, nil
}

// ToInt returns the integer view of the whole buffer.
func (bs *BitStream) ToInt() *big.Int {
	return new(big.Int).Set(&bs.payload)
}

// ToUint64 returns the integer view of the whole buffer as a uint64. The
// caller is responsible for ensuring n is small enough (used only for
// header fields that are known to be small, such as Huffman code lengths).
func (bs *BitStream) ToUint64() uint64 {
	return bs.payload.Uint64()
}

// SetFirstBit overwrites bit 0 (the MSB) in place.
func (bs *BitStream) SetFirstBit(b uint) {
	if bs.n == 0 {
		return
	}
	bs.payload.SetBit(&bs.payload, bs.n-1, b)
}

// ToBytes exports bs as a big-endian byte slice of ceil(n/8) bytes, padding
// on the right with zero bits. The number of pad bits is not recorded; a
// decoder must self-terminate using length fields carried in the stream
// itself (§6).
func (bs *BitStream) ToBytes() []byte {
	byteLen := (bs.n + 7) / 8
	if byteLen == 0 {
		return nil
	}
	padBits := byteLen*8 - bs.n
	padded := new(big.Int).Lsh(&bs.payload, uint(padBits))
	out := make([]byte, byteLen)
	padded.FillBytes(out)
	return out
}

// Clone returns an independent copy of bs.
func (bs *BitStream) Clone() *BitStream {
	out := &BitStream{n: bs.n}
	out.payload.Set(&bs.payload)
	return out
}
