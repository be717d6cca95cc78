// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "testing"

func TestBitStreamPushAndIndex(t *testing.T) {
	bs := NewBitStream()
	bits := []uint{1, 0, 1, 1, 0}
	for _, b := range bits {
		bs.PushBit(b)
	}
	if got, want := bs.Len(), len(bits); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i, want := range bits {
		got, err := bs.Index(i)
		if err != nil {
			t.Fatalf("Index(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Index(%d) = %d, want %d", i, got, want)
		}
	}
	if _, err := bs.Index(-1); err != ErrOutOfRange {
		t.Errorf("Index(-1) error = %v, want ErrOutOfRange", err)
	}
	if _, err := bs.Index(bs.Len()); err != ErrOutOfRange {
		t.Errorf("Index(Len()) error = %v, want ErrOutOfRange", err)
	}
}

func TestBitStreamExtendAndToBytes(t *testing.T) {
	a := NewBitStream()
	for _, b := range []uint{1, 1, 0, 1} {
		a.PushBit(b)
	}
	b := NewBitStream()
	for _, bit := range []uint{0, 0, 1, 0} {
		b.PushBit(bit)
	}
	a.Extend(b)
	if got, want := a.Len(), 8; got != want {
		t.Fatalf("Len() after Extend = %d, want %d", got, want)
	}
	got := a.ToBytes()
	want := []byte{0b11010010}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("ToBytes() = %08b, want %08b", got, want)
	}
}

func TestBitStreamRoundTripFromBytes(t *testing.T) {
	data := []byte{0x5a, 0xff, 0x00, 0x01}
	bs := NewBitStreamFromBytes(data)
	if got, want := bs.Len(), len(data)*8; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got := bs.ToBytes(); string(got) != string(data) {
		t.Errorf("ToBytes() = %08b, want %08b", got, data)
	}
}

func TestBitStreamSlice(t *testing.T) {
	bs := NewBitStreamFromBytes([]byte{0b10110100})
	sub, err := bs.Slice(2, 6)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if got, want := sub.Len(), 4; got != want {
		t.Fatalf("Slice length = %d, want %d", got, want)
	}
	if got, want := sub.ToUint64(), uint64(0b1101); got != want {
		t.Errorf("Slice value = %04b, want %04b", got, want)
	}

	if _, err := bs.Slice(4, 2); err != ErrOutOfRange {
		t.Errorf("Slice(4,2) error = %v, want ErrOutOfRange", err)
	}
	if _, err := bs.Slice(0, 9); err != ErrOutOfRange {
		t.Errorf("Slice(0,9) error = %v, want ErrOutOfRange", err)
	}

	empty, err := bs.Slice(3, 3)
	if err != nil {
		t.Fatalf("Slice(3,3): %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("Slice(3,3).Len() = %d, want 0", empty.Len())
	}
}

func TestBitStreamSetFirstBit(t *testing.T) {
	bs := NewBitStreamFromBytes([]byte{0b00000000})
	bs.SetFirstBit(1)
	if got := bs.ToBytes()[0]; got != 0b10000000 {
		t.Errorf("ToBytes()[0] = %08b, want %08b", got, 0b10000000)
	}
}

func TestBitStreamClone(t *testing.T) {
	bs := NewBitStream()
	bs.PushBit(1)
	bs.PushBit(0)
	clone := bs.Clone()
	clone.PushBit(1)
	if bs.Len() != 2 {
		t.Errorf("original mutated by clone: Len() = %d, want 2", bs.Len())
	}
	if clone.Len() != 3 {
		t.Errorf("clone.Len() = %d, want 3", clone.Len())
	}
}
