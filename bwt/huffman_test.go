// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildCodebookEmpty(t *testing.T) {
	cb, err := BuildCodebook(make([]int, alphabetSize))
	if err != nil {
		t.Fatalf("BuildCodebook: %v", err)
	}
	if got := cb.Symbols(); len(got) != 0 {
		t.Errorf("Symbols() = %v, want empty", got)
	}
}

func TestBuildCodebookSingleSymbol(t *testing.T) {
	freq := make([]int, alphabetSize)
	idx, err := alphabetIndex('a')
	if err != nil {
		t.Fatal(err)
	}
	freq[idx] = 5

	cb, err := BuildCodebook(freq)
	if err != nil {
		t.Fatalf("BuildCodebook: %v", err)
	}
	code := cb.Code(idx)
	if code == nil || code.Len() != 1 {
		t.Fatalf("Code(%d) = %v, want a 1-bit codeword", idx, code)
	}
}

func TestCodebookIsPrefixFree(t *testing.T) {
	freq := make([]int, alphabetSize)
	text := "mississippi"
	for _, c := range []byte(text) {
		idx, err := alphabetIndex(c)
		if err != nil {
			t.Fatal(err)
		}
		freq[idx]++
	}
	freq[sentinelIndex]++

	cb, err := BuildCodebook(freq)
	if err != nil {
		t.Fatalf("BuildCodebook: %v", err)
	}

	symbols := cb.Symbols()
	var wantSymbols []int
	for idx, f := range freq {
		if f > 0 {
			wantSymbols = append(wantSymbols, idx)
		}
	}
	for i := 1; i < len(wantSymbols); i++ {
		for j := i; j > 0 && wantSymbols[j-1] > wantSymbols[j]; j-- {
			wantSymbols[j-1], wantSymbols[j] = wantSymbols[j], wantSymbols[j-1]
		}
	}
	if diff := cmp.Diff(wantSymbols, symbols); diff != "" {
		t.Fatalf("Symbols() mismatch (-want +got):\n%s", diff)
	}

	for _, a := range symbols {
		for _, b := range symbols {
			if a == b {
				continue
			}
			if isPrefix(cb.Code(a), cb.Code(b)) {
				t.Errorf("codeword for %d is a prefix of codeword for %d", a, b)
			}
		}
	}
}

func isPrefix(short, long *BitStream) bool {
	if short.Len() > long.Len() {
		return false
	}
	for i := 0; i < short.Len(); i++ {
		a, _ := short.Index(i)
		b, _ := long.Index(i)
		if a != b {
			return false
		}
	}
	return true
}

func TestDecoderRoundTrip(t *testing.T) {
	freq := make([]int, alphabetSize)
	for _, c := range []byte("abracadabra") {
		idx, err := alphabetIndex(c)
		if err != nil {
			t.Fatal(err)
		}
		freq[idx]++
	}
	cb, err := BuildCodebook(freq)
	if err != nil {
		t.Fatalf("BuildCodebook: %v", err)
	}
	dec, err := NewDecoder(cb)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	stream := NewBitStream()
	var want []int
	for _, c := range []byte("abracadabra") {
		idx, _ := alphabetIndex(c)
		want = append(want, idx)
		stream.Extend(cb.Code(idx))
	}

	rem := stream
	var got []int
	for rem.Len() > 0 {
		symbol, next, err := dec.Decode(rem)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		got = append(got, symbol)
		rem = next
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoderCodewordNotFound(t *testing.T) {
	freq := make([]int, alphabetSize)
	idxA, _ := alphabetIndex('a')
	idxB, _ := alphabetIndex('b')
	freq[idxA] = 3
	freq[idxB] = 1
	cb, err := BuildCodebook(freq)
	if err != nil {
		t.Fatalf("BuildCodebook: %v", err)
	}
	dec, err := NewDecoder(cb)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, _, err := dec.Decode(NewBitStream()); err != ErrCodewordNotFound {
		t.Errorf("Decode(empty) = %v, want ErrCodewordNotFound", err)
	}
}
