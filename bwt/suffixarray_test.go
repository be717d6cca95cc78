// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSuffixArrayAbracadabra(t *testing.T) {
	sa, err := SuffixArray([]byte("abracadabra"))
	if err != nil {
		t.Fatalf("SuffixArray: %v", err)
	}
	// §8 scenario 6, converted from the CLI's 1-based output to the
	// library's 0-based contract.
	want := []int{11, 10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2}
	if diff := cmp.Diff(want, sa); diff != "" {
		t.Fatalf("SuffixArray(\"abracadabra\") mismatch (-want +got):\n%s", diff)
	}
}

func TestSuffixArraySortedness(t *testing.T) {
	for _, text := range []string{"banana", "mississippi", "abracadabra", "aaaa"} {
		t.Run(text, func(t *testing.T) {
			sa, err := SuffixArray([]byte(text))
			if err != nil {
				t.Fatalf("SuffixArray(%q): %v", text, err)
			}
			terminated := append([]byte(text), sentinel)

			for i := 0; i+1 < len(sa); i++ {
				a := terminated[sa[i]:]
				b := terminated[sa[i+1]:]
				if !suffixLess(a, b) {
					t.Errorf("suffix at SA[%d]=%d is not < suffix at SA[%d]=%d", i, sa[i], i+1, sa[i+1])
				}
			}
		})
	}
}

func TestSuffixArrayCompleteness(t *testing.T) {
	text := "mississippi"
	sa, err := SuffixArray([]byte(text))
	if err != nil {
		t.Fatalf("SuffixArray: %v", err)
	}
	n := len(text) + 1
	seen := make([]bool, n)
	for _, s := range sa {
		seen[s] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("suffix array missing starting position %d", i)
		}
	}
	if len(sa) != n {
		t.Errorf("len(SuffixArray) = %d, want %d", len(sa), n)
	}
}

func TestSuffixArrayRejectsSentinel(t *testing.T) {
	if _, err := SuffixArray([]byte("abc$def")); err != ErrIllegalSentinel {
		t.Errorf("SuffixArray with embedded '$' = %v, want ErrIllegalSentinel", err)
	}
}

func TestSuffixArrayRejectsOutOfRange(t *testing.T) {
	if _, err := SuffixArray([]byte("abc\x01def")); err != ErrIllegalCharacter {
		t.Errorf("SuffixArray with out-of-range byte = %v, want ErrIllegalCharacter", err)
	}
}

// suffixLess reports whether a is lexicographically less than b, treating
// the sentinel as sorting before every real character.
func suffixLess(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return rank(a[i]) < rank(b[i])
	}
	return len(a) < len(b)
}

func rank(c byte) int {
	if c == sentinel {
		return -1
	}
	return int(c)
}
