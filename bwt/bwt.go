// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// Forward computes the Burrows-Wheeler Transform of text: it terminates
// text with the sentinel, builds the suffix array of text·"$", and reads
// off L[i] = T[SA[i]-1] (wrapping to the sentinel when SA[i] is 0), per
// §4.4. The result is returned as dense alphabet indices, including the
// sentinel, ready for RunLengthEncode.
func Forward(text []byte) ([]int, error) {
	return ForwardWithProgress(text, nil)
}

// ForwardWithProgress is Forward with an optional per-phase progress
// callback; see SuffixArrayWithProgress.
func ForwardWithProgress(text []byte, onPhase func(i int)) ([]int, error) {
	t, err := toAlphabetIndices(text)
	if err != nil {
		return nil, err
	}
	tree := buildSuffixTree(t, onPhase)
	n := len(t)
	sa := tree.leaves()

	l := make([]int, n)
	for i, s := range sa {
		pred := (s - 1 + n) % n
		l[i] = t[pred]
	}
	return l, nil
}

// Inverse recovers the original text from its Burrows-Wheeler Transform
// l (dense alphabet indices, including the sentinel), using LF-mapping.
// Rather than the reference implementation's per-step linear scan over
// occ[c], rank is reconstructed with an O(1)-per-step running-occurrence
// column (base[c], summed from the counts in count[c], gives each symbol's
// base rank, occ[c] its running offset within that block) — the alternative the spec explicitly allows
// in §4.7/§9. See DESIGN.md's Open Question decisions.
func Inverse(l []int) ([]byte, error) {
	n := len(l)
	if n == 0 {
		return nil, ErrTruncatedBody
	}

	count := make([]int, alphabetSize)
	for _, c := range l {
		if c < 0 || c >= alphabetSize {
			return nil, ErrIllegalCharacter
		}
		count[c]++
	}
	base := make([]int, alphabetSize)
	sum := 0
	for c := 0; c < alphabetSize; c++ {
		base[c] = sum
		sum += count[c]
	}

	lf := make([]int, n)
	occ := make([]int, alphabetSize)
	for i, c := range l {
		lf[i] = base[c] + occ[c]
		occ[c]++
	}

	// Walking LF from row 0 (the row whose first column is the sentinel)
	// retraces the text backwards, emitting the sentinel last.
	out := make([]int, n)
	row := 0
	for i := 0; i < n; i++ {
		out[i] = l[row]
		row = lf[row]
	}
	if out[n-1] != sentinelIndex {
		return nil, ErrTruncatedBody
	}

	body := out[:n-1]
	res := make([]byte, len(body))
	for i, idx := range body {
		res[len(body)-1-i] = alphabetChar(idx)
	}
	return res, nil
}
