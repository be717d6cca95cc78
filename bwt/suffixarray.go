// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// toAlphabetIndices validates text and converts it to a terminated
// sequence of dense alphabet indices: text's bytes followed by the
// sentinel index.
func toAlphabetIndices(text []byte) ([]int, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}
	t := make([]int, len(text)+1)
	for i, c := range text {
		idx, err := alphabetIndex(c)
		if err != nil {
			return nil, err
		}
		t[i] = idx
	}
	t[len(text)] = sentinelIndex
	return t, nil
}

// SuffixArray returns the 0-based suffix array of text·"$": the starting
// positions of every suffix of the terminated text, in ascending
// lexicographic order. It builds an Ukkonen suffix tree and reads off
// leaf suffixStarts via an in-order (ascending child alphabet index)
// traversal, per §4.3/§9 — a sorted edge order at every node is exactly
// lexicographic order over the suffixes beneath it.
//
// The CLI (cmd/st2sa) adds 1 to every entry before printing, matching the
// reference implementation's 1-based st2sa output; the library itself
// stays 0-based; see SPEC_FULL.md.
func SuffixArray(text []byte) ([]int, error) {
	return SuffixArrayWithProgress(text, nil)
}

// SuffixArrayWithProgress is SuffixArray with an optional callback invoked
// once per Ukkonen phase (i.e. once per byte of the terminated text),
// letting a caller drive a progress indicator during the O(n) but
// constant-heavy C6 construction.
func SuffixArrayWithProgress(text []byte, onPhase func(i int)) ([]int, error) {
	t, err := toAlphabetIndices(text)
	if err != nil {
		return nil, err
	}
	tree := buildSuffixTree(t, onPhase)
	return tree.leaves(), nil
}
