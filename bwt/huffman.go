// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import "container/heap"

// huffItem is one element of the construction heap: a subtree of the
// eventual Huffman tree, carrying its combined frequency, the number of
// symbols it covers, and the list of alphabet indices in it.
type huffItem struct {
	freq       int
	numSymbols int
	symbols    []int
}

// huffHeap implements container/heap.Interface, ordered by the tie-break
// the spec requires: ascending (frequency, subtree-symbol-count). This is
// the idiomatic Go pattern for a priority queue with a custom comparator —
// see e.g. the PriorityQueue type sampled from the reference corpus's
// Huffman implementations, all of which build on container/heap rather
// than hand-rolling a binary heap.
type huffHeap []*huffItem

func (h huffHeap) Len() int { return len(h) }
func (h huffHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].numSymbols < h[j].numSymbols
}
func (h huffHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *huffHeap) Push(x interface{}) {
	*h = append(*h, x.(*huffItem))
}
func (h *huffHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Codebook is a canonical-ish Huffman code table: a prefix-free mapping
// from alphabet index to a non-empty codeword.
type Codebook struct {
	codes map[int]*BitStream
}

// Code returns the codeword for alphabet index idx, or nil if idx has no
// codeword.
func (cb *Codebook) Code(idx int) *BitStream {
	return cb.codes[idx]
}

// Symbols returns the alphabet indices present in the codebook, in
// ascending order.
func (cb *Codebook) Symbols() []int {
	out := make([]int, 0, len(cb.codes))
	for idx := range cb.codes {
		out = append(out, idx)
	}
	// Simple insertion sort: alphabetSize is 91, this is never a hot path.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// BuildCodebook constructs a Codebook from a frequency vector indexed by
// alphabet index (len(freq) == alphabetSize). It follows the min-heap
// merge described in the spec: seed one heap element per nonzero
// frequency, repeatedly pop the two smallest (by (freq, subtree-symbol-
// count)), append bit 0 to every symbol of the first and bit 1 to every
// symbol of the second, and push the merged subtree back — except on the
// final pop, where the loop stops without merging. Per-symbol bit
// sequences accumulate in leaf-to-root order during this process and are
// reversed at the end to restore root-to-leaf (MSB-first) order.
func BuildCodebook(freq []int) (*Codebook, error) {
	bitsAccum := make(map[int][]byte, alphabetSize)

	h := &huffHeap{}
	for idx, f := range freq {
		if f > 0 {
			heap.Push(h, &huffItem{freq: f, numSymbols: 1, symbols: []int{idx}})
			bitsAccum[idx] = nil
		}
	}

	if h.Len() == 0 {
		return &Codebook{codes: map[int]*BitStream{}}, nil
	}

	if h.Len() == 1 {
		only := (*h)[0].symbols[0]
		single := NewBitStream()
		single.PushBit(0)
		return &Codebook{codes: map[int]*BitStream{only: single}}, nil
	}

	for {
		left := heap.Pop(h).(*huffItem)
		right := heap.Pop(h).(*huffItem)

		for _, idx := range left.symbols {
			bitsAccum[idx] = append(bitsAccum[idx], 0)
		}
		for _, idx := range right.symbols {
			bitsAccum[idx] = append(bitsAccum[idx], 1)
		}

		if h.Len() == 0 {
			break
		}

		left.freq += right.freq
		left.numSymbols += right.numSymbols
		left.symbols = append(left.symbols, right.symbols...)
		heap.Push(h, left)
	}

	codes := make(map[int]*BitStream, len(bitsAccum))
	for idx, accum := range bitsAccum {
		bs := NewBitStream()
		for i := len(accum) - 1; i >= 0; i-- {
			bs.PushBit(uint(accum[i]))
		}
		codes[idx] = bs
	}
	return &Codebook{codes: codes}, nil
}

// trieNode is a node of the binary trie used to decode Huffman codewords
// bit by bit.
type trieNode struct {
	left, right *trieNode
	symbol      int
	isLeaf      bool
}

// Decoder walks a binary trie built from (symbol, codeword) pairs.
type Decoder struct {
	root *trieNode
}

// NewDecoder builds a Decoder's trie from a Codebook.
func NewDecoder(cb *Codebook) (*Decoder, error) {
	root := &trieNode{}
	for idx, code := range cb.codes {
		current := root
		n := code.Len()
		for i := 0; i < n; i++ {
			bit, err := code.Index(i)
			if err != nil {
				return nil, err
			}
			last := i == n-1
			if bit == 0 {
				if current.left == nil {
					current.left = &trieNode{}
				}
				current = current.left
			} else {
				if current.right == nil {
					current.right = &trieNode{}
				}
				current = current.right
			}
			if last {
				current.isLeaf = true
				current.symbol = idx
			}
		}
	}
	return &Decoder{root: root}, nil
}

// Decode walks bs from its start until a leaf is reached, returning the
// decoded alphabet index and the unconsumed remainder of bs.
func (d *Decoder) Decode(bs *BitStream) (int, *BitStream, error) {
	current := d.root
	if current == nil {
		return 0, nil, ErrCodewordNotFound
	}
	i := 0
	for {
		if current.isLeaf {
			rem, err := bs.Slice(i, bs.Len())
			if err != nil {
				return 0, nil, ErrCodewordNotFound
			}
			return current.symbol, rem, nil
		}
		bit, err := bs.Index(i)
		if err != nil {
			return 0, nil, ErrCodewordNotFound
		}
		if bit == 0 {
			if current.left == nil {
				return 0, nil, ErrCodewordNotFound
			}
			current = current.left
		} else {
			if current.right == nil {
				return 0, nil, ErrCodewordNotFound
			}
			current = current.right
		}
		i++
	}
}
