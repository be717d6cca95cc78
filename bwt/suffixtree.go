// Copyright 2026, bwtzip authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"fmt"
	"strings"
)

// Ukkonen's algorithm builds a suffix tree for a terminated text in O(n)
// time using four cooperating tricks, all present in the reference
// implementation's ukkonen.py:
//
//  1. Rapid leaf extension: every leaf's edge end is the same shared
//     counter, so advancing the phase extends every leaf in O(1).
//  2. The showstopper: when an extension finds the character already on
//     an edge (Rule 3), the remaining extensions of this phase are
//     deferred — the active point is simply frozen and carried into the
//     next phase instead of restarting the walk from the root.
//  3. Suffix links: every internal node created by a split links to the
//     node reached by following the suffix of its string, letting later
//     extensions jump there directly instead of re-descending from root.
//  4. Skip/count: walking via a suffix link consumes whole edges at a
//     time using their stored lengths, only comparing characters on the
//     final, partial edge.
//
// This implementation folds the reference's explicit
// SuffixLinkActivePointer/ShowstopperActivePointer split into a single
// (node, edgeStart, length) active point, which is the standard
// formulation of the same four tricks. The per-extension control flow is
// split into methods mirroring ukkonen.py's do_extension/compare_edge/
// compare_character/branch_out, rather than folded into one function.

// endRef is a node's edge-end index: either a fixed value (branch nodes,
// once split) or a shared counter (leaves, which all advance together as
// phases proceed).
type endRef struct {
	global *globalEnd
	fixed  int
}

func (e endRef) value() int {
	if e.global != nil {
		return e.global.i
	}
	return e.fixed
}

// globalEnd is the single shared, mutable edge-end index used by every
// leaf created so far. Incrementing it once per phase applies Rule 1 to
// every leaf in O(1), the "rapid leaf extension" trick.
type globalEnd struct{ i int }

func (g *globalEnd) increment() { g.i++ }

// stNode is one node of the suffix tree arena. Edges out of a node are
// addressed directly by alphabet index, giving O(1) child lookup over the
// narrow 91-symbol alphabet without a map.
type stNode struct {
	start       int
	end         endRef
	children    [alphabetSize]int // arena index, or -1 if absent
	isLeaf      bool
	isRoot      bool
	suffixLink  int // arena index; -1 until resolved
	suffixStart int // valid only when isLeaf
}

func (n *stNode) edgeLen() int { return n.end.value() - n.start + 1 }

// SuffixTree is the arena-allocated tree built by a single call to
// buildSuffixTree. Per §5, the arena is exclusively owned by the build
// that produced it and is expected to be discarded once the caller
// (SuffixArray's or Forward's leaf traversal) has read off what it needs.
type SuffixTree struct {
	arena []stNode
	root  int
}

// leaves returns every leaf's suffixStart via an in-order (ascending
// child alphabet index) traversal — a sorted edge order at every node is
// exactly lexicographic order over the suffixes beneath it, per §4.3.
func (st *SuffixTree) leaves() []int {
	out := make([]int, 0, len(st.arena))
	var walk func(idx int)
	walk = func(idx int) {
		nd := &st.arena[idx]
		if nd.isLeaf {
			out = append(out, nd.suffixStart)
			return
		}
		for c := 0; c < alphabetSize; c++ {
			if child := nd.children[c]; child != -1 {
				walk(child)
			}
		}
	}
	walk(st.root)
	return out
}

// dump renders the arena as an indented tree of (start, end) edge spans,
// tagging leaves with their suffixStart. It is the Go analogue of the
// reference implementation's getinfo_tree visualization hook in
// main.py, kept test-only: there is no CLI flag or wire-format surface
// for it in the spec.
func (st *SuffixTree) dump() string {
	var sb strings.Builder
	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		nd := &st.arena[idx]
		fmt.Fprintf(&sb, "%s[%d,%d]", strings.Repeat("  ", depth), nd.start, nd.end.value())
		if nd.isLeaf {
			fmt.Fprintf(&sb, " leaf(suffix=%d)", nd.suffixStart)
		}
		sb.WriteByte('\n')
		for c := 0; c < alphabetSize; c++ {
			if child := nd.children[c]; child != -1 {
				walk(child, depth+1)
			}
		}
	}
	walk(st.root, 0)
	return sb.String()
}

// suffixTreeBuilder owns the arena for a single construction call.
type suffixTreeBuilder struct {
	text  []int // alphabet indices of T = text·"$"
	arena []stNode
	root  int

	ge           *globalEnd
	active       activePoint
	remainder    int
	lastInternal int // arena index of the branch awaiting a suffix link, or -1
	state        phaseState
}

// phaseState tracks whether the current phase's extension loop is still
// running normally or has hit the showstopper (Rule 3) and frozen the
// active point for the next phase to resume from. Per §9's "showstopper
// as state, not exception", this replaces a bare break out of the
// extension loop with an explicit, named condition the loop checks.
type phaseState int

const (
	stateNormal phaseState = iota
	stateShowstopped
)

func newNodeTable() [alphabetSize]int {
	var t [alphabetSize]int
	for i := range t {
		t[i] = -1
	}
	return t
}

func (b *suffixTreeBuilder) newNode(start int, end endRef) int {
	b.arena = append(b.arena, stNode{
		start:       start,
		end:         end,
		children:    newNodeTable(),
		suffixLink:  -1,
		suffixStart: -1,
	})
	return len(b.arena) - 1
}

func (b *suffixTreeBuilder) newLeaf(start int, ge *globalEnd, suffixStart int) int {
	idx := b.newNode(start, endRef{global: ge})
	b.arena[idx].isLeaf = true
	b.arena[idx].suffixStart = suffixStart
	return idx
}

// activePoint identifies the current insertion position: activeNode, plus
// (when length > 0) the text index of the first character of the active
// edge out of activeNode and how far along it we have already matched.
type activePoint struct {
	node      int
	edgeStart int
	length    int
}

// buildSuffixTree constructs an implicit suffix tree of t (which must
// already end with the sentinel's alphabet index).
func buildSuffixTree(t []int, onPhase func(i int)) *SuffixTree {
	b := &suffixTreeBuilder{text: t}
	b.arena = make([]stNode, 0, 2*len(t)+2)

	rootIdx := b.newNode(-1, endRef{fixed: -1})
	b.arena[rootIdx].isRoot = true
	b.arena[rootIdx].suffixLink = rootIdx
	b.root = rootIdx

	b.ge = &globalEnd{i: -1}
	b.active = activePoint{node: rootIdx, edgeStart: -1, length: 0}

	for i := 0; i < len(t); i++ {
		b.beginPhase(i)
		if onPhase != nil {
			onPhase(i)
		}
		for b.remainder > 0 && b.state == stateNormal {
			b.doExtension(i)
		}
	}

	return &SuffixTree{arena: b.arena, root: b.root}
}

// beginPhase applies trick 1 (every leaf's edge grows to i in O(1)) and
// resets the per-phase bookkeeping: a fresh phase always starts out of
// the showstopper, even if the previous one froze there.
func (b *suffixTreeBuilder) beginPhase(i int) {
	b.ge.increment()
	b.remainder++
	b.lastInternal = -1
	b.state = stateNormal
}

// doExtension performs one extension of the current phase: case 1/2-alt
// (no outgoing edge for the next character, so a leaf hangs directly off
// the active node) is handled by hangLeaf, the way ukkonen.py's
// do_extension does it directly rather than delegating to branch_out; case 2/3 (an
// edge already exists) is delegated to walkEdge/compareEdgeChar.
func (b *suffixTreeBuilder) doExtension(i int) {
	if b.active.length == 0 {
		b.active.edgeStart = i
	}
	edgeChar := b.text[b.active.edgeStart]
	childIdx := b.arena[b.active.node].children[edgeChar]

	if childIdx == -1 {
		b.hangLeaf(i, edgeChar)
		return
	}

	if b.walkEdge(childIdx) {
		return // trick 4: skipped the whole edge, resume at the child node
	}

	b.compareEdgeChar(childIdx, i)
}

// hangLeaf implements case 2-alt: there is no outgoing edge at all for
// the character being inserted, so a new leaf is connected straight to
// the active node.
func (b *suffixTreeBuilder) hangLeaf(i, edgeChar int) {
	j := i - b.remainder + 1
	leafIdx := b.newLeaf(i, b.ge, j)
	b.arena[b.active.node].children[edgeChar] = leafIdx
	b.arena[b.active.node].isLeaf = false

	b.resolvePendingSuffixLink(b.active.node)
	b.finishExtension(i)
}

// walkEdge implements trick 4 (skip/count): if the remaining suffix is at
// least as long as the whole of childIdx's edge, hop over it in O(1)
// instead of comparing its characters one at a time. Reports whether it
// advanced the active point onto childIdx.
func (b *suffixTreeBuilder) walkEdge(childIdx int) bool {
	edgeLen := b.arena[childIdx].edgeLen()
	if b.active.length < edgeLen {
		return false
	}
	b.active.edgeStart += edgeLen
	b.active.length -= edgeLen
	b.active.node = childIdx
	return true
}

// compareEdgeChar compares the text character being inserted against the
// one already sitting on childIdx's edge at the active point's depth —
// ukkonen.py's compare_character, specialized to the one character that
// matters once walkEdge has ruled out a whole-edge skip. A match is case
// 3 (the showstopper); a mismatch delegates to branchOut for case 2.
func (b *suffixTreeBuilder) compareEdgeChar(childIdx, i int) {
	nextCharIdx := b.arena[childIdx].start + b.active.length
	if b.text[nextCharIdx] == b.text[i] {
		active := &b.active
		active.length++
		b.resolvePendingSuffixLink(active.node)
		b.state = stateShowstopped
		return
	}
	b.branchOut(childIdx, nextCharIdx, i)
}

// branchOut implements case 2: split childIdx's edge at the mismatch,
// hanging the existing continuation and a fresh leaf for i off a new
// internal node, and resolves any suffix link pending from an earlier
// split in this same phase. Mirrors ukkonen.py's branch_out.
func (b *suffixTreeBuilder) branchOut(childIdx, nextCharIdx, i int) {
	edgeChar := b.text[b.arena[childIdx].start]
	j := i - b.remainder + 1

	splitIdx := b.newNode(b.arena[childIdx].start, endRef{fixed: nextCharIdx - 1})
	b.arena[b.active.node].children[edgeChar] = splitIdx
	b.arena[b.active.node].isLeaf = false

	leafIdx := b.newLeaf(i, b.ge, j)
	b.arena[splitIdx].children[b.text[i]] = leafIdx

	b.arena[childIdx].start = nextCharIdx
	b.arena[splitIdx].children[b.text[nextCharIdx]] = childIdx
	b.arena[splitIdx].isLeaf = false

	if b.lastInternal != -1 {
		b.arena[b.lastInternal].suffixLink = splitIdx
	}
	b.lastInternal = splitIdx

	b.finishExtension(i)
}

// resolvePendingSuffixLink connects a branch created earlier in this
// phase to node, the resolution rule that makes suffix links available
// one extension after the internal node that needs them is created.
func (b *suffixTreeBuilder) resolvePendingSuffixLink(node int) {
	if b.lastInternal != -1 {
		b.arena[b.lastInternal].suffixLink = node
		b.lastInternal = -1
	}
}

// finishExtension is the common tail of case 1/2-alt/2: the extension
// consumed one unit of remainder, so the active point advances to where
// the next extension of this phase should resume.
func (b *suffixTreeBuilder) finishExtension(i int) {
	b.remainder--
	b.followSuffixLink(i)
}

// followSuffixLink advances the active point per trick 3: from the root,
// the edge shrinks by one character; from any other node, hop via its
// suffix link and keep the same length (skip/count handles the rest on
// the next iteration).
func (b *suffixTreeBuilder) followSuffixLink(i int) {
	if b.active.node == b.root && b.active.length > 0 {
		b.active.length--
		b.active.edgeStart = i - b.remainder + 1
	} else if b.active.node != b.root {
		b.active.node = b.arena[b.active.node].suffixLink
	}
}
