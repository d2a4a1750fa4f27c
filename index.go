// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

// Index is a full-text self-index over a byte corpus (an "FM-Index").
// Once Build returns, an Index never changes: count/contains/locate are
// exposed only as value-returning, unsynchronized-read-safe methods.
//
// Internally: a WaveletMatrix over the BWT gives O(1) ranks, a C-table
// gives the LF-mapping base offsets, and a sparse sampled suffix array
// plus a marker BitVector resolve a matched row to a text position
// without keeping the whole suffix array around.
type Index struct {
	wm         *WaveletMatrix
	cTable     [256]int
	sampleStep int
	saSamples  []int32
	saSampled  *BitVector
}

// Build indexes text for count/contains/locate/search_range queries.
// sampleStep controls the suffix-array sampling density: every position
// whose suffix-array value is a multiple of sampleStep is kept verbatim,
// all others are resolved by an LF-walk of at most sampleStep steps.
// Lower sampleStep means faster Locate and more memory; it is clamped to
// at least 1.
//
// Build returns ErrNulByte if text contains a literal 0x00 byte — the
// augmented string reserves that value for the sentinel. It returns no
// other error; all post-build queries are total.
func Build(text []byte, sampleStep int) (*Index, error) {
	if sampleStep < 1 {
		sampleStep = 1
	}

	sa, err := buildSuffixArray(text)
	if err != nil {
		return nil, err
	}

	bwt := buildBWT(text, sa)
	wm := buildWaveletMatrix(bwt)
	cTable := buildCTable(bwt)

	var saSamples []int32
	saSampled := NewBitVector()
	for _, pos := range sa {
		if int(pos)%sampleStep == 0 {
			saSamples = append(saSamples, pos)
			saSampled.Push(true)
		} else {
			saSampled.Push(false)
		}
	}
	saSampled.Finalize()

	return &Index{
		wm:         wm,
		cTable:     cTable,
		sampleStep: sampleStep,
		saSamples:  saSamples,
		saSampled:  saSampled,
	}, nil
}

// Count returns the number of occurrences of pattern in the indexed
// text, in O(len(pattern)) time independent of the corpus size.
func (idx *Index) Count(pattern []byte) int {
	sp, ep := idx.backwardSearch(pattern)
	return ep - sp
}

// Contains reports whether pattern occurs at least once.
func (idx *Index) Contains(pattern []byte) bool {
	sp, ep := idx.backwardSearch(pattern)
	return ep > sp
}

// SearchRange returns the half-open suffix-array range [sp, ep) of rows
// whose suffix is prefixed by pattern. The range is empty (sp == ep)
// when pattern does not occur.
func (idx *Index) SearchRange(pattern []byte) (sp, ep int) {
	return idx.backwardSearch(pattern)
}

// Locate returns a lazy, zero-allocation-per-step iterator over every
// text position where pattern occurs. Positions are produced in
// suffix-array order, not text order.
func (idx *Index) Locate(pattern []byte) *LocateIter {
	sp, ep := idx.backwardSearch(pattern)
	return &LocateIter{index: idx, pos: sp, end: ep}
}

// LocateAll collects every occurrence of pattern into a slice. Prefer
// Locate's iterator for hot paths that don't need all results at once.
func (idx *Index) LocateAll(pattern []byte) []int {
	it := idx.Locate(pattern)
	out := make([]int, 0, it.Len())
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, pos)
	}
	return out
}

// TextLen returns the length of the original, unaugmented text.
func (idx *Index) TextLen() int {
	n := idx.wm.Len()
	if n == 0 {
		return 0
	}
	return n - 1
}

// SampleStep returns the suffix-array sampling interval in use: the
// value Build was called with, clamped to at least 1.
func (idx *Index) SampleStep() int { return idx.sampleStep }

// SizeBytes returns an approximate size, in bytes, of the index's
// in-memory representation: the wavelet matrix, the C-table, the
// sampled-SA marker bits, and the SA samples themselves.
func (idx *Index) SizeBytes() int {
	n := idx.wm.Len()

	// 8 layers of one bit per character, each with one header word per 8
	// body words: 9 bits, i.e. 1.125 bytes, per character.
	wmSize := n * 9 / 8

	const wordSize = 8 // bytes per int on a 64-bit target
	cTableSize := 256 * wordSize

	saBitsSize := (n/blockBits + 1) * (blockStride * wordSize)
	saSamplesSize := len(idx.saSamples) * wordSize

	return wmSize + cTableSize + saBitsSize + saSamplesSize
}

// CompressionRatio returns SizeBytes() divided by TextLen(), or 0 for
// an empty text.
func (idx *Index) CompressionRatio() float64 {
	textLen := idx.TextLen()
	if textLen == 0 {
		return 0
	}
	return float64(idx.SizeBytes()) / float64(textLen)
}

// resolveSA resolves row i of the (conceptual) suffix array to its text
// position by walking LF-mapping steps until a sampled row is hit.
// Bounded by sampleStep LF steps per spec.
func (idx *Index) resolveSA(i int) int {
	var steps int
	for {
		if idx.saSampled.Get(i) {
			sampleIdx := idx.saSampled.Rank1(i)
			return int(idx.saSamples[sampleIdx]) + steps
		}

		c := idx.wm.Get(i)
		if c == sentinelByte {
			return steps
		}

		rank := idx.wm.Rank(c, i)
		i = idx.cTable[c] + rank
		steps++
	}
}

// sentinelByte is the BWT's encoding of the augmented string's virtual
// sentinel. Text bytes never take this value (Build rejects 0x00), so
// it unambiguously marks "start of text" during an LF-walk.
const sentinelByte byte = 0

// backwardSearch narrows the suffix-array range to the rows whose
// suffix starts with pattern, processing pattern right to left and
// applying one LF-mapping narrowing step per byte: O(len(pattern)).
func (idx *Index) backwardSearch(pattern []byte) (sp, ep int) {
	if len(pattern) == 0 {
		return 0, idx.wm.Len()
	}

	sp, ep = 0, idx.wm.Len()
	for i := len(pattern) - 1; i >= 0; i-- {
		c := pattern[i]
		if c == sentinelByte {
			return 0, 0
		}

		rankSP := idx.wm.Rank(c, sp)
		rankEP := idx.wm.Rank(c, ep)

		sp = idx.cTable[c] + rankSP
		ep = idx.cTable[c] + rankEP

		if sp >= ep {
			return 0, 0
		}
	}
	return sp, ep
}

// LocateIter is a lazy iterator over a pattern's occurrences, borrowing
// its parent Index rather than copying any of its state. It produces no
// heap allocation per step.
type LocateIter struct {
	index *Index
	pos   int
	end   int
}

// Next returns the next occurrence and true, or (0, false) once
// exhausted.
func (it *LocateIter) Next() (int, bool) {
	if it.pos >= it.end {
		return 0, false
	}
	pos := it.index.resolveSA(it.pos)
	it.pos++
	return pos, true
}

// Len returns the number of occurrences remaining.
func (it *LocateIter) Len() int {
	if it.end <= it.pos {
		return 0
	}
	return it.end - it.pos
}
