// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import "errors"

// ErrNulByte is returned by Build when the input text contains a literal
// 0x00 byte. The augmented string reserves 0x00 for the sentinel that
// terminates every suffix, so raw text carrying that byte cannot be
// indexed unambiguously; Build rejects it outright rather than silently
// remapping it.
var ErrNulByte = errors.New("fmindex: input text contains a reserved 0x00 byte")

// sentinel is the augmented-string terminator. It is strictly smaller
// than every lifted byte value (which occupy [1,256]), so it always
// sorts first and SA[0] always points at it.
const sentinel int32 = 0

// alphaSize is the number of distinct symbols the augmented string can
// ever contain: the sentinel plus 256 possible byte values.
const alphaSize int32 = 257

// unset marks a suffix-array slot that induced sorting has not placed a
// value into yet. Every real text position is >= 0, so -1 is an
// unambiguous "empty" marker.
const unset int32 = -1

// buildSuffixArray computes the suffix array of the augmented string
// formed by lifting every byte of text into [1,256] and appending the
// sentinel 0. The result has length len(text)+1 and SA[0] == len(text).
//
// Returns ErrNulByte if text contains a 0x00 byte.
func buildSuffixArray(text []byte) ([]int32, error) {
	n := len(text)
	for _, b := range text {
		if b == 0 {
			return nil, ErrNulByte
		}
	}

	if n == 0 {
		return []int32{0}, nil
	}
	if n == 1 {
		return []int32{1, 0}, nil
	}

	s := make([]int32, n+1)
	for i, b := range text {
		s[i] = int32(b) + 1
	}
	s[n] = sentinel

	sa := make([]int32, n+1)
	saisRecursive(s, sa, alphaSize)
	return sa, nil
}

// saisRecursive fills sa with the suffix array of s, an array of symbols
// in [0, alphaSize), via induced sorting (Nong-Zhang-Chan):
//
//  1. classify every position as S-type or L-type;
//  2. seed the LMS ("left-most S-type") positions into their symbol
//     buckets in an arbitrary but fixed order;
//  3. induce the L-type suffixes left to right, then the S-type suffixes
//     right to left, around those seeds;
//  4. if that round left every LMS substring pairwise distinct, the
//     induced order already fixes the relative order of the LMS suffixes;
//     otherwise name the LMS substrings, recurse on the shorter reduced
//     string of names, and use its suffix array to recover that order;
//  5. re-seed the LMS positions in their now-settled order and repeat the
//     induce passes to produce the final suffix array.
func saisRecursive(s, sa []int32, alphaSize int32) {
	n := int32(len(s))

	switch n {
	case 1:
		sa[0] = 0
		return
	case 2:
		// The suffix "s[1]" is a prefix of "s[0],s[1]"; ties favor the
		// shorter suffix.
		if s[0] < s[1] {
			sa[0], sa[1] = 0, 1
		} else {
			sa[0], sa[1] = 1, 0
		}
		return
	}

	isS := classifyTypes(s)
	lms := collectLMS(s, isS)
	sizes := bucketSizes(s, alphaSize)

	resetSA(sa)
	seedLMS(s, sa, lms, sizes)
	induceL(s, sa, isS, sizes)
	induceS(s, sa, isS, sizes)

	if len(lms) <= 1 {
		// Zero or one LMS position can't be out of order with itself; the
		// round above already is the final suffix array.
		return
	}

	sorted := collectSortedLMS(sa, isS)
	lengths := lmsSubstringLengths(lms, n)
	reduced, distinct := nameLMSSubstrings(s, lms, sorted, lengths)

	var order []int32
	if distinct {
		// Names were handed out in induced-sorted order, so a name IS the
		// rank of its LMS suffix: invert it directly, no recursion needed.
		order = make([]int32, len(lms))
		for i, name := range reduced {
			order[name] = lms[i]
		}
	} else {
		var maxName int32
		for _, name := range reduced {
			if name > maxName {
				maxName = name
			}
		}
		reducedSA := make([]int32, len(reduced))
		saisRecursive(reduced, reducedSA, maxName+1)

		order = make([]int32, len(lms))
		for i, idx := range reducedSA {
			order[i] = lms[idx]
		}
	}

	resetSA(sa)
	seedLMS(s, sa, order, sizes)
	induceL(s, sa, isS, sizes)
	induceS(s, sa, isS, sizes)
}

// resetSA marks every slot of sa as unset.
func resetSA(sa []int32) {
	for i := range sa {
		sa[i] = unset
	}
}

// classifyTypes scans s right to left and labels every position S-type
// (true) or L-type (false): position i is S-type if s[i] < s[i+1],
// L-type if s[i] > s[i+1], and otherwise inherits the type of i+1. The
// final position (the sentinel) is always S-type.
func classifyTypes(s []int32) []bool {
	n := len(s)
	isS := make([]bool, n)
	isS[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			isS[i] = true
		case s[i] > s[i+1]:
			isS[i] = false
		default:
			isS[i] = isS[i+1]
		}
	}
	return isS
}

// collectLMS returns every left-most-S-type position in ascending text
// order: a position i > 0 that is S-type with an L-type predecessor. The
// final position is always S-type with an L-type predecessor (the
// sentinel is strictly smaller than every byte before it), so it is
// always the last entry of the result, anchoring the recursive
// reduction.
func collectLMS(s []int32, isS []bool) []int32 {
	var lms []int32
	for i := 1; i < len(s); i++ {
		if isS[i] && !isS[i-1] {
			lms = append(lms, int32(i))
		}
	}
	return lms
}

// bucketSizes counts, for each symbol in [0, alphaSize), how many times
// it appears in s.
func bucketSizes(s []int32, alphaSize int32) []int32 {
	sizes := make([]int32, alphaSize)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

// bucketHeads returns a fresh cursor array: bucketHeads[c] is the index
// of the first row of symbol c's bucket. A fresh array is returned on
// every call because callers mutate it in place as a running cursor.
func bucketHeads(sizes []int32) []int32 {
	heads := make([]int32, len(sizes))
	var offset int32
	for c, n := range sizes {
		heads[c] = offset
		offset += n
	}
	return heads
}

// bucketTails returns a fresh cursor array: bucketTails[c] is the index
// of the last row of symbol c's bucket.
func bucketTails(sizes []int32) []int32 {
	tails := make([]int32, len(sizes))
	var offset int32
	for c, n := range sizes {
		offset += n
		tails[c] = offset - 1
	}
	return tails
}

// seedLMS writes every position in lms into sa at its symbol's bucket
// tail, walking lms back to front so that, within a shared bucket,
// earlier-in-lms entries land at the lower indices.
func seedLMS(s, sa, lms, sizes []int32) {
	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}
}

// induceL sweeps sa left to right. For every placed row holding text
// position j > 0 whose predecessor j-1 is L-type, it places j-1 at its
// symbol's bucket head and advances that head.
func induceL(s, sa []int32, isS []bool, sizes []int32) {
	heads := bucketHeads(sizes)
	for i := 0; i < len(sa); i++ {
		j := sa[i]
		if j <= 0 {
			continue
		}
		pred := j - 1
		if isS[pred] {
			continue
		}
		c := s[pred]
		sa[heads[c]] = pred
		heads[c]++
	}
}

// induceS sweeps sa right to left. For every placed row holding text
// position j > 0 whose predecessor j-1 is S-type, it places j-1 at its
// symbol's bucket tail and retreats that tail.
func induceS(s, sa []int32, isS []bool, sizes []int32) {
	tails := bucketTails(sizes)
	for i := len(sa) - 1; i >= 0; i-- {
		j := sa[i]
		if j <= 0 {
			continue
		}
		pred := j - 1
		if !isS[pred] {
			continue
		}
		c := s[pred]
		sa[tails[c]] = pred
		tails[c]--
	}
}

// collectSortedLMS scans sa in ascending row order — now a full
// permutation after the L/S induction passes — and returns every row
// that is an LMS position, in the order induced sorting settled them
// into. When the induction round left every LMS substring distinct,
// this order is already each LMS suffix's final rank.
func collectSortedLMS(sa []int32, isS []bool) []int32 {
	var sorted []int32
	for _, pos := range sa {
		if pos > 0 && isS[pos] && !isS[pos-1] {
			sorted = append(sorted, pos)
		}
	}
	return sorted
}

// lmsSubstringLengths precomputes, for every position in lms (ascending
// text order), the length of its LMS substring: the span up to and
// including the next LMS position, or just itself for the last one (the
// virtual end-of-text sentinel).
func lmsSubstringLengths(lms []int32, n int32) []int32 {
	lengths := make([]int32, n+1)
	for i, pos := range lms {
		if i == len(lms)-1 {
			lengths[pos] = 1
		} else {
			lengths[pos] = lms[i+1] - pos + 1
		}
	}
	return lengths
}

// equalLMSSubstrings reports whether the LMS substrings starting at a
// and b, with precomputed lengths lenA and lenB, are identical.
func equalLMSSubstrings(s []int32, a, b, lenA, lenB int32) bool {
	if lenA != lenB {
		return false
	}
	for k := int32(0); k < lenA; k++ {
		if s[a+k] != s[b+k] {
			return false
		}
	}
	return true
}

// nameLMSSubstrings walks the LMS positions in their induced-sorted
// order (sorted) and assigns each one a name, incrementing whenever the
// current LMS substring differs from the previous one. It returns the
// reduced string — one name per entry of lms, in lms's own (text) order
// — and whether every name came out distinct.
func nameLMSSubstrings(s, lms, sorted, lengths []int32) (reduced []int32, distinct bool) {
	nameOf := make([]int32, len(lengths))
	var name int32
	prevPos := int32(-1)
	for _, pos := range sorted {
		if prevPos >= 0 && !equalLMSSubstrings(s, prevPos, pos, lengths[prevPos], lengths[pos]) {
			name++
		}
		nameOf[pos] = name
		prevPos = pos
	}

	reduced = make([]int32, len(lms))
	for i, pos := range lms {
		reduced[i] = nameOf[pos]
	}
	distinct = int(name)+1 == len(lms)
	return reduced, distinct
}
