// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

// buildBWT derives the Burrows-Wheeler-Transformed byte sequence from the
// original text and its suffix array: bwt[i] = text[sa[i]-1], or the
// sentinel when sa[i] == 0.
func buildBWT(text []byte, sa []int32) []byte {
	bwt := make([]byte, len(sa))
	for i, idx := range sa {
		if idx == 0 {
			bwt[i] = 0 // sentinel
		} else {
			bwt[i] = text[idx-1]
		}
	}
	return bwt
}

// buildCTable returns, for every byte value c in [0,256), the count of
// bwt symbols strictly less than c (the sentinel counts as the smallest
// symbol, at index 0, so cTable[0] is always 0).
func buildCTable(bwt []byte) [256]int {
	var counts [256]int
	for _, c := range bwt {
		counts[c]++
	}

	var cTable [256]int
	var sum int
	for i := 0; i < 256; i++ {
		cTable[i] = sum
		sum += counts[i]
	}
	return cTable
}
