package fmindex

import (
	"sort"
)

// naiveSuffixArray is an O(N^2 log N) reference suffix array builder for
// cross-checking buildSuffixArray against. It sorts the N+1 suffixes of
// the augmented string (text + virtual sentinel) directly.
func naiveSuffixArray(text []byte) []int32 {
	n := len(text)
	sa := make([]int32, n+1)
	for i := range sa {
		sa[i] = int32(i)
	}
	suffix := func(i int32) string {
		if int(i) == n {
			return ""
		}
		return string(text[i:])
	}
	sort.Slice(sa, func(i, j int) bool {
		return suffix(sa[i]) < suffix(sa[j])
	})
	return sa
}
