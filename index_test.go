package fmindex

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func locateSorted(t *testing.T, idx *Index, pattern []byte) []int {
	t.Helper()
	positions := idx.LocateAll(pattern)
	sort.Ints(positions)
	return positions
}

func TestIndexBanana(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	assert.NoError(t, err)

	assert.Equal(t, 2, idx.Count([]byte("ana")))
	assert.Equal(t, []int{1, 3}, locateSorted(t, idx, []byte("ana")))
	assert.Equal(t, 2, idx.Count([]byte("na")))
	assert.Equal(t, []int{2, 4}, locateSorted(t, idx, []byte("na")))
	assert.Equal(t, 0, idx.Count([]byte("x")))
	assert.True(t, idx.Contains([]byte("ban")))
}

func TestIndexAbracadabra(t *testing.T) {
	idx1, err := Build([]byte("abracadabra"), 1)
	assert.NoError(t, err)
	idx4, err := Build([]byte("abracadabra"), 4)
	assert.NoError(t, err)

	assert.Equal(t, 2, idx1.Count([]byte("abra")))
	assert.Equal(t, []int{0, 7}, locateSorted(t, idx1, []byte("abra")))
	assert.Equal(t, 5, idx1.Count([]byte("a")))
	assert.Equal(t, 1, idx1.Count([]byte("c")))
	assert.Equal(t, 0, idx1.Count([]byte("z")))

	assert.Equal(t, locateSorted(t, idx1, []byte("abra")), locateSorted(t, idx4, []byte("abra")))
}

func TestIndexMississippi(t *testing.T) {
	idx, err := Build([]byte("mississippi"), 4)
	assert.NoError(t, err)

	assert.Equal(t, 2, idx.Count([]byte("issi")))
	assert.Equal(t, 1, idx.Count([]byte("mississippi")))
	assert.Equal(t, 1, idx.Count([]byte("ssippi")))
	assert.Equal(t, 4, idx.Count([]byte("s")))
}

func TestIndexAllAs(t *testing.T) {
	idx, err := Build([]byte("aaaaaaaaaa"), 4)
	assert.NoError(t, err)

	assert.Equal(t, 10, idx.Count([]byte("a")))
	assert.Equal(t, 9, idx.Count([]byte("aa")))
	assert.Equal(t, 1, idx.Count(bytes.Repeat([]byte("a"), 10)))
	assert.Equal(t, 0, idx.Count(bytes.Repeat([]byte("a"), 11)))
}

func TestIndexHelloWorld(t *testing.T) {
	idx, err := Build([]byte("hello world"), 4)
	assert.NoError(t, err)

	assert.True(t, idx.Contains([]byte("hello")))
	assert.True(t, idx.Contains([]byte("world")))
	assert.True(t, idx.Contains([]byte("o w")))
	assert.False(t, idx.Contains([]byte("xyz")))
}

func TestIndexEmptyText(t *testing.T) {
	idx, err := Build([]byte(""), 4)
	assert.NoError(t, err)

	assert.Equal(t, 1, idx.Count([]byte("")))
	assert.Equal(t, 0, idx.Count([]byte("a")))
	assert.Equal(t, 0, idx.TextLen())
}

func TestIndexEmptyPattern(t *testing.T) {
	text := []byte("mississippi")
	idx, err := Build(text, 4)
	assert.NoError(t, err)

	assert.Equal(t, len(text)+1, idx.Count([]byte("")))
	positions := idx.LocateAll([]byte(""))
	assert.Len(t, positions, len(text)+1)
}

func TestIndexSentinelInPatternNeverMatches(t *testing.T) {
	idx, err := Build([]byte("mississippi"), 4)
	assert.NoError(t, err)

	assert.Equal(t, 0, idx.Count([]byte{'i', 0, 's'}))
	assert.Empty(t, idx.LocateAll([]byte{'i', 0, 's'}))
}

func TestIndexBuildRejectsNulByte(t *testing.T) {
	_, err := Build([]byte("mississ\x00ippi"), 4)
	assert.ErrorIs(t, err, ErrNulByte)
}

func TestIndexCompressionRatioOfEmptyTextIsZero(t *testing.T) {
	idx, err := Build([]byte(""), 4)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, idx.CompressionRatio())
}

func TestIndexLocateIterIsExactSized(t *testing.T) {
	idx, err := Build([]byte("abracadabra"), 1)
	assert.NoError(t, err)

	it := idx.Locate([]byte("a"))
	assert.Equal(t, 5, it.Len())

	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 5, count)
	assert.Equal(t, 0, it.Len())
	_, ok := it.Next()
	assert.False(t, ok)
}

// naiveCount/naiveLocate scan the text directly, independent of any
// suffix-array machinery, for cross-checking Count/LocateAll.
func naiveCount(text, pattern []byte) int {
	return len(naiveLocate(text, pattern))
}

func naiveLocate(text, pattern []byte) []int {
	var out []int
	if len(pattern) == 0 {
		for o := 0; o <= len(text); o++ {
			out = append(out, o)
		}
		return out
	}
	for o := 0; o+len(pattern) <= len(text); o++ {
		if bytes.Equal(text[o:o+len(pattern)], pattern) {
			out = append(out, o)
		}
	}
	return out
}

func TestIndexAgainstNaiveScanner(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	alphabet := []byte("ACGT")

	for trial := 0; trial < 40; trial++ {
		n := rnd.Intn(512)
		text := make([]byte, n)
		for i := range text {
			text[i] = alphabet[rnd.Intn(len(alphabet))]
		}

		idx, err := Build(text, 1+rnd.Intn(8))
		assert.NoError(t, err)

		for p := 0; p < 5; p++ {
			patLen := rnd.Intn(6)
			pattern := make([]byte, patLen)
			for i := range pattern {
				pattern[i] = alphabet[rnd.Intn(len(alphabet))]
			}

			wantCount := naiveCount(text, pattern)
			assert.Equal(t, wantCount, idx.Count(pattern), "text=%q pattern=%q", text, pattern)
			assert.Equal(t, wantCount > 0, idx.Contains(pattern))

			wantPositions := naiveLocate(text, pattern)
			sort.Ints(wantPositions)
			gotPositions := locateSorted(t, idx, pattern)
			assert.Equal(t, wantPositions, gotPositions, "text=%q pattern=%q", text, pattern)
		}
	}
}

func TestIndexSamplingIndependence(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	pattern := []byte("the")

	var want []int
	for _, step := range []int{1, 2, 3, 5, 8, 13} {
		idx, err := Build(text, step)
		assert.NoError(t, err)
		got := locateSorted(t, idx, pattern)
		if want == nil {
			want = got
		} else {
			assert.Equal(t, want, got, "sample_step=%d", step)
		}
	}
}
