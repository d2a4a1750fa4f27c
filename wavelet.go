// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

// waveletLayers is the number of bit-layers needed to address a full
// byte alphabet: one per bit of a uint8, MSB first.
const waveletLayers = 8

// WaveletMatrix supports Get(i) and Rank(c, i) over a byte sequence in
// exactly waveletLayers steps, independent of alphabet size. It is built
// over the BWT and is the rank engine the FM-Index's backward search and
// LF-walk rely on.
type WaveletMatrix struct {
	layers [waveletLayers]*BitVector
	zeros  [waveletLayers]int
	length int
}

// buildWaveletMatrix builds a WaveletMatrix over seq using a
// double-buffered (ping-pong) construction: two scratch buffers of
// len(seq) bytes are allocated once and swapped after each layer, so no
// further scratch buffer is allocated for the remaining 7 layers.
func buildWaveletMatrix(seq []byte) *WaveletMatrix {
	n := len(seq)
	wm := &WaveletMatrix{length: n}
	for d := 0; d < waveletLayers; d++ {
		wm.layers[d] = NewBitVector()
	}
	if n == 0 {
		for d := 0; d < waveletLayers; d++ {
			wm.layers[d].Finalize()
		}
		return wm
	}

	current := make([]byte, n)
	copy(current, seq)
	next := make([]byte, n)

	for d := waveletLayers - 1; d >= 0; d-- {
		layer := wm.layers[d]
		mask := byte(1) << uint(d)

		var zeroCount int
		for _, c := range current {
			if c&mask == 0 {
				zeroCount++
			}
		}
		wm.zeros[d] = zeroCount

		zPtr, oPtr := 0, zeroCount
		for _, c := range current {
			bit := c&mask != 0
			layer.Push(bit)
			if bit {
				next[oPtr] = c
				oPtr++
			} else {
				next[zPtr] = c
				zPtr++
			}
		}
		layer.Finalize()

		current, next = next, current
	}

	return wm
}

// Get returns the byte at position i in the original sequence.
func (wm *WaveletMatrix) Get(i int) byte {
	var c byte
	for d := waveletLayers - 1; d >= 0; d-- {
		layer := wm.layers[d]
		bit := layer.Get(i)
		if bit {
			c |= 1 << uint(d)
			i = wm.zeros[d] + layer.Rank1(i)
		} else {
			i = layer.Rank0(i)
		}
	}
	return c
}

// Rank returns the number of occurrences of byte c in positions [0, i).
func (wm *WaveletMatrix) Rank(c byte, i int) int {
	start := 0
	for d := waveletLayers - 1; d >= 0; d-- {
		layer := wm.layers[d]
		bit := (c>>uint(d))&1 != 0

		rankStart := layer.Rank(bit, start)
		rankEnd := layer.Rank(bit, i)

		if bit {
			start = wm.zeros[d] + rankStart
			i = wm.zeros[d] + rankEnd
		} else {
			start = rankStart
			i = rankEnd
		}
	}
	return i - start
}

// Len returns the length of the indexed sequence.
func (wm *WaveletMatrix) Len() int { return wm.length }
