// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package bridge

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
	"github.com/nekitakamenev/fmindex"
)

// CompressedSource builds an fmindex.Index from zstd-compressed text,
// discarding the compressed bytes once the index is built.
type CompressedSource struct {
	index           *fmindex.Index
	decompressedLen int
}

// FromCompressed decompresses compressed with zstd, builds an index
// over the result with the given SA sample rate, and returns the
// wrapper. The compressed bytes are not retained.
func FromCompressed(compressed []byte, sampleStep int) (*CompressedSource, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	text, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, err
	}

	idx, err := fmindex.Build(text, sampleStep)
	if err != nil {
		return nil, err
	}
	return &CompressedSource{index: idx, decompressedLen: len(text)}, nil
}

// FromText builds an index over text and also returns text compressed
// with zstd, for callers that want to persist the corpus compactly
// alongside the index.
func FromText(text []byte, sampleStep int) (*CompressedSource, []byte, error) {
	idx, err := fmindex.Build(text, sampleStep)
	if err != nil {
		return nil, nil, err
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, nil, err
	}
	defer encoder.Close()

	var buf bytes.Buffer
	compressed := encoder.EncodeAll(text, buf.Bytes())

	return &CompressedSource{index: idx, decompressedLen: len(text)}, compressed, nil
}

// Count delegates to the underlying index.
func (s *CompressedSource) Count(pattern []byte) int { return s.index.Count(pattern) }

// Contains delegates to the underlying index.
func (s *CompressedSource) Contains(pattern []byte) bool { return s.index.Contains(pattern) }

// Locate delegates to the underlying index.
func (s *CompressedSource) Locate(pattern []byte) *fmindex.LocateIter {
	return s.index.Locate(pattern)
}

// TextLen returns the original, decompressed text length.
func (s *CompressedSource) TextLen() int { return s.decompressedLen }
