// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package fmindex implements a full-text substring index (an FM-Index)
// over an arbitrary byte corpus.
//
// Given a corpus T of N bytes, Build constructs a self-index that
// answers Count, Contains, and Locate for a pattern P in time that
// depends only on len(P), never on N. The index is built from a
// linear-time suffix array (SA-IS), a Burrows-Wheeler Transform, a
// double-buffered wavelet matrix with O(1) rank, and a sparsely
// sampled suffix array for Locate.
//
// An Index is immutable once built and safe for concurrent reads.
package fmindex
