// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package me1 decodes and re-encodes the Mass Effect 1 save-file
// container. The format is a fixed binary header followed by an
// embedded zip archive holding the actual save records:
//
//	offset  size           field
//	0       8              leading marker (opaque, preserved verbatim)
//	8       4              archive offset (little-endian uint32)
//	12      offset-12      pre-archive region (opaque, preserved verbatim)
//	offset  to EOF         zip archive
//
// The archive contains "player.sav" and "state.sav" (both required)
// and optionally "WorldSavePackage.sav". Each entry is an
// independently-formatted binary record; this package treats their
// contents as opaque and round-trips them byte-for-byte.
//
// The format is externally defined and undocumented. Correctness
// means exact reproduction of the layout, including bytes whose
// meaning is unknown: the marker, the pre-archive region, and the
// stored archive offset are replayed verbatim on encode. Because
// written entries are re-compressed, a re-encoded file is not
// guaranteed to be byte-identical to the original input, but encoding
// is stable from the second generation on: decode(encode(s)) encodes
// to exactly the same bytes again.
//
// Decode either fully succeeds or fails with a typed error; there are
// no partial results. All operations are pure, synchronous
// transformations over in-memory buffers. File I/O lives at the edge,
// in [LoadFile] and [SaveGame.WriteFile].
package me1
