// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package saveio provides the byte-level codec primitives shared by
// every save-file record: the position-tracked [Cursor] that decoding
// reads from, the [Record] interface that every structured entity
// implements, and the [Span] value type for byte ranges that are
// preserved verbatim without interpretation.
//
// Correctness for this codec is defined by bit-for-bit compatibility
// with an externally-defined binary format, not by any internal
// algorithm. The primitives here make that contract explicit:
//
//   - A [Cursor] is created once per decode pass over a buffer (the
//     whole file, or one archive entry's extracted bytes) and is
//     discarded when the pass completes. It borrows the buffer and
//     tracks a read position; it never copies or mutates.
//   - A [Span] is created by copying bytes out of a cursor and is
//     written back verbatim on encode. Any byte range whose meaning is
//     unknown or intentionally unparsed is modeled as a Span, so
//     "preserve verbatim" is a checkable property of the type rather
//     than an implicit side effect of the decode logic.
//   - A [Record] either fully decodes or fails with a typed error.
//     There are no partial results and no default-value substitution
//     for malformed input.
//
// Everything in this package is a pure, synchronous transformation
// over in-memory buffers. Cursors are not safe for concurrent use,
// but they are never shared: each decode call owns its cursor
// exclusively.
package saveio
