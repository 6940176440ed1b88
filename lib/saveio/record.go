// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package saveio

import (
	"io"
)

// Record is the codec capability implemented by every decodable and
// encodable entity: the top-level save container, each nested record
// decoded from an archive entry, and opaque pass-through records.
//
// Decode consumes exactly the bytes the entity is defined to occupy.
// It must not over-read or under-read relative to the entity's
// declared shape, except for entities explicitly defined to consume
// all remaining bytes (terminal spans such as the world save
// package). A failed Decode leaves no partial result the caller
// should use.
//
// Encode appends the entity's byte representation to w. For
// well-formed in-memory values this does not fail beyond errors
// propagated from the underlying writer or from nested records.
//
// This interface is the uniform seam that lets the container treat
// opaque and structured records identically during composition.
type Record interface {
	Decode(cursor *Cursor) error
	Encode(w io.Writer) error
}

// Span is a byte range stored and replayed verbatim, with no
// interpretation. It is used wherever byte meaning is unknown or
// intentionally unparsed: header markers, reserved regions, and the
// bodies of records whose internals are out of scope.
//
// A Span owns its bytes (constructors copy out of the cursor) and is
// treated as immutable after creation.
type Span []byte

// ReadSpan reads exactly n bytes from the cursor into a new Span.
// The bytes are copied, so the span remains valid independently of
// the cursor's buffer.
func ReadSpan(cursor *Cursor, n int) (Span, error) {
	data, err := cursor.Read(n)
	if err != nil {
		return nil, err
	}
	span := make(Span, n)
	copy(span, data)
	return span, nil
}

// ReadTailSpan reads all remaining bytes from the cursor into a new
// Span. It never fails; at the end of the buffer it returns an empty
// span.
func ReadTailSpan(cursor *Cursor) Span {
	data := cursor.ReadToEnd()
	span := make(Span, len(data))
	copy(span, data)
	return span
}

// Encode writes the span's bytes verbatim.
func (s Span) Encode(w io.Writer) error {
	_, err := w.Write(s)
	return err
}

// Len returns the span's length in bytes.
func (s Span) Len() int {
	return len(s)
}
