// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package saveio

import (
	"encoding/binary"
	"fmt"
)

// Cursor is a sequential, position-tracked reader over an immutable
// byte buffer. It is the sole input primitive for decoding: top-level
// header parsing reads from a cursor over the whole file, and each
// archive entry's decode reads from a fresh cursor over that entry's
// extracted bytes.
//
// Read returns subslices of the underlying buffer without copying.
// Callers that need to retain bytes past the cursor's lifetime must
// copy them ([ReadSpan] does this).
type Cursor struct {
	buffer []byte
	offset int
}

// NewCursor creates a cursor positioned at the start of buffer. The
// cursor borrows the buffer; the caller must not mutate it while the
// cursor is in use.
func NewCursor(buffer []byte) *Cursor {
	return &Cursor{buffer: buffer}
}

// TruncatedError reports a read that requested more bytes than remain
// in the buffer. It signals a malformed or truncated input file.
// Callers can use errors.As to extract the positions:
//
//	var truncated *saveio.TruncatedError
//	if errors.As(err, &truncated) { ... }
type TruncatedError struct {
	// Requested is the number of bytes the read asked for.
	Requested int
	// Remaining is the number of bytes left in the buffer.
	Remaining int
	// Offset is the cursor position at the time of the read.
	Offset int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input: %d bytes requested at offset %d, %d remain",
		e.Requested, e.Offset, e.Remaining)
}

// Read returns the next n bytes and advances the position by n. The
// returned slice aliases the cursor's buffer — it is valid as long as
// the buffer is, but must not be mutated. Fails with [TruncatedError]
// if fewer than n bytes remain. n must be non-negative.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("read count %d is negative", n)
	}
	if remaining := len(c.buffer) - c.offset; n > remaining {
		return nil, &TruncatedError{Requested: n, Remaining: remaining, Offset: c.offset}
	}
	data := c.buffer[c.offset : c.offset+n]
	c.offset += n
	return data, nil
}

// ReadToEnd returns all remaining bytes and advances the position to
// the end of the buffer. It never fails; at the end of the buffer it
// returns an empty slice.
func (c *Cursor) ReadToEnd() []byte {
	data := c.buffer[c.offset:]
	c.offset = len(c.buffer)
	return data
}

// ReadUint32 reads a little-endian unsigned 32-bit integer and
// advances the position by 4.
func (c *Cursor) ReadUint32() (uint32, error) {
	data, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buffer) - c.offset
}

// Len returns the total buffer length.
func (c *Cursor) Len() int {
	return len(c.buffer)
}
