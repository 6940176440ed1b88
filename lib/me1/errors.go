// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package me1

import (
	"fmt"
)

// InvalidOffsetError reports a stored archive offset that is smaller
// than the fixed header size, which would imply a negative
// pre-archive region length.
type InvalidOffsetError struct {
	// Offset is the archive offset read from the header.
	Offset uint32
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("archive offset %d is smaller than the %d-byte header", e.Offset, headerSize)
}

// CorruptArchiveError reports that the bytes following the header do
// not parse as a zip archive. The underlying parse error is available
// via errors.Unwrap.
type CorruptArchiveError struct {
	Err error
}

func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("corrupt save archive: %v", e.Err)
}

func (e *CorruptArchiveError) Unwrap() error {
	return e.Err
}

// MissingEntryError reports that a required archive entry is absent.
type MissingEntryError struct {
	// Name is the required entry name ("player.sav" or "state.sav").
	Name string
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("save archive has no %q entry", e.Name)
}

// EntryError reports that a nested record's decode or encode failed.
// It carries the originating entry name for diagnostics and wraps the
// underlying cause.
type EntryError struct {
	// Name is the archive entry the record was decoded from or
	// encoded for.
	Name string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
