// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package me1

import (
	"io"

	"github.com/mesave/mesave/lib/saveio"
)

// Player is the record stored in the "player.sav" archive entry. Its
// internal structure is not parsed here: the entry bytes are
// preserved verbatim, which makes the record trivially round-trip
// stable. Parsing the player format is tracked separately and slots
// in behind the same [saveio.Record] interface without touching
// container logic.
type Player struct {
	data saveio.Span
}

// Decode consumes all remaining bytes of the entry.
func (p *Player) Decode(cursor *saveio.Cursor) error {
	p.data = saveio.ReadTailSpan(cursor)
	return nil
}

// Encode writes the entry bytes verbatim.
func (p *Player) Encode(w io.Writer) error {
	return p.data.Encode(w)
}

// Size returns the record's byte length.
func (p *Player) Size() int {
	return p.data.Len()
}

// Bytes returns the record's raw entry bytes. The slice must not be
// mutated.
func (p *Player) Bytes() []byte {
	return p.data
}

// State is the record stored in the "state.sav" archive entry,
// preserved verbatim like [Player].
type State struct {
	data saveio.Span
}

// Decode consumes all remaining bytes of the entry.
func (s *State) Decode(cursor *saveio.Cursor) error {
	s.data = saveio.ReadTailSpan(cursor)
	return nil
}

// Encode writes the entry bytes verbatim.
func (s *State) Encode(w io.Writer) error {
	return s.data.Encode(w)
}

// Size returns the record's byte length.
func (s *State) Size() int {
	return s.data.Len()
}

// Bytes returns the record's raw entry bytes. The slice must not be
// mutated.
func (s *State) Bytes() []byte {
	return s.data
}

// WorldSavePackage is the optional record stored in the
// "WorldSavePackage.sav" archive entry. It is a terminal opaque span:
// decode consumes whatever the entry holds and encode replays it.
type WorldSavePackage struct {
	data saveio.Span
}

// Decode consumes all remaining bytes of the entry.
func (p *WorldSavePackage) Decode(cursor *saveio.Cursor) error {
	p.data = saveio.ReadTailSpan(cursor)
	return nil
}

// Encode writes the entry bytes verbatim.
func (p *WorldSavePackage) Encode(w io.Writer) error {
	return p.data.Encode(w)
}

// Size returns the record's byte length.
func (p *WorldSavePackage) Size() int {
	return p.data.Len()
}

// Bytes returns the record's raw entry bytes. The slice must not be
// mutated.
func (p *WorldSavePackage) Bytes() []byte {
	return p.data
}
