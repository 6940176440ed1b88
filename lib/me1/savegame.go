// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package me1

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/mesave/mesave/lib/archive"
	"github.com/mesave/mesave/lib/saveio"
)

// Archive entry names. These are protocol constants of the save
// format — the game looks entries up by exactly these names.
const (
	// EntryPlayer is the required player record entry.
	EntryPlayer = "player.sav"

	// EntryState is the required plot/state record entry.
	EntryState = "state.sav"

	// EntryWorldSavePackage is the optional world package entry. Not
	// every save contains it; when absent it is omitted on encode too.
	EntryWorldSavePackage = "WorldSavePackage.sav"
)

const (
	// markerSize is the length of the opaque leading marker.
	markerSize = 8

	// headerSize is the fixed header: 8-byte marker + 4-byte archive
	// offset. The pre-archive region length is archiveOffset minus
	// this.
	headerSize = 12
)

// SaveGame is the decoded representation of one save file. The header
// fields (marker, archive offset, pre-archive region) are opaque and
// unexported: they are populated by decode and replayed verbatim by
// encode, never synthesized or recomputed.
type SaveGame struct {
	marker        saveio.Span
	archiveOffset uint32
	preArchive    saveio.Span

	// Player is the record decoded from the "player.sav" entry.
	Player *Player

	// State is the record decoded from the "state.sav" entry.
	State *State

	// WorldSavePackage is the record decoded from the optional
	// "WorldSavePackage.sav" entry, or nil when the archive has no
	// such entry. Presence is purely a function of the decoded
	// archive's entry set.
	WorldSavePackage *WorldSavePackage
}

// Decode parses a complete save file buffer.
func Decode(data []byte) (*SaveGame, error) {
	save := &SaveGame{}
	if err := save.Decode(saveio.NewCursor(data)); err != nil {
		return nil, err
	}
	return save, nil
}

// Decode implements [saveio.Record]. It reads the fixed header, opens
// the embedded archive, and decodes each named entry with a fresh
// cursor over that entry's extracted bytes. On failure the receiver
// must be discarded.
func (s *SaveGame) Decode(cursor *saveio.Cursor) error {
	marker, err := saveio.ReadSpan(cursor, markerSize)
	if err != nil {
		return fmt.Errorf("reading save marker: %w", err)
	}

	archiveOffset, err := cursor.ReadUint32()
	if err != nil {
		return fmt.Errorf("reading archive offset: %w", err)
	}
	if archiveOffset < headerSize {
		return &InvalidOffsetError{Offset: archiveOffset}
	}

	preArchive, err := saveio.ReadSpan(cursor, int(archiveOffset)-headerSize)
	if err != nil {
		return fmt.Errorf("reading pre-archive region: %w", err)
	}

	saveArchive, err := archive.Open(cursor.ReadToEnd())
	if err != nil {
		return &CorruptArchiveError{Err: err}
	}

	player := &Player{}
	if err := decodeEntry(saveArchive, EntryPlayer, player); err != nil {
		return err
	}

	state := &State{}
	if err := decodeEntry(saveArchive, EntryState, state); err != nil {
		return err
	}

	var worldSavePackage *WorldSavePackage
	if saveArchive.Has(EntryWorldSavePackage) {
		worldSavePackage = &WorldSavePackage{}
		if err := decodeEntry(saveArchive, EntryWorldSavePackage, worldSavePackage); err != nil {
			return err
		}
	}

	s.marker = marker
	s.archiveOffset = archiveOffset
	s.preArchive = preArchive
	s.Player = player
	s.State = state
	s.WorldSavePackage = worldSavePackage
	return nil
}

// decodeEntry extracts one archive entry and decodes it through a
// fresh cursor over the entry's bytes. Absence of the entry is a
// [MissingEntryError]; a nested decode failure is wrapped in an
// [EntryError] carrying the entry name.
func decodeEntry(saveArchive *archive.Archive, name string, record saveio.Record) error {
	data, err := saveArchive.Extract(name)
	if err != nil {
		var notFound *archive.EntryNotFoundError
		if errors.As(err, &notFound) {
			return &MissingEntryError{Name: name}
		}
		return &EntryError{Name: name, Err: err}
	}
	if err := record.Decode(saveio.NewCursor(data)); err != nil {
		return &EntryError{Name: name, Err: err}
	}
	return nil
}

// Encode implements [saveio.Record]. It replays the header verbatim —
// including the stored archive offset, which is NOT recomputed from
// the pre-archive region length — then packs the entries into a fresh
// archive in fixed order: player, state, optional world package. The
// order is not required by the zip format itself but is kept stable
// for deterministic re-encoding.
func (s *SaveGame) Encode(w io.Writer) error {
	if err := s.marker.Encode(w); err != nil {
		return fmt.Errorf("writing save marker: %w", err)
	}

	var offsetBytes [4]byte
	binary.LittleEndian.PutUint32(offsetBytes[:], s.archiveOffset)
	if _, err := w.Write(offsetBytes[:]); err != nil {
		return fmt.Errorf("writing archive offset: %w", err)
	}

	if err := s.preArchive.Encode(w); err != nil {
		return fmt.Errorf("writing pre-archive region: %w", err)
	}

	var archiveBuffer bytes.Buffer
	writer := archive.NewWriter(&archiveBuffer)

	if err := encodeEntry(writer, EntryPlayer, s.Player); err != nil {
		return err
	}
	if err := encodeEntry(writer, EntryState, s.State); err != nil {
		return err
	}
	if s.WorldSavePackage != nil {
		if err := encodeEntry(writer, EntryWorldSavePackage, s.WorldSavePackage); err != nil {
			return err
		}
	}

	if err := writer.Finish(); err != nil {
		return fmt.Errorf("finalizing save archive: %w", err)
	}
	if _, err := w.Write(archiveBuffer.Bytes()); err != nil {
		return fmt.Errorf("writing save archive: %w", err)
	}
	return nil
}

// encodeEntry encodes one record to a temporary buffer and writes it
// as a named, deflate-compressed archive entry.
func encodeEntry(writer *archive.Writer, name string, record saveio.Record) error {
	var buffer bytes.Buffer
	if err := record.Encode(&buffer); err != nil {
		return &EntryError{Name: name, Err: err}
	}
	if err := writer.AddEntry(name, buffer.Bytes()); err != nil {
		return &EntryError{Name: name, Err: err}
	}
	return nil
}

// EncodeBytes encodes the save to a new byte buffer.
func (s *SaveGame) EncodeBytes() ([]byte, error) {
	var buffer bytes.Buffer
	if err := s.Encode(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Marker returns the 8-byte opaque leading marker.
func (s *SaveGame) Marker() saveio.Span {
	return s.marker
}

// ArchiveOffset returns the byte offset, from the start of the file,
// at which the embedded archive begins, as stored in the header.
func (s *SaveGame) ArchiveOffset() uint32 {
	return s.archiveOffset
}

// PreArchiveRegion returns the opaque region between the fixed header
// and the archive.
func (s *SaveGame) PreArchiveRegion() saveio.Span {
	return s.preArchive
}

// Validate checks that the stored archive offset agrees with the
// pre-archive region length. Any save produced by Decode satisfies
// this by construction (the region length is derived from the
// offset), so Validate exists for callers that want the invariant
// checked explicitly before writing a file out.
func (s *SaveGame) Validate() error {
	expected := uint32(headerSize + s.preArchive.Len())
	if s.archiveOffset != expected {
		return fmt.Errorf("archive offset %d disagrees with header and pre-archive region (%d bytes)",
			s.archiveOffset, expected)
	}
	if s.marker.Len() != markerSize {
		return fmt.Errorf("save marker is %d bytes, want %d", s.marker.Len(), markerSize)
	}
	if s.Player == nil {
		return fmt.Errorf("player record is missing")
	}
	if s.State == nil {
		return fmt.Errorf("state record is missing")
	}
	return nil
}
