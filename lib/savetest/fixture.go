// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package savetest

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/mesave/mesave/lib/archive"
)

// Fixture describes a synthetic save file. Zero-value fields get
// usable defaults from [Build]; set the Omit flags to produce
// deliberately broken archives.
type Fixture struct {
	// Marker is the 8-byte leading marker. Defaults to "ME1SAVE\x00".
	Marker []byte

	// PreArchive is the opaque region between header and archive.
	// May be empty.
	PreArchive []byte

	// ArchiveOffset overrides the stored archive offset. When zero,
	// the consistent value 12+len(PreArchive) is used.
	ArchiveOffset uint32

	// Player is the "player.sav" entry content. Defaults to a small
	// placeholder record.
	Player []byte

	// State is the "state.sav" entry content. Defaults to a small
	// placeholder record.
	State []byte

	// World is the optional "WorldSavePackage.sav" entry content.
	// Nil means the entry is absent.
	World []byte

	// OmitPlayer and OmitState drop the corresponding required entry
	// from the archive.
	OmitPlayer bool
	OmitState  bool
}

// Build assembles the fixture into a complete save-file buffer.
func Build(t *testing.T, fixture Fixture) []byte {
	t.Helper()

	marker := fixture.Marker
	if marker == nil {
		marker = []byte("ME1SAVE\x00")
	}
	if len(marker) != 8 {
		t.Fatalf("fixture marker is %d bytes, want 8", len(marker))
	}

	player := fixture.Player
	if player == nil {
		player = []byte("player record fixture")
	}
	state := fixture.State
	if state == nil {
		state = []byte("state record fixture")
	}

	offset := fixture.ArchiveOffset
	if offset == 0 {
		offset = uint32(12 + len(fixture.PreArchive))
	}

	var buffer bytes.Buffer
	buffer.Write(marker)

	var offsetBytes [4]byte
	binary.LittleEndian.PutUint32(offsetBytes[:], offset)
	buffer.Write(offsetBytes[:])
	buffer.Write(fixture.PreArchive)

	writer := archive.NewWriter(&buffer)
	if !fixture.OmitPlayer {
		if err := writer.AddEntry("player.sav", player); err != nil {
			t.Fatalf("adding player.sav fixture entry: %v", err)
		}
	}
	if !fixture.OmitState {
		if err := writer.AddEntry("state.sav", state); err != nil {
			t.Fatalf("adding state.sav fixture entry: %v", err)
		}
	}
	if fixture.World != nil {
		if err := writer.AddEntry("WorldSavePackage.sav", fixture.World); err != nil {
			t.Fatalf("adding WorldSavePackage.sav fixture entry: %v", err)
		}
	}
	if err := writer.Finish(); err != nil {
		t.Fatalf("finalizing fixture archive: %v", err)
	}

	return buffer.Bytes()
}
