// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/zip"
)

// buildArchive writes the given entries in order and returns the
// archive bytes.
func buildArchive(t *testing.T, entries []struct{ name, data string }) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := NewWriter(&buffer)
	for _, entry := range entries {
		if err := writer.AddEntry(entry.name, []byte(entry.data)); err != nil {
			t.Fatalf("AddEntry(%q) failed: %v", entry.name, err)
		}
	}
	if err := writer.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	return buffer.Bytes()
}

func TestWriteOpenExtract(t *testing.T) {
	entries := []struct{ name, data string }{
		{"player.sav", "player bytes"},
		{"state.sav", "state bytes"},
	}
	data := buildArchive(t, entries)

	archive, err := Open(data)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, entry := range entries {
		content, err := archive.Extract(entry.name)
		if err != nil {
			t.Fatalf("Extract(%q) failed: %v", entry.name, err)
		}
		if string(content) != entry.data {
			t.Errorf("Extract(%q) = %q, want %q", entry.name, content, entry.data)
		}
	}
}

func TestEntryNamesPreserveOrder(t *testing.T) {
	data := buildArchive(t, []struct{ name, data string }{
		{"player.sav", "a"},
		{"state.sav", "b"},
		{"WorldSavePackage.sav", "c"},
	})

	archive, err := Open(data)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	names := archive.EntryNames()
	want := []string{"player.sav", "state.sav", "WorldSavePackage.sav"}
	if len(names) != len(want) {
		t.Fatalf("EntryNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("EntryNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestHas(t *testing.T) {
	data := buildArchive(t, []struct{ name, data string }{
		{"player.sav", "a"},
	})

	archive, err := Open(data)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if !archive.Has("player.sav") {
		t.Error("Has(\"player.sav\") = false, want true")
	}
	if archive.Has("WorldSavePackage.sav") {
		t.Error("Has(\"WorldSavePackage.sav\") = true, want false")
	}
}

func TestExtractMissingEntry(t *testing.T) {
	data := buildArchive(t, []struct{ name, data string }{
		{"player.sav", "a"},
	})

	archive, err := Open(data)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	_, err = archive.Extract("state.sav")
	var notFound *EntryNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Extract of missing entry returned %v, want EntryNotFoundError", err)
	}
	if notFound.Name != "state.sav" {
		t.Errorf("EntryNotFoundError.Name = %q, want %q", notFound.Name, "state.sav")
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a zip", []byte("this is not an archive at all, just text")},
		{"truncated signature", []byte{'P', 'K'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Open(tt.data); err == nil {
				t.Error("Open should fail on invalid archive bytes")
			}
		})
	}
}

func TestWrittenEntriesUseDeflate(t *testing.T) {
	data := buildArchive(t, []struct{ name, data string }{
		{"player.sav", "some compressible content content content"},
	})

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader failed: %v", err)
	}
	for _, file := range reader.File {
		if file.Method != zip.Deflate {
			t.Errorf("entry %q method = %d, want deflate (%d)", file.Name, file.Method, zip.Deflate)
		}
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	entries := []struct{ name, data string }{
		{"player.sav", "player bytes player bytes"},
		{"state.sav", "state bytes state bytes"},
	}

	first := buildArchive(t, entries)
	second := buildArchive(t, entries)
	if !bytes.Equal(first, second) {
		t.Error("writing identical entries twice produced different archive bytes")
	}
}

func TestExtractEmptyEntry(t *testing.T) {
	data := buildArchive(t, []struct{ name, data string }{
		{"player.sav", ""},
	})

	archive, err := Open(data)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	content, err := archive.Extract("player.sav")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("Extract of empty entry returned %d bytes, want 0", len(content))
	}
}
