// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// Archive is a read handle over a zip byte buffer. Create one with
// [Open], then list entries with [Archive.EntryNames] and extract
// them with [Archive.Extract].
type Archive struct {
	reader *zip.Reader
}

// Open parses data as a zip archive. Returns an error if the buffer
// is not a valid archive (bad signature, corrupt central directory).
// CRC mismatches on individual entries surface later, from Extract.
func Open(data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	return &Archive{reader: reader}, nil
}

// EntryNotFoundError reports an extraction request for an entry name
// the archive does not contain.
type EntryNotFoundError struct {
	// Name is the requested entry name.
	Name string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("archive entry %q not found", e.Name)
}

// EntryNames returns the names of all entries in archive order.
func (a *Archive) EntryNames() []string {
	names := make([]string, len(a.reader.File))
	for i, file := range a.reader.File {
		names[i] = file.Name
	}
	return names
}

// Has reports whether the archive contains an entry with the given
// name.
func (a *Archive) Has(name string) bool {
	return a.find(name) != nil
}

// Extract returns the decompressed content of the named entry. Fails
// with [EntryNotFoundError] if no entry has that name, or with a
// wrapped error if the entry's data is corrupt (CRC mismatch, bad
// deflate stream).
func (a *Archive) Extract(name string) ([]byte, error) {
	file := a.find(name)
	if file == nil {
		return nil, &EntryNotFoundError{Name: name}
	}

	reader, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %q: %w", name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("extracting entry %q: %w", name, err)
	}
	return data, nil
}

func (a *Archive) find(name string) *zip.File {
	for _, file := range a.reader.File {
		if file.Name == name {
			return file
		}
	}
	return nil
}

// Writer composes a new archive into an underlying writer, one named
// entry at a time. The order of [Writer.AddEntry] calls determines
// entry order in the output. Call [Writer.Finish] to write the
// central directory; the archive is not valid until then.
type Writer struct {
	zip *zip.Writer
}

// NewWriter begins composing an archive into w.
func NewWriter(w io.Writer) *Writer {
	writer := zip.NewWriter(w)
	// Default-level deflate. The level is fixed so that encoding the
	// same entries always produces identical archive bytes.
	writer.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})
	return &Writer{zip: writer}
}

// AddEntry appends one named entry with deflate compression.
func (w *Writer) AddEntry(name string, data []byte) error {
	entry, err := w.zip.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("creating entry %q: %w", name, err)
	}
	if _, err := entry.Write(data); err != nil {
		return fmt.Errorf("writing entry %q: %w", name, err)
	}
	return nil
}

// Finish writes the archive's central directory and footer. The
// underlying writer is not closed.
func (w *Writer) Finish() error {
	if err := w.zip.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}
