// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest defines the repack manifest: a small sidecar
// record written next to a repacked save file, tying the output back
// to the source it was produced from. The manifest records the
// fingerprints of both files and the per-entry inventory, so a repack
// can be audited after the fact without the original file.
//
// Manifests are stored as CBOR using Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces
// identical bytes. Unknown fields from future versions are silently
// ignored on decode (forward compatibility).
package manifest

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/mesave/mesave/lib/fingerprint"
)

// Version is the current manifest format version.
const Version = 1

// Manifest describes one repack operation.
type Manifest struct {
	// Version is the manifest format version. Currently 1.
	Version int `json:"version"`

	// Source is the file-domain fingerprint of the input save.
	Source fingerprint.Digest `json:"source"`

	// Output is the file-domain fingerprint of the repacked save.
	Output fingerprint.Digest `json:"output"`

	// Entries is the archive entry inventory in container order:
	// player, state, optional world package.
	Entries []Entry `json:"entries"`
}

// Entry describes one archive entry of the repacked save.
type Entry struct {
	// Name is the archive entry name.
	Name string `json:"name"`

	// Size is the uncompressed entry size in bytes.
	Size int64 `json:"size"`

	// Digest is the entry-domain fingerprint of the uncompressed
	// content.
	Digest fingerprint.Digest `json:"digest"`
}

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding, shared across calls.
var encMode cbor.EncMode

// decMode is the CBOR decoder; unknown fields are ignored.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("manifest: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("manifest: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes a manifest to deterministic CBOR.
func Marshal(m *Manifest) ([]byte, error) {
	data, err := encMode.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a CBOR-encoded manifest and checks its version.
func Unmarshal(data []byte) (*Manifest, error) {
	var m Manifest
	if err := decMode.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if m.Version < 1 {
		return nil, fmt.Errorf("manifest version %d is invalid (minimum 1)", m.Version)
	}
	return &m, nil
}

// Validate checks that a manifest is internally consistent.
func (m *Manifest) Validate() error {
	if m.Version < 1 {
		return fmt.Errorf("version %d is invalid (minimum 1)", m.Version)
	}

	var zeroDigest fingerprint.Digest
	if m.Source == zeroDigest {
		return fmt.Errorf("source fingerprint is zero")
	}
	if m.Output == zeroDigest {
		return fmt.Errorf("output fingerprint is zero")
	}

	if len(m.Entries) < 2 {
		return fmt.Errorf("manifest lists %d entries, a save has at least 2", len(m.Entries))
	}
	for i, entry := range m.Entries {
		if entry.Name == "" {
			return fmt.Errorf("entry %d: name is empty", i)
		}
		if entry.Size < 0 {
			return fmt.Errorf("entry %d (%s): size %d is negative", i, entry.Name, entry.Size)
		}
	}
	return nil
}
