// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes BLAKE3 digests identifying save files
// and their archive entries. Fingerprints appear in repack manifests,
// logs, and CLI output; they are diagnostic identity, not part of the
// save format itself.
//
// Hashing is domain-keyed so the same bytes produce different digests
// in different contexts: a whole-file digest can never collide with
// an entry digest. Entry digests additionally bind the entry name, so
// identical bytes under different entry names hash differently.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Digest is a 32-byte BLAKE3 digest.
type Digest [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing. The byte
// values are the ASCII domain name, zero-padded to 32 bytes, which
// keeps the keys inspectable in hex dumps without weakening the
// keyed-hash construction.
type domainKey [32]byte

var (
	fileDomainKey = domainKey{
		'm', 'e', 's', 'a', 'v', 'e', '.', 'f', 'i', 'l', 'e',
	}

	entryDomainKey = domainKey{
		'm', 'e', 's', 'a', 'v', 'e', '.', 'e', 'n', 't', 'r', 'y',
	}
)

// File computes the file-domain digest of a complete save buffer.
func File(data []byte) Digest {
	return keyedHash(fileDomainKey, data)
}

// Entry computes the entry-domain digest of one archive entry's
// uncompressed content. The entry name is framed into the hash input
// (name, NUL separator, content) so renamed entries hash differently.
func Entry(name string, data []byte) Digest {
	hasher := newKeyedHasher(entryDomainKey)
	hasher.Write([]byte(name))
	hasher.Write([]byte{0})
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// HashFile computes the file-domain digest of the file at path. The
// file is streamed through the hasher so memory use stays constant
// regardless of file size.
func HashFile(path string) (Digest, error) {
	file, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := newKeyedHasher(fileDomainKey)
	if _, err := io.Copy(hasher, file); err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// Format returns the hex-encoded string representation of a digest.
// This is the canonical format used in manifests, logs, and CLI
// output.
func Format(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// Parse parses a 64-character hex string into a Digest.
func Parse(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("fingerprint is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}

func keyedHash(key domainKey, data []byte) Digest {
	hasher := newKeyedHasher(key)
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

func newKeyedHasher(key domainKey) *blake3.Hasher {
	// NewKeyed only fails for a wrong key length, which the fixed-size
	// domainKey type rules out.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return hasher
}
