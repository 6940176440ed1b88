// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// Package archive adapts a zip reader/writer to the named-entry
// read/write operations the save container needs: open a byte buffer
// as an archive, list and extract entries by name, and compose a new
// archive entry by entry with deflate compression.
//
// The concrete zip implementation (github.com/klauspost/compress/zip)
// is confined to this package so container logic never depends on it
// directly. Handles are scoped to a single decode or encode pass and
// hold no long-lived state.
package archive
