// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package me1

import (
	"fmt"
	"os"
)

// LoadFile reads and decodes a save file from disk.
func LoadFile(path string) (*SaveGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", path, err)
	}
	save, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding save file %s: %w", path, err)
	}
	return save, nil
}

// WriteFile encodes the save and writes it to path.
func (s *SaveGame) WriteFile(path string) error {
	data, err := s.EncodeBytes()
	if err != nil {
		return fmt.Errorf("encoding save file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing save file %s: %w", path, err)
	}
	return nil
}
