// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesave/mesave/lib/config"
	"github.com/mesave/mesave/lib/manifest"
	"github.com/mesave/mesave/lib/me1"
	"github.com/mesave/mesave/lib/savetest"
)

func TestExtractConfigFlag(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantRemaining int
		wantPath      string
		wantError     bool
	}{
		{"no config", []string{"inspect", "file"}, 2, "", false},
		{"separate value", []string{"--config", "/tmp/c.yaml", "inspect"}, 1, "/tmp/c.yaml", false},
		{"equals form", []string{"--config=/tmp/c.yaml", "verify", "f"}, 2, "/tmp/c.yaml", false},
		{"missing value", []string{"inspect", "--config"}, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, path, err := extractConfigFlag(tt.args)
			if tt.wantError {
				if err == nil {
					t.Error("extractConfigFlag should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("extractConfigFlag failed: %v", err)
			}
			if len(remaining) != tt.wantRemaining {
				t.Errorf("remaining = %v, want %d args", remaining, tt.wantRemaining)
			}
			if path != tt.wantPath {
				t.Errorf("configPath = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func TestVerifyBufferStable(t *testing.T) {
	data := savetest.Build(t, savetest.Fixture{World: []byte("world")})

	divergence, err := verifyBuffer(data)
	if err != nil {
		t.Fatalf("verifyBuffer failed: %v", err)
	}
	if divergence != -1 {
		t.Errorf("verifyBuffer reported divergence at %d for a valid save", divergence)
	}
}

func TestVerifyBufferRejectsGarbage(t *testing.T) {
	if _, err := verifyBuffer([]byte("not a save")); err == nil {
		t.Error("verifyBuffer should fail on a non-save buffer")
	}
}

func TestRepackFile(t *testing.T) {
	directory := t.TempDir()
	inputPath := filepath.Join(directory, "input.MassEffectSave")
	outputPath := filepath.Join(directory, "output.MassEffectSave")

	data := savetest.Build(t, savetest.Fixture{World: []byte("world bytes")})
	if err := os.WriteFile(inputPath, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := config.Default()
	cfg.BackupDir = filepath.Join(directory, "backups")

	if err := repackFile(inputPath, outputPath, cfg, true, true); err != nil {
		t.Fatalf("repackFile failed: %v", err)
	}

	// The output decodes and keeps the world package.
	save, err := me1.LoadFile(outputPath)
	if err != nil {
		t.Fatalf("decoding repacked save: %v", err)
	}
	if save.WorldSavePackage == nil {
		t.Error("world package lost in repack")
	}

	// The manifest sidecar exists, decodes, and validates.
	manifestData, err := os.ReadFile(outputPath + ".manifest")
	if err != nil {
		t.Fatalf("reading manifest sidecar: %v", err)
	}
	record, err := manifest.Unmarshal(manifestData)
	if err != nil {
		t.Fatalf("decoding manifest: %v", err)
	}
	if err := record.Validate(); err != nil {
		t.Errorf("manifest does not validate: %v", err)
	}
	if len(record.Entries) != 3 {
		t.Errorf("manifest lists %d entries, want 3", len(record.Entries))
	}

	// One backup copy of the original exists.
	backups, err := os.ReadDir(cfg.BackupDir)
	if err != nil {
		t.Fatalf("reading backup directory: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("backup directory holds %d files, want 1", len(backups))
	}
	backupData, err := os.ReadFile(filepath.Join(cfg.BackupDir, backups[0].Name()))
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if len(backupData) != len(data) {
		t.Error("backup does not match the original input")
	}
}

func TestRepackFileRejectsBadInput(t *testing.T) {
	directory := t.TempDir()
	inputPath := filepath.Join(directory, "bad.MassEffectSave")
	if err := os.WriteFile(inputPath, []byte("junk"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	err := repackFile(inputPath, filepath.Join(directory, "out"), config.Default(), false, false)
	if err == nil {
		t.Error("repackFile should fail on a non-save input")
	}
}

func TestInspectFile(t *testing.T) {
	directory := t.TempDir()
	inputPath := filepath.Join(directory, "input.MassEffectSave")

	data := savetest.Build(t, savetest.Fixture{
		PreArchive: make([]byte, 38),
		World:      []byte("world"),
	})
	if err := os.WriteFile(inputPath, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	report, err := inspectFile(inputPath)
	if err != nil {
		t.Fatalf("inspectFile failed: %v", err)
	}
	if report.ArchiveOffset != 50 {
		t.Errorf("ArchiveOffset = %d, want 50", report.ArchiveOffset)
	}
	if report.PreArchiveSize != 38 {
		t.Errorf("PreArchiveSize = %d, want 38", report.PreArchiveSize)
	}
	if len(report.Entries) != 3 {
		t.Errorf("report lists %d entries, want 3", len(report.Entries))
	}
	if len(report.Fingerprint) != 64 {
		t.Errorf("fingerprint is %d characters, want 64", len(report.Fingerprint))
	}
}
