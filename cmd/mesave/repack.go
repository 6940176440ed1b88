// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/mesave/mesave/lib/config"
	"github.com/mesave/mesave/lib/fingerprint"
	"github.com/mesave/mesave/lib/manifest"
	"github.com/mesave/mesave/lib/me1"
)

func cmdRepack(args []string, cfg *config.Config) int {
	flags := pflag.NewFlagSet("repack", pflag.ContinueOnError)
	writeManifest := flags.Bool("manifest", cfg.WriteManifest, "write a CBOR manifest sidecar next to OUT")
	backup := flags.Bool("backup", false, "copy the original into the backup directory first")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flags.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: repack takes exactly two arguments: IN OUT\n")
		return 2
	}

	if err := repackFile(flags.Arg(0), flags.Arg(1), cfg, *writeManifest, *backup); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return 0
}

// repackFile decodes inputPath and re-encodes it to outputPath,
// optionally writing a manifest sidecar (outputPath + ".manifest")
// and a backup copy of the original.
func repackFile(inputPath, outputPath string, cfg *config.Config, writeManifest, backup bool) error {
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading save file %s: %w", inputPath, err)
	}

	save, err := me1.Decode(input)
	if err != nil {
		return fmt.Errorf("decoding save file %s: %w", inputPath, err)
	}

	sourceDigest := fingerprint.File(input)

	if backup {
		backupPath, err := backupOriginal(inputPath, cfg.BackupDir, sourceDigest)
		if err != nil {
			return err
		}
		slog.Info("backed up original save", "path", backupPath)
	}

	output, err := save.EncodeBytes()
	if err != nil {
		return fmt.Errorf("encoding save file: %w", err)
	}
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing save file %s: %w", outputPath, err)
	}
	slog.Info("repacked save", "path", outputPath, "bytes", len(output))

	if writeManifest {
		manifestPath := outputPath + ".manifest"
		if err := writeRepackManifest(manifestPath, save, sourceDigest, output); err != nil {
			return err
		}
		slog.Info("wrote repack manifest", "path", manifestPath)
	}
	return nil
}

// backupOriginal copies the input save into the backup directory. The
// backup name carries a fingerprint prefix so repeated backups of
// different revisions of the same file do not collide.
func backupOriginal(inputPath, backupDir string, digest fingerprint.Digest) (string, error) {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", backupDir, err)
	}

	name := fmt.Sprintf("%s-%s", fingerprint.Format(digest)[:12], filepath.Base(inputPath))
	backupPath := filepath.Join(backupDir, name)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading save file %s for backup: %w", inputPath, err)
	}
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// writeRepackManifest builds the manifest for one repack and writes
// it as deterministic CBOR.
func writeRepackManifest(path string, save *me1.SaveGame, source fingerprint.Digest, output []byte) error {
	record := &manifest.Manifest{
		Version: manifest.Version,
		Source:  source,
		Output:  fingerprint.File(output),
		Entries: []manifest.Entry{
			{
				Name:   me1.EntryPlayer,
				Size:   int64(save.Player.Size()),
				Digest: fingerprint.Entry(me1.EntryPlayer, save.Player.Bytes()),
			},
			{
				Name:   me1.EntryState,
				Size:   int64(save.State.Size()),
				Digest: fingerprint.Entry(me1.EntryState, save.State.Bytes()),
			},
		},
	}
	if save.WorldSavePackage != nil {
		record.Entries = append(record.Entries, manifest.Entry{
			Name:   me1.EntryWorldSavePackage,
			Size:   int64(save.WorldSavePackage.Size()),
			Digest: fingerprint.Entry(me1.EntryWorldSavePackage, save.WorldSavePackage.Bytes()),
		})
	}

	data, err := manifest.Marshal(record)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
