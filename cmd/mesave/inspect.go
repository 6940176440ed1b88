// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/mesave/mesave/lib/fingerprint"
	"github.com/mesave/mesave/lib/me1"
)

// inspectReport is the decoded layout of one save file, as printed by
// "mesave inspect".
type inspectReport struct {
	Path           string        `json:"path"`
	Size           int           `json:"size"`
	Marker         string        `json:"marker"`
	ArchiveOffset  uint32        `json:"archive_offset"`
	PreArchiveSize int           `json:"pre_archive_size"`
	Fingerprint    string        `json:"fingerprint"`
	Entries        []entryReport `json:"entries"`
}

type entryReport struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Digest string `json:"digest"`
}

func cmdInspect(args []string) int {
	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	outputJSON := flags.Bool("json", false, "output as JSON")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if flags.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "error: inspect takes exactly one FILE argument\n")
		return 2
	}
	path := flags.Arg(0)

	report, err := inspectFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if *outputJSON {
		if err := writeJSON(report); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		return 0
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "path\t%s\n", report.Path)
	fmt.Fprintf(tw, "size\t%d bytes\n", report.Size)
	fmt.Fprintf(tw, "marker\t%s\n", report.Marker)
	fmt.Fprintf(tw, "archive offset\t%d\n", report.ArchiveOffset)
	fmt.Fprintf(tw, "pre-archive region\t%d bytes\n", report.PreArchiveSize)
	fmt.Fprintf(tw, "fingerprint\t%s\n", report.Fingerprint)
	fmt.Fprintf(tw, "\nENTRY\tSIZE\tDIGEST\n")
	for _, entry := range report.Entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", entry.Name, entry.Size, entry.Digest)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	return 0
}

func inspectFile(path string) (*inspectReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", path, err)
	}

	save, err := me1.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding save file %s: %w", path, err)
	}

	report := &inspectReport{
		Path:           path,
		Size:           len(data),
		Marker:         hex.EncodeToString(save.Marker()),
		ArchiveOffset:  save.ArchiveOffset(),
		PreArchiveSize: save.PreArchiveRegion().Len(),
		Fingerprint:    fingerprint.Format(fingerprint.File(data)),
		Entries:        entryReports(save),
	}
	return report, nil
}

// entryReports lists the save's entries in container order.
func entryReports(save *me1.SaveGame) []entryReport {
	entries := []entryReport{
		{
			Name:   me1.EntryPlayer,
			Size:   save.Player.Size(),
			Digest: fingerprint.Format(fingerprint.Entry(me1.EntryPlayer, save.Player.Bytes())),
		},
		{
			Name:   me1.EntryState,
			Size:   save.State.Size(),
			Digest: fingerprint.Format(fingerprint.Entry(me1.EntryState, save.State.Bytes())),
		},
	}
	if save.WorldSavePackage != nil {
		entries = append(entries, entryReport{
			Name:   me1.EntryWorldSavePackage,
			Size:   save.WorldSavePackage.Size(),
			Digest: fingerprint.Format(fingerprint.Entry(me1.EntryWorldSavePackage, save.WorldSavePackage.Bytes())),
		})
	}
	return entries
}

// writeJSON prints v to stdout as indented JSON.
func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
