// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

// mesave inspects, repacks, and verifies Mass Effect 1 save files.
//
// The tool is a thin presentation layer over lib/me1: all decoding
// and encoding happens in the library, and every command is a pure
// read-decode-report or read-decode-encode-write pipeline.
//
//	mesave inspect Char_01.MassEffectSave
//	mesave repack Char_01.MassEffectSave out.MassEffectSave --manifest
//	mesave verify Char_01.MassEffectSave
//
// Configuration (backup directory, default manifest emission, log
// level) comes from an optional YAML file named by MESAVE_CONFIG or
// the global --config flag.
package main
