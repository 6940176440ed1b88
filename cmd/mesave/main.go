// Copyright 2026 The Mesave Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mesave/mesave/lib/config"
	"github.com/mesave/mesave/lib/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Handle --version before anything else.
	for _, argument := range args {
		if argument == "--version" {
			fmt.Printf("mesave %s\n", version.Info())
			return 0
		}
	}

	args, configPath, err := extractConfigFlag(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch args[0] {
	case "inspect":
		return cmdInspect(args[1:])
	case "repack":
		return cmdRepack(args[1:], cfg)
	case "verify":
		return cmdVerify(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", args[0])
		printUsage()
		return 2
	}
}

// extractConfigFlag removes a global "--config PATH" (or
// "--config=PATH") from the argument list so it can appear before the
// subcommand.
func extractConfigFlag(args []string) (remaining []string, configPath string, err error) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--config":
			if i+1 >= len(args) {
				return nil, "", fmt.Errorf("--config requires a value")
			}
			configPath = args[i+1]
			i++
		case len(args[i]) > len("--config=") && args[i][:len("--config=")] == "--config=":
			configPath = args[i][len("--config="):]
		default:
			remaining = append(remaining, args[i])
		}
	}
	return remaining, configPath, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "\nusage: mesave [--config PATH] COMMAND [flags]\n")
	fmt.Fprintf(os.Stderr, "\ncommands:\n")
	fmt.Fprintf(os.Stderr, "  inspect FILE [--json]            decode a save and report its layout\n")
	fmt.Fprintf(os.Stderr, "  repack IN OUT [--manifest] [--backup]\n")
	fmt.Fprintf(os.Stderr, "                                   decode and re-encode a save\n")
	fmt.Fprintf(os.Stderr, "  verify FILE                      check second-generation round-trip stability\n")
	fmt.Fprintf(os.Stderr, "\nexit codes:\n")
	fmt.Fprintf(os.Stderr, "  0  success\n")
	fmt.Fprintf(os.Stderr, "  1  verification failed\n")
	fmt.Fprintf(os.Stderr, "  2  error\n")
	fmt.Fprintf(os.Stderr, "\nenvironment:\n")
	fmt.Fprintf(os.Stderr, "  MESAVE_CONFIG  path to the YAML config file (optional)\n")
}
