// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Set up logging. Config may raise or lower the level later.
	logLevel := new(slog.LevelVar)
	if os.Getenv("ARCLZ_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cmd := os.Args[1]
	args := os.Args[2:]
	env := &environment{logger: logger, level: logLevel, stdout: os.Stdout}

	var err error
	switch cmd {
	case "compress":
		err = compressCmd(args, env)
	case "decompress":
		err = decompressCmd(args, env)
	case "stat":
		err = statCmd(args, env)
	case "dump":
		err = dumpCmd(args, env)
	case "version", "--version", "-v":
		fmt.Printf("arclz %s\n", versionInfo())
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: arclz <command> [flags]

Commands:
  compress     Compress a file into a framed stream
  decompress   Decompress a framed stream
  stat         Compare encoder sizes for a file
  dump         Print the decoded commands of a framed stream
  version      Print version information

Run "arclz <command> --help" for command flags.
`)
}
