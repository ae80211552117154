// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

// Command arclz compresses, decompresses and inspects framed archive streams.
//
// Usage:
//
//	arclz compress   -i plain.bin -o packed.lz [--format advanced|legacy] [--strategy greedy|optimal]
//	arclz decompress -i packed.lz -o plain.bin
//	arclz stat       -i plain.bin
//	arclz dump       -i packed.lz
//	arclz version
//
// Every subcommand accepts --config with a YAML file; flags given on the command line
// override values from the file. Set ARCLZ_DEBUG to enable debug logging.
package main
