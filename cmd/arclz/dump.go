// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/woozymasta/arclz"
)

// dumpCmd prints the commands of every chunk in a framed stream.
func dumpCmd(args []string, env *environment) error {
	flagSet, flags := newFlagSet("dump")
	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	if _, err := flags.resolve(flagSet, env); err != nil {
		return err
	}

	src, err := flags.readInput()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	w := bufio.NewWriter(env.stdout)
	if err := dumpFrames(w, src); err != nil {
		return err
	}

	return w.Flush()
}

// dumpFrames writes a header line per chunk followed by one line per command.
func dumpFrames(w io.Writer, src []byte) error {
	payloads, err := arclz.SplitFrames(src)
	if err != nil {
		return err
	}

	for i, payload := range payloads {
		cmds, err := arclz.DecodeCommands(payload)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}

		produced := 0
		for _, c := range cmds {
			produced += c.Count
		}
		fmt.Fprintf(w, "chunk %d: %s, %d bytes -> %d bytes, %d commands\n",
			i, arclz.DetectFormat(payload), len(payload), produced, len(cmds))

		for _, c := range cmds {
			fmt.Fprintf(w, "  %s\n", c)
		}
	}

	return nil
}
