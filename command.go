// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

import "fmt"

// CommandKind tags a Command.
type CommandKind uint8

// Command kinds.
const (
	CommandLiteral       CommandKind = iota // append one raw byte
	CommandFill                             // append Count copies of Value
	CommandBackreference                    // copy Count bytes from Offset bytes back
)

// String returns the human-readable name of a command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandLiteral:
		return "literal"
	case CommandFill:
		return "fill"
	case CommandBackreference:
		return "backref"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Command is the semantic unit produced by every encoder and consumed by every decoder.
type Command struct {
	Kind   CommandKind
	Value  byte // literal or fill byte
	Offset int  // backward distance, backreferences only
	Count  int  // bytes produced by the command
}

// String formats the command for dumps.
func (c Command) String() string {
	switch c.Kind {
	case CommandLiteral:
		return fmt.Sprintf("literal 0x%02x", c.Value)
	case CommandFill:
		return fmt.Sprintf("fill 0x%02x x%d", c.Value, c.Count)
	case CommandBackreference:
		return fmt.Sprintf("backref -%d x%d", c.Offset, c.Count)
	default:
		return c.Kind.String()
	}
}

// literalCommand returns a one-byte literal command.
func literalCommand(b byte) Command {
	return Command{Kind: CommandLiteral, Value: b, Count: 1}
}

// fillCommand returns a fill command.
func fillCommand(b byte, count int) Command {
	return Command{Kind: CommandFill, Value: b, Count: count}
}

// matchCommand returns a back-reference command.
func matchCommand(offset, count int) Command {
	return Command{Kind: CommandBackreference, Offset: offset, Count: count}
}
