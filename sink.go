// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/arclz

package arclz

// Sink receives decoded commands. Decoders drive a Sink instead of writing output
// directly, so the same state machine can materialize bytes, count them or record commands.
type Sink interface {
	// Literal appends raw bytes.
	Literal(p []byte) error
	// Fill appends count copies of b.
	Fill(b byte, count int) error
	// Backreference appends count bytes copied from offset bytes back.
	Backreference(offset, count int) error
}

// bufferSink materializes decoded output into a growable buffer.
type bufferSink struct {
	out []byte // out is the decoded output so far.
}

// Literal implements Sink.
func (s *bufferSink) Literal(p []byte) error {
	s.out = append(s.out, p...)
	return nil
}

// Fill implements Sink.
func (s *bufferSink) Fill(b byte, count int) error {
	s.out = appendFill(s.out, b, count)
	return nil
}

// Backreference implements Sink.
func (s *bufferSink) Backreference(offset, count int) error {
	var err error
	s.out, err = appendBackRef(s.out, offset, count)
	return err
}

// sizeSink counts decoded bytes without allocating output.
// Offsets are validated the same way bufferSink validates them.
type sizeSink struct {
	n int // n is the number of bytes produced so far.
}

// Literal implements Sink.
func (s *sizeSink) Literal(p []byte) error {
	s.n += len(p)
	return nil
}

// Fill implements Sink.
func (s *sizeSink) Fill(_ byte, count int) error {
	s.n += count
	return nil
}

// Backreference implements Sink.
func (s *sizeSink) Backreference(offset, count int) error {
	if err := checkBackreference(offset, count, s.n); err != nil {
		return err
	}

	s.n += count
	return nil
}

// CommandRecorder is a Sink that records the decoded command list.
// Literal runs are split into one command per byte. Offsets are validated
// against the number of bytes the recorded commands produce.
type CommandRecorder struct {
	Commands []Command
	produced int
}

// Literal implements Sink.
func (r *CommandRecorder) Literal(p []byte) error {
	for _, b := range p {
		r.Commands = append(r.Commands, literalCommand(b))
	}
	r.produced += len(p)

	return nil
}

// Fill implements Sink.
func (r *CommandRecorder) Fill(b byte, count int) error {
	r.Commands = append(r.Commands, fillCommand(b, count))
	r.produced += count

	return nil
}

// Backreference implements Sink.
func (r *CommandRecorder) Backreference(offset, count int) error {
	if err := checkBackreference(offset, count, r.produced); err != nil {
		return err
	}

	r.Commands = append(r.Commands, matchCommand(offset, count))
	r.produced += count

	return nil
}

// Produced returns the number of bytes the recorded commands expand to.
func (r *CommandRecorder) Produced() int {
	return r.produced
}
