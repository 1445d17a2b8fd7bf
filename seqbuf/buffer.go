// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqbuf provides a fixed-length, ground-padded sequence buffer:
// a partially-filled sequence represented as a github.com/biogo/store/step.Vector
// over a ground ("pad") value, overwritten in ranges as real sequence
// data arrives.
package seqbuf

import (
	"fmt"

	"github.com/biogo/store/step"
)

// base is the step.Equaler stored at each position of the buffer: a
// single committed (or ground-state) byte.
type base byte

func (b base) Equal(e step.Equaler) bool {
	o, ok := e.(base)
	return ok && b == o
}

// Buffer is a fixed-length byte sequence of length n, every position
// defaulting to a pad byte until explicitly set. Reading out an
// incomplete Buffer yields deterministic right-padding for free: any
// position never reached simply stays at its ground value.
type Buffer struct {
	vec *step.Vector
	n   int
	pad byte
}

// New allocates a Buffer of length n with every position defaulting to
// pad.
func New(n int, pad byte) (*Buffer, error) {
	v, err := step.New(0, n, base(pad))
	if err != nil {
		return nil, fmt.Errorf("seqbuf: %w", err)
	}
	return &Buffer{vec: v, n: n, pad: pad}, nil
}

// Len returns the buffer's fixed length n.
func (b *Buffer) Len() int { return b.n }

// SetByte commits c at position pos.
func (b *Buffer) SetByte(pos int, c byte) error {
	if pos < 0 || pos >= b.n {
		return fmt.Errorf("seqbuf: position %d out of range [0,%d)", pos, b.n)
	}
	// Splitting a committed run would leave its remainder after pos under
	// the same stringRun, read back from the string's first byte; recommit
	// that remainder as its own run so it starts at the right byte.
	if e, err := b.vec.At(pos); err == nil {
		if v, ok := e.(stringRun); ok {
			start, end := b.runBounds(pos)
			if pos+1 < end {
				b.vec.SetRange(pos+1, end, v[pos+1-start:])
			}
		}
	}
	b.vec.SetRange(pos, pos+1, base(c))
	return nil
}

// SetString commits s starting at position pos.
func (b *Buffer) SetString(pos int, s string) error {
	if pos < 0 || pos+len(s) > b.n {
		return fmt.Errorf("seqbuf: string of length %d at %d overruns buffer of length %d", len(s), pos, b.n)
	}
	b.vec.SetRange(pos, pos+len(s), stringRun(s))
	return nil
}

// stringRun is a multi-byte run stored as a single step.Equaler; it is
// expanded back to individual bytes only when read out via String/At.
type stringRun string

func (s stringRun) Equal(e step.Equaler) bool {
	o, ok := e.(stringRun)
	return ok && s == o
}

// At returns the byte committed at pos, or the pad byte if pos was never
// set (or falls inside a committed run, resolved to the corresponding
// byte of that run).
func (b *Buffer) At(pos int) byte {
	if pos < 0 || pos >= b.n {
		return b.pad
	}
	e, err := b.vec.At(pos)
	if err != nil {
		return b.pad
	}
	switch v := e.(type) {
	case base:
		return byte(v)
	case stringRun:
		// Locate pos within the run by scanning from the run's start;
		// Do below is used instead for bulk reads, this path only
		// serves single-position lookups.
		start, _ := b.runBounds(pos)
		return v[pos-start]
	}
	return b.pad
}

func (b *Buffer) runBounds(pos int) (start, end int) {
	start, end = pos, pos+1
	b.vec.Do(func(s, e int, _ step.Equaler) {
		if s <= pos && pos < e {
			start, end = s, e
		}
	})
	return start, end
}

// Prefix returns the first length bytes of the buffer as a string. It is
// the primary way callers inspect a Buffer while it is still being
// filled, since String always returns the full, pad-completed length.
func (b *Buffer) Prefix(length int) string {
	if length <= 0 {
		return ""
	}
	if length > b.n {
		length = b.n
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = b.pad
	}
	b.vec.Do(func(start, end int, e step.Equaler) {
		if start >= length {
			return
		}
		if end > length {
			end = length
		}
		switch v := e.(type) {
		case base:
			c := byte(v)
			for i := start; i < end; i++ {
				out[i] = c
			}
		case stringRun:
			copy(out[start:end], v[:end-start])
		}
	})
	return string(out)
}

// String reads out the full buffer, with the pad byte standing in for
// every position never explicitly set.
func (b *Buffer) String() string {
	out := make([]byte, b.n)
	for i := range out {
		out[i] = b.pad
	}
	b.vec.Do(func(start, end int, e step.Equaler) {
		switch v := e.(type) {
		case base:
			c := byte(v)
			for i := start; i < end; i++ {
				out[i] = c
			}
		case stringRun:
			copy(out[start:end], v)
		}
	})
	return string(out)
}
