// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqbuf

import "testing"

func TestNewAllGround(t *testing.T) {
	b, err := New(5, 'N')
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
	if got := b.String(); got != "NNNNN" {
		t.Errorf("String() = %q, want NNNNN", got)
	}
}

func TestSetByteThenRead(t *testing.T) {
	b, _ := New(4, 'N')
	if err := b.SetByte(0, 'A'); err != nil {
		t.Fatalf("SetByte: %v", err)
	}
	if err := b.SetByte(2, 'C'); err != nil {
		t.Fatalf("SetByte: %v", err)
	}
	if got := b.String(); got != "ANCN" {
		t.Errorf("String() = %q, want ANCN", got)
	}
	if got := b.At(0); got != 'A' {
		t.Errorf("At(0) = %q, want A", got)
	}
	if got := b.At(1); got != 'N' {
		t.Errorf("At(1) = %q, want N (untouched ground)", got)
	}
}

func TestSetByteOutOfRange(t *testing.T) {
	b, _ := New(3, 'N')
	if err := b.SetByte(-1, 'A'); err == nil {
		t.Error("SetByte(-1, ...) should error")
	}
	if err := b.SetByte(3, 'A'); err == nil {
		t.Error("SetByte(3, ...) should error out of range for length-3 buffer")
	}
}

func TestSetStringCommitsRun(t *testing.T) {
	b, _ := New(6, 'N')
	if err := b.SetString(1, "ACG"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if got := b.String(); got != "NACGNN" {
		t.Errorf("String() = %q, want NACGNN", got)
	}
	if got := b.At(2); got != 'C' {
		t.Errorf("At(2) = %q, want C", got)
	}
}

func TestSetStringOverrun(t *testing.T) {
	b, _ := New(4, 'N')
	if err := b.SetString(2, "ACG"); err == nil {
		t.Error("SetString overrunning the buffer should error")
	}
}

func TestPrefixReflectsPartialFill(t *testing.T) {
	b, _ := New(6, 'N')
	_ = b.SetByte(0, 'A')
	_ = b.SetByte(1, 'C')
	if got := b.Prefix(2); got != "AC" {
		t.Errorf("Prefix(2) = %q, want AC", got)
	}
	if got := b.Prefix(4); got != "ACNN" {
		t.Errorf("Prefix(4) = %q, want ACNN (unfilled tail pads)", got)
	}
}

func TestPrefixClampsToLength(t *testing.T) {
	b, _ := New(3, 'N')
	if got := b.Prefix(10); got != "NNN" {
		t.Errorf("Prefix(10) = %q, want NNN (clamped to buffer length)", got)
	}
	if got := b.Prefix(0); got != "" {
		t.Errorf("Prefix(0) = %q, want empty", got)
	}
}
