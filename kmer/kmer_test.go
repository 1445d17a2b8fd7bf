// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kmer

import "testing"

func TestValidate(t *testing.T) {
	for _, tt := range []struct {
		name string
		s    string
		ok   bool
	}{
		{"empty", "", false},
		{"valid", "ACGT", true},
		{"lowercase rejected", "acgt", false},
		{"foreign base", "ACGX", false},
		{"single base", "A", true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.s)
			if (err == nil) != tt.ok {
				t.Errorf("Validate(%q) error = %v, want ok=%v", tt.s, err, tt.ok)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	if err := ValidateAll(nil, 3); err == nil {
		t.Error("ValidateAll(nil, 3) = nil, want error for empty spectrum")
	}
	if err := ValidateAll([]string{"ACG", "TAC"}, 3); err != nil {
		t.Errorf("ValidateAll valid spectrum: %v", err)
	}
	if err := ValidateAll([]string{"ACG", "TA"}, 3); err == nil {
		t.Error("ValidateAll with wrong-length element = nil, want error")
	}
	if err := ValidateAll([]string{"ACG", "TAX"}, 3); err == nil {
		t.Error("ValidateAll with foreign base = nil, want error")
	}
}

func TestOverlap(t *testing.T) {
	for _, tt := range []struct {
		u, v string
		want int
	}{
		{"ACGT", "GTAC", 2},
		{"ACGT", "TACG", 1},
		{"ACGT", "ACGT", 4},
		{"AAAA", "AAAA", 4},
		{"ACGT", "CCCC", 0},
		{"ACG", "CGTA", 2},
	} {
		if got := Overlap(tt.u, tt.v); got != tt.want {
			t.Errorf("Overlap(%q, %q) = %d, want %d", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestOverlapUpTo(t *testing.T) {
	// Even when u == v, the overlap graph caps weight at k-1, never the
	// full k-length match.
	if got := OverlapUpTo("ACGT", "ACGT", 3); got != 3 {
		t.Errorf("OverlapUpTo capped at 3 = %d, want 3", got)
	}
	if got := OverlapUpTo("ACGT", "GTAC", 3); got != 2 {
		t.Errorf("OverlapUpTo(ACGT, GTAC, 3) = %d, want 2", got)
	}
	if got := OverlapUpTo("ACGT", "CCCC", 3); got != 0 {
		t.Errorf("OverlapUpTo with no match = %d, want 0", got)
	}
}

func TestPrefixSuffix(t *testing.T) {
	if got := Prefix("ACGTAC", 3); got != "ACG" {
		t.Errorf("Prefix = %q, want ACG", got)
	}
	if got := Suffix("ACGTAC", 3); got != "TAC" {
		t.Errorf("Suffix = %q, want TAC", got)
	}
}

func TestHomopolymerRun(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want int
	}{
		{"", 0},
		{"A", 1},
		{"ACGT", 1},
		{"AAACGT", 3},
		{"ACGTTTT", 4},
		{"AAAA", 4},
	} {
		if got := HomopolymerRun(tt.s); got != tt.want {
			t.Errorf("HomopolymerRun(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestDistinctBases(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want int
	}{
		{"AAAA", 1},
		{"AACC", 2},
		{"ACGT", 4},
		{"", 0},
	} {
		if got := DistinctBases(tt.s); got != tt.want {
			t.Errorf("DistinctBases(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
