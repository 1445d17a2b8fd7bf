// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kmer provides the k-mer primitive: a fixed-length string over
// {A,C,G,T} with an O(k) overlap computation between any two k-mers.
//
// A k-mer is kept as a plain string rather than wrapped in a richer
// sequence type. The hot paths in this repository (overlap graph
// construction, the extender's per-base loop) run this primitive millions
// of times; a flat byte string avoids the dynamic-typing overhead a
// general sequence abstraction would add.
package kmer

import (
	"fmt"

	"github.com/biogo/biogo/alphabet"
)

// KMer is an immutable oligonucleotide of fixed length k over {A,C,G,T}.
// Equality is plain string equality; hashing (as a Go map key) is
// position-independent.
type KMer = string

// Validate checks that s is non-empty and every byte belongs to the DNA
// alphabet. It reports the first offending byte's position.
func Validate(s string) error {
	if len(s) == 0 {
		return fmt.Errorf("kmer: empty k-mer")
	}
	for i := 0; i < len(s); i++ {
		if alphabet.DNA.IndexOf(alphabet.Letter(s[i])) < 0 {
			return fmt.Errorf("kmer: invalid base %q at position %d in %q", s[i], i, s)
		}
	}
	return nil
}

// ValidateAll validates every k-mer in spectrum and additionally requires
// each one to have length exactly k.
func ValidateAll(spectrum []string, k int) error {
	if len(spectrum) == 0 {
		return fmt.Errorf("kmer: empty spectrum")
	}
	for i, s := range spectrum {
		if len(s) != k {
			return fmt.Errorf("kmer: element %d has length %d, want %d", i, len(s), k)
		}
		if err := Validate(s); err != nil {
			return err
		}
	}
	return nil
}

// Overlap returns the length of the longest suffix of u that equals a
// prefix of v. The result is in [0, min(len(u), len(v))]. Self-overlap
// (u == v) is permitted and handled the same as any other pair.
func Overlap(u, v string) int {
	max := len(u)
	if len(v) < max {
		max = len(v)
	}
	return OverlapUpTo(u, v, max)
}

// OverlapUpTo is Overlap bounded by maxW: it never reports an overlap
// longer than maxW even if a longer suffix/prefix match exists. The
// overlap graph uses this to cap edge weights below k even when two
// k-mers happen to be identical, which would otherwise yield a
// degenerate full-length match.
func OverlapUpTo(u, v string, maxW int) int {
	max := maxW
	if len(u) < max {
		max = len(u)
	}
	if len(v) < max {
		max = len(v)
	}
	for w := max; w >= 1; w-- {
		if u[len(u)-w:] == v[:w] {
			return w
		}
	}
	return 0
}

// Prefix returns the first w bytes of s.
func Prefix(s string, w int) string { return s[:w] }

// Suffix returns the last w bytes of s.
func Suffix(s string, w int) string { return s[len(s)-w:] }

// HomopolymerRun returns the length of the longest run of a single
// repeated base in s.
func HomopolymerRun(s string) int {
	if len(s) == 0 {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}

// DistinctBases returns the number of distinct bases present in s.
func DistinctBases(s string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			n++
		}
	}
	return n
}
