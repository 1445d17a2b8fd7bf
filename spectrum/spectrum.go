// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum holds the input multiset of k-mers (the Spectrum) and
// the quality profiler that summarizes it into a Profile and a
// reconstruction Mode.
package spectrum

import (
	"fmt"

	"github.com/pila2002/Bioinformatyka/kmer"
)

// Spectrum is an immutable multiset of k-mers together with the
// parameters of the reconstruction problem it was drawn from.
type Spectrum struct {
	KMers    []string
	N        int
	K        int
	Expected int // n - k + 1

	counts map[string]int // multiplicity, computed once at New
}

// New validates spectrum against (n, k) and returns an immutable Spectrum.
// It returns an error for n < k, k < 2, k > 64, an empty spectrum, or any
// non-alphabet k-mer.
func New(raw []string, n, k int) (*Spectrum, error) {
	if k < 2 {
		return nil, fmt.Errorf("spectrum: k=%d must be >= 2", k)
	}
	if k > 64 {
		return nil, fmt.Errorf("spectrum: k=%d must be <= 64", k)
	}
	if n < k {
		return nil, fmt.Errorf("spectrum: n=%d must be >= k=%d", n, k)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("spectrum: empty spectrum")
	}
	if err := kmer.ValidateAll(raw, k); err != nil {
		return nil, err
	}
	cp := make([]string, len(raw))
	copy(cp, raw)
	counts := make(map[string]int, len(cp))
	for _, x := range cp {
		counts[x]++
	}
	return &Spectrum{
		KMers:    cp,
		N:        n,
		K:        k,
		Expected: n - k + 1,
		counts:   counts,
	}, nil
}

// UniqueCounts returns the multiplicity map over the distinct k-mers in
// the spectrum. Callers must not mutate the result.
func (s *Spectrum) UniqueCounts() map[string]int { return s.counts }

// Count returns the number of occurrences of kmer x in the spectrum.
func (s *Spectrum) Count(x string) int { return s.counts[x] }

// Unique returns the distinct k-mers of the spectrum, in no particular
// order.
func (s *Spectrum) Unique() []string {
	u := make([]string, 0, len(s.counts))
	for x := range s.counts {
		u = append(u, x)
	}
	return u
}
