// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reliability implements the mode-gated filter that selects the
// trusted subset of k-mers used by the rest of the pipeline.
package reliability

import (
	"github.com/pila2002/Bioinformatyka/kmer"
	"github.com/pila2002/Bioinformatyka/spectrum"
)

// Set is the reliable subset R: a set of unique k-mers flagged reliable.
// Membership is final once built.
type Set struct {
	members map[string]struct{}
}

// Contains reports whether x is in the reliable set.
func (r *Set) Contains(x string) bool {
	_, ok := r.members[x]
	return ok
}

// Len returns the number of k-mers in the reliable set.
func (r *Set) Len() int { return len(r.members) }

// List returns the reliable k-mers in no particular order.
func (r *Set) List() []string {
	out := make([]string, 0, len(r.members))
	for x := range r.members {
		out = append(out, x)
	}
	return out
}

func newSet(members []string) *Set {
	m := make(map[string]struct{}, len(members))
	for _, x := range members {
		m[x] = struct{}{}
	}
	return &Set{members: m}
}

// thresholds holds the mode-dependent reliability parameters.
type thresholds struct {
	minDistinctBases int
	minEntropyBits   float64
	requireNeighbor  bool
}

func thresholdsFor(mode spectrum.Mode) thresholds {
	switch mode {
	case spectrum.Conservative:
		return thresholds{minDistinctBases: 3, minEntropyBits: 1.4, requireNeighbor: false}
	case spectrum.Aggressive:
		return thresholds{minDistinctBases: 3, minEntropyBits: 1.2, requireNeighbor: true}
	default: // Rescue
		return thresholds{minDistinctBases: 0, minEntropyBits: 0, requireNeighbor: true}
	}
}

// isEntropyReliable reports whether x clears the entropy bar: distinct
// bases across its k positions >= threshold, OR its own Shannon entropy
// >= the mode's threshold.
func isEntropyReliable(x string, t thresholds) bool {
	if t.minDistinctBases == 0 {
		return true
	}
	if kmer.DistinctBases(x) >= t.minDistinctBases {
		return true
	}
	return spectrum.BaseEntropyBits(x) >= t.minEntropyBits
}

// hasOverlapNeighbor reports whether some other k-mer in the spectrum
// overlaps x by k-1 at either end (local consistency).
func hasOverlapNeighbor(x string, bySuffix, byPrefix map[string][]string) bool {
	j := x[:len(x)-1] // prefix of length k-1: matches suffix index for predecessors
	for _, y := range bySuffix[j] {
		if y != x {
			return true
		}
	}
	j2 := x[1:] // suffix of length k-1: matches prefix index for successors
	for _, y := range byPrefix[j2] {
		if y != x {
			return true
		}
	}
	return false
}

// buildOverlapIndex groups the unique k-mers of sp by their length-(k-1)
// prefix and suffix, the same two hash indices overlapgraph.Build uses.
func buildOverlapIndex(unique []string, k int) (byPrefix, bySuffix map[string][]string) {
	byPrefix = make(map[string][]string, len(unique))
	bySuffix = make(map[string][]string, len(unique))
	for _, x := range unique {
		p := x[:k-1]
		s := x[1:]
		byPrefix[p] = append(byPrefix[p], x)
		bySuffix[s] = append(bySuffix[s], x)
	}
	return byPrefix, bySuffix
}

// Filter selects the reliable subset of sp's unique k-mers under the
// thresholds implied by mode. On failure (|R| < 2) it re-runs once under
// the rescue thresholds (unless mode already is rescue), finally falling
// back to the full unique spectrum.
func Filter(sp *spectrum.Spectrum, mode spectrum.Mode) *Set {
	r := filterOnce(sp, mode)
	if r.Len() >= 2 {
		return r
	}
	if mode != spectrum.Rescue {
		r = filterOnce(sp, spectrum.Rescue)
		if r.Len() >= 2 {
			return r
		}
	}
	// Still degenerate: fall back to the full unique spectrum.
	return newSet(sp.SortedUnique())
}

func filterOnce(sp *spectrum.Spectrum, mode spectrum.Mode) *Set {
	t := thresholdsFor(mode)
	unique := sp.SortedUnique()
	byPrefix, bySuffix := buildOverlapIndex(unique, sp.K)

	var homopolyMax int
	if sp.K%2 == 0 {
		homopolyMax = sp.K / 2
	} else {
		homopolyMax = (sp.K + 1) / 2
	}

	var members []string
	for _, x := range unique {
		if kmer.HomopolymerRun(x) > homopolyMax {
			continue
		}
		if !isEntropyReliable(x, t) {
			continue
		}
		if t.requireNeighbor && !hasOverlapNeighbor(x, bySuffix, byPrefix) {
			continue
		}
		members = append(members, x)
	}
	if len(members) == 0 {
		// Ties: all k-mers excluded. Fall back to the full unique spectrum.
		return newSet(unique)
	}
	return newSet(members)
}
