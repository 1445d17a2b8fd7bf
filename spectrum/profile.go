// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mode is the categorical reconstruction mode produced by the profiler
// and threaded through every downstream threshold.
type Mode int

const (
	Conservative Mode = iota
	Aggressive
	Rescue
)

func (m Mode) String() string {
	switch m {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	case Rescue:
		return "rescue"
	default:
		return "unknown"
	}
}

// Downgrade returns the next mode in the one-way escalation ladder
// conservative -> aggressive -> rescue. Rescue downgrades to itself.
func (m Mode) Downgrade() Mode {
	switch m {
	case Conservative:
		return Aggressive
	case Aggressive:
		return Rescue
	default:
		return Rescue
	}
}

// Profile is the one-shot summary of a Spectrum. It is produced once and
// never mutated.
type Profile struct {
	Size             int
	UniqueCount      int
	DuplicationRatio float64
	CoverageRatio    float64
	Entropy          float64 // bits, in [0,2]
	Mode             Mode
}

// Profile computes the Profile for s. Profiling is a pure function of the
// spectrum's contents, so repeated calls are idempotent.
func (s *Spectrum) Profile() Profile {
	size := len(s.KMers)
	unique := len(s.counts)
	duplication := 1 - float64(unique)/float64(size)
	coverage := float64(size) / float64(s.Expected)
	entropy := BaseEntropyBits(s.KMers...)

	p := Profile{
		Size:             size,
		UniqueCount:      unique,
		DuplicationRatio: duplication,
		CoverageRatio:    coverage,
		Entropy:          entropy,
	}
	p.Mode = selectMode(p)
	return p
}

// selectMode applies the first matching rule, in order, to classify a
// profile's coverage/duplication/entropy statistics into a Mode.
func selectMode(p Profile) Mode {
	switch {
	case p.CoverageRatio >= 0.95 && p.CoverageRatio <= 1.05 && p.DuplicationRatio < 0.05 && p.Entropy > 1.9:
		return Conservative
	case p.CoverageRatio >= 0.80 && p.CoverageRatio <= 1.20 && p.Entropy > 1.7:
		return Aggressive
	default:
		return Rescue
	}
}

// BaseEntropyBits computes the base-2 Shannon entropy of the A/C/G/T
// frequency distribution across the concatenation of the given k-mers,
// or of a single k-mer's internal base composition when called with one
// argument.
//
// gonum's stat.Entropy reports entropy in nats (natural log); it is
// converted to bits, the usual convention for a four-symbol alphabet.
func BaseEntropyBits(kmers ...string) float64 {
	var counts [4]float64
	for _, km := range kmers {
		for i := 0; i < len(km); i++ {
			switch km[i] {
			case 'A':
				counts[0]++
			case 'C':
				counts[1]++
			case 'G':
				counts[2]++
			case 'T':
				counts[3]++
			}
		}
	}
	total := floats.Sum(counts[:])
	if total == 0 {
		return 0
	}
	p := make([]float64, 4)
	copy(p, counts[:])
	floats.Scale(1/total, p)
	nats := stat.Entropy(p)
	return nats / math.Ln2
}

// SortedUnique returns the distinct k-mers of s in lexicographic order,
// the ordering the graph and contig builders rely on for determinism.
func (s *Spectrum) SortedUnique() []string {
	u := s.Unique()
	sort.Strings(u)
	return u
}
