// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reconstruct implements the orchestrator that sequences the
// whole pipeline (spectrum -> profile -> reliability -> overlap graph ->
// contigs -> merge -> extend) into a single Reconstruct call.
package reconstruct

import (
	"math/rand"
	"sort"
	"time"

	"github.com/pila2002/Bioinformatyka/contig"
	"github.com/pila2002/Bioinformatyka/extend"
	"github.com/pila2002/Bioinformatyka/merge"
	"github.com/pila2002/Bioinformatyka/overlapgraph"
	"github.com/pila2002/Bioinformatyka/reliability"
	"github.com/pila2002/Bioinformatyka/seqbuf"
	"github.com/pila2002/Bioinformatyka/spectrum"
)

// padByte is the ground value a Reconstruction reads back as wherever
// the extender never reached.
const padByte = 'A'

// Options are the reconstruction's tunable parameters. A zero Options
// uses every default named below.
type Options struct {
	CandidateSize  int
	ErrorThreshold float64       // 0 means 0.15; mode-downgrade coverage gap
	MaxIterations  int           // 0 means 4*n
	MaxBacktracks  int           // 0 means 10
	MaxDesperation int           // 0 means ceil(n/k)
	WallTime       time.Duration // 0 means 30s
	Seed           int64
	ForceMode      *spectrum.Mode // overrides the profiler's chosen mode
}

func (o Options) withDefaults(n, k int) Options {
	if o.ErrorThreshold <= 0 {
		o.ErrorThreshold = 0.15
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 4 * n
	}
	if o.MaxBacktracks <= 0 {
		o.MaxBacktracks = 10
	}
	if o.MaxDesperation <= 0 {
		o.MaxDesperation = (n + k - 1) / k
	}
	if o.WallTime <= 0 {
		o.WallTime = 30 * time.Second
	}
	return o
}

// Result reports the reconstructed sequence and the run's statistics.
type Result struct {
	Sequence   string
	Mode       spectrum.Mode
	Iterations int
	Backtracks int
	Incomplete bool
	Elapsed    time.Duration
}

// Reconstruct runs the full pipeline over raw (the input spectrum) for a
// target length n and k-mer length k, producing a Result of length n.
func Reconstruct(raw []string, n, k int, opts Options) (Result, error) {
	sp, err := spectrum.New(raw, n, k)
	if err != nil {
		return Result{}, err
	}
	opts = opts.withDefaults(n, k)
	rng := rand.New(rand.NewSource(opts.Seed))

	profile := sp.Profile()
	mode := profile.Mode
	if gap := profile.CoverageRatio - 1; gap > opts.ErrorThreshold || -gap > opts.ErrorThreshold {
		// The profiler's own rule-based mode already accounts for coverage via
		// fixed bounds; error_threshold is the caller-tunable knob layered on
		// top of that: a coverage gap wider than the caller is willing to
		// trust downgrades the mode one further step before the first attempt.
		mode = mode.Downgrade()
	}
	if opts.ForceMode != nil {
		mode = *opts.ForceMode
	}

	// A single attempt under the mode chosen above runs to completion or
	// exhausts its budget; an Incomplete result is returned as-is, never
	// retried under a new mode.
	return attempt(sp, mode, opts, rng), nil
}

// attempt runs one full pipeline pass under a fixed mode.
func attempt(sp *spectrum.Spectrum, mode spectrum.Mode, opts Options, rng *rand.Rand) Result {
	n, k := sp.N, sp.K
	r := reliability.Filter(sp, mode)
	g := overlapgraph.Build(r.List(), k)
	contigs := contig.Extract(g)
	backbones := merge.Merge(contigs, k)

	seed := chooseSeed(backbones, r, n)

	buf, err := seqbuf.New(n, padByte)
	if err != nil {
		// n was already validated >= k by spectrum.New; this cannot happen.
		return Result{Mode: mode, Incomplete: true}
	}
	filled := len(seed)
	if filled > n {
		filled = n
		seed = seed[:n]
	}
	buf.SetString(0, seed)

	if filled >= n {
		return Result{Sequence: buf.String(), Mode: mode}
	}

	extOpts := extend.Options{
		CandidateSize:  opts.CandidateSize,
		MaxIterations:  opts.MaxIterations,
		MaxBacktracks:  opts.MaxBacktracks,
		WallTime:       opts.WallTime,
		MaxDesperation: opts.MaxDesperation,
	}
	_, stats := extend.Run(buf, filled, g, sp, r, mode, extOpts, rng)

	return Result{
		Sequence:   buf.String(),
		Mode:       mode,
		Iterations: stats.Iterations,
		Backtracks: stats.Backtracks,
		Incomplete: stats.Incomplete,
		Elapsed:    stats.Elapsed,
	}
}

// chooseSeed picks the starting backbone: the longest merged backbone,
// or — when backbones is empty — the lexicographically smallest
// reliable k-mer.
func chooseSeed(backbones []string, r *reliability.Set, n int) string {
	if len(backbones) > 0 {
		longest := backbones[0]
		for _, b := range backbones[1:] {
			if len(b) > len(longest) {
				longest = b
			}
		}
		if len(longest) > n {
			longest = longest[:n]
		}
		return longest
	}
	list := r.List()
	if len(list) == 0 {
		return ""
	}
	sort.Strings(list)
	seed := list[0]
	if len(seed) > n {
		seed = seed[:n]
	}
	return seed
}
