// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extend implements the adaptive path extender: a
// bounded-backtracking walk that appends one base per step via four
// graded strategies (standard, aggressive, conservative, desperate)
// until the reconstruction reaches its target length.
//
// Every strategy returns an explicit (value, ok) pair rather than
// raising an exception for "no candidate found", the escalation ladder
// is a plain state machine, and randomness (used only by the desperate
// strategy) flows through an explicit *rand.Rand owned by this call,
// never process-global state.
package extend

import (
	"math/rand"
	"sort"
	"time"

	"github.com/pila2002/Bioinformatyka/kmer"
	"github.com/pila2002/Bioinformatyka/overlapgraph"
	"github.com/pila2002/Bioinformatyka/reliability"
	"github.com/pila2002/Bioinformatyka/seqbuf"
	"github.com/pila2002/Bioinformatyka/spectrum"
)

// Options are the extender's tunable parameters.
type Options struct {
	CandidateSize  int // 0 means "use the mode default"
	MaxIterations  int
	MaxBacktracks  int
	WallTime       time.Duration
	MaxDesperation int
}

// Stats reports what happened during extension (feeds the caller's
// result summary).
type Stats struct {
	Iterations  int
	Backtracks  int
	Desperation int
	Incomplete  bool
	Elapsed     time.Duration
}

type level int

const (
	levelStandard level = iota
	levelAggressive
	levelConservative
	levelDesperate
)

// candidateSizeFor returns the mode default for candidate_size, unless
// overridden by opts.
func candidateSizeFor(mode spectrum.Mode, opts Options) int {
	if opts.CandidateSize > 0 {
		return opts.CandidateSize
	}
	switch mode {
	case spectrum.Conservative:
		return 8
	case spectrum.Aggressive:
		return 20
	default:
		return 30
	}
}

// minOverlapForJumpFor returns the mode-tuned minimum overlap floor used
// by the aggressive-jump strategy's overlap search.
func minOverlapForJumpFor(mode spectrum.Mode, k int) int {
	var w int
	switch mode {
	case spectrum.Conservative:
		w = k - 1
	case spectrum.Aggressive:
		w = k - 2
	default:
		w = k - 3
	}
	if w < 1 {
		w = 1
	}
	return w
}

func deadKey(tail string, b byte) string {
	return tail + "|" + string(b)
}

// Run extends buf in place from position filled up to buf.Len(),
// consuming unused k-mers of r. It returns the final filled length and
// the run's statistics; Incomplete is set whenever the target length was
// not reached within budget.
func Run(buf *seqbuf.Buffer, filled int, g *overlapgraph.Graph, sp *spectrum.Spectrum, r *reliability.Set, mode spectrum.Mode, opts Options, rng *rand.Rand) (int, Stats) {
	n, k := buf.Len(), sp.K
	used := make(map[string]bool)
	dead := make(map[string]bool)
	candSize := candidateSizeFor(mode, opts)
	jumpFloor := minOverlapForJumpFor(mode, k)

	if filled >= k {
		seeded := buf.Prefix(filled)
		for i := 0; i+k <= len(seeded); i++ {
			used[seeded[i:i+k]] = true
		}
	}

	lvl := levelStandard
	failStd, failAgg, failCons := 0, 0, 0
	var stats Stats
	start := time.Now()

extendLoop:
	for filled < n {
		if stats.Iterations >= opts.MaxIterations || stats.Backtracks >= opts.MaxBacktracks || time.Since(start) >= opts.WallTime {
			stats.Incomplete = true
			break
		}
		stats.Iterations++

		tail := currentTail(buf, filled, k)

		switch lvl {
		case levelStandard:
			b, ok := tryStandard(tail, g, sp, r, used, dead)
			if ok {
				commitByte(buf, &filled, used, k, b)
				failStd = 0
			} else {
				failStd++
				if failStd >= 3 {
					lvl, failStd = levelAggressive, 0
				}
			}
		case levelAggressive:
			app, ok := tryAggressive(tail, g, r, used, dead, candSize, jumpFloor)
			if ok {
				commitString(buf, &filled, used, k, app)
				lvl, failAgg = levelStandard, 0
			} else {
				failAgg++
				if failAgg >= 2 {
					lvl, failAgg = levelConservative, 0
				}
			}
		case levelConservative:
			app, ok := tryConservative(tail, r, used, dead)
			if ok {
				commitString(buf, &filled, used, k, app)
				lvl, failCons = levelStandard, 0
			} else {
				failCons++
				if failCons >= 1 {
					lvl, failCons = levelDesperate, 0
				}
			}
		case levelDesperate:
			if stats.Desperation >= opts.MaxDesperation {
				if !backtrack(buf, &filled, used, dead, k) {
					stats.Incomplete = true
					break extendLoop
				}
				stats.Backtracks++
				lvl = levelStandard
				continue
			}
			app, ok := tryDesperate(tail, r, used, rng)
			stats.Desperation++
			if ok {
				commitString(buf, &filled, used, k, app)
				lvl = levelStandard
			} else {
				if !backtrack(buf, &filled, used, dead, k) {
					stats.Incomplete = true
					break extendLoop
				}
				stats.Backtracks++
				lvl = levelStandard
			}
		}
	}

	stats.Elapsed = time.Since(start)
	if filled < n {
		stats.Incomplete = true
	}
	return filled, stats
}

// currentTail returns suffix(S, k-1) for the sequence built so far.
func currentTail(buf *seqbuf.Buffer, filled, k int) string {
	s := buf.Prefix(filled)
	if len(s) > k-1 {
		return s[len(s)-(k-1):]
	}
	return s
}

// commitByte appends a single base, updating the used-set with whatever
// new k-window it completes.
func commitByte(buf *seqbuf.Buffer, filled *int, used map[string]bool, k int, b byte) {
	buf.SetByte(*filled, b)
	*filled++
	if *filled >= k {
		w := buf.Prefix(*filled)
		used[w[len(w)-k:]] = true
	}
}

// commitString appends s one byte at a time so every newly completed
// k-window is recorded in U, matching the jump strategies' "each new
// k-window is added to U" rule. s is clamped to the buffer's remaining
// room so a jump landing near the end never advances filled past n.
func commitString(buf *seqbuf.Buffer, filled *int, used map[string]bool, k int, s string) {
	if room := buf.Len() - *filled; len(s) > room {
		s = s[:room]
	}
	for i := 0; i < len(s); i++ {
		commitByte(buf, filled, used, k, s[i])
	}
}

// backtrack pops the last committed base, records the (tail, base) pair
// in dead so future Standard steps avoid repeating it, and returns false
// once the sequence is down to k bases (a single k-mer), which is never
// popped.
func backtrack(buf *seqbuf.Buffer, filled *int, used map[string]bool, dead map[string]bool, k int) bool {
	if *filled <= k {
		return false
	}
	last := buf.At(*filled - 1)
	tailBefore := currentTail(buf, *filled-1, k)
	if *filled >= k {
		w := buf.Prefix(*filled)
		delete(used, w[len(w)-k:])
	}
	dead[deadKey(tailBefore, last)] = true
	*filled--
	return true
}

// tryStandard extends the tail by a single reliable base, preferring the
// candidate with the most successors in g, then the highest remaining
// spectrum multiplicity, then lexicographic order.
func tryStandard(tail string, g *overlapgraph.Graph, sp *spectrum.Spectrum, r *reliability.Set, used, dead map[string]bool) (byte, bool) {
	type cand struct {
		b      byte
		w      string
		outdeg int
		mult   int
	}
	var cands []cand
	for _, b := range []byte{'A', 'C', 'G', 'T'} {
		w := tail + string(b)
		if dead[deadKey(tail, b)] || used[w] || !r.Contains(w) {
			continue
		}
		cands = append(cands, cand{b: b, w: w, outdeg: g.OutDegree(w), mult: sp.Count(w)})
	}
	if len(cands) == 0 {
		return 0, false
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].outdeg != cands[j].outdeg {
			return cands[i].outdeg > cands[j].outdeg
		}
		if cands[i].mult != cands[j].mult {
			return cands[i].mult > cands[j].mult
		}
		return cands[i].b < cands[j].b
	})
	return cands[0].b, true
}

// tryAggressive picks among the top candidateSize unused reliable
// k-mers by out-degree, jumps to whichever overlaps the tail the most
// (breaking ties by out-degree), and appends the non-overlapping
// remainder.
func tryAggressive(tail string, g *overlapgraph.Graph, r *reliability.Set, used, dead map[string]bool, candidateSize, jumpFloor int) (string, bool) {
	k := len(tail) + 1
	type pooled struct {
		c      string
		outdeg int
	}
	var pool []pooled
	for _, c := range r.List() {
		if used[c] {
			continue
		}
		pool = append(pool, pooled{c: c, outdeg: g.OutDegree(c)})
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].outdeg != pool[j].outdeg {
			return pool[i].outdeg > pool[j].outdeg
		}
		return pool[i].c < pool[j].c
	})
	if len(pool) > candidateSize {
		pool = pool[:candidateSize]
	}

	bestC, bestO, bestOutdeg := "", -1, -1
	for _, p := range pool {
		o := kmer.OverlapUpTo(tail, p.c, k-1)
		if o < jumpFloor {
			continue
		}
		if dead[deadKey(tail, p.c[o])] {
			continue
		}
		if o > bestO || (o == bestO && p.outdeg > bestOutdeg) {
			bestC, bestO, bestOutdeg = p.c, o, p.outdeg
		}
	}
	if bestC == "" {
		return "", false
	}
	return bestC[bestO:], true
}

// tryConservative picks among unused k-mers overlapping the tail by at
// least k-2, preferring the one nearest to the tail by Hamming distance.
func tryConservative(tail string, r *reliability.Set, used, dead map[string]bool) (string, bool) {
	k := len(tail) + 1
	type pooled struct {
		c   string
		o   int
		ham int
	}
	var pool []pooled
	for _, c := range r.List() {
		if used[c] {
			continue
		}
		o := kmer.OverlapUpTo(tail, c, k-1)
		if o < k-2 {
			continue
		}
		if dead[deadKey(tail, c[o])] {
			continue
		}
		pool = append(pool, pooled{c: c, o: o, ham: hamming(tail, c[:len(tail)])})
	}
	if len(pool) == 0 {
		return "", false
	}
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].ham != pool[j].ham {
			return pool[i].ham < pool[j].ham
		}
		if pool[i].o != pool[j].o {
			return pool[i].o > pool[j].o
		}
		return pool[i].c < pool[j].c
	})
	best := pool[0]
	return best.c[best.o:], true
}

// tryDesperate picks a uniformly random unused reliable k-mer and
// prefixes it with a single pad base chosen to avoid immediately
// reintroducing an already-consumed k-window.
func tryDesperate(tail string, r *reliability.Set, used map[string]bool, rng *rand.Rand) (string, bool) {
	var unused []string
	for _, c := range r.List() {
		if !used[c] {
			unused = append(unused, c)
		}
	}
	if len(unused) == 0 {
		return "", false
	}
	sort.Strings(unused)
	c := unused[rng.Intn(len(unused))]

	pad := byte('A')
	if len(tail) > 0 {
		for _, p := range []byte{'A', 'C', 'G', 'T'} {
			firstWindow := tail + string(p)
			if !used[firstWindow] {
				pad = p
				break
			}
		}
	}
	return string(pad) + c, true
}

func hamming(a, b string) int {
	h := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			h++
		}
	}
	return h
}
