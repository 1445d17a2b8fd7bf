// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen generates synthetic ground-truth sequences and corrupted
// spectra for exercising the reconstruction pipeline end to end (no
// ground truth exists in a real SBH run; gen stands in for the wet-lab
// sequencer).
package gen

import (
	"math/rand"
	"sort"
)

var bases = [4]byte{'A', 'C', 'G', 'T'}

// RandomDNA returns a uniformly random sequence of length n over
// {A,C,G,T}, seeded deterministically from seed.
func RandomDNA(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[rng.Intn(4)]
	}
	return string(out)
}

// Spectrum slices s into its full k-mer spectrum: the n-k+1 overlapping
// windows of length k.
func Spectrum(s string, k int) []string {
	if len(s) < k {
		return nil
	}
	out := make([]string, 0, len(s)-k+1)
	for i := 0; i+k <= len(s); i++ {
		out = append(out, s[i:i+k])
	}
	return out
}

// Corrupt returns a copy of spectrum with posRate of its entries dropped
// (negative errors) and negRate of that many random foreign k-mers
// mixed in (positive errors), modeling sequencer noise for the trial
// harness.
func Corrupt(spectrum []string, posRate, negRate float64, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	kept := make([]string, 0, len(spectrum))
	for _, x := range spectrum {
		if rng.Float64() < posRate {
			continue
		}
		kept = append(kept, x)
	}
	k := 0
	if len(spectrum) > 0 {
		k = len(spectrum[0])
	}
	extra := int(float64(len(spectrum)) * negRate)
	for i := 0; i < extra && k > 0; i++ {
		kept = append(kept, randomKMer(rng, k))
	}
	sort.Strings(kept)
	return kept
}

func randomKMer(rng *rand.Rand, k int) string {
	out := make([]byte, k)
	for i := range out {
		out[i] = bases[rng.Intn(4)]
	}
	return string(out)
}
