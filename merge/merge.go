// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merge implements the greedy pairwise contig merger: repeatedly
// join the two contigs with the longest suffix/prefix overlap until no
// pair overlaps enough to merge.
package merge

import (
	"sort"

	"github.com/pila2002/Bioinformatyka/contig"
	"github.com/pila2002/Bioinformatyka/kmer"
)

// Merge greedily merges contigs by their longest suffix/prefix overlap,
// repeating until no pair overlaps by at least k-1, and returns the
// resulting backbones sorted longest-first.
func Merge(contigs []contig.Contig, k int) []string {
	seqs := make([]string, len(contigs))
	for i, c := range contigs {
		seqs[i] = c.Sequence
	}
	return MergeStrings(seqs, k)
}

// MergeStrings is Merge operating directly on sequences, split out for
// testability.
func MergeStrings(seqs []string, k int) []string {
	backbones := append([]string(nil), seqs...)
	for {
		bi, bj, bestO := -1, -1, k-2 // must find overlap >= k-1 to merge
		for i := 0; i < len(backbones); i++ {
			for j := 0; j < len(backbones); j++ {
				if i == j {
					continue
				}
				maxW := len(backbones[j]) - 1
				if la := len(backbones[i]) - 1; la < maxW {
					maxW = la
				}
				if maxW < k-1 {
					continue
				}
				o := kmer.OverlapUpTo(backbones[i], backbones[j], maxW)
				if o < k-1 {
					continue
				}
				if o > bestO || (o == bestO && better(i, j, bi, bj, backbones)) {
					bi, bj, bestO = i, j, o
				}
			}
		}
		if bi < 0 {
			break
		}
		merged := backbones[bi] + backbones[bj][bestO:]
		next := make([]string, 0, len(backbones)-1)
		for idx, s := range backbones {
			if idx == bi || idx == bj {
				continue
			}
			next = append(next, s)
		}
		next = append(next, merged)
		backbones = next
	}
	sortByLengthDesc(backbones)
	return backbones
}

// better implements the lexicographic tie-break on (A, B) when two
// candidate pairs have equal overlap length.
func better(i, j, bi, bj int, backbones []string) bool {
	if bi < 0 {
		return true
	}
	a, b := backbones[i], backbones[j]
	ca, cb := backbones[bi], backbones[bj]
	if a != ca {
		return a < ca
	}
	return b < cb
}

func sortByLengthDesc(s []string) {
	sort.Slice(s, func(i, j int) bool {
		if len(s[i]) != len(s[j]) {
			return len(s[i]) > len(s[j])
		}
		return s[i] < s[j]
	})
}
