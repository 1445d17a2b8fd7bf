// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merge

import "testing"

func TestMergeStringsOverlap(t *testing.T) {
	// "ACGTT" and "GTTAC" overlap by 3 ("GTT") >= k-1=3.
	got := MergeStrings([]string{"ACGTT", "GTTAC"}, 4)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1: %v", len(got), got)
	}
	if got[0] != "ACGTTAC" {
		t.Errorf("merged = %q, want ACGTTAC", got[0])
	}
}

func TestMergeStringsNoOverlapStaysSeparate(t *testing.T) {
	got := MergeStrings([]string{"AAAA", "CCCC"}, 4)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2 (no overlap >= k-1): %v", len(got), got)
	}
}

func TestMergeStringsSortedLongestFirst(t *testing.T) {
	got := MergeStrings([]string{"AAAA", "CCCCCCC", "GGGG"}, 4)
	for i := 1; i < len(got); i++ {
		if len(got[i-1]) < len(got[i]) {
			t.Errorf("not sorted longest-first: %v", got)
		}
	}
}

func TestMergeStringsGreedyPicksLargestOverlap(t *testing.T) {
	// "TACGTAC"'s suffix "ACGTAC" (length 6) matches "ACGTACG"'s prefix,
	// a larger overlap than the reverse pairing (length 4), so the greedy
	// step must pick TACGTAC+G over ACGTACG+TAC.
	got := MergeStrings([]string{"ACGTACG", "TACGTAC"}, 4)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1: %v", len(got), got)
	}
	if got[0] != "TACGTACG" {
		t.Errorf("merged = %q, want TACGTACG", got[0])
	}
}

func TestMergeThreeWayChain(t *testing.T) {
	// Same backbone as the overlapgraph/contig chain tests: ACGT -> CGTT
	// -> GTTA, each overlapping its neighbor by exactly k-1=3, merging
	// down to a single "ACGTTA" backbone regardless of input order.
	got := MergeStrings([]string{"ACGT", "CGTT", "GTTA"}, 4)
	if len(got) != 1 {
		t.Fatalf("expected a single merged backbone, got %v", got)
	}
	if got[0] != "ACGTTA" {
		t.Errorf("merged = %q, want ACGTTA", got[0])
	}
}
