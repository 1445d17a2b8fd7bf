// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editdist

import "testing"

func TestDistanceIdentical(t *testing.T) {
	if d := Distance("ACGT", "ACGT"); d != 0 {
		t.Errorf("Distance = %d, want 0", d)
	}
}

func TestDistanceEmptyOperand(t *testing.T) {
	if d := Distance("", "ACGT"); d != 4 {
		t.Errorf("Distance(\"\", ACGT) = %d, want 4", d)
	}
	if d := Distance("ACGT", ""); d != 4 {
		t.Errorf("Distance(ACGT, \"\") = %d, want 4", d)
	}
}

func TestDistanceSingleSubstitution(t *testing.T) {
	if d := Distance("ACGT", "ACGA"); d != 1 {
		t.Errorf("Distance = %d, want 1", d)
	}
}

func TestDistanceSingleInsertion(t *testing.T) {
	if d := Distance("ACGT", "ACCGT"); d != 1 {
		t.Errorf("Distance = %d, want 1", d)
	}
}

func TestDistanceSingleDeletion(t *testing.T) {
	if d := Distance("ACCGT", "ACGT"); d != 1 {
		t.Errorf("Distance = %d, want 1", d)
	}
}

func TestDistanceCompletelyDifferent(t *testing.T) {
	if d := Distance("AAAA", "CCCC"); d != 4 {
		t.Errorf("Distance = %d, want 4", d)
	}
}

func TestSimilarityIdentical(t *testing.T) {
	if s := Similarity("ACGT", "ACGT"); s != 1 {
		t.Errorf("Similarity = %v, want 1", s)
	}
}

func TestSimilarityBothEmpty(t *testing.T) {
	if s := Similarity("", ""); s != 1 {
		t.Errorf("Similarity(\"\", \"\") = %v, want 1", s)
	}
}

func TestSimilarityPartialMatch(t *testing.T) {
	// "ACGT" vs "ACGA": distance 1, max length 4 -> similarity 0.75.
	if s := Similarity("ACGT", "ACGA"); s != 0.75 {
		t.Errorf("Similarity = %v, want 0.75", s)
	}
}
