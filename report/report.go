// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report writes the CSV trial report: one plain struct of
// summary fields, written out a row at a time.
package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Row is one trial's outcome.
type Row struct {
	K                   int
	N                   int
	SeqLength           int
	ErrorRate           float64
	OriginalLength      int
	ReconstructedLength int
	Coverage            float64
	Accuracy            float64
	EditDistance        int
	RuntimeMs           float64
	IsValid             bool
	Success             bool
	Repeat              int
}

// Header is the column order Writer emits.
var Header = []string{
	"k", "n", "seq_length", "error_rate", "original_length",
	"reconstructed_length", "coverage", "accuracy", "edit_distance",
	"runtime", "is_valid", "success", "repeat",
}

// Writer streams Rows to an underlying CSV destination.
type Writer struct {
	cw *csv.Writer
}

// NewWriter wraps w in a csv.Writer and immediately writes the header.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return nil, err
	}
	return &Writer{cw: cw}, nil
}

// Write emits one row.
func (w *Writer) Write(r Row) error {
	rec := []string{
		strconv.Itoa(r.K),
		strconv.Itoa(r.N),
		strconv.Itoa(r.SeqLength),
		strconv.FormatFloat(r.ErrorRate, 'f', 4, 64),
		strconv.Itoa(r.OriginalLength),
		strconv.Itoa(r.ReconstructedLength),
		strconv.FormatFloat(r.Coverage, 'f', 4, 64),
		strconv.FormatFloat(r.Accuracy, 'f', 4, 64),
		strconv.Itoa(r.EditDistance),
		strconv.FormatFloat(r.RuntimeMs, 'f', 2, 64),
		strconv.FormatBool(r.IsValid),
		strconv.FormatBool(r.Success),
		strconv.Itoa(r.Repeat),
	}
	return w.cw.Write(rec)
}

// Flush flushes any buffered rows and reports the first write error, if
// any (the same pattern csv.Writer itself recommends).
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
