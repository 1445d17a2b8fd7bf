// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// sbh-trial runs a single synthetic SBH reconstruction trial and prints
// its outcome as one CSV row.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pila2002/Bioinformatyka/editdist"
	"github.com/pila2002/Bioinformatyka/gen"
	"github.com/pila2002/Bioinformatyka/reconstruct"
	"github.com/pila2002/Bioinformatyka/report"
)

func main() {
	length := flag.Int("length", 500, "ground-truth sequence length n.")
	k := flag.Int("k", 10, "k-mer length.")
	posErr := flag.Float64("pos_error", 0.0, "fraction of true k-mers dropped (negative error).")
	negErr := flag.Float64("neg_error", 0.0, "fraction of foreign k-mers injected (positive error).")
	candidates := flag.Int("candidates", 0, "candidate_size override; 0 uses the mode default.")
	seed := flag.Int64("seed", 1, "PRNG seed for generation and extension.")
	help := flag.Bool("help", false, "Print this usage message.")

	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if *k < 2 || *length < *k {
		log.Fatalf("sbh-trial: require k >= 2 and length >= k, got length=%d k=%d", *length, *k)
	}

	truth := gen.RandomDNA(*length, *seed)
	spec := gen.Spectrum(truth, *k)
	noisy := gen.Corrupt(spec, *posErr, *negErr, *seed+1)

	start := time.Now()
	res, err := reconstruct.Reconstruct(noisy, *length, *k, reconstruct.Options{
		CandidateSize: *candidates,
		Seed:          *seed + 2,
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("sbh-trial: %v", err)
	}

	row := report.Row{
		K:                   *k,
		N:                   *length,
		SeqLength:           len(res.Sequence),
		ErrorRate:           *posErr + *negErr,
		OriginalLength:      len(truth),
		ReconstructedLength: len(res.Sequence),
		Coverage:            float64(len(spec)) / float64(len(spec)+1),
		Accuracy:            editdist.Similarity(truth, res.Sequence),
		EditDistance:        editdist.Distance(truth, res.Sequence),
		RuntimeMs:           float64(elapsed.Microseconds()) / 1000,
		IsValid:             len(res.Sequence) == *length,
		Success:             !res.Incomplete,
		Repeat:              0,
	}

	w, err := report.NewWriter(os.Stdout)
	if err != nil {
		log.Fatalf("sbh-trial: %v", err)
	}
	if err := w.Write(row); err != nil {
		log.Fatalf("sbh-trial: %v", err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("sbh-trial: %v", err)
	}
	fmt.Fprintf(os.Stderr, "mode=%s iterations=%d backtracks=%d\n", res.Mode, res.Iterations, res.Backtracks)
}
