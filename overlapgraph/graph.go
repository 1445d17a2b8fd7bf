// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlapgraph builds the directed overlap graph over a reliable
// k-mer set. Rather than layering on a general-purpose graph library,
// the graph is a compact representation built from two hash indices:
// node set R, edges recovered from a prefix index and a suffix index,
// O(|R|) to build.
package overlapgraph

import (
	"sort"

	"github.com/pila2002/Bioinformatyka/kmer"
)

// Edge is a weighted overlap edge u -> v with weight w in [1, k-1].
type Edge struct {
	To     string
	Weight int
}

// Graph is the overlap graph G = (R, E). Nodes are the k-mers of R;
// edges are built once at construction time and never mutated
// afterward.
type Graph struct {
	k     int
	nodes []string

	byPrefix map[string][]string // (k-1)-prefix -> nodes starting with it
	bySuffix map[string][]string // (k-1)-suffix -> nodes ending with it

	succ map[string][]Edge // highest-weight successor edges, deduped
	pred map[string][]Edge
}

// Build constructs the overlap graph over nodes (a reliable k-mer set),
// each of length k. Multi-edges between the same (u, v) pair collapse to
// a single highest-weight edge.
func Build(nodes []string, k int) *Graph {
	g := &Graph{
		k:        k,
		nodes:    append([]string(nil), nodes...),
		byPrefix: make(map[string][]string, len(nodes)),
		bySuffix: make(map[string][]string, len(nodes)),
		succ:     make(map[string][]Edge, len(nodes)),
		pred:     make(map[string][]Edge, len(nodes)),
	}
	sort.Strings(g.nodes)
	for _, x := range g.nodes {
		g.byPrefix[x[:k-1]] = append(g.byPrefix[x[:k-1]], x)
		g.bySuffix[x[len(x)-(k-1):]] = append(g.bySuffix[x[len(x)-(k-1):]], x)
	}

	best := make(map[[2]string]int)
	for _, u := range g.nodes {
		for _, v := range g.byPrefix[u[len(u)-(k-1):]] {
			w := kmer.OverlapUpTo(u, v, k-1)
			if w < 1 {
				continue
			}
			key := [2]string{u, v}
			if w > best[key] {
				best[key] = w
			}
		}
	}
	for pair, w := range best {
		u, v := pair[0], pair[1]
		g.succ[u] = append(g.succ[u], Edge{To: v, Weight: w})
		g.pred[v] = append(g.pred[v], Edge{To: u, Weight: w})
	}
	for _, u := range g.nodes {
		sortEdges(g.succ[u])
		sortEdges(g.pred[u])
	}
	return g
}

// sortEdges orders edges by weight descending, then target ascending,
// giving successors/predecessors a deterministic order.
func sortEdges(e []Edge) {
	sort.Slice(e, func(i, j int) bool {
		if e[i].Weight != e[j].Weight {
			return e[i].Weight > e[j].Weight
		}
		return e[i].To < e[j].To
	})
}

// Nodes returns the graph's node set in lexicographic order.
func (g *Graph) Nodes() []string { return g.nodes }

// Successors returns the edges u -> v with weight >= minOverlap, sorted
// by weight descending then v ascending.
func (g *Graph) Successors(u string, minOverlap int) []Edge {
	return filterMin(g.succ[u], minOverlap)
}

// Predecessors returns the edges v -> u (i.e. v such that v -> u is an
// edge) with weight >= minOverlap, symmetric to Successors.
func (g *Graph) Predecessors(u string, minOverlap int) []Edge {
	return filterMin(g.pred[u], minOverlap)
}

func filterMin(edges []Edge, minOverlap int) []Edge {
	if minOverlap <= 1 {
		out := make([]Edge, len(edges))
		copy(out, edges)
		return out
	}
	var out []Edge
	for _, e := range edges {
		if e.Weight >= minOverlap {
			out = append(out, e)
		}
	}
	return out
}

// OutDegree returns the number of (k-1)-overlap successors of u.
func (g *Graph) OutDegree(u string) int { return len(g.Successors(u, g.k-1)) }

// InDegree returns the number of (k-1)-overlap predecessors of u.
func (g *Graph) InDegree(u string) int { return len(g.Predecessors(u, g.k-1)) }

// K returns the k-mer length the graph was built with.
func (g *Graph) K() int { return g.k }
