// Copyright ©2024 The Bioinformatyka Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contig extracts maximal non-branching paths ("unitigs") from
// the overlap graph: walk a de Bruijn-style graph end to end along
// nodes with exactly one successor and one predecessor, the way a
// standard contig assembler would.
package contig

import (
	"sort"

	"github.com/pila2002/Bioinformatyka/overlapgraph"
)

// Contig is a maximal non-branching walk in the (k-1)-overlap subgraph,
// materialized to its concatenated sequence.
type Contig struct {
	Sequence string
	Nodes    []string
	Circular bool
}

// Extract partitions every node of g into exactly one Contig. A node
// qualifies as a contig start when its in-degree isn't exactly 1 ("no
// unique predecessor to extend from"), plus one extra case isStart below
// accounts for: a node whose sole predecessor itself branches elsewhere
// also starts a new contig, since that predecessor's walk cannot
// continue into it. Isolated cycles, where no node ever qualifies as a
// start, are collected afterward and opened at their lexicographically
// smallest member.
func Extract(g *overlapgraph.Graph) []Contig {
	k := g.K()

	visited := make(map[string]bool, len(g.Nodes()))
	var contigs []Contig

	nodes := append([]string(nil), g.Nodes()...)
	sort.Strings(nodes)

	for _, u := range nodes {
		if visited[u] || !isStart(g, u) {
			continue
		}
		path := walkForward(g, u, k)
		for _, n := range path {
			visited[n] = true
		}
		contigs = append(contigs, buildContig(path, false))
	}

	// Remaining unvisited nodes form isolated cycles with no start node.
	for _, u := range nodes {
		if visited[u] {
			continue
		}
		cycle := walkCycle(g, u, k, visited)
		contigs = append(contigs, buildContig(cycle, true))
	}

	sort.Slice(contigs, func(i, j int) bool {
		if len(contigs[i].Sequence) != len(contigs[j].Sequence) {
			return len(contigs[i].Sequence) > len(contigs[j].Sequence)
		}
		return contigs[i].Sequence < contigs[j].Sequence
	})
	return contigs
}

// isStart reports whether u begins a new contig, with the
// branch-successor gap closed as described above.
func isStart(g *overlapgraph.Graph, u string) bool {
	preds := g.Predecessors(u, g.K()-1)
	if len(preds) != 1 {
		return true
	}
	return g.OutDegree(preds[0].To) != 1
}

// walkForward extends a contig from start for as long as the current
// node has exactly one successor and that successor is not itself a
// start.
func walkForward(g *overlapgraph.Graph, start string, k int) []string {
	path := []string{start}
	cur := start
	for g.OutDegree(cur) == 1 {
		next := g.Successors(cur, k-1)[0].To
		if isStart(g, next) {
			break
		}
		path = append(path, next)
		cur = next
	}
	return path
}

// walkCycle walks a pure 1-in-1-out cycle starting from the
// lexicographically smallest unvisited member, marking every member
// visited, and truncates at that start node rather than repeating it.
func walkCycle(g *overlapgraph.Graph, start string, k int, visited map[string]bool) []string {
	// Find the lexicographically smallest node in this cycle first.
	members := []string{start}
	visitedLocal := map[string]bool{start: true}
	cur := start
	for {
		next := g.Successors(cur, k-1)[0].To
		if next == start {
			break
		}
		members = append(members, next)
		visitedLocal[next] = true
		cur = next
	}
	sort.Strings(members)
	minNode := members[0]

	// Rebuild the path starting at minNode.
	path := []string{minNode}
	cur = minNode
	for {
		next := g.Successors(cur, k-1)[0].To
		if next == minNode {
			break
		}
		path = append(path, next)
		cur = next
	}
	for _, m := range path {
		visited[m] = true
	}
	return path
}

// buildContig concatenates a node path into its overlap-joined sequence:
// the first node in full, then each subsequent node's last byte, since
// consecutive nodes overlap by exactly k-1.
func buildContig(path []string, circular bool) Contig {
	seq := path[0]
	for _, n := range path[1:] {
		seq += n[len(n)-1:]
	}
	return Contig{Sequence: seq, Nodes: path, Circular: circular}
}
