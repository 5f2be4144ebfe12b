// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// pathEdge is one edge of a root-to-⊤ path, as seen from whichever node the
// path is being walked from: node is the node whose own HI/LO edge this is,
// and hi records which of the two was taken.
type pathEdge struct {
	node int32
	hi   bool
}

// upperPaths enumerates every path from the true root down to n, inclusive
// of every edge walked, via n's parent-link list. There are exactly
// countUpper(n) of them (spec §4.F). This replaces the spec's incremental
// mixed-radix odometer (initial_choice/next_choice over visited/diff_points)
// with a plain recursive enumeration, memoized in the caller-supplied map
// since the same node is often reached by several upper walks; see
// DESIGN.md.
func (z *ZDD) upperPaths(n int32, memo map[int32][][]pathEdge) [][]pathEdge {
	if n == z.root {
		return [][]pathEdge{nil}
	}
	if cached, ok := memo[n]; ok {
		return cached
	}
	var out [][]pathEdge
	for p := z.table[n].parentsHead; p != nilPlink; p = z.getNext(p) {
		parent := p.nodeIndex()
		if !z.table[parent].active {
			continue
		}
		edge := pathEdge{node: parent, hi: p.isHi()}
		for _, prefix := range z.upperPaths(parent, memo) {
			path := make([]pathEdge, len(prefix)+1)
			copy(path, prefix)
			path[len(prefix)] = edge
			out = append(out, path)
		}
	}
	memo[n] = out
	return out
}

// lowerPaths enumerates every path from n down to ⊤, inclusive of every
// edge walked. There are exactly countHi(n)+countLo(n) of them.
func (z *ZDD) lowerPaths(n int32, memo map[int32][][]pathEdge) [][]pathEdge {
	switch n {
	case top:
		return [][]pathEdge{nil}
	case bot:
		return nil
	}
	if cached, ok := memo[n]; ok {
		return cached
	}
	node := &z.table[n]
	var out [][]pathEdge
	if node.countHi > 0 {
		out = append(out, z.prependEdge(pathEdge{node: n, hi: true}, z.lowerPaths(node.hi, memo))...)
	}
	if node.countLo > 0 {
		out = append(out, z.prependEdge(pathEdge{node: n, hi: false}, z.lowerPaths(node.lo, memo))...)
	}
	memo[n] = out
	return out
}

// lowerPathsForced enumerates lower paths starting at n0 with n0's own
// HI-edge forced: used when n0 is the node, on the covered column's chain,
// whose selection the current option is built around — the LO side was
// never a candidate. There are exactly countHi(n0) of them.
func (z *ZDD) lowerPathsForced(n0 int32, memo map[int32][][]pathEdge) [][]pathEdge {
	node := &z.table[n0]
	if node.countHi == 0 {
		return nil
	}
	return z.prependEdge(pathEdge{node: n0, hi: true}, z.lowerPaths(node.hi, memo))
}

func (z *ZDD) prependEdge(edge pathEdge, suffixes [][]pathEdge) [][]pathEdge {
	out := make([][]pathEdge, len(suffixes))
	for i, suf := range suffixes {
		path := make([]pathEdge, len(suf)+1)
		path[0] = edge
		copy(path[1:], suf)
		out[i] = path
	}
	return out
}

// trace2choice converts one upper path and one lower path, both through the
// same node n0, into the option they describe: every edge whose HI-bit is
// set contributes a choice for that edge's variable, plus n0's own variable
// (forced HI by construction of the lower path).
func (z *ZDD) trace2choice(n0 int32, upper, lower []pathEdge) []choice {
	out := make([]choice, 0, len(upper)+len(lower))
	for _, e := range upper {
		if e.hi {
			out = append(out, choice{v: z.table[e.node].v, node: e.node})
		}
	}
	out = append(out, choice{v: z.table[n0].v, node: n0})
	for _, e := range lower {
		if e.hi && e.node != n0 {
			out = append(out, choice{v: z.table[e.node].v, node: e.node})
		}
	}
	return out
}
