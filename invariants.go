// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// checkInvariants walks every active node and header and validates the five
// structural invariants of spec §3. It is O(active nodes + active headers).
// Load runs it once, after setup, under Sanity(true); Search never calls it.
func (z *ZDD) checkInvariants() error {
	if err := z.checkChainIntegrity(); err != nil {
		return err
	}
	if err := z.checkParentLists(); err != nil {
		return err
	}
	if err := z.checkRouteCounts(); err != nil {
		return err
	}
	if err := z.checkHeaderCounts(); err != nil {
		return err
	}
	if err := z.checkActiveHeaderList(); err != nil {
		return err
	}
	return nil
}

// I1: every node reachable from a variable's chain is active, carries that
// variable, and its up/down links agree with its neighbours.
func (z *ZDD) checkChainIntegrity() error {
	for v := int32(1); v <= z.numVar; v++ {
		h := &z.headers[v]
		prev := int32(-1)
		for n := h.down; n != -1; n = z.table[n].down {
			node := &z.table[n]
			if !node.active {
				return &InvariantError{NodeID: n, Invariant: 1, Detail: "node on chain but not active"}
			}
			if node.v != v {
				return &InvariantError{NodeID: n, Invariant: 1, Detail: "node on wrong variable's chain"}
			}
			if node.up != prev {
				return &InvariantError{NodeID: n, Invariant: 1, Detail: "up link disagrees with chain walk"}
			}
			prev = n
		}
		if h.up != prev {
			return &InvariantError{NodeID: prev, Invariant: 1, Detail: "header.up disagrees with chain tail"}
		}
	}
	return nil
}

// I2: every active node appears exactly once in each of its children's
// parent-link lists, via the plink carrying its own id and the matching tag.
// Edges into ⊥ are exempt, since ⊥ keeps no parent list.
func (z *ZDD) checkParentLists() error {
	seen := make(map[plink]bool)
	walk := func(child int32) error {
		for p := z.childHead(child); p != nilPlink; p = z.getNext(p) {
			if seen[p] {
				return &InvariantError{NodeID: p.nodeIndex(), Invariant: 2, Detail: "plink appears twice in parent lists"}
			}
			seen[p] = true
			if !z.table[p.nodeIndex()].active {
				return &InvariantError{NodeID: p.nodeIndex(), Invariant: 2, Detail: "parent-list entry for an inactive node"}
			}
		}
		return nil
	}
	if err := walk(top); err != nil {
		return err
	}
	for n := range z.table {
		if !z.table[n].active {
			continue
		}
		if err := walk(int32(n)); err != nil {
			return err
		}
	}
	for n := range z.table {
		if !z.table[n].active {
			continue
		}
		node := &z.table[n]
		hi, lo := newPlink(int32(n), tagHi), newPlink(int32(n), tagLo)
		if node.hi != bot && !seen[hi] {
			return &InvariantError{NodeID: int32(n), Invariant: 2, Detail: "hi-edge missing from its child's parent list"}
		}
		if node.lo != bot && !seen[lo] {
			return &InvariantError{NodeID: int32(n), Invariant: 2, Detail: "lo-edge missing from its child's parent list"}
		}
		_ = node
	}
	return nil
}

// I3: every active node's countHi/countLo equals the number of routes from
// that edge's target down to top, computed over the currently active
// sub-structure (not the original, uncovered ZDD).
func (z *ZDD) checkRouteCounts() error {
	memo := make(map[int32]uint64)
	var routes func(n int32) uint64
	routes = func(n int32) uint64 {
		switch {
		case n == top:
			return 1
		case n == bot:
			return 0
		}
		if v, ok := memo[n]; ok {
			return v
		}
		node := &z.table[n]
		if !node.active {
			return 0
		}
		v := routes(node.hi) + routes(node.lo)
		memo[n] = v
		return v
	}
	for n := range z.table {
		if !z.table[n].active {
			continue
		}
		node := &z.table[n]
		wantHi, wantLo := routes(node.hi), routes(node.lo)
		if node.hi >= 0 && !z.table[node.hi].active {
			wantHi = 0
		}
		if node.lo >= 0 && !z.table[node.lo].active {
			wantLo = 0
		}
		if node.countHi != wantHi {
			return &InvariantError{NodeID: int32(n), Invariant: 3, Detail: "countHi disagrees with reachable route count"}
		}
		if node.countLo != wantLo {
			return &InvariantError{NodeID: int32(n), Invariant: 3, Detail: "countLo disagrees with reachable route count"}
		}
	}
	return nil
}

// I4: every active variable's header.count equals the sum, over its active
// chain, of countUpper(n)*countHi(n).
func (z *ZDD) checkHeaderCounts() error {
	for v := int32(1); v <= z.numVar; v++ {
		h := &z.headers[v]
		var want uint64
		for n := h.down; n != -1; n = z.table[n].down {
			node := &z.table[n]
			want += node.countUpper * node.countHi
		}
		if h.count != want {
			return &InvariantError{NodeID: v, Invariant: 4, Detail: "header.count disagrees with chain sum"}
		}
	}
	return nil
}

// I5: the active-header doubly-linked list terminates back at header 0 and
// its left/right links agree. Which variables are on the list is not
// checked (a header stays on the list even when its count has dropped to 0
// — see DESIGN.md).
func (z *ZDD) checkActiveHeaderList() error {
	count := 0
	for r := z.headers[0].right; r != 0; r = z.headers[r].right {
		count++
		if count > int(z.numVar)+2 {
			return &InvariantError{NodeID: 0, Invariant: 5, Detail: "active-header list does not terminate (cycle corrupted)"}
		}
		if z.headers[z.headers[r].left].right != r {
			return &InvariantError{NodeID: r, Invariant: 5, Detail: "active-header list left/right links disagree"}
		}
	}
	return nil
}
