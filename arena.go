// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// setupDancingLinks wires the freshly loaded, append-only node arena into
// the augmented structure: variable chains, parent-link lists, and route
// counts. It runs in two linear passes rather than the single reverse pass
// of spec §4.B: count_hi/count_lo is a bottom-up recurrence (a node needs
// its children's totals already known) while count_upper is top-down (a
// node needs its parents' contributions already pushed); these are opposite
// directions over the same index order (children are always declared, and
// therefore indexed, before their parents — see DESIGN.md), so one pass
// handles each.
func (z *ZDD) setupDancingLinks() {
	n := len(z.table)
	z.dp.growTo(n)

	// Pass 1 (ascending index = children before parents): link chains,
	// thread parent lists, compute count_hi/count_lo.
	for i := 0; i < n; i++ {
		node := &z.table[i]
		node.active = true
		z.chainAppend(int32(i))

		hiPlink := newPlink(int32(i), tagHi)
		loPlink := newPlink(int32(i), tagLo)
		z.parentListInsert(node.hi, hiPlink)
		z.parentListInsert(node.lo, loPlink)

		node.countHi = routesToTop(z, node.hi)
		node.countLo = routesToTop(z, node.lo)
	}

	// Pass 2 (descending index = parents before children): propagate
	// count_upper from the root down, and fold each node's HI contribution
	// into its header's count as it becomes final. A trivial ZDD (root is
	// TOP or BOT directly, n==0) has no table rows to seed.
	if n == 0 {
		return
	}
	z.table[z.root].countUpper = 1
	for i := n - 1; i >= 0; i-- {
		node := &z.table[i]
		z.headers[node.v].count += node.countUpper * node.countHi
		if node.hi >= 0 {
			z.table[node.hi].countUpper += node.countUpper * 1
		}
		if node.lo >= 0 {
			z.table[node.lo].countUpper += node.countUpper * 1
		}
	}

	// Headers with no surviving chain (count stays 0) remain in the active
	// list: the search driver's MRV selection must see them to recognise an
	// immediate dead end rather than silently treating the variable as
	// already satisfied. See DESIGN.md (active-header invariant).
}

// routesToTop returns the number of routes from child down to TOP: 1 if
// child is TOP, 0 if BOT, else the child's own (countHi+countLo). Used only
// during setup, before count_upper exists; during cover/uncover the running
// node-local countHi/countLo fields play this role directly.
func routesToTop(z *ZDD, child int32) uint64 {
	switch {
	case child == top:
		return 1
	case child == bot:
		return 0
	default:
		return z.table[child].countHi + z.table[child].countLo
	}
}
