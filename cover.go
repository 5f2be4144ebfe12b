// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// choice names one variable of an option together with the node, on that
// variable's chain, whose HI-edge the option takes.
type choice struct {
	v    int32
	node int32
}

// batchCover covers every variable of one option (spec §4.E). It pushes one
// checkpoint on the hidden-node log; the matching batchUncover call replays
// exactly that checkpoint's section in reverse.
func (z *ZDD) batchCover(option []choice) {
	z.log.checkpoint()

	// Phase 1 (ascending sweep): every sibling of a chosen node, on that
	// node's own variable chain, becomes entirely unreachable now that the
	// variable is fixed to this option's choice. Seed their full loss and
	// drain it down through the DAG.
	for _, c := range option {
		for m := z.headers[c.v].down; m != -1; m = z.table[m].down {
			if m == c.node {
				continue
			}
			z.dp.pushLower(c.v, m, z.table[m].countUpper)
		}
	}
	z.drainUpperLoss()

	// The option forces every chosen node's LO-edge off (only the HI side
	// is taken). This has two effects: the LO-child loses the chosen node's
	// whole countUpper contribution (an ordinary phase-1 style loss, seeded
	// only now that every chosen node's countUpper is stable), and the
	// chosen node's own countLo is entirely spent (seeded directly into
	// phase 2 below).
	for _, c := range option {
		node := &z.table[c.node]
		if node.lo >= 0 && z.table[node.lo].active {
			z.dp.pushLower(z.table[node.lo].v, node.lo, node.countUpper)
		}
	}
	z.drainUpperLoss()

	for _, c := range option {
		node := &z.table[c.node]
		switch {
		case node.lo == top:
			z.dp.pushUpperLo(node.v, c.node, 1)
		case node.lo == bot:
			// already contributes 0; nothing to force.
		case z.table[node.lo].active:
			z.dp.pushUpperLo(node.v, c.node, node.countLo)
		}
		// else: node.lo already vanished in phase 1 above, whose cascade
		// already pushed this exact loss into diffLo via seedAncestorLoss.
	}

	// Phase 2 (descending sweep): fold countHi/countLo losses up to
	// ancestors.
	z.drainLowerLoss()

	for _, c := range option {
		z.headerRemove(c.v)
		z.log.pushHeader(c.v)
	}
}

// drainUpperLoss runs the ascending sweep to exhaustion: every dirty node is
// visited exactly once per call to pushLower that targets a fresh node, in
// increasing-variable order, so a node's aggregated loss is complete before
// it is applied.
func (z *ZDD) drainUpperLoss() {
	for {
		v, nodes, ok := z.dp.popLowerVar()
		if !ok {
			return
		}
		for _, n := range nodes {
			z.applyUpperLoss(v, n)
		}
	}
}

func (z *ZDD) applyUpperLoss(v, n int32) {
	delta := z.dp.takeUpper(n)
	node := &z.table[n]
	node.countUpper -= delta
	var headerDelta uint64

	if node.countUpper == 0 && node.active {
		// node.countUpper just reached exactly 0, so its value right before
		// this delta was applied was exactly delta.
		headerDelta = delta * node.countHi
		z.hideForUpperZero(n, headerDelta)
		combined := node.countHi + node.countLo
		if combined > 0 {
			z.seedAncestorLoss(n, combined)
		}
	}
	z.log.pushNodeUpper(n, delta, headerDelta)
	z.Stats.NumUpdates++

	if node.hi >= 0 && z.table[node.hi].active {
		z.dp.pushLower(z.table[node.hi].v, node.hi, delta)
	}
	if node.lo >= 0 && z.table[node.lo].active {
		z.dp.pushLower(z.table[node.lo].v, node.lo, delta)
	}
}

// hideForUpperZero splices a node, whose countUpper just reached 0, out of
// its variable chain and out of its children's parent lists, and removes
// its (now nonexistent) HI contribution from its header's count.
func (z *ZDD) hideForUpperZero(n int32, headerDelta uint64) {
	node := &z.table[n]
	node.active = false
	z.chainRemove(n)
	z.parentListRemove(node.hi, newPlink(n, tagHi))
	z.parentListRemove(node.lo, newPlink(n, tagLo))
	z.headers[node.v].count -= headerDelta
	z.Stats.NumHides++
	z.Stats.NumHeadUpdates++
}

// seedAncestorLoss pushes delta into the countHi or countLo accumulator of
// every still-active parent of n (phase 2 seeding), selecting the field by
// which edge of the parent reaches n.
func (z *ZDD) seedAncestorLoss(n int32, delta uint64) {
	node := &z.table[n]
	for p := node.parentsHead; p != nilPlink; p = z.getNext(p) {
		parent := p.nodeIndex()
		if !z.table[parent].active {
			continue
		}
		v := z.table[parent].v
		if p.isHi() {
			z.dp.pushUpperHi(v, parent, delta)
		} else {
			z.dp.pushUpperLo(v, parent, delta)
		}
	}
}

// drainLowerLoss runs the descending sweep to exhaustion.
func (z *ZDD) drainLowerLoss() {
	for {
		_, nodes, ok := z.dp.popUpperVar()
		if !ok {
			return
		}
		for _, n := range nodes {
			z.applyLowerLoss(n)
		}
	}
}

func (z *ZDD) applyLowerLoss(n int32) {
	dHi, dLo := z.dp.takeHiLo(n)
	node := &z.table[n]
	node.countHi -= dHi
	node.countLo -= dLo
	var headerDelta uint64

	if node.countHi+node.countLo == 0 && node.active {
		// countHi just dropped by dHi down to 0, so countUpper*countHi's old
		// value was exactly countUpper*dHi; that whole contribution leaves
		// the header.
		headerDelta = node.countUpper * dHi
		node.active = false
		z.chainRemove(n)
		z.parentListRemove(node.hi, newPlink(n, tagHi))
		z.parentListRemove(node.lo, newPlink(n, tagLo))
		z.headers[node.v].count -= headerDelta
		z.Stats.NumHides++
	} else {
		z.Stats.NumInactiveUpdates++
	}
	z.log.pushNodeLower(n, dHi, dLo, headerDelta)
	z.Stats.NumUpdates++
	if dHi+dLo > 0 {
		z.seedAncestorLoss(n, dHi+dLo)
	}
}

// batchUncover replays, in reverse, the most recent batchCover's checkpoint
// section, restoring the structure to its exact pre-cover state.
func (z *ZDD) batchUncover() {
	for {
		e, ok := z.log.popLast()
		if !ok {
			break
		}
		switch e.kind {
		case hideHeader:
			z.headerReinsert(e.id)
		case hideNodeLower:
			z.undoNodeLower(e.id, e.dHi, e.dLo, e.header)
		case hideNodeUpper:
			z.undoNodeUpper(e.id, e.dHi, e.header)
		}
	}
	z.log.dropCheckpoint()
}

// undoNodeUpper inverts one hideNodeUpper entry. headerDelta is the exact
// value subtracted from the header's count at hide time (0 if the node
// never left the active chain); it is added back directly rather than
// recomputed, since a paired hideNodeLower entry for the same node may still
// be waiting, later in LIFO order, to restore countHi.
func (z *ZDD) undoNodeUpper(n int32, delta, headerDelta uint64) {
	node := &z.table[n]
	wasHidden := !node.active
	node.countUpper += delta
	if wasHidden {
		node.active = true
		z.chainReinsert(n)
		z.parentListReinsert(node.hi, newPlink(n, tagHi))
		z.parentListReinsert(node.lo, newPlink(n, tagLo))
		z.headers[node.v].count += headerDelta
	}
}

// undoNodeLower inverts one hideNodeLower entry; see undoNodeUpper for why
// headerDelta is applied verbatim instead of recomputed.
func (z *ZDD) undoNodeLower(n int32, dHi, dLo, headerDelta uint64) {
	node := &z.table[n]
	wasHidden := !node.active
	node.countHi += dHi
	node.countLo += dLo
	if wasHidden {
		node.active = true
		z.chainReinsert(n)
		z.parentListReinsert(node.hi, newPlink(n, tagHi))
		z.parentListReinsert(node.lo, newPlink(n, tagLo))
		z.headers[node.v].count += headerDelta
	}
}
