// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// Stats gathers the instrumentation counters of spec §4.G. They are scoped
// to one ZDD instance rather than kept process-global.
type Stats struct {
	NumSearchTreeNodes   uint64
	NumSolutions         uint64
	NumUpdates           uint64
	NumHeadUpdates       uint64
	NumInactiveUpdates   uint64
	NumHides             uint64
	NumFailureBacktracks uint64
}

// ZDD is an augmented Zero-suppressed Binary Decision Diagram with the extra
// doubly-linked structure (parent lists, route counts, per-variable chains)
// needed to run Dancing Links style cover/uncover directly on its node
// arena. A ZDD is built once by Load and is exclusively owned by the single
// goroutine driving Search: nothing here is safe for concurrent use.
type ZDD struct {
	numVar int32

	table   []nodeCell   // internal node arena, append-only after Load
	headers []headerCell // size numVar+2; 0 is the list sentinel, numVar+1 is unused

	root int32 // table index of the ZDD root, or top/bot for a trivial ZDD

	// parent list of the ⊤ terminal; ⊤ is not a row in table, so its list
	// endpoints live here instead of in a nodeCell.
	topParentsHead, topParentsTail plink

	dp  *dpManager
	log *hiddenLog

	sanityCheck bool

	Stats Stats

	err error
}

func newZDD(c *configs) *ZDD {
	z := &ZDD{
		numVar:         c.numVar,
		headers:        make([]headerCell, c.numVar+2),
		topParentsHead: nilPlink,
		topParentsTail: nilPlink,
		sanityCheck:    c.sanityCheck,
	}
	for v := int32(0); v <= c.numVar+1; v++ {
		z.headers[v] = headerCell{v: v, up: -1, down: -1}
	}
	// Link header 0 and headers 1..numVar into one circular active list,
	// with 0 as the sole root sentinel (standard DLX). Header numVar+1 is
	// an unlinked spare slot, never touched after this point, kept only so
	// every real variable's index fits the 1..numVar range without an
	// off-by-one at the top. Headers are only ever removed from the active
	// list by an explicit cover of that variable (see cover.go), never
	// merely because their count dropped to zero.
	for v := int32(0); v <= c.numVar; v++ {
		z.headers[v].left = (v - 1 + c.numVar + 1) % (c.numVar + 1)
		z.headers[v].right = (v + 1) % (c.numVar + 1)
	}
	z.dp = newDPManager(c.numVar)
	z.log = newHiddenLog(c.initialLogSize)
	return z
}

// NumVar returns the size of the universe {1..NumVar} this ZDD is defined
// over.
func (z *ZDD) NumVar() int32 {
	return z.numVar
}

// ****************************************************************
// Generic doubly-linked splice helpers shared by cover.go and arena.go.

// chainRemove splices node n out of its variable's up/down chain.
func (z *ZDD) chainRemove(n int32) {
	node := &z.table[n]
	h := &z.headers[node.v]
	if node.up == -1 {
		h.down = node.down
	} else {
		z.table[node.up].down = node.down
	}
	if node.down == -1 {
		h.up = node.up
	} else {
		z.table[node.down].up = node.up
	}
}

// chainAppend links node n onto the tail of its variable's chain, computing
// and assigning its up/down neighbour fields. Used only during initial
// construction (setupDancingLinks), in ascending array-index order, one
// call per node — unlike chainReinsert, which restores a node using
// neighbour fields it already carries from a prior chainAppend/chainRemove.
func (z *ZDD) chainAppend(n int32) {
	node := &z.table[n]
	h := &z.headers[node.v]
	tail := h.up
	node.up = tail
	node.down = -1
	if tail == -1 {
		h.down = n
	} else {
		z.table[tail].down = n
	}
	h.up = n
}

// chainReinsert restores node n into its variable's chain, using its own
// (untouched) up/down fields to relink its former neighbours.
func (z *ZDD) chainReinsert(n int32) {
	node := &z.table[n]
	h := &z.headers[node.v]
	if node.up == -1 {
		h.down = n
	} else {
		z.table[node.up].down = n
	}
	if node.down == -1 {
		h.up = n
	} else {
		z.table[node.down].up = n
	}
}

// headerRemove splices variable v's header out of the active-header list.
func (z *ZDD) headerRemove(v int32) {
	h := &z.headers[v]
	z.headers[h.left].right = h.right
	z.headers[h.right].left = h.left
}

// headerReinsert restores variable v's header into the active-header list.
func (z *ZDD) headerReinsert(v int32) {
	h := &z.headers[v]
	z.headers[h.left].right = v
	z.headers[h.right].left = v
}

// childHead/childTail/setChildHead/setChildTail abstract over whether a
// parent-link list belongs to an internal node or to the ⊤ terminal, which
// is not a row of table. The ⊥ terminal keeps no parent list: it always
// reads as empty and writes to it are dropped.

func (z *ZDD) childHead(child int32) plink {
	switch child {
	case top:
		return z.topParentsHead
	case bot:
		return nilPlink
	}
	return z.table[child].parentsHead
}

func (z *ZDD) childTail(child int32) plink {
	switch child {
	case top:
		return z.topParentsTail
	case bot:
		return nilPlink
	}
	return z.table[child].parentsTail
}

func (z *ZDD) setChildHead(child int32, p plink) {
	if child == top {
		z.topParentsHead = p
	} else if child != bot {
		z.table[child].parentsHead = p
	}
}

func (z *ZDD) setChildTail(child int32, p plink) {
	if child == top {
		z.topParentsTail = p
	} else if child != bot {
		z.table[child].parentsTail = p
	}
}

// parentListInsert appends plink p (an edge out of its own node) at the tail
// of child's parent-list.
func (z *ZDD) parentListInsert(child int32, p plink) {
	tail := z.childTail(child)
	z.setPrev(p, tail)
	z.setNext(p, nilPlink)
	if tail == nilPlink {
		z.setChildHead(child, p)
	} else {
		z.setNext(tail, p)
	}
	z.setChildTail(child, p)
}

// parentListRemove splices p out of child's parent-list. p's own prev/next
// fields are left untouched so parentListReinsert can restore it in O(1).
func (z *ZDD) parentListRemove(child int32, p plink) {
	prev := z.getPrev(p)
	next := z.getNext(p)
	if prev == nilPlink {
		z.setChildHead(child, next)
	} else {
		z.setNext(prev, next)
	}
	if next == nilPlink {
		z.setChildTail(child, prev)
	} else {
		z.setPrev(next, prev)
	}
}

// parentListReinsert restores p between the neighbours recorded in its own
// (untouched) prev/next fields.
func (z *ZDD) parentListReinsert(child int32, p plink) {
	prev := z.getPrev(p)
	next := z.getNext(p)
	if prev == nilPlink {
		z.setChildHead(child, p)
	} else {
		z.setNext(prev, p)
	}
	if next == nilPlink {
		z.setChildTail(child, p)
	} else {
		z.setPrev(next, p)
	}
}
