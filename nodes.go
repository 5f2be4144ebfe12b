// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// nodeCell is one internal ZDD node, augmented with the doubly-linked
// per-variable chain, parent-link list endpoints, and route counts needed by
// cover/uncover. See spec §3.
type nodeCell struct {
	v  int32 // variable label
	hi int32 // hi-child: a node index, or top/bot
	lo int32 // lo-child: a node index, or top/bot

	up   int32 // previous node with the same var in its chain, or -1
	down int32 // next node with the same var in its chain, or -1

	parentsHead plink // head of this node's own parent-link list
	parentsTail plink // tail of this node's own parent-link list

	// Sibling links, in the parent list of hi (resp. lo), for the plink that
	// represents this node's own hi-edge (resp. lo-edge).
	hiPrev, hiNext plink
	loPrev, loNext plink

	countHi    uint64 // routes from the hi-child down to top (0 if hi == bot)
	countLo    uint64 // routes from the lo-child down to top (0 if lo == bot)
	countUpper uint64 // routes from the virtual root down to this node

	active bool // false while hidden by a cover
}

// headerCell is the per-variable column header. The header at index 0 is the
// sentinel of the circular active-header doubly-linked list; the one at
// numVar+1 is never linked.
type headerCell struct {
	left, right int32 // active-header list (splice out during cover)
	up, down    int32 // endpoints of this variable's node chain, -1 if empty
	v           int32
	count       uint64 // Σ countUpper(n)·countHi(n) over the chain
}
