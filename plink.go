// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// plink is a parent link: a packed reference to one of the two out-edges of
// a node in the table. It carries two low tag bits plus a node index, so that
// an edge can be spliced in and out of its child's parent-list in O(1)
// without a separate allocation. See spec §4.A.
type plink uint32

const (
	tagLo   = 0 // the LO-edge of the addressed node
	tagHi   = 1 // the HI-edge of the addressed node
	tagTerm = 2 // the (never spliced) virtual-root edge into top's parent list
)

// newPlink packs a node index and a tag into a plink.
func newPlink(id int32, t int) plink {
	return plink(uint32(id)<<2 | uint32(t))
}

func (p plink) tag() int {
	return int(p & 3)
}

// nodeIndex returns the index, into the node arena, of the node this plink
// addresses (the *parent* of the edge, not the child it points to).
func (p plink) nodeIndex() int32 {
	return int32(p >> 2)
}

func (p plink) isHi() bool   { return p.tag() == tagHi }
func (p plink) isLo() bool   { return p.tag() == tagLo }
func (p plink) isTerm() bool { return p.tag() == tagTerm }

// getPrev, getNext, setPrev, setNext dispatch on the plink's tag to one of
// the two (prev, next) field pairs of the addressed node, uniformly across
// the HI-edge and LO-edge case. No code in this package produces a tagTerm
// plink (see DESIGN.md), so it has no thread fields of its own.

func (z *ZDD) getPrev(p plink) plink {
	n := &z.table[p.nodeIndex()]
	if p.isHi() {
		return n.hiPrev
	}
	return n.loPrev
}

func (z *ZDD) getNext(p plink) plink {
	n := &z.table[p.nodeIndex()]
	if p.isHi() {
		return n.hiNext
	}
	return n.loNext
}

func (z *ZDD) setPrev(p, val plink) {
	n := &z.table[p.nodeIndex()]
	if p.isHi() {
		n.hiPrev = val
	} else {
		n.loPrev = val
	}
}

func (z *ZDD) setNext(p, val plink) {
	n := &z.table[p.nodeIndex()]
	if p.isHi() {
		n.hiNext = val
	} else {
		n.loNext = val
	}
}
