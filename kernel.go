// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// Terminal node identifiers. An edge whose target is one of these two values
// never indexes into the node arena. We keep the signs used by the original
// C++ engine (DD_ONE_TERM / DD_ZERO_TERM) so the two are easy to tell apart
// in a debugger dump.
const (
	top int32 = -1 // selected-set completes an option (the accepting terminal)
	bot int32 = -2 // selected-set is rejected (the rejecting terminal)
)

// _MAXDEPTH bounds the search recursion; exceeding it is a SearchDepthExceeded
// error rather than a stack overflow.
const _MAXDEPTH int = 1000

// nilPlink is the "no link" sentinel used at the ends of doubly-linked node
// chains and parent-link lists.
const nilPlink plink = ^plink(0)

// hideKind tags an entry of the hidden-node log with the inverse operation
// needed to undo it. The original four-way UpperZero/LowerZero/CoverDown/
// CoverUp taxonomy collapses to three here: a node's countUpper mutation and
// its countHi/countLo mutation each get one generic log entry (whether or
// not the node fully vanished — undo tells the two cases apart by the
// node's current active flag), plus one entry per explicitly covered
// header. See DESIGN.md.
type hideKind uint8

const (
	hideNodeUpper hideKind = iota // a node's countUpper was reduced (phase 1)
	hideNodeLower                // a node's countHi/countLo was reduced (phase 2)
	hideHeader                    // a variable's header was spliced out of the active list
)

func (k hideKind) String() string {
	switch k {
	case hideNodeUpper:
		return "node-upper"
	case hideNodeLower:
		return "node-lower"
	case hideHeader:
		return "header"
	}
	return "unknown"
}
