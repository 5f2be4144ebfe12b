// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

// hideEntry is one undo record: a mutation applied to the node table or the
// header list during a cover, paired with enough payload to invert it. See
// DESIGN.md for how this collapses the original four hide kinds into three.
type hideEntry struct {
	kind   hideKind
	id     int32  // node id (hideNodeUpper/hideNodeLower) or variable (hideHeader)
	dHi    uint64 // countUpper delta (hideNodeUpper) or countHi delta (hideNodeLower)
	dLo    uint64 // countLo delta (hideNodeLower only)
	header uint64 // header-count delta to invert, captured at the time of hiding (0 if the node stayed active)
}

// hiddenLog is the LIFO undo log of spec §4.C. A single call to batchCover
// pushes a contiguous run of entries bracketed by a checkpoint; batchUncover
// pops exactly that run, in reverse, applying each entry's inverse.
type hiddenLog struct {
	entries     []hideEntry
	checkpoints []int // stack of entry-count marks, one per open batchCover
}

func newHiddenLog(initialCap int) *hiddenLog {
	if initialCap < 16 {
		initialCap = 16
	}
	return &hiddenLog{entries: make([]hideEntry, 0, initialCap)}
}

func (l *hiddenLog) pushNodeUpper(id int32, delta, headerDelta uint64) {
	l.entries = append(l.entries, hideEntry{kind: hideNodeUpper, id: id, dHi: delta, header: headerDelta})
}

func (l *hiddenLog) pushNodeLower(id int32, dHi, dLo, headerDelta uint64) {
	l.entries = append(l.entries, hideEntry{kind: hideNodeLower, id: id, dHi: dHi, dLo: dLo, header: headerDelta})
}

func (l *hiddenLog) pushHeader(v int32) {
	l.entries = append(l.entries, hideEntry{kind: hideHeader, id: v})
}

// checkpoint records the current log height as the boundary of one
// batchCover call.
func (l *hiddenLog) checkpoint() {
	l.checkpoints = append(l.checkpoints, len(l.entries))
}

// popLast removes and returns the most recent entry, or false if the log is
// back down to its current checkpoint.
func (l *hiddenLog) popLast() (hideEntry, bool) {
	mark := 0
	if len(l.checkpoints) > 0 {
		mark = l.checkpoints[len(l.checkpoints)-1]
	}
	if len(l.entries) <= mark {
		return hideEntry{}, false
	}
	e := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]
	return e, true
}

// dropCheckpoint discards the most recent checkpoint mark; called once its
// section has been fully popped.
func (l *hiddenLog) dropCheckpoint() {
	l.checkpoints = l.checkpoints[:len(l.checkpoints)-1]
}
