// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import "container/heap"

// varHeap is a container/heap of distinct variable ids. max selects whether
// it pops largest-first (the "upper" queue of spec §4.D, used when
// propagating a route-count loss up toward ancestors so a node's own delta
// is fully aggregated before any of its shallower parents are visited) or
// smallest-first (the "lower" queue, used propagating a loss down toward
// descendants).
type varHeap struct {
	vars []int32
	max  bool
}

func (h *varHeap) Len() int { return len(h.vars) }
func (h *varHeap) Less(i, j int) bool {
	if h.max {
		return h.vars[i] > h.vars[j]
	}
	return h.vars[i] < h.vars[j]
}
func (h *varHeap) Swap(i, j int) { h.vars[i], h.vars[j] = h.vars[j], h.vars[i] }
func (h *varHeap) Push(x interface{}) { h.vars = append(h.vars, x.(int32)) }
func (h *varHeap) Pop() interface{} {
	old := h.vars
	n := len(old)
	v := old[n-1]
	h.vars = old[:n-1]
	return v
}

// dpManager is the per-cover dynamic-programming bookkeeping of spec §4.D:
// a dirty-node bucket per variable, plus two priority queues giving the
// order dirty buckets are drained in. Buckets and accumulators are reused
// across every cover/uncover of the engine's lifetime; they are always
// fully drained (and therefore empty) between calls.
type dpManager struct {
	lowerBucket [][]int32 // ascending sweep: countUpper loss flowing to descendants
	lowerQueued []bool    // per-node: already in its bucket this sweep
	lowerVarSet []bool    // per-variable: already scheduled on lowerHeap
	lowerHeap   *varHeap

	upperBucket [][]int32 // descending sweep: countHi/countLo loss flowing to ancestors
	upperQueued []bool
	upperVarSet []bool
	upperHeap   *varHeap

	diffUpper []uint64 // pending countUpper delta, indexed by node id
	diffHi    []uint64 // pending countHi delta, indexed by node id
	diffLo    []uint64 // pending countLo delta, indexed by node id
}

func newDPManager(numVar int32) *dpManager {
	return &dpManager{
		lowerBucket: make([][]int32, numVar+2),
		lowerVarSet: make([]bool, numVar+2),
		lowerHeap:   &varHeap{max: false},
		upperBucket: make([][]int32, numVar+2),
		upperVarSet: make([]bool, numVar+2),
		upperHeap:   &varHeap{max: true},
	}
}

// growTo ensures the per-node slices can index node id n; called once after
// the node arena's final size is known.
func (dp *dpManager) growTo(numNodes int) {
	if len(dp.diffUpper) >= numNodes {
		return
	}
	dp.diffUpper = make([]uint64, numNodes)
	dp.diffHi = make([]uint64, numNodes)
	dp.diffLo = make([]uint64, numNodes)
	dp.lowerQueued = make([]bool, numNodes)
	dp.upperQueued = make([]bool, numNodes)
}

// pushLower schedules node n (at variable v) to receive a countUpper loss of
// delta, for the ascending (ph1) sweep.
func (dp *dpManager) pushLower(v, n int32, delta uint64) {
	dp.diffUpper[n] += delta
	if !dp.lowerQueued[n] {
		dp.lowerQueued[n] = true
		dp.lowerBucket[v] = append(dp.lowerBucket[v], n)
	}
	if !dp.lowerVarSet[v] {
		dp.lowerVarSet[v] = true
		heap.Push(dp.lowerHeap, v)
	}
}

// pushUpperHi/pushUpperLo schedule node n (at variable v) to receive a
// countHi/countLo loss, for the descending (phase 2) sweep.
func (dp *dpManager) pushUpperHi(v, n int32, delta uint64) {
	dp.diffHi[n] += delta
	dp.scheduleUpper(v, n)
}

func (dp *dpManager) pushUpperLo(v, n int32, delta uint64) {
	dp.diffLo[n] += delta
	dp.scheduleUpper(v, n)
}

func (dp *dpManager) scheduleUpper(v, n int32) {
	if !dp.upperQueued[n] {
		dp.upperQueued[n] = true
		dp.upperBucket[v] = append(dp.upperBucket[v], n)
	}
	if !dp.upperVarSet[v] {
		dp.upperVarSet[v] = true
		heap.Push(dp.upperHeap, v)
	}
}

// popLowerVar pops the next (ascending) variable with a non-empty bucket and
// returns (and clears) its dirty node list.
func (dp *dpManager) popLowerVar() (int32, []int32, bool) {
	if dp.lowerHeap.Len() == 0 {
		return 0, nil, false
	}
	v := heap.Pop(dp.lowerHeap).(int32)
	dp.lowerVarSet[v] = false
	nodes := dp.lowerBucket[v]
	dp.lowerBucket[v] = nil
	return v, nodes, true
}

func (dp *dpManager) popUpperVar() (int32, []int32, bool) {
	if dp.upperHeap.Len() == 0 {
		return 0, nil, false
	}
	v := heap.Pop(dp.upperHeap).(int32)
	dp.upperVarSet[v] = false
	nodes := dp.upperBucket[v]
	dp.upperBucket[v] = nil
	return v, nodes, true
}

// takeUpper reads and clears node n's pending countUpper delta.
func (dp *dpManager) takeUpper(n int32) uint64 {
	d := dp.diffUpper[n]
	dp.diffUpper[n] = 0
	dp.lowerQueued[n] = false
	return d
}

// takeHiLo reads and clears node n's pending countHi/countLo deltas.
func (dp *dpManager) takeHiLo(n int32) (uint64, uint64) {
	hi, lo := dp.diffHi[n], dp.diffLo[n]
	dp.diffHi[n] = 0
	dp.diffLo[n] = 0
	dp.upperQueued[n] = false
	return hi, lo
}
