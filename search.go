// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import "sort"

// Solution is one exact cover: the sorted set of variables selected by the
// options chosen at every recursion level.
type Solution []int32

// Search runs the recursive DLX-style exact-cover search of spec §4.G and
// returns every solution found, in the deterministic DFS order the search
// visits them.
func (z *ZDD) Search() ([]Solution, error) {
	var solutions []Solution
	current := make([]int32, 0, z.numVar)
	if err := z.searchStep(0, &current, &solutions); err != nil {
		return solutions, err
	}
	return solutions, nil
}

// searchStep implements one recursion level: pick the minimum-count active
// column (MRV), enumerate every surviving option through it via the choice
// enumerator, and for each recurse between a matched batchCover/batchUncover
// pair.
func (z *ZDD) searchStep(depth int, current *[]int32, solutions *[]Solution) error {
	z.Stats.NumSearchTreeNodes++
	if depth > _MAXDEPTH {
		return z.seterror("%s", errSearchDepthExceeded)
	}

	if z.headers[0].right == 0 {
		sol := make(Solution, len(*current))
		copy(sol, *current)
		sort.Slice(sol, func(i, j int) bool { return sol[i] < sol[j] })
		*solutions = append(*solutions, sol)
		z.Stats.NumSolutions++
		return nil
	}

	v := z.selectMinColumn()
	h := &z.headers[v]
	if h.count == 0 {
		z.Stats.NumFailureBacktracks++
		return nil
	}

	for n0 := h.down; n0 != -1; n0 = z.table[n0].down {
		upperMemo := make(map[int32][][]pathEdge)
		lowerMemo := make(map[int32][][]pathEdge)
		ups := z.upperPaths(n0, upperMemo)
		los := z.lowerPathsForced(n0, lowerMemo)
		for _, u := range ups {
			for _, l := range los {
				option := z.trace2choice(n0, u, l)
				z.batchCover(option)
				before := len(*current)
				for _, c := range option {
					*current = append(*current, c.v)
				}
				err := z.searchStep(depth+1, current, solutions)
				*current = (*current)[:before]
				z.batchUncover()
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// selectMinColumn returns the active variable with the smallest header
// count (the MRV heuristic); ties break toward the variable nearer the
// front of the active list.
func (z *ZDD) selectMinColumn() int32 {
	best := z.headers[0].right
	bestCount := z.headers[best].count
	for r := z.headers[best].right; r != 0; r = z.headers[r].right {
		if z.headers[r].count < bestCount {
			best = r
			bestCount = z.headers[r].count
		}
	}
	return best
}
