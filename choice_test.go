// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func choiceVars(cs []choice) []int32 {
	out := make([]int32, len(cs))
	for i, c := range cs {
		out[i] = c.v
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestUpperLowerPathsOnIdentityFixture(t *testing.T) {
	z := identityFixture(t)

	// Node B (var2, the second declared line) sits on header 2's chain and
	// has countUpper == 1 (reached only via root's HI edge) and
	// countHi+countLo == 2 (the options {1,2} and {1}).
	nodeB := int32(1)
	require.EqualValues(t, 1, z.table[nodeB].countUpper)
	require.EqualValues(t, 2, z.table[nodeB].countHi+z.table[nodeB].countLo)

	upperMemo := make(map[int32][][]pathEdge)
	ups := z.upperPaths(nodeB, upperMemo)
	require.Len(t, ups, 1)

	lowerMemo := make(map[int32][][]pathEdge)
	los := z.lowerPaths(nodeB, lowerMemo)
	require.Len(t, los, 2)

	// One lower path takes B's HI edge (selects variable 2, giving {1,2}
	// combined with the forced upper choice of variable 1); the other
	// takes its LO edge (excludes variable 2, giving just {1}).
	var sawHi, sawLo bool
	for _, l := range los {
		require.Len(t, l, 1)
		if l[0].hi {
			sawHi = true
		} else {
			sawLo = true
		}
	}
	require.True(t, sawHi)
	require.True(t, sawLo)

	// trace2choice is only meaningful for the HI (forced) lower path, the
	// only one search.go ever builds via lowerPathsForced.
	forcedMemo := make(map[int32][][]pathEdge)
	forced := z.lowerPathsForced(nodeB, forcedMemo)
	require.Len(t, forced, 1)
	opt := z.trace2choice(nodeB, ups[0], forced[0])
	require.Equal(t, []int32{1, 2}, choiceVars(opt))
}

func TestLowerPathsForcedOnIdentityFixture(t *testing.T) {
	z := identityFixture(t)
	nodeA := int32(0) // var2 node reached only via root's LO edge
	memo := make(map[int32][][]pathEdge)
	los := z.lowerPathsForced(nodeA, memo)
	require.Len(t, los, 1)
	upperMemo := make(map[int32][][]pathEdge)
	ups := z.upperPaths(nodeA, upperMemo)
	require.Len(t, ups, 1)
	opt := z.trace2choice(nodeA, ups[0], los[0])
	require.Equal(t, []int32{2}, choiceVars(opt))
}
