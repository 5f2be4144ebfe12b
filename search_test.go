// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSearchEmptyUniverse covers spec §8 seed scenario 1: N=0, the ZDD is
// just ⊤ reachable directly. A single empty option is the only solution.
func TestSearchEmptyUniverse(t *testing.T) {
	z, err := Load(strings.NewReader(""), 0, Sanity(true))
	require.NoError(t, err)
	sols, err := z.Search()
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.Empty(t, sols[0])
	require.EqualValues(t, 1, z.Stats.NumSolutions)
}

// TestSearchTriviallyUnsat covers spec §8 seed scenario 2: N=2, the ZDD
// only enumerates {1}, so variable 2 is never satisfiable.
func TestSearchTriviallyUnsat(t *testing.T) {
	z, err := Load(strings.NewReader("1 1 B T\n"), 2, Sanity(true))
	require.NoError(t, err)
	sols, err := z.Search()
	require.NoError(t, err)
	require.Empty(t, sols)
	require.EqualValues(t, 0, z.Stats.NumSolutions)
	require.NotZero(t, z.Stats.NumFailureBacktracks)
}

// TestSearchIdentityFixture covers spec §8 seed scenario 3: N=2, the family
// {{1,2},{1},{2}} has exactly two exact covers over {1,2} (either option
// {1,2} alone, or options {1} and {2} together).
func TestSearchIdentityFixture(t *testing.T) {
	z := identityFixture(t, Sanity(true))
	sols, err := z.Search()
	require.NoError(t, err)
	require.Len(t, sols, 2)
	for _, sol := range sols {
		require.Equal(t, Solution{1, 2}, sol)
	}
}

// fourOptionFixture builds a family over {1..5} with options {1,2}, {3,4,5},
// {1,3}, {2,4,5}. It has exactly two exact covers: {1,2}+{3,4,5}, and
// {1,3}+{2,4,5}. Built as an explicit (non-canonical, but structurally
// valid) family-algebra ZDD: split on variable 1, then on variable 2 in
// each half, then on variables 3/4/5 as needed, suppressing any variable a
// branch's surviving members never test.
func fourOptionFixture(t *testing.T, opts ...func(*configs)) *ZDD {
	t.Helper()
	src := strings.Join([]string{
		"1 5 B T",    // node5: {5}
		"2 4 B 1",    // node4: {4,5}
		"3 3 B T",    // node3b: {3}
		"4 2 3 T",    // node2a: {2} or {3}
		"5 3 B 2",    // node3d: {3,4,5}
		"6 2 5 2",    // node2b: {2,4,5} or {3,4,5}
		"7 1 6 4",    // root
	}, "\n") + "\n"
	z, err := Load(strings.NewReader(src), 5, opts...)
	require.NoError(t, err)
	return z
}

func TestSearchFourOptionFixture(t *testing.T) {
	z := fourOptionFixture(t, Sanity(true))
	sols, err := z.Search()
	require.NoError(t, err)
	require.Len(t, sols, 2)
	for _, sol := range sols {
		require.Equal(t, Solution{1, 2, 3, 4, 5}, sol)
	}
}

// TestCoverUncoverRoundTrip is property P1: after batchCover(O);
// batchUncover(), every mutable field of the table and header arenas is
// restored to its exact pre-cover value.
func TestCoverUncoverRoundTrip(t *testing.T) {
	z := fourOptionFixture(t, Sanity(true))

	beforeTable := make([]nodeCell, len(z.table))
	copy(beforeTable, z.table)
	beforeHeaders := make([]headerCell, len(z.headers))
	copy(beforeHeaders, z.headers)

	// Cover the option selecting variables 1 and 2: node 6 is the root
	// (variable 1, forced HI) and node 3 is the variable-2 node reached via
	// the root's HI edge (forced HI).
	option := []choice{{v: 1, node: 6}, {v: 2, node: 3}}
	z.batchCover(option)
	require.NoError(t, z.checkInvariants())
	z.batchUncover()

	require.NoError(t, z.checkInvariants())
	require.Equal(t, beforeTable, z.table)
	require.Equal(t, beforeHeaders, z.headers)
}
