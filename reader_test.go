// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountVariables(t *testing.T) {
	n, err := CountVariables(strings.NewReader("1 1 B T\n2 2 1 T\n"))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestLoadEmptyUniverse(t *testing.T) {
	z, err := Load(strings.NewReader(""), 0, Sanity(true))
	require.NoError(t, err)
	require.Equal(t, top, z.root)
	require.False(t, z.Errored())
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("1 1 B\n"), 1)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestLoadRejectsUndeclaredReference(t *testing.T) {
	_, err := Load(strings.NewReader("1 1 B 99\n"), 1)
	require.Error(t, err)
}

// identityFixture builds the spec's "two-variable identity" seed scenario:
// a universe of {1,2} whose ZDD enumerates the family {{1,2},{1},{2}}.
func identityFixture(t *testing.T, opts ...func(*configs)) *ZDD {
	t.Helper()
	src := "1 2 B T\n2 2 T T\n3 1 1 2\n"
	z, err := Load(strings.NewReader(src), 2, opts...)
	require.NoError(t, err)
	return z
}

func TestLoadIdentityFixtureCounts(t *testing.T) {
	z := identityFixture(t, Sanity(true))
	require.EqualValues(t, 3, len(z.table))
	// header 1's count is the number of root-to-top paths selecting
	// variable 1: {1} and {1,2}, i.e. 2.
	require.EqualValues(t, 2, z.headers[1].count)
	// header 2's count is the number of root-to-top paths selecting
	// variable 2: {2} and {1,2}, i.e. 2.
	require.EqualValues(t, 2, z.headers[2].count)
}
