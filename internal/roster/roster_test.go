package roster_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kantorei/riser/internal/roster"
)

func TestBuildLabelsEachSectionSequentially(t *testing.T) {
	r := roster.Build(roster.Counts{Sopranos: 3, Altos: 2, Tenors: 1, Basses: 4})

	wantLen := map[roster.Section]int{
		roster.Soprano: 3,
		roster.Alto:    2,
		roster.Tenor:   1,
		roster.Bass:    4,
	}
	for _, s := range roster.SectionOrder {
		run := r.Members(s)
		require.Len(t, run, wantLen[s], "section %s", s)
		for i, m := range run {
			require.Equal(t, fmt.Sprintf("%s%d", s.Initial(), i), m.Label)
			require.Equal(t, s, m.Section)
		}
	}
	require.Equal(t, 10, r.Size())
}

func TestBuildZeroAndNegativeCounts(t *testing.T) {
	r := roster.Build(roster.Counts{Sopranos: 0, Altos: -5, Tenors: 2})
	require.Empty(t, r.Members(roster.Soprano))
	require.Empty(t, r.Members(roster.Alto))
	require.Len(t, r.Members(roster.Tenor), 2)
	require.Empty(t, r.Members(roster.Bass))
	require.Equal(t, 2, r.Size())
}

func TestBuildIDsUniqueWithinBuild(t *testing.T) {
	r := roster.Build(roster.Counts{Sopranos: 10, Altos: 10, Tenors: 10, Basses: 10})
	seen := make(map[string]struct{}, r.Size())
	for _, m := range r.InOrder() {
		require.NotEmpty(t, m.ID)
		_, dup := seen[m.ID]
		require.False(t, dup, "duplicate id %s", m.ID)
		seen[m.ID] = struct{}{}
	}
}

func TestConcatenationOrders(t *testing.T) {
	r := roster.Build(roster.Counts{Sopranos: 2, Altos: 2, Tenors: 2, Basses: 2})

	labels := func(members []*roster.Member) []string {
		out := make([]string, len(members))
		for i, m := range members {
			out[i] = m.Label
		}
		return out
	}

	require.Equal(t, []string{"S0", "S1", "A0", "A1", "T0", "T1", "B0", "B1"}, labels(r.InOrder()))
	require.Equal(t, []string{"S0", "S1", "A0", "A1"}, labels(r.Upper()))
	require.Equal(t, []string{"T0", "T1", "B0", "B1"}, labels(r.Lower()))
}

func TestCountsTotalIgnoresNegatives(t *testing.T) {
	c := roster.Counts{Sopranos: 4, Altos: -2, Tenors: 3}
	require.Equal(t, 7, c.Total())
}

func TestSectionNames(t *testing.T) {
	require.Equal(t, "Soprano", roster.Soprano.String())
	require.Equal(t, "B", roster.Bass.Initial())
	require.Equal(t, "Unknown", roster.Section(9).String())
}
