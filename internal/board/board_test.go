package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kantorei/riser/internal/board"
	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/roster"
)

func chartLabels(t *testing.T, b *board.Board) [][]string {
	t.Helper()
	g := b.Grid()
	require.NotNil(t, g)
	out := make([][]string, g.Rows())
	for i := range out {
		row := g.Row(i)
		labels := make([]string, len(row))
		for j, m := range row {
			if m == nil {
				labels[j] = "·"
			} else {
				labels[j] = m.Label
			}
		}
		out[i] = labels
	}
	return out
}

func TestNewNormalizesSettings(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: -3, Altos: 2, Tenors: -1},
		Rows:   0,
		Policy: grid.PolicyAuto,
	})
	s := b.Settings()
	require.Equal(t, roster.Counts{Altos: 2}, s.Counts)
	require.Equal(t, 1, s.Rows)
	require.Nil(t, b.Grid(), "no chart before Regenerate")
}

func TestRegenerateBuildsChart(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2},
		Rows:   2,
		Policy: grid.PolicyAuto,
	})
	require.NoError(t, b.Regenerate())
	require.Equal(t, [][]string{
		{"S0", "A0"},
		{"S1", "A1"},
	}, chartLabels(t, b))
	require.Equal(t, 4, b.Roster().Size())
}

func TestRegenerateDiscardsManualSwaps(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2},
		Rows:   2,
		Policy: grid.PolicyAuto,
	})
	require.NoError(t, b.Regenerate())
	require.NoError(t, b.Swap(grid.Address{Row: 0, Col: 0}, grid.Address{Row: 1, Col: 0}))
	require.Equal(t, "S1", b.Grid().At(grid.Address{Row: 0, Col: 0}).Label)

	require.NoError(t, b.Regenerate())
	require.Equal(t, [][]string{
		{"S0", "A0"},
		{"S1", "A1"},
	}, chartLabels(t, b))
}

func TestApplyRejectionKeepsChart(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2},
		Rows:   2,
		Policy: grid.PolicyAuto,
	})
	require.NoError(t, b.Regenerate())
	before := chartLabels(t, b)

	// condition1 needs a third row, so this combination must be refused.
	err := b.Apply(board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2},
		Rows:   2,
		Policy: grid.PolicyCondition1,
	})
	require.ErrorIs(t, err, grid.ErrPolicyRows)
	require.Equal(t, before, chartLabels(t, b))
	require.Equal(t, grid.PolicyAuto, b.Settings().Policy)
}

func TestRegenerateReportsUnsatisfiableSettings(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2},
		Rows:   2,
		Policy: grid.PolicyCondition1,
	})
	err := b.Regenerate()
	require.ErrorIs(t, err, grid.ErrPolicyRows)
	require.Nil(t, b.Grid())
}

func TestApplyReplacesSettingsAndChartTogether(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: 1},
		Rows:   1,
		Policy: grid.PolicyAuto,
	})
	require.NoError(t, b.Regenerate())

	next := board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2, Tenors: 2, Basses: 2},
		Rows:   3,
		Policy: grid.PolicyCondition1,
	}
	require.NoError(t, b.Apply(next))
	require.Equal(t, next, b.Settings())
	require.Equal(t, 3, b.Grid().Rows())
	require.Equal(t, 8, b.Grid().Occupied())
}

func TestSwapWithoutChart(t *testing.T) {
	b := board.New(board.Settings{Rows: 1, Policy: grid.PolicyAuto})
	err := b.Swap(grid.Address{}, grid.Address{Row: 0, Col: 1})
	require.ErrorIs(t, err, board.ErrNoGrid)
}

func TestSwapRejectionLeavesChartAlone(t *testing.T) {
	b := board.New(board.Settings{
		Counts: roster.Counts{Sopranos: 2, Altos: 2},
		Rows:   2,
		Policy: grid.PolicyAuto,
	})
	require.NoError(t, b.Regenerate())
	before := chartLabels(t, b)

	err := b.Swap(grid.Address{Row: 0, Col: 0}, grid.Address{Row: 5, Col: 0})
	require.ErrorIs(t, err, grid.ErrAddress)
	require.Equal(t, before, chartLabels(t, b))
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"8", 8},
		{" 12 ", 12},
		{"0", 0},
		{"-4", 0},
		{"", 0},
		{"eight", 0},
		{"3.5", 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, board.ParseCount(tc.raw), "input %q", tc.raw)
	}
}

func TestParseRows(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"1", 1},
		{"0", 1},
		{"-2", 1},
		{"", 1},
		{"tall", 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, board.ParseRows(tc.raw), "input %q", tc.raw)
	}
}

func TestClampRows(t *testing.T) {
	require.Equal(t, 1, board.ClampRows(0))
	require.Equal(t, 1, board.ClampRows(-10))
	require.Equal(t, 4, board.ClampRows(4))
}
