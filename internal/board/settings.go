package board

import (
	"strconv"
	"strings"

	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/roster"
)

// Settings is everything a chart is generated from: section headcounts,
// the number of stage rows, and the placement policy that fills them.
type Settings struct {
	Counts roster.Counts
	Rows   int
	Policy grid.Policy
}

// Normalize coerces free-form values into the ranges the generator
// accepts: negative headcounts become zero and the row count is raised
// to at least one. A policy the row count cannot satisfy is left alone
// here; Apply rejects that combination instead of guessing.
func (s Settings) Normalize() Settings {
	s.Counts.Sopranos = clampCount(s.Counts.Sopranos)
	s.Counts.Altos = clampCount(s.Counts.Altos)
	s.Counts.Tenors = clampCount(s.Counts.Tenors)
	s.Counts.Basses = clampCount(s.Counts.Basses)
	s.Rows = ClampRows(s.Rows)
	return s
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ClampRows raises a row count below one to one. A chart always has at
// least one row to stand on.
func ClampRows(rows int) int {
	if rows < 1 {
		return 1
	}
	return rows
}

// ParseCount interprets operator input for one section headcount.
// Anything that does not parse as a non-negative integer means "no
// singers": blank fields, stray text, and negative numbers all come
// back as zero rather than as an error.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseRows interprets operator input for the row count, degrading
// unparseable input to the one-row minimum instead of failing.
func ParseRows(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	return ClampRows(n)
}
