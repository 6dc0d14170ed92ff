package grid

import (
	"fmt"

	"github.com/kantorei/riser/internal/roster"
)

// Address identifies one slot by zero-based row and column indexes.
// Rows are uniform in length, so a column valid for one row is valid
// for every row.
type Address struct {
	Row int
	Col int
}

// String renders the address for log lines and error messages.
func (a Address) String() string {
	return fmt.Sprintf("(%d,%d)", a.Row, a.Col)
}

// Grid is the rectangular arrangement of slots. Every row has the same
// number of slots; a nil slot is an empty, padded position. Grids are
// immutable: Arrange produces them wholesale and Swap returns a
// replacement rather than editing in place.
type Grid struct {
	rows  [][]*roster.Member
	width int
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Width returns the uniform slot count per row.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether a addresses an existing slot.
func (g *Grid) InBounds(a Address) bool {
	return a.Row >= 0 && a.Row < len(g.rows) && a.Col >= 0 && a.Col < g.width
}

// At returns the occupant of a slot. It is nil for an empty slot and for
// addresses outside the grid; use InBounds when the distinction matters.
func (g *Grid) At(a Address) *roster.Member {
	if !g.InBounds(a) {
		return nil
	}
	return g.rows[a.Row][a.Col]
}

// Row returns a copy of one row's slots, nil if the index is out of
// range. The copy keeps callers from bypassing Swap.
func (g *Grid) Row(i int) []*roster.Member {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	out := make([]*roster.Member, len(g.rows[i]))
	copy(out, g.rows[i])
	return out
}

// Occupied counts the non-empty slots. After Arrange this equals the
// roster size, and Swap never changes it.
func (g *Grid) Occupied() int {
	total := 0
	for _, row := range g.rows {
		for _, slot := range row {
			if slot != nil {
				total++
			}
		}
	}
	return total
}

// Stagger returns a rendering offset for one row, in half-slot units:
// the difference between the grid width and the row's slot count, plus
// one for odd row indexes. Renderers indent staggered rows so singers
// line up with the gaps in the row ahead, brick-wall style. The offset
// carries no data-model meaning and never affects addressing.
func (g *Grid) Stagger(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return (g.width - len(g.rows[row])) + row%2
}

func (g *Grid) checkAddress(a Address) error {
	if g.InBounds(a) {
		return nil
	}
	return fmt.Errorf("%w: %s in %dx%d grid", ErrAddress, a, len(g.rows), g.width)
}
