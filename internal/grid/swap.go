package grid

import "github.com/kantorei/riser/internal/roster"

// Swap exchanges the contents of two addressed slots, members and empty
// slots alike, and returns the resulting grid. The receiver is left
// untouched: changed rows are copied, unchanged rows are shared, so a
// reader holding the old grid keeps a consistent pre-swap view. Swapping
// a slot with itself is a valid no-op and returns the receiver. An
// address outside the grid returns ErrAddress and no new grid.
func (g *Grid) Swap(a, b Address) (*Grid, error) {
	if err := g.checkAddress(a); err != nil {
		return nil, err
	}
	if err := g.checkAddress(b); err != nil {
		return nil, err
	}
	if a == b {
		return g, nil
	}

	rows := make([][]*roster.Member, len(g.rows))
	copy(rows, g.rows)

	ra := append([]*roster.Member(nil), rows[a.Row]...)
	if a.Row == b.Row {
		ra[a.Col], ra[b.Col] = ra[b.Col], ra[a.Col]
		rows[a.Row] = ra
		return &Grid{rows: rows, width: g.width}, nil
	}

	rb := append([]*roster.Member(nil), rows[b.Row]...)
	ra[a.Col], rb[b.Col] = rb[b.Col], ra[a.Col]
	rows[a.Row] = ra
	rows[b.Row] = rb
	return &Grid{rows: rows, width: g.width}, nil
}
