// Package board owns the live seating state: the settings a chart was
// generated from, the roster behind it, and the grid the singers
// currently occupy. All mutation goes through Apply, Regenerate, and
// Swap, each of which commits a complete new state or leaves the
// previous one untouched.
package board

import (
	"errors"

	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/logbook"
	"github.com/kantorei/riser/internal/roster"
)

// ErrNoGrid is returned by Swap before the first successful Regenerate.
var ErrNoGrid = errors.New("board: no chart generated yet")

// Board is not safe for concurrent use. The TUI event loop is the only
// writer, so the type stays lock-free.
type Board struct {
	settings Settings
	roster   roster.Roster
	grid     *grid.Grid
	log      *logbook.Logbook
}

// Option customizes a new board.
type Option func(*Board)

// WithLogbook attaches a session logbook. A nil logbook is fine; the
// board simply stays quiet.
func WithLogbook(log *logbook.Logbook) Option {
	return func(b *Board) {
		b.log = log
	}
}

// New creates a board holding normalized settings but no chart yet.
// Call Regenerate to produce the first grid.
func New(s Settings, opts ...Option) *Board {
	b := &Board{settings: s.Normalize()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Settings returns the settings behind the current chart.
func (b *Board) Settings() Settings {
	return b.settings
}

// Grid returns the current chart, nil before the first Regenerate.
func (b *Board) Grid() *grid.Grid {
	return b.grid
}

// Roster returns the roster behind the current chart. It is empty until
// Regenerate or Apply succeeds.
func (b *Board) Roster() roster.Roster {
	return b.roster
}

// Regenerate rebuilds the chart from the current settings: a fresh
// roster, dealt and balanced from scratch, so manual swaps do not
// survive. If the settings cannot produce a grid the previous chart
// stays in place and the error is returned.
func (b *Board) Regenerate() error {
	r := roster.Build(b.settings.Counts)
	g, err := grid.Arrange(r, b.settings.Rows, b.settings.Policy)
	if err != nil {
		b.log.Rejected("regenerate", err)
		return err
	}
	b.roster = r
	b.grid = g
	b.log.ChartRebuilt(r.Size(), g.Rows(), b.settings.Policy)
	return nil
}

// Apply validates new settings by generating their chart. On success the
// settings and the chart are replaced together; on failure both keep
// their previous values and the error says what was wrong.
func (b *Board) Apply(s Settings) error {
	s = s.Normalize()
	r := roster.Build(s.Counts)
	g, err := grid.Arrange(r, s.Rows, s.Policy)
	if err != nil {
		b.log.Rejected("settings", err)
		return err
	}
	b.settings = s
	b.roster = r
	b.grid = g
	b.log.SettingsApplied(r.Size(), s.Rows, s.Policy)
	return nil
}

// Swap exchanges the occupants of two slots on the current chart.
func (b *Board) Swap(from, to grid.Address) error {
	if b.grid == nil {
		return ErrNoGrid
	}
	g, err := b.grid.Swap(from, to)
	if err != nil {
		b.log.Rejected("swap", err)
		return err
	}
	b.grid = g
	b.log.Swapped(from, to)
	return nil
}
