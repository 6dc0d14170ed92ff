// Package grid arranges a roster into the rectangular slot grid of a
// riser chart and keeps that grid consistent while the user rearranges
// it.
//
// An arrangement happens in two steps:
//
//   - Distribution: members are dealt into rows by round-robin within the
//     row groups a Policy defines (see Arrange).
//   - Balancing: rows are padded with empty slots, split evenly between
//     the two ends, until every row has the width of the longest one, so
//     shorter rows render centered.
//
// The resulting Grid is a value: the only mutation is Swap, which
// exchanges the contents of two addressed slots and returns a replacement
// grid, sharing every untouched row with its predecessor. Callers
// therefore never observe a half-applied exchange.
//
// Errors:
//
//   - ErrPolicyRows: the selected policy references rows the requested
//     row count does not provide.
//   - ErrAddress: a slot address lies outside the grid.
package grid
