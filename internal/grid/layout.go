package grid

import (
	"fmt"

	"github.com/kantorei/riser/internal/roster"
)

// Policy selects which rows receive which sections' members. The set is
// closed; selector values ("auto", "condition1", "condition2") are part
// of the configuration surface and stay stable.
type Policy int

const (
	// PolicyAuto deals the whole roster, sections in fixed order, round-
	// robin across every row.
	PolicyAuto Policy = iota

	// PolicyCondition1 deals Soprano+Alto across rows 0 and 1 and seats
	// Tenor+Bass together on row 2. Needs at least 3 rows.
	PolicyCondition1

	// PolicyCondition2 deals Soprano+Alto across rows 0 through 2 and
	// seats Tenor+Bass on row 3. Needs at least 4 rows.
	PolicyCondition2
)

// Policies lists the closed set in selector order.
var Policies = [3]Policy{PolicyAuto, PolicyCondition1, PolicyCondition2}

// String returns the selector value for the policy.
func (p Policy) String() string {
	switch p {
	case PolicyAuto:
		return "auto"
	case PolicyCondition1:
		return "condition1"
	case PolicyCondition2:
		return "condition2"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// MinRows returns the smallest row count the policy can seat.
func (p Policy) MinRows() int {
	switch p {
	case PolicyCondition1:
		return 3
	case PolicyCondition2:
		return 4
	default:
		return 1
	}
}

// ParsePolicy maps a selector value back to its Policy. Unknown values
// return ErrUnknownPolicy; counts may normalize silently, but the policy
// set is closed and a typo should not pick a layout on the user's behalf.
func ParsePolicy(value string) (Policy, error) {
	for _, p := range Policies {
		if value == p.String() {
			return p, nil
		}
	}
	return PolicyAuto, fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
}

// Arrange distributes the roster into rows rows under the given policy
// and balances the result into a rectangular grid. A row count below 1
// is clamped to 1, matching the configuration surface. The only error is
// ErrPolicyRows, returned before any placement happens when the policy
// references rows the count does not provide.
func Arrange(r roster.Roster, rows int, policy Policy) (*Grid, error) {
	if rows < 1 {
		rows = 1
	}
	if rows < policy.MinRows() {
		return nil, fmt.Errorf("%w: %s needs at least %d rows, have %d",
			ErrPolicyRows, policy, policy.MinRows(), rows)
	}

	raw := make([][]*roster.Member, rows)
	switch policy {
	case PolicyCondition1:
		deal(raw, []int{0, 1}, r.Upper())
		deal(raw, []int{2}, r.Lower())
	case PolicyCondition2:
		deal(raw, []int{0, 1, 2}, r.Upper())
		deal(raw, []int{3}, r.Lower())
	default:
		group := make([]int, rows)
		for i := range group {
			group[i] = i
		}
		deal(raw, group, r.InOrder())
	}
	return balance(raw), nil
}

// deal hands members to a group of rows round-robin: the member at
// overall position p within src is appended to the group's (p mod k)-th
// row, so order within a row follows src order, not section interleave.
// A single-row group degenerates to sequential seating.
func deal(raw [][]*roster.Member, group []int, src []*roster.Member) {
	k := len(group)
	for p, m := range src {
		row := group[p%k]
		raw[row] = append(raw[row], m)
	}
}

// balance pads every row to the width of the longest one. The padding
// splits evenly between the two ends; when the deficit is odd the extra
// empty slot goes to the right. Member order within a row is preserved.
func balance(raw [][]*roster.Member) *Grid {
	width := 0
	for _, row := range raw {
		if len(row) > width {
			width = len(row)
		}
	}
	rows := make([][]*roster.Member, len(raw))
	for i, row := range raw {
		if len(row) > width {
			row = row[:width]
		}
		left := (width - len(row)) / 2
		padded := make([]*roster.Member, width)
		copy(padded[left:], row)
		rows[i] = padded
	}
	return &Grid{rows: rows, width: width}
}
