// internal/roster/roster.go
//
// The roster is the input side of every chart: four section headcounts
// turned into four ordered runs of members. Labels are sequential within
// a section (S0, S1, ... / A0, A1, ...) and stay attached to the member
// for the life of the roster; identity is a separate opaque ID so two
// builds with the same headcounts never produce interchangeable members.

package roster

import (
	"fmt"

	"github.com/google/uuid"
)

// Section identifies one of the four fixed voice parts.
type Section int

const (
	Soprano Section = iota
	Alto
	Tenor
	Bass
)

// SectionOrder lists the parts in the order every placement policy
// consumes them. The order is part of the chart contract: "auto" walks
// the whole roster in this order, the split policies take the first two
// as the upper block and the last two as the lower block.
var SectionOrder = [4]Section{Soprano, Alto, Tenor, Bass}

// String returns the section's full name.
func (s Section) String() string {
	switch s {
	case Soprano:
		return "Soprano"
	case Alto:
		return "Alto"
	case Tenor:
		return "Tenor"
	case Bass:
		return "Bass"
	default:
		return "Unknown"
	}
}

// Initial returns the single-letter prefix used in member labels.
func (s Section) Initial() string {
	switch s {
	case Soprano:
		return "S"
	case Alto:
		return "A"
	case Tenor:
		return "T"
	case Bass:
		return "B"
	default:
		return "?"
	}
}

// Member is one singer on the roster. Members are immutable once built;
// the grid relocates them but never rewrites them.
type Member struct {
	// ID is unique within one roster build. It is not stable across
	// rebuilds: regenerating a chart produces a fresh cast.
	ID string

	// Label is the display name, section initial plus zero-based index
	// within the section ("S0", "A3").
	Label string

	Section Section
}

// Counts holds the requested headcount per section. Values are expected
// to be normalized already (non-negative); Build treats anything below
// zero as zero rather than guessing at the caller's intent.
type Counts struct {
	Sopranos int
	Altos    int
	Tenors   int
	Basses   int
}

// Of returns the count requested for one section.
func (c Counts) Of(s Section) int {
	switch s {
	case Soprano:
		return c.Sopranos
	case Alto:
		return c.Altos
	case Tenor:
		return c.Tenors
	case Bass:
		return c.Basses
	default:
		return 0
	}
}

// Total returns the requested headcount across all four sections.
func (c Counts) Total() int {
	total := 0
	for _, s := range SectionOrder {
		if n := c.Of(s); n > 0 {
			total += n
		}
	}
	return total
}

// Roster holds the generated members, one ordered run per section.
type Roster struct {
	sections [4][]*Member
}

// Build creates a fresh roster for the given headcounts. Each section
// gets exactly the requested number of members, labeled in creation
// order. Build never fails; its only side effect is ID generation.
func Build(c Counts) Roster {
	var r Roster
	for _, s := range SectionOrder {
		n := c.Of(s)
		if n < 0 {
			n = 0
		}
		members := make([]*Member, 0, n)
		for i := 0; i < n; i++ {
			members = append(members, &Member{
				ID:      uuid.NewString(),
				Label:   fmt.Sprintf("%s%d", s.Initial(), i),
				Section: s,
			})
		}
		r.sections[s] = members
	}
	return r
}

// Members returns the ordered run for one section. The slice belongs to
// the roster; callers must not modify it.
func (r Roster) Members(s Section) []*Member {
	if s < 0 || int(s) >= len(r.sections) {
		return nil
	}
	return r.sections[s]
}

// Size returns the number of members across all sections.
func (r Roster) Size() int {
	total := 0
	for _, run := range r.sections {
		total += len(run)
	}
	return total
}

// InOrder concatenates all four sections in SectionOrder. This is the
// source sequence for the "auto" placement policy.
func (r Roster) InOrder() []*Member {
	return r.concat(SectionOrder[:])
}

// Upper concatenates the treble block, Soprano then Alto.
func (r Roster) Upper() []*Member {
	return r.concat([]Section{Soprano, Alto})
}

// Lower concatenates the lower block, Tenor then Bass.
func (r Roster) Lower() []*Member {
	return r.concat([]Section{Tenor, Bass})
}

func (r Roster) concat(order []Section) []*Member {
	total := 0
	for _, s := range order {
		total += len(r.sections[s])
	}
	out := make([]*Member, 0, total)
	for _, s := range order {
		out = append(out, r.sections[s]...)
	}
	return out
}
