package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/roster"
)

// Cell geometry: labels are at most three characters (S99), so four
// columns of content plus the border gives every slot the same
// footprint. The stagger indent is half that footprint.
const (
	cellContentWidth = 4
	staggerIndent    = 3
)

var (
	cursorBorderColor = lipgloss.Color("#5B8DEF")
	pickedBorderColor = lipgloss.Color("#F7B801")
	quietBorderColor  = lipgloss.Color("#444444")
	emptySlotColor    = lipgloss.Color("#888888")
	boardHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	boardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
)

// boardView drives the seating chart screen: a cursor over the grid
// plus an optional picked slot. Dropping the pick on a second slot asks
// the board for a swap; the grid itself is never touched directly.
type boardView struct {
	app    *App
	cursor grid.Address
	picked *grid.Address
}

func newBoardView(app *App) *boardView {
	return &boardView{app: app}
}

func (v *boardView) hasPick() bool {
	return v.picked != nil
}

func (v *boardView) cancelPick() {
	v.picked = nil
}

func (v *boardView) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.KeyMsg); ok {
		return v.handleKeyMsg(m)
	}
	return nil
}

func (v *boardView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		v.moveCursor(-1, 0)
	case "down", "j":
		v.moveCursor(1, 0)
	case "left", "h":
		v.moveCursor(0, -1)
	case "right", "l":
		v.moveCursor(0, 1)
	case " ", "enter":
		v.pickOrDrop()
	case "r":
		v.regenerate()
	}
	return nil
}

func (v *boardView) moveCursor(dRow, dCol int) {
	g := v.app.board.Grid()
	if g == nil || g.Width() == 0 {
		return
	}
	next := grid.Address{Row: v.cursor.Row + dRow, Col: v.cursor.Col + dCol}
	if g.InBounds(next) {
		v.cursor = next
	}
}

// pickOrDrop is the two-step swap gesture: the first press remembers
// the cursor slot, the second asks the board to exchange the two. A
// drop on the original slot just clears the pick.
func (v *boardView) pickOrDrop() {
	g := v.app.board.Grid()
	if g == nil || g.Width() == 0 {
		v.setStatus("No chart to edit · adjust Settings first")
		return
	}
	if v.picked == nil {
		slot := v.cursor
		v.picked = &slot
		v.setStatus(fmt.Sprintf("Picked %s · move to a slot and press Space to swap", v.describeSlot(slot)))
		return
	}
	from := *v.picked
	v.picked = nil
	if from == v.cursor {
		v.setStatus("Dropped back in place")
		return
	}
	if err := v.app.board.Swap(from, v.cursor); err != nil {
		v.setStatus(fmt.Sprintf("Swap failed: %v", err))
		return
	}
	v.setStatus(fmt.Sprintf("Swapped %s and %s", from, v.cursor))
}

func (v *boardView) regenerate() {
	v.picked = nil
	if err := v.app.board.Regenerate(); err != nil {
		v.setStatus(fmt.Sprintf("Chart failed: %v", err))
		return
	}
	v.clampCursor()
	v.setStatus("Chart regenerated from settings")
}

func (v *boardView) clampCursor() {
	g := v.app.board.Grid()
	if g == nil || g.Width() == 0 {
		v.cursor = grid.Address{}
		return
	}
	if v.cursor.Row >= g.Rows() {
		v.cursor.Row = g.Rows() - 1
	}
	if v.cursor.Col >= g.Width() {
		v.cursor.Col = g.Width() - 1
	}
	if v.cursor.Row < 0 {
		v.cursor.Row = 0
	}
	if v.cursor.Col < 0 {
		v.cursor.Col = 0
	}
}

func (v *boardView) describeSlot(a grid.Address) string {
	if m := v.app.board.Grid().At(a); m != nil {
		return fmt.Sprintf("%s at %s", m.Label, a)
	}
	return fmt.Sprintf("empty slot %s", a)
}

func (v *boardView) View() string {
	g := v.app.board.Grid()
	if g == nil {
		return boardHintStyle.Render("No chart yet: the current settings cannot produce one.\nOpen Settings to fix the row count or policy, then try again.")
	}
	s := v.app.board.Settings()
	title := boardTitleStyle.Render(fmt.Sprintf(
		"%d singers · %d rows · policy %s", g.Occupied(), g.Rows(), s.Policy))
	sections := []string{title, ""}
	if g.Width() == 0 {
		sections = append(sections, boardHintStyle.Render("Nobody on the roster. Add singers in Settings."))
	} else {
		sections = append(sections, v.renderGrid(g), "", v.renderLegend())
	}
	sections = append(sections,
		"",
		"arrows/hjkl=move  space/enter=pick and drop  r=regenerate",
		"esc=back to menu",
	)
	return strings.Join(sections, "\n")
}

func (v *boardView) renderGrid(g *grid.Grid) string {
	rows := make([]string, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, 0, g.Width())
		for c := 0; c < g.Width(); c++ {
			addr := grid.Address{Row: r, Col: c}
			current := addr == v.cursor
			picked := v.picked != nil && *v.picked == addr
			cells = append(cells, v.renderCell(g.At(addr), current, picked))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if indent := g.Stagger(r) * staggerIndent; indent > 0 {
			row = lipgloss.NewStyle().MarginLeft(indent).Render(row)
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *boardView) renderCell(m *roster.Member, current, picked bool) string {
	label := "·"
	color := emptySlotColor
	if m != nil {
		label = m.Label
		color = lipgloss.Color(v.app.config.SectionColor(m.Section))
	}
	style := lipgloss.NewStyle().
		Foreground(color).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(quietBorderColor).
		Width(cellContentWidth).
		Align(lipgloss.Center)
	switch {
	case picked:
		style = style.Bold(true).BorderForeground(pickedBorderColor)
	case current:
		style = style.Bold(true).BorderForeground(cursorBorderColor)
	}
	return style.Render(label)
}

func (v *boardView) renderLegend() string {
	counts := v.app.board.Settings().Counts
	parts := make([]string, 0, len(roster.SectionOrder))
	for _, s := range roster.SectionOrder {
		swatch := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(v.app.config.SectionColor(s))).
			Render(s.Initial())
		parts = append(parts, fmt.Sprintf("%s %s (%d)", swatch, s, counts.Of(s)))
	}
	return boardHintStyle.Render(strings.Join(parts, "   "))
}

// setStatus updates the footer line. Mutations journal themselves via
// the board's logbook, so the view only paints.
func (v *boardView) setStatus(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	v.app.statusMsg = message
}
