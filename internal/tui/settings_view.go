package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kantorei/riser/internal/board"
	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/roster"
)

// Field order on the settings form: the four section counts, the row
// count, then the policy selector. The policy is cycled, not typed, so
// it sits one index past the text inputs.
const policyFieldIndex = 5

var settingsFieldLabels = [5]string{"Sopranos", "Altos", "Tenors", "Basses", "Rows"}

var (
	settingsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
	policyValueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	settingsDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// settingsView edits the board settings as free-form text; values are
// normalized on apply, never while typing.
type settingsView struct {
	app    *App
	inputs []textinput.Model
	policy grid.Policy
	focus  int
}

func newSettingsView(app *App) *settingsView {
	s := app.board.Settings()
	values := [5]int{s.Counts.Sopranos, s.Counts.Altos, s.Counts.Tenors, s.Counts.Basses, s.Rows}
	inputs := make([]textinput.Model, len(values))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 3
		ti.Width = 4
		ti.SetValue(strconv.Itoa(values[i]))
		inputs[i] = ti
	}
	inputs[0].Focus()
	return &settingsView{app: app, inputs: inputs, policy: s.Policy}
}

func (v *settingsView) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "up", "shift+tab":
			return v.setFocus(v.focus - 1)
		case "down", "tab":
			return v.setFocus(v.focus + 1)
		case "left", "right":
			// Arrows cycle the policy selector; inside a text input
			// they move the text cursor instead.
			if v.focus == policyFieldIndex {
				v.cyclePolicy(m.String() == "right")
				return nil
			}
		case "enter":
			v.apply()
			return nil
		}
	}
	if v.focus < len(v.inputs) {
		var cmd tea.Cmd
		v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
		return cmd
	}
	return nil
}

func (v *settingsView) setFocus(target int) tea.Cmd {
	total := policyFieldIndex + 1
	v.focus = ((target % total) + total) % total
	var cmd tea.Cmd
	for i := range v.inputs {
		if i == v.focus {
			cmd = v.inputs[i].Focus()
		} else {
			v.inputs[i].Blur()
		}
	}
	return cmd
}

func (v *settingsView) cyclePolicy(forward bool) {
	n := len(grid.Policies)
	idx := 0
	for i, p := range grid.Policies {
		if p == v.policy {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	v.policy = grid.Policies[idx]
}

// apply normalizes the typed values, asks the board for a fresh chart,
// and persists the accepted settings as the new launch defaults. A
// rejected combination leaves the board and the form untouched.
func (v *settingsView) apply() {
	next := board.Settings{
		Counts: roster.Counts{
			Sopranos: board.ParseCount(v.inputs[0].Value()),
			Altos:    board.ParseCount(v.inputs[1].Value()),
			Tenors:   board.ParseCount(v.inputs[2].Value()),
			Basses:   board.ParseCount(v.inputs[3].Value()),
		},
		Rows:   board.ParseRows(v.inputs[4].Value()),
		Policy: v.policy,
	}
	if err := v.app.board.Apply(next); err != nil {
		v.setStatus(fmt.Sprintf("Rejected: %v", err))
		return
	}
	applied := v.app.board.Settings()
	v.refreshInputs(applied)
	if err := v.app.config.SaveSettings(applied.Counts, applied.Rows, applied.Policy); err != nil {
		v.app.logbook.Rejected("save settings", err)
	}
	v.setStatus(fmt.Sprintf("Chart rebuilt: %d singers across %d rows",
		v.app.board.Roster().Size(), applied.Rows))
}

// refreshInputs writes the normalized values back so the form shows
// what was actually applied, not what was typed.
func (v *settingsView) refreshInputs(s board.Settings) {
	values := [5]int{s.Counts.Sopranos, s.Counts.Altos, s.Counts.Tenors, s.Counts.Basses, s.Rows}
	for i := range v.inputs {
		v.inputs[i].SetValue(strconv.Itoa(values[i]))
	}
	v.policy = s.Policy
}

func (v *settingsView) View() string {
	lines := []string{settingsTitleStyle.Render("Ensemble & Stage"), ""}
	for i := range v.inputs {
		marker := "  "
		if v.focus == i {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-9s %s", marker, settingsFieldLabels[i], v.inputs[i].View()))
	}
	marker := "  "
	if v.focus == policyFieldIndex {
		marker = "> "
	}
	policyLine := fmt.Sprintf("%s%-9s ← %s →", marker, "Policy", policyValueStyle.Render(v.policy.String()))
	if min := v.policy.MinRows(); min > 1 {
		policyLine += settingsDimStyle.Render(fmt.Sprintf("  needs %d+ rows", min))
	}
	lines = append(lines, policyLine)
	lines = append(lines,
		"",
		"tab/↑↓=next field  ←/→=policy  enter=apply",
		"esc=back to menu",
	)
	return strings.Join(lines, "\n")
}

func (v *settingsView) setStatus(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	v.app.statusMsg = message
}
