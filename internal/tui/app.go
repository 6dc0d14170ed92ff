// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for Riser.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kantorei/riser/internal/board"
	"github.com/kantorei/riser/internal/config"
	"github.com/kantorei/riser/internal/logbook"
)

// appState represents which "screen" we're on
type appState int

const (
	stateMainMenu appState = iota // Main menu with "Open Seating Chart", etc.
	stateBoard                    // The riser grid with cursor + pick/drop
	stateSettings                 // Ensemble size, rows, and policy form
)

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	board   *board.Board
	logbook *logbook.Logbook

	// UI components
	mainMenu     list.Model // The main menu list
	boardView    *boardView
	settingsView *settingsView
	statusMsg    string // Status message to display

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// menuItem implements list.Item interface for our menu items
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// NewApp creates a new App instance
func NewApp(projectDir string) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	lb, err := logbook.Open(cfg.SessionLogPath())
	if err == nil {
		lb.SessionOpened(cfg.Counts().Total())
	}

	seating := board.New(board.Settings{
		Counts: cfg.Counts(),
		Rows:   cfg.Rows(),
		Policy: cfg.Policy(),
	}, board.WithLogbook(lb))

	mainMenu := list.New(buildMainMenu(), list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "♪ THE PODIUM"
	mainMenu.SetShowStatusBar(false)
	mainMenu.SetFilteringEnabled(false)

	return &App{
		state:    stateMainMenu,
		config:   cfg,
		board:    seating,
		logbook:  lb,
		mainMenu: mainMenu,
	}, nil
}

// buildMainMenu creates the main menu items
func buildMainMenu() []list.Item {
	return []list.Item{
		menuItem{title: "Open Seating Chart", desc: "Generate the grid and rearrange singers"},
		menuItem{title: "Settings", desc: "Ensemble size, stage rows, and placement policy"},
		menuItem{title: "Exit", desc: "Quit Riser"},
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.mainMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == stateMainMenu {
				return a, tea.Quit
			}
		case "esc":
			// On the board, esc first puts a picked singer back down;
			// only a second esc leaves the screen.
			if a.state == stateBoard && a.boardView != nil && a.boardView.hasPick() {
				a.boardView.cancelPick()
				a.statusMsg = "Pick cancelled"
				return a, nil
			}
			if a.state != stateMainMenu {
				return a.returnToMainMenu()
			}
		case "enter":
			if a.state == stateMainMenu {
				return a.handleMainMenuSelection()
			}
		}
	}

	var cmds []tea.Cmd
	switch a.state {
	case stateMainMenu:
		var menuCmd tea.Cmd
		a.mainMenu, menuCmd = a.mainMenu.Update(msg)
		if menuCmd != nil {
			cmds = append(cmds, menuCmd)
		}
	case stateBoard:
		if a.boardView != nil {
			if cmd := a.boardView.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	case stateSettings:
		if a.settingsView != nil {
			if cmd := a.settingsView.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// handleMainMenuSelection processes menu item selection
func (a *App) handleMainMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.mainMenu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}

	switch item.title {
	case "Open Seating Chart":
		a.logbook.Note("Menu · Seating chart opened")
		return a.openBoard()

	case "Settings":
		a.logbook.Note("Menu · Settings opened")
		return a.openSettings()

	case "Exit":
		a.logbook.Note("Menu · Exit selected")
		return a, tea.Quit
	}

	return a, nil
}

func (a *App) openBoard() (tea.Model, tea.Cmd) {
	if a.board.Grid() == nil {
		if err := a.board.Regenerate(); err != nil {
			a.statusMsg = fmt.Sprintf("Chart failed: %v · adjust Settings", err)
		}
	}
	a.state = stateBoard
	a.boardView = newBoardView(a)
	if a.board.Grid() != nil {
		a.statusMsg = "Space picks a singer up, Space again drops them"
	}
	return a, nil
}

func (a *App) openSettings() (tea.Model, tea.Cmd) {
	a.state = stateSettings
	a.settingsView = newSettingsView(a)
	a.statusMsg = "Enter applies and rebuilds the chart"
	return a, nil
}

// returnToMainMenu transitions back to the main menu
func (a *App) returnToMainMenu() (tea.Model, tea.Cmd) {
	a.state = stateMainMenu
	a.boardView = nil
	a.settingsView = nil
	a.statusMsg = ""
	a.logbook.Note("Returned to main menu")
	return a, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	var content string
	switch a.state {
	case stateMainMenu:
		content = a.mainMenu.View()
	case stateBoard:
		if a.boardView != nil {
			content = a.boardView.View()
		} else {
			content = "Loading chart..."
		}
	case stateSettings:
		if a.settingsView != nil {
			content = a.settingsView.View()
		} else {
			content = "Loading settings..."
		}
	}
	return a.renderFrame(content, width)
}

func (a *App) renderFrame(content string, width int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("♪ RISER")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(24, width-2)).
		Render(content)
	sections := []string{header, box}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

// renderLogPanel tails the session journal under the main box, one
// entry per line with its kind tag lifted into the palette.
func (a *App) renderLogPanel() string {
	lines := a.logbook.Tail(8)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "session"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("JOURNAL · %s", fileName))
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = styleJournalLine(line)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + strings.Join(styled, "\n"))
	return box
}

// journalKindColors reuses the screen palette so swaps and refusals
// stand out in the tail.
var journalKindColors = map[string]lipgloss.Color{
	string(logbook.KindSession): "#CCCCCC",
	string(logbook.KindChart):   "#5B8DEF",
	string(logbook.KindSwap):    "#F7B801",
	string(logbook.KindReject):  "#FF6B6B",
	string(logbook.KindNote):    "#AAAAAA",
}

// styleJournalLine colors the kind tag of one journal line and dims
// the rest. Journal lines are "date clock KIND message"; anything else
// renders plain dim.
func styleJournalLine(line string) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	parts := strings.SplitN(line, " ", 4)
	if len(parts) < 4 {
		return dim.Render(line)
	}
	color, ok := journalKindColors[parts[2]]
	if !ok {
		return dim.Render(line)
	}
	kind := lipgloss.NewStyle().Foreground(color).Render(parts[2])
	return dim.Render(parts[0]+" "+parts[1]) + " " + kind + " " + dim.Render(parts[3])
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
