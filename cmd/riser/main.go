// cmd/riser/main.go
//
// This is the entry point for the Riser TUI.
// When you run `riser` from a project directory, this is what executes.
//
// Flow:
// 1. Make sure the .riser folder exists (config + logs live there)
// 2. Build the application model from the project config
// 3. Hand the model to bubbletea and block until the user quits

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kantorei/riser/internal/config"
	"github.com/kantorei/riser/internal/tui"
)

func main() {
	// The current working directory is the "project" we chart for.
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitRiserDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .riser directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading project config: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
