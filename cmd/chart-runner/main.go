// cmd/chart-runner/main.go
//
// Headless one-shot chart printer. It loads the project config, applies
// any flag overrides, arranges a fresh chart, and prints the roster
// summary plus the seating grid to stdout. Useful for previewing a
// configuration without opening the TUI, or for piping a chart into
// rehearsal notes.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kantorei/riser/internal/config"
	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/roster"
)

// Same cell footprint as the TUI board so a printed chart lines up with
// what the interactive screen shows.
const (
	cellContentWidth = 4
	staggerIndent    = 3
)

func main() {
	projectDir := flag.String("project", "", "path to the project directory (defaults to cwd)")
	sopranos := flag.Int("sopranos", -1, "soprano count (-1 uses the project config)")
	altos := flag.Int("altos", -1, "alto count (-1 uses the project config)")
	tenors := flag.Int("tenors", -1, "tenor count (-1 uses the project config)")
	basses := flag.Int("basses", -1, "bass count (-1 uses the project config)")
	rows := flag.Int("rows", 0, "row count (0 uses the project config)")
	policyName := flag.String("policy", "", "placement policy: auto, condition1, condition2 (empty uses the project config)")
	flag.Parse()

	project := *projectDir
	if project == "" {
		var err error
		project, err = os.Getwd()
		if err != nil {
			die("determine working directory: %v", err)
		}
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		die("resolve project dir: %v", err)
	}
	if err := config.InitRiserDir(absoluteProject); err != nil {
		die("init .riser: %v", err)
	}
	cfg, err := config.NewConfig(absoluteProject)
	if err != nil {
		die("load config: %v", err)
	}

	counts := cfg.Counts()
	if *sopranos >= 0 {
		counts.Sopranos = *sopranos
	}
	if *altos >= 0 {
		counts.Altos = *altos
	}
	if *tenors >= 0 {
		counts.Tenors = *tenors
	}
	if *basses >= 0 {
		counts.Basses = *basses
	}

	rowCount := cfg.Rows()
	if *rows > 0 {
		rowCount = *rows
	}

	policy := cfg.Policy()
	if name := strings.TrimSpace(*policyName); name != "" {
		policy, err = grid.ParsePolicy(name)
		if err != nil {
			die("parse policy: %v", err)
		}
	}

	ensemble := roster.Build(counts)
	chart, err := grid.Arrange(ensemble, rowCount, policy)
	if err != nil {
		die("arrange chart: %v", err)
	}

	fmt.Println(renderRoster(cfg, ensemble))
	fmt.Println()
	fmt.Printf("%d singers across %d rows, policy %s\n\n", ensemble.Size(), chart.Rows(), policy)
	fmt.Println(renderChart(cfg, chart))
}

func die(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func renderRoster(cfg *config.Config, ensemble roster.Roster) string {
	tableRows := make([][]string, 0, len(roster.SectionOrder))
	for _, s := range roster.SectionOrder {
		members := ensemble.Members(s)
		labels := make([]string, len(members))
		for i, m := range members {
			labels[i] = m.Label
		}
		tableRows = append(tableRows, []string{
			s.String(),
			fmt.Sprintf("%d", len(members)),
			strings.Join(labels, " "),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		BorderHeader(true).
		BorderRow(false).
		Headers("Section", "Singers", "Labels").
		Rows(tableRows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			s := roster.SectionOrder[(row-1)%len(roster.SectionOrder)]
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(cfg.SectionColor(s))).
				Padding(0, 1)
		}).
		Render()
}

func renderChart(cfg *config.Config, chart *grid.Grid) string {
	cellStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Width(cellContentWidth).
		Align(lipgloss.Center)

	lines := make([]string, 0, chart.Rows())
	for rowIdx := 0; rowIdx < chart.Rows(); rowIdx++ {
		cells := make([]string, 0, chart.Width())
		for _, m := range chart.Row(rowIdx) {
			label := "·"
			color := "#888888"
			if m != nil {
				label = m.Label
				color = cfg.SectionColor(m.Section)
			}
			cells = append(cells, cellStyle.Foreground(lipgloss.Color(color)).Render(label))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if indent := chart.Stagger(rowIdx) * staggerIndent; indent > 0 {
			row = lipgloss.NewStyle().MarginLeft(indent).Render(row)
		}
		lines = append(lines, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
