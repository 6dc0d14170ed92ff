// internal/config/config.go
//
// This package handles configuration and the .riser directory structure.
// Every project that uses Riser gets a .riser/ folder created in its root.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kantorei/riser/internal/grid"
	"github.com/kantorei/riser/internal/roster"
)

const (
	// RiserDir is the name of the directory we create in each project
	RiserDir = ".riser"

	defaultRows = 3
)

const defaultProjectConfigYAML = `# riser project configuration
version: 1

# Singers per section when a fresh chart is generated.
ensemble:
  sopranos: 8
  altos: 8
  tenors: 6
  basses: 6

# Stage shape and placement policy: auto, condition1, or condition2.
layout:
  rows: 3
  policy: auto

# Colors the chart view uses for each section. Any value lipgloss
# accepts works here; leave one out to fall back to the default.
theme:
  soprano: "#F7B801"
  alto: "#FF6B6B"
  tenor: "#5B8DEF"
  bass: "#4CAF50"
`

// EnsembleConfig declares the default headcount per section.
type EnsembleConfig struct {
	Sopranos int `yaml:"sopranos"`
	Altos    int `yaml:"altos"`
	Tenors   int `yaml:"tenors"`
	Basses   int `yaml:"basses"`
}

// LayoutConfig captures stage preferences.
type LayoutConfig struct {
	Rows   int    `yaml:"rows"`
	Policy string `yaml:"policy"`
}

// ThemeConfig holds the per-section display colors.
type ThemeConfig struct {
	Soprano string `yaml:"soprano,omitempty"`
	Alto    string `yaml:"alto,omitempty"`
	Tenor   string `yaml:"tenor,omitempty"`
	Bass    string `yaml:"bass,omitempty"`
}

// ProjectConfig models .riser/config.yaml.
type ProjectConfig struct {
	Version  int            `yaml:"version"`
	Ensemble EnsembleConfig `yaml:"ensemble"`
	Layout   LayoutConfig   `yaml:"layout"`
	Theme    ThemeConfig    `yaml:"theme,omitempty"`
}

// Config holds the runtime configuration for Riser.
type Config struct {
	// ProjectDir is the directory where the user ran `riser` from
	ProjectDir string

	// RiserProjectDir is ProjectDir/.riser
	RiserProjectDir string

	Project ProjectConfig
}

// InitRiserDir creates the .riser directory structure in the given project
// directory. This is called when the TUI starts up.
//
// Structure created:
// .riser/
// ├── logs/         <- Session activity logbook
// └── config.yaml   <- Ensemble and layout defaults
func InitRiserDir(projectDir string) error {
	riserDir := filepath.Join(projectDir, RiserDir)

	if err := os.MkdirAll(filepath.Join(riserDir, "logs"), 0755); err != nil {
		return err
	}

	return ensureProjectConfig(filepath.Join(riserDir, "config.yaml"))
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:      projectDir,
		RiserProjectDir: filepath.Join(projectDir, RiserDir),
		Project:         defaultProjectConfig(),
	}

	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.RiserProjectDir, "logs")
}

// SessionLogPath returns the file the session logbook appends to.
func (c *Config) SessionLogPath() string {
	return filepath.Join(c.LogsDir(), "session.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.RiserProjectDir, "config.yaml")
}

// Counts returns the configured ensemble as roster headcounts.
func (c *Config) Counts() roster.Counts {
	return roster.Counts{
		Sopranos: c.Project.Ensemble.Sopranos,
		Altos:    c.Project.Ensemble.Altos,
		Tenors:   c.Project.Ensemble.Tenors,
		Basses:   c.Project.Ensemble.Basses,
	}
}

// Rows returns the configured row count.
func (c *Config) Rows() int {
	return c.Project.Layout.Rows
}

// Policy returns the configured placement policy. The value is checked
// at load time, so the fallback only covers a zero Config.
func (c *Config) Policy() grid.Policy {
	p, err := grid.ParsePolicy(c.Project.Layout.Policy)
	if err != nil {
		return grid.PolicyAuto
	}
	return p
}

// SectionColor returns the configured color for a section, falling back
// to the built-in palette when the theme omits it.
func (c *Config) SectionColor(s roster.Section) string {
	var value string
	switch s {
	case roster.Soprano:
		value = c.Project.Theme.Soprano
	case roster.Alto:
		value = c.Project.Theme.Alto
	case roster.Tenor:
		value = c.Project.Theme.Tenor
	case roster.Bass:
		value = c.Project.Theme.Bass
	}
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return defaultSectionColor(s)
}

func defaultSectionColor(s roster.Section) string {
	switch s {
	case roster.Soprano:
		return "#F7B801"
	case roster.Alto:
		return "#FF6B6B"
	case roster.Tenor:
		return "#5B8DEF"
	case roster.Bass:
		return "#4CAF50"
	default:
		return "#AAAAAA"
	}
}

// SaveSettings updates the ensemble and layout defaults and persists them
// back to .riser/config.yaml so the next launch starts from the same
// chart the user just applied.
func (c *Config) SaveSettings(counts roster.Counts, rows int, policy grid.Policy) error {
	c.Project.Ensemble = EnsembleConfig{
		Sopranos: counts.Sopranos,
		Altos:    counts.Altos,
		Tenors:   counts.Tenors,
		Basses:   counts.Basses,
	}
	c.Project.Layout.Rows = rows
	c.Project.Layout.Policy = policy.String()
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:  1,
		Ensemble: EnsembleConfig{Sopranos: 8, Altos: 8, Tenors: 6, Basses: 6},
		Layout:   LayoutConfig{Rows: defaultRows, Policy: grid.PolicyAuto.String()},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Layout.Rows == 0 {
		pc.Layout.Rows = defaultRows
	}
	if strings.TrimSpace(pc.Layout.Policy) == "" {
		pc.Layout.Policy = grid.PolicyAuto.String()
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Ensemble.normalize()
	pc.Layout.normalize()
	pc.Theme.normalize()
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := grid.ParsePolicy(pc.Layout.Policy); err != nil {
		return fmt.Errorf("layout.policy: %w", err)
	}
	return nil
}

func (ec *EnsembleConfig) normalize() {
	ec.Sopranos = clampCount(ec.Sopranos)
	ec.Altos = clampCount(ec.Altos)
	ec.Tenors = clampCount(ec.Tenors)
	ec.Basses = clampCount(ec.Basses)
}

func (lc *LayoutConfig) normalize() {
	lc.Policy = strings.ToLower(strings.TrimSpace(lc.Policy))
	if lc.Rows < 1 {
		lc.Rows = defaultRows
	}
}

func (tc *ThemeConfig) normalize() {
	tc.Soprano = strings.TrimSpace(tc.Soprano)
	tc.Alto = strings.TrimSpace(tc.Alto)
	tc.Tenor = strings.TrimSpace(tc.Tenor)
	tc.Bass = strings.TrimSpace(tc.Bass)
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.RiserProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure riser dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
